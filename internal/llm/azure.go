package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/argumint/argumint/internal/config"
)

// Azure calls an Azure OpenAI deployment through the go-openai client
// in Azure mode, which handles the deployment-scoped URL layout and
// api-key header.
type Azure struct {
	client     *openai.Client
	deployment string
	timeout    time.Duration
}

// NewAzure creates an Azure OpenAI provider from configuration.
func NewAzure(cfg *config.Config) (*Azure, error) {
	if cfg.Azure.APIKey == "" {
		return nil, fmt.Errorf("azure API key is required (set AZURE_OPENAI_API_KEY)")
	}
	if cfg.Azure.Endpoint == "" {
		return nil, fmt.Errorf("azure endpoint is required (set AZURE_OPENAI_ENDPOINT)")
	}

	clientConfig := openai.DefaultAzureConfig(cfg.Azure.APIKey, cfg.Azure.Endpoint)
	if cfg.Azure.APIVersion != "" {
		clientConfig.APIVersion = cfg.Azure.APIVersion
	}
	if hc := newHTTPClient(cfg); hc != nil {
		clientConfig.HTTPClient = hc
	}

	return &Azure{
		client:     openai.NewClientWithConfig(clientConfig),
		deployment: cfg.Azure.Deployment,
		timeout:    cfg.Timeout,
	}, nil
}

// Name returns the provider key.
func (p *Azure) Name() string {
	return "azure"
}

// Model returns the configured deployment name.
func (p *Azure) Model() string {
	return p.deployment
}

// Generate sends the prompt as a single user message.
func (p *Azure) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.deployment,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("azure openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in azure response")
	}
	return resp.Choices[0].Message.Content, nil
}
