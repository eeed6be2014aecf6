package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/argumint/argumint/internal/config"
)

// Bedrock calls Anthropic Claude models through the AWS Bedrock
// runtime. The provider key stays "claude" because that is the model
// family; Bedrock is just the transport.
type Bedrock struct {
	client  *bedrockruntime.Client
	model   string
	timeout time.Duration
}

// claudeRequest is the anthropic messages payload Bedrock expects.
type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// NewBedrock creates a Claude-on-Bedrock provider from configuration.
func NewBedrock(cfg *config.Config) (*Bedrock, error) {
	if cfg.Bedrock.AccessKeyID == "" || cfg.Bedrock.SecretAccessKey == "" {
		return nil, fmt.Errorf("AWS credentials are required (set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY)")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Bedrock.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Bedrock.AccessKeyID, cfg.Bedrock.SecretAccessKey, ""),
		),
	}
	if hc := newHTTPClient(cfg); hc != nil {
		loadOpts = append(loadOpts, awsconfig.WithHTTPClient(hc))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var clientOpts []func(*bedrockruntime.Options)
	if cfg.Bedrock.Endpoint != "" {
		endpoint := cfg.Bedrock.Endpoint
		clientOpts = append(clientOpts, func(o *bedrockruntime.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}

	return &Bedrock{
		client:  bedrockruntime.NewFromConfig(awsCfg, clientOpts...),
		model:   cfg.Bedrock.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Name returns the provider key.
func (p *Bedrock) Name() string {
	return "claude"
}

// Model returns the configured Bedrock model identifier.
func (p *Bedrock) Model() string {
	return p.model
}

// Generate invokes the model and returns the first content block.
func (p *Bedrock) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	body, err := json.Marshal(claudeRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        maxOutputTokens,
		Messages: []claudeMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal claude request: %w", err)
	}

	out, err := p.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(p.model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock API error: %w", err)
	}

	var resp claudeResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("unmarshal claude response: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no content in claude response")
	}
	return resp.Content[0].Text, nil
}
