package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/argumint/argumint/internal/config"
)

// Gemini calls Google AI Studio models through the official SDK.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGemini creates a Gemini provider from configuration.
func NewGemini(cfg *config.Config) (*Gemini, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required (set GEMINI_API_KEY)")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{
		client:  client,
		model:   cfg.Gemini.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Name returns the provider key.
func (p *Gemini) Name() string {
	return "gemini"
}

// Model returns the configured model identifier.
func (p *Gemini) Model() string {
	return p.model
}

// Generate sends the prompt and concatenates the text parts of the
// first candidate.
func (p *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	model := p.client.GenerativeModel(p.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates in gemini response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text parts in gemini response")
	}
	return sb.String(), nil
}

// Close releases the underlying gRPC connection.
func (p *Gemini) Close() error {
	return p.client.Close()
}
