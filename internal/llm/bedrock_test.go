package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/argumint/argumint/internal/config"
)

func bedrockTestConfig(endpoint string) *config.Config {
	cfg := config.Default()
	cfg.Bedrock.AccessKeyID = "test-access"
	cfg.Bedrock.SecretAccessKey = "test-secret"
	cfg.Bedrock.Region = "us-east-1"
	cfg.Bedrock.Model = "test-model"
	cfg.Bedrock.Endpoint = endpoint
	return cfg
}

func TestBedrock_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/model/test-model/invoke") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected application/json content type, got %q", r.Header.Get("Content-Type"))
		}

		var req claudeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.AnthropicVersion != "bedrock-2023-05-31" {
			t.Errorf("unexpected anthropic_version: %q", req.AnthropicVersion)
		}
		if req.MaxTokens != maxOutputTokens {
			t.Errorf("expected max_tokens %d, got %d", maxOutputTokens, req.MaxTokens)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" || req.Messages[0].Content != "annotate this" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [{"type": "text", "text": "T1\tClaim 0 5\thello"}], "stop_reason": "end_turn"}`))
	}))
	defer server.Close()

	provider, err := NewBedrock(bedrockTestConfig(server.URL))
	if err != nil {
		t.Fatalf("NewBedrock failed: %v", err)
	}
	if provider.Name() != "claude" {
		t.Errorf("expected name claude, got %s", provider.Name())
	}
	if provider.Model() != "test-model" {
		t.Errorf("expected model test-model, got %s", provider.Model())
	}

	got, err := provider.Generate(context.Background(), "annotate this")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "T1\tClaim 0 5\thello" {
		t.Errorf("unexpected response: %q", got)
	}
}

func TestBedrock_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "internal failure"}`))
	}))
	defer server.Close()

	provider, err := NewBedrock(bedrockTestConfig(server.URL))
	if err != nil {
		t.Fatalf("NewBedrock failed: %v", err)
	}

	if _, err := provider.Generate(context.Background(), "prompt"); err == nil {
		t.Errorf("expected error on API failure")
	}
}

func TestBedrock_Generate_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [], "stop_reason": "end_turn"}`))
	}))
	defer server.Close()

	provider, err := NewBedrock(bedrockTestConfig(server.URL))
	if err != nil {
		t.Fatalf("NewBedrock failed: %v", err)
	}

	if _, err := provider.Generate(context.Background(), "prompt"); err == nil {
		t.Errorf("expected error on empty content")
	}
}

func TestNewBedrock_MissingCredentials(t *testing.T) {
	cfg := config.Default()
	cfg.Bedrock.AccessKeyID = ""
	cfg.Bedrock.SecretAccessKey = ""

	if _, err := NewBedrock(cfg); err == nil {
		t.Errorf("expected error without AWS credentials")
	}
}
