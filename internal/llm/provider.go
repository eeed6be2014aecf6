package llm

import "context"

// Provider is one model backend capable of a single text completion.
// The pipeline never branches on which backend it talks to; everything
// provider-specific stays behind this interface.
type Provider interface {
	// Name returns the provider key as used on the command line and in
	// run reports: gemini, claude or azure.
	Name() string

	// Model returns the concrete model or deployment identifier the
	// provider will call. It participates in cache keys so switching
	// models never replays another model's responses.
	Model() string

	// Generate sends one prompt and returns the model's raw text
	// response. Implementations apply their own call timeout on top of
	// ctx and must be safe for concurrent use.
	Generate(ctx context.Context, prompt string) (string, error)
}

// maxOutputTokens caps completion length for providers that require an
// explicit limit. Annotation sets for a typical essay fit comfortably.
const maxOutputTokens = 4096
