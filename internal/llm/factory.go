package llm

import (
	"fmt"
	"strings"

	"github.com/argumint/argumint/internal/config"
)

// New creates the provider selected by name. Construction validates
// credentials so a misconfigured run fails before any essay is read.
func New(cfg *config.Config, name string) (Provider, error) {
	switch strings.ToLower(name) {
	case "gemini":
		return NewGemini(cfg)

	case "claude", "bedrock":
		return NewBedrock(cfg)

	case "azure":
		return NewAzure(cfg)

	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: %s)", name, strings.Join(Names(), ", "))
	}
}

// Names lists the providers a run can select, in display order.
func Names() []string {
	return []string{"gemini", "claude", "azure"}
}
