package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/argumint/argumint/internal/config"
	"github.com/argumint/argumint/internal/llm"
	"github.com/spf13/cobra"
)

var (
	probeModel   string
	probeTimeout time.Duration
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Verify model provider connectivity",
	Long: `Probe sends a tiny greeting prompt to each configured provider and
reports whether a real response came back. Use it to check credentials
and network reachability before spending a full annotation run.

Example:
  argumint probe
  argumint probe --model gemini`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().StringVar(&probeModel, "model", "", "probe a single provider (gemini, claude, azure)")
	probeCmd.Flags().DurationVar(&probeTimeout, "timeout", 30*time.Second, "per-provider timeout")
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()

	names := llm.Names()
	if probeModel != "" {
		names = []string{probeModel}
	}

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("LLM API Connection Test")
	fmt.Println(strings.Repeat("=", 50))

	passed := make(map[string]bool, len(names))
	for _, name := range names {
		fmt.Println()
		fmt.Printf("Testing %s...\n", probeLabel(name))
		passed[name] = probeProvider(cfg, name)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Summary")
	fmt.Println(strings.Repeat("=", 50))

	failures := 0
	for _, name := range names {
		status := "✓ PASS"
		if !passed[name] {
			status = "✗ FAIL"
			failures++
		}
		fmt.Printf("  %s: %s\n", name, status)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d providers failed", failures, len(names))
	}
	return nil
}

func probeProvider(cfg *config.Config, name string) bool {
	display := probeDisplay(name)

	provider, err := llm.New(cfg, name)
	if err != nil {
		fmt.Printf("  ✗ %s failed: %v\n", display, err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	prompt := fmt.Sprintf("Say 'Hello, %s is working!' in exactly those words.", display)
	resp, err := provider.Generate(ctx, prompt)
	if err != nil {
		fmt.Printf("  ✗ %s failed: %v\n", display, err)
		return false
	}

	fmt.Printf("  ✓ %s: %s\n", display, strings.TrimSpace(resp))
	return true
}

func probeLabel(name string) string {
	switch name {
	case "gemini":
		return "Gemini API"
	case "claude", "bedrock":
		return "Claude (AWS Bedrock) API"
	case "azure":
		return "Azure OpenAI API"
	}
	return name + " API"
}

func probeDisplay(name string) string {
	switch name {
	case "gemini":
		return "Gemini"
	case "claude", "bedrock":
		return "Claude"
	case "azure":
		return "Azure"
	}
	return name
}
