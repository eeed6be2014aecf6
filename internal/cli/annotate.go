package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/argumint/argumint/internal/config"
	"github.com/argumint/argumint/internal/essay"
	"github.com/argumint/argumint/internal/llm"
	"github.com/argumint/argumint/internal/pipeline"
	"github.com/argumint/argumint/internal/worker"
	"github.com/spf13/cobra"
)

var (
	modelName   string
	dataset     string
	limit       int
	workers     int
	textDir     string
	logDir      string
	callTimeout time.Duration
	noCache     bool
	rps         float64
	burst       int
	httpProxy   string
	httpsProxy  string
)

// annotateCmd represents the annotate command
var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Annotate an essay corpus with a model provider",
	Long: `Annotate runs the full pipeline over a corpus of essays:
- Discover essay files for the selected dataset
- Send each essay to the chosen model in parallel
- Parse and offset-repair the returned annotations
- Write one .ann file per essay plus summary.txt and summary.json

Each run gets its own directory under the log dir, named
<model>_<dataset>_<timestamp>.

Example:
  argumint annotate --model gemini
  argumint annotate --model claude --dataset v2 --workers 10
  argumint annotate --model azure --limit 5 --no-cache`,
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	// Run selection flags
	annotateCmd.Flags().StringVar(&modelName, "model", "", "model provider: gemini, claude or azure (required)")
	annotateCmd.Flags().StringVar(&dataset, "dataset", essay.DatasetAll, "dataset to process: v1, v2 or all")
	annotateCmd.Flags().IntVar(&limit, "limit", 0, "limit number of essays to process (0 = no limit)")
	_ = annotateCmd.MarkFlagRequired("model")

	// Execution flags
	annotateCmd.Flags().IntVar(&workers, "workers", 5, "number of parallel workers")
	annotateCmd.Flags().StringVar(&textDir, "text-dir", "data/text", "essay corpus directory")
	annotateCmd.Flags().StringVar(&logDir, "log-dir", "logs", "parent directory for run output")
	annotateCmd.Flags().DurationVar(&callTimeout, "timeout", 2*time.Minute, "timeout per model call")
	annotateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response cache (force fresh model calls)")

	// Rate limiting flags
	annotateCmd.Flags().Float64Var(&rps, "rps", 0, "max model calls per second (0 = unlimited)")
	annotateCmd.Flags().IntVar(&burst, "burst", 1, "rate limiter burst size")

	// Proxy flags
	annotateCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	annotateCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()
	applyAnnotateFlags(cmd, cfg)

	// An empty corpus aborts before any output exists.
	files, err := essay.Discover(cfg.TextDir, dataset, limit)
	if err != nil {
		return err
	}

	provider, err := llm.New(cfg, modelName)
	if err != nil {
		return err
	}

	stamp := time.Now().Format("20060102_150405")
	outDir := filepath.Join(cfg.LogDir, fmt.Sprintf("%s_%s_%s", provider.Name(), dataset, stamp))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Found %d essays to process (dataset: %s)\n", len(files), dataset)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Processing with %s (dataset: %s)\n", strings.ToUpper(provider.Name()), dataset)
	fmt.Fprintf(os.Stderr, "  Output:  %s\n", outDir)
	fmt.Fprintf(os.Stderr, "  Workers: %d\n", cfg.Workers)
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")

	p := pipeline.New(cfg, provider, outDir)
	processor := worker.NewBatchProcessor(p, cfg.Workers)

	var done, succeeded, failed int
	total := len(files)
	results := processor.Process(context.Background(), files, func(r *worker.AnnotateResult) {
		done++
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", r.Essay, r.Err)
		} else {
			succeeded++
			fmt.Fprintf(os.Stderr, "  ✓ %s -> %s\n", r.Essay, filepath.Base(r.OutputPath))
		}
		if done%10 == 0 || done == total {
			fmt.Fprintf(os.Stderr, "Progress: %d/%d (%d succeeded, %d failed)\n", done, total, succeeded, failed)
		}
	})

	report := pipeline.BuildReport(provider.Name(), provider.Model(), dataset, results)
	summaryPath := filepath.Join(outDir, "summary.txt")
	if err := pipeline.WriteText(report, summaryPath); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if err := pipeline.WriteJSON(report, filepath.Join(outDir, "summary.json")); err != nil {
		return fmt.Errorf("write summary json: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n%s Summary: %d succeeded, %d failed\n",
		strings.ToUpper(provider.Name()), report.Succeeded, report.Failed)
	fmt.Fprintf(os.Stderr, "Statistics written to: %s\n", summaryPath)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Processing complete!\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Log directory: %s/\n", outDir)

	return nil
}

// applyAnnotateFlags layers explicitly set flags over the file config.
// Flags the user did not touch leave the config values alone, so a
// config file still steers runs that only pass --model.
func applyAnnotateFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("text-dir") {
		cfg.TextDir = textDir
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = logDir
	}
	if flags.Changed("timeout") {
		cfg.Timeout = callTimeout
	}
	if flags.Changed("rps") {
		cfg.RateLimit.RequestsPerSecond = rps
	}
	if flags.Changed("burst") {
		cfg.RateLimit.Burst = burst
	}
	if httpProxy != "" {
		cfg.HTTPProxy = httpProxy
	}
	if httpsProxy != "" {
		cfg.HTTPSProxy = httpsProxy
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
}
