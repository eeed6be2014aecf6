package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/argumint/argumint/internal/extract"
	"github.com/argumint/argumint/internal/model"
	"github.com/argumint/argumint/internal/stats"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <run-dir>",
	Short: "Recompute statistics from a run directory",
	Long: `Stats re-reads the .ann files of a previous annotation run and
recomputes the per-file and aggregate counters. No model calls are
made; this is useful after hand-editing annotation files or when a
run's summary was lost.

Example:
  argumint stats logs/gemini_all_20250110_093045`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	dir := args[0]

	files, err := filepath.Glob(filepath.Join(dir, "*.ann"))
	if err != nil {
		return fmt.Errorf("glob annotations: %w", err)
	}
	sort.Strings(files)
	if len(files) == 0 {
		return fmt.Errorf("no .ann files found in %s", dir)
	}

	thin := strings.Repeat("-", 60)
	fmt.Println(thin)
	fmt.Println("PER-FILE STATISTICS")
	fmt.Println(thin)
	fmt.Println()

	var all []model.Stats
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}

		s := stats.Compute(extract.Response(string(data)))
		all = append(all, s)

		name := strings.TrimSuffix(filepath.Base(path), ".ann")
		fmt.Printf("%s:\n", name)
		fmt.Printf("  MajorClaim: %d, Claim: %d, Premise: %d\n", s.MajorClaim, s.Claim, s.Premise)
		fmt.Printf("  Stance (For/Against): %d/%d\n", s.StanceFor, s.StanceAgainst)
		fmt.Printf("  Relations (supports/attacks): %d/%d\n", s.Supports, s.Attacks)
		fmt.Println()
	}

	agg := stats.Aggregate(all)
	fmt.Println(thin)
	fmt.Println("AGGREGATE STATISTICS")
	fmt.Println(thin)
	fmt.Println()
	fmt.Printf("Files: %d\n\n", len(files))
	fmt.Println("Entity Counts:")
	fmt.Printf("  MajorClaim: %d\n", agg.MajorClaim)
	fmt.Printf("  Claim: %d\n", agg.Claim)
	fmt.Printf("  Premise: %d\n\n", agg.Premise)
	fmt.Println("Stance Attributes:")
	fmt.Printf("  For: %d\n", agg.StanceFor)
	fmt.Printf("  Against: %d\n\n", agg.StanceAgainst)
	fmt.Println("Relation Counts:")
	fmt.Printf("  supports: %d\n", agg.Supports)
	fmt.Printf("  attacks: %d\n", agg.Attacks)

	return nil
}
