package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/argumint/argumint/internal/llm"
	"github.com/argumint/argumint/internal/model"
	"github.com/argumint/argumint/internal/worker"
)

// BuildReport assembles the run report from a batch of results. The
// aggregate sums successful essays only; failed essays appear in the
// per-essay list with their error. Entries are sorted by essay name so
// reports diff cleanly between runs.
func BuildReport(providerName, modelID, dataset string, results []*worker.AnnotateResult) *model.Report {
	report := &model.Report{
		Model:     providerName,
		ModelID:   modelID,
		Dataset:   dataset,
		Timestamp: time.Now(),
		Prompt:    llm.Template(),
	}

	for _, r := range results {
		report.Processed++
		entry := model.EssayStats{Essay: r.Essay}
		if r.Err != nil {
			report.Failed++
			entry.Error = r.Err.Error()
		} else {
			report.Succeeded++
			entry.Stats = r.Stats
			report.Aggregate.Add(*r.Stats)
		}
		report.Essays = append(report.Essays, entry)
	}

	sort.Slice(report.Essays, func(i, j int) bool {
		return report.Essays[i].Essay < report.Essays[j].Essay
	})
	return report
}

// WriteText writes the human-readable run summary.
func WriteText(report *model.Report, path string) error {
	var sb strings.Builder
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	sb.WriteString(rule + "\n")
	sb.WriteString("Argument Mining Annotation Run Summary\n")
	sb.WriteString(rule + "\n\n")

	fmt.Fprintf(&sb, "Model: %s\n", report.Model)
	fmt.Fprintf(&sb, "Timestamp: %s\n", report.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Essays processed: %d\n", report.Processed)
	fmt.Fprintf(&sb, "Successful: %d\n", report.Succeeded)
	fmt.Fprintf(&sb, "Failed: %d\n\n", report.Failed)

	sb.WriteString(thin + "\n")
	sb.WriteString("AGGREGATE STATISTICS\n")
	sb.WriteString(thin + "\n\n")

	agg := report.Aggregate
	sb.WriteString("Entity Counts:\n")
	fmt.Fprintf(&sb, "  MajorClaim: %d\n", agg.MajorClaim)
	fmt.Fprintf(&sb, "  Claim: %d\n", agg.Claim)
	fmt.Fprintf(&sb, "  Premise: %d\n\n", agg.Premise)

	sb.WriteString("Stance Attributes:\n")
	fmt.Fprintf(&sb, "  For: %d\n", agg.StanceFor)
	fmt.Fprintf(&sb, "  Against: %d\n\n", agg.StanceAgainst)

	sb.WriteString("Relation Counts:\n")
	fmt.Fprintf(&sb, "  supports: %d\n", agg.Supports)
	fmt.Fprintf(&sb, "  attacks: %d\n\n", agg.Attacks)

	sb.WriteString(thin + "\n")
	sb.WriteString("PER-FILE STATISTICS\n")
	sb.WriteString(thin + "\n\n")

	for _, entry := range report.Essays {
		if entry.Stats == nil {
			fmt.Fprintf(&sb, "%s: FAILED (%s)\n\n", entry.Essay, entry.Error)
			continue
		}
		s := entry.Stats
		fmt.Fprintf(&sb, "%s:\n", entry.Essay)
		fmt.Fprintf(&sb, "  MajorClaim: %d, Claim: %d, Premise: %d\n", s.MajorClaim, s.Claim, s.Premise)
		fmt.Fprintf(&sb, "  Stance (For/Against): %d/%d\n", s.StanceFor, s.StanceAgainst)
		fmt.Fprintf(&sb, "  Relations (supports/attacks): %d/%d\n\n", s.Supports, s.Attacks)
	}

	sb.WriteString(rule + "\n")
	sb.WriteString("PROMPT USED\n")
	sb.WriteString(rule + "\n\n")
	sb.WriteString(report.Prompt)
	sb.WriteString("\n")

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// WriteJSON writes the machine-readable twin of the run summary.
func WriteJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
