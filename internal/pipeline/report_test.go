package pipeline

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/argumint/argumint/internal/model"
	"github.com/argumint/argumint/internal/worker"
)

func sampleResults() []*worker.AnnotateResult {
	return []*worker.AnnotateResult{
		{
			Essay: "v1_zebra",
			Stats: &model.Stats{MajorClaim: 1, Claim: 2, Premise: 3, StanceFor: 1, Supports: 2},
		},
		{
			Essay: "v1_apple",
			Stats: &model.Stats{MajorClaim: 1, Claim: 1, Premise: 2, StanceAgainst: 1, Attacks: 1},
		},
		{
			Essay: "v1_mango",
			Err:   errors.New("generate: quota exceeded"),
		},
	}
}

func TestBuildReport_CountsAndAggregate(t *testing.T) {
	report := BuildReport("gemini", "gemini-1.5-flash", "v1", sampleResults())

	if report.Model != "gemini" || report.ModelID != "gemini-1.5-flash" || report.Dataset != "v1" {
		t.Errorf("run identity not carried: %+v", report)
	}
	if report.Processed != 3 || report.Succeeded != 2 || report.Failed != 1 {
		t.Errorf("unexpected counts: processed=%d succeeded=%d failed=%d",
			report.Processed, report.Succeeded, report.Failed)
	}

	// Aggregate sums successes only.
	agg := report.Aggregate
	if agg.MajorClaim != 2 || agg.Claim != 3 || agg.Premise != 5 {
		t.Errorf("unexpected aggregate entities: %+v", agg)
	}
	if agg.StanceFor != 1 || agg.StanceAgainst != 1 || agg.Supports != 2 || agg.Attacks != 1 {
		t.Errorf("unexpected aggregate stance/relations: %+v", agg)
	}

	if report.Prompt == "" || !strings.Contains(report.Prompt, "{essay_text}") {
		t.Errorf("report should embed the unexpanded prompt template")
	}
}

func TestBuildReport_EssaysSortedByName(t *testing.T) {
	report := BuildReport("gemini", "gemini-1.5-flash", "v1", sampleResults())

	want := []string{"v1_apple", "v1_mango", "v1_zebra"}
	if len(report.Essays) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(report.Essays))
	}
	for i, name := range want {
		if report.Essays[i].Essay != name {
			t.Errorf("position %d: expected %s, got %s", i, name, report.Essays[i].Essay)
		}
	}

	failed := report.Essays[1]
	if failed.Stats != nil {
		t.Errorf("failed essay must not carry stats")
	}
	if failed.Error != "generate: quota exceeded" {
		t.Errorf("failed essay should carry its error, got %q", failed.Error)
	}
}

func TestWriteText_Layout(t *testing.T) {
	report := BuildReport("claude", "anthropic.claude-3-5-sonnet-20241022-v2:0", "all", sampleResults())
	path := filepath.Join(t.TempDir(), "summary.txt")

	if err := WriteText(report, path); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		strings.Repeat("=", 60),
		"Argument Mining Annotation Run Summary",
		"Model: claude\n",
		"Essays processed: 3\n",
		"Successful: 2\n",
		"Failed: 1\n",
		"AGGREGATE STATISTICS",
		"Entity Counts:\n  MajorClaim: 2\n  Claim: 3\n  Premise: 5\n",
		"Stance Attributes:\n  For: 1\n  Against: 1\n",
		"Relation Counts:\n  supports: 2\n  attacks: 1\n",
		"PER-FILE STATISTICS",
		"v1_apple:\n  MajorClaim: 1, Claim: 1, Premise: 2\n  Stance (For/Against): 0/1\n  Relations (supports/attacks): 0/1\n",
		"v1_mango: FAILED (generate: quota exceeded)\n",
		"PROMPT USED",
		"{essay_text}",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	// Per-file entries follow sorted order.
	if strings.Index(text, "v1_apple:") > strings.Index(text, "v1_zebra:") {
		t.Errorf("per-file block not sorted by essay name")
	}
	// Prompt appendix closes the file.
	if !strings.HasSuffix(text, "\n") {
		t.Errorf("summary should end with a newline")
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	report := BuildReport("azure", "gpt-4o", "v2", sampleResults())
	path := filepath.Join(t.TempDir(), "summary.json")

	if err := WriteJSON(report, path); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("summary.json is not valid JSON: %v", err)
	}
	if decoded.Model != "azure" || decoded.Dataset != "v2" {
		t.Errorf("run identity lost in JSON: %+v", decoded)
	}
	if decoded.Aggregate != report.Aggregate {
		t.Errorf("aggregate lost in JSON round trip")
	}
	if len(decoded.Essays) != 3 {
		t.Fatalf("expected 3 essay entries, got %d", len(decoded.Essays))
	}

	// Failed essays serialize their error and omit stats entirely.
	if !strings.Contains(string(data), `"error": "generate: quota exceeded"`) {
		t.Errorf("failure reason missing from JSON")
	}
	for _, entry := range decoded.Essays {
		if entry.Essay == "v1_mango" && entry.Stats != nil {
			t.Errorf("failed essay should have no stats in JSON")
		}
	}
}
