package worker

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/argumint/argumint/internal/model"
)

// mockAnnotator implements Annotator
type mockAnnotator struct {
	failSuffix string // essays with this suffix fail
}

func (m *mockAnnotator) AnnotateEssay(ctx context.Context, path string) *AnnotateResult {
	time.Sleep(5 * time.Millisecond) // Simulate work
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if m.failSuffix != "" && strings.HasSuffix(name, m.failSuffix) {
		return &AnnotateResult{Essay: name, Err: errors.New("model unavailable")}
	}
	return &AnnotateResult{
		Essay:      name,
		Stats:      &model.Stats{Claim: 1},
		OutputPath: name + ".ann",
	}
}

func TestBatchProcessor_Process(t *testing.T) {
	processor := NewBatchProcessor(&mockAnnotator{}, 2)

	paths := []string{"v1_essay1.txt", "v1_essay2.txt", "v2_essay3.txt"}
	results := processor.Process(context.Background(), paths, nil)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("unexpected error for %s: %v", res.Essay, res.Err)
		}
		if res.Stats == nil {
			t.Errorf("expected stats for %s", res.Essay)
		}
	}
}

func TestBatchProcessor_FailureIsolation(t *testing.T) {
	processor := NewBatchProcessor(&mockAnnotator{failSuffix: "bad"}, 3)

	paths := []string{"essay_ok.txt", "essay_bad.txt", "essay_fine.txt", "other_bad.txt"}
	results := processor.Process(context.Background(), paths, nil)

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	failed := 0
	for _, res := range results {
		if res.GetError() != nil {
			failed++
			if res.Stats != nil {
				t.Errorf("failed essay %s should have nil stats", res.Essay)
			}
		}
	}
	if failed != 2 {
		t.Errorf("expected 2 failures, got %d", failed)
	}
}

func TestBatchProcessor_OnResultCallback(t *testing.T) {
	processor := NewBatchProcessor(&mockAnnotator{}, 4)

	count := 25
	paths := make([]string, count)
	for i := range paths {
		paths[i] = fmt.Sprintf("essay%d.txt", i)
	}

	var observed []string
	results := processor.Process(context.Background(), paths, func(r *AnnotateResult) {
		observed = append(observed, r.Essay)
	})

	if len(observed) != count {
		t.Errorf("expected %d callback invocations, got %d", count, len(observed))
	}
	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	processor := NewBatchProcessor(&mockAnnotator{}, 2)

	results := processor.Process(context.Background(), nil, nil)
	if len(results) != 0 {
		t.Errorf("expected no results for empty input, got %d", len(results))
	}
}
