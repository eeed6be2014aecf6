package worker

import (
	"context"

	"github.com/argumint/argumint/internal/model"
)

// Annotator turns one essay file into an annotation result. Failures
// come back inside the result, never as a second return value, so a
// broken essay can never take the batch down with it.
type Annotator interface {
	AnnotateEssay(ctx context.Context, path string) *AnnotateResult
}

// AnnotateJob is one essay run through an Annotator.
type AnnotateJob struct {
	Path      string
	Annotator Annotator
}

// Execute runs the annotator for the job's essay.
func (j *AnnotateJob) Execute(ctx context.Context) Result {
	return j.Annotator.AnnotateEssay(ctx, j.Path)
}

// AnnotateResult is the outcome for one essay. Stats is nil exactly
// when Err is set.
type AnnotateResult struct {
	Essay      string       // Essay name (file stem)
	Stats      *model.Stats // Counters for the written annotation set
	OutputPath string       // Written .ann file
	Err        error
}

// GetError returns the essay's failure, if any.
func (r *AnnotateResult) GetError() error {
	return r.Err
}

// BatchProcessor fans a corpus out over a worker pool.
type BatchProcessor struct {
	annotator   Annotator
	concurrency int
}

// NewBatchProcessor creates a batch processor with the given fan-out.
func NewBatchProcessor(annotator Annotator, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		annotator:   annotator,
		concurrency: concurrency,
	}
}

// Process annotates every essay concurrently and returns all results.
// onResult, when non-nil, observes each result as it completes, from
// the collecting goroutine, so callers can report progress without
// locking. Result order follows completion, not submission.
func (b *BatchProcessor) Process(ctx context.Context, paths []string, onResult func(*AnnotateResult)) []*AnnotateResult {
	if len(paths) == 0 {
		return []*AnnotateResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submission overlaps collection so neither channel buffer ever
	// has to hold the whole corpus.
	go func() {
		defer pool.Close()
		for _, path := range paths {
			pool.Submit(&AnnotateJob{Path: path, Annotator: b.annotator})
		}
	}()

	results := pool.Wait(func(r Result) {
		if onResult != nil {
			onResult(r.(*AnnotateResult))
		}
	})

	annotateResults := make([]*AnnotateResult, len(results))
	for i, result := range results {
		annotateResults[i] = result.(*AnnotateResult)
	}
	return annotateResults
}
