package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/argumint/argumint/internal/cache"
	"github.com/argumint/argumint/internal/config"
	"github.com/argumint/argumint/internal/essay"
	"github.com/argumint/argumint/internal/extract"
	"github.com/argumint/argumint/internal/llm"
	"github.com/argumint/argumint/internal/model"
	"github.com/argumint/argumint/internal/stats"
	"github.com/argumint/argumint/internal/validate"
	"github.com/argumint/argumint/internal/worker"
)

// Pipeline orchestrates the complete annotation process for one run:
// load, generate, parse, repair, write, count. One Pipeline serves all
// essays of a run and is safe for concurrent use.
type Pipeline struct {
	provider llm.Provider
	cache    cache.Cache // nil when caching is disabled
	limiter  *worker.Limiter
	outDir   string
}

// New creates a pipeline writing annotation files into outDir.
func New(cfg *config.Config, provider llm.Provider, outDir string) *Pipeline {
	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewLayered(cfg.Cache.MemoryTTL, cfg.CacheDir(), cfg.Cache.DiskTTL)
	}

	return &Pipeline{
		provider: provider,
		cache:    store,
		limiter:  worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		outDir:   outDir,
	}
}

// AnnotateEssay runs the full chain for a single essay file. Every
// failure comes back inside the result so one broken essay can never
// stop the batch.
func (p *Pipeline) AnnotateEssay(ctx context.Context, path string) *worker.AnnotateResult {
	result := &worker.AnnotateResult{Essay: essay.NameOf(path)}

	// 1. Load essay text
	es, err := essay.Load(path)
	if err != nil {
		result.Err = err
		return result
	}

	// 2. Generate the raw annotation response
	raw, err := p.generate(ctx, es.Text)
	if err != nil {
		result.Err = fmt.Errorf("generate: %w", err)
		return result
	}

	// 3. Parse the response into annotation lines
	lines := extract.Response(raw)

	// 4. Repair entity offsets against the essay text
	fixed := validate.New(es.Text).FixLines(lines)

	// 5. Write the annotation file
	outPath := filepath.Join(p.outDir, es.Name+".ann")
	if err := WriteAnnotations(outPath, fixed); err != nil {
		result.Err = fmt.Errorf("write annotations: %w", err)
		return result
	}

	// HTML sources get their extracted text written next to the .ann,
	// since that text is what the offsets refer to.
	if es.HTML {
		textPath := filepath.Join(p.outDir, es.Name+".txt")
		if err := os.WriteFile(textPath, []byte(es.Text), 0644); err != nil {
			result.Err = fmt.Errorf("write extracted text: %w", err)
			return result
		}
	}

	// 6. Count what was written
	s := stats.Compute(fixed)
	result.Stats = &s
	result.OutputPath = outPath
	return result
}

// generate returns the model response for an essay, consulting the
// cache before spending a real call.
func (p *Pipeline) generate(ctx context.Context, text string) (string, error) {
	prompt := llm.BuildPrompt(text)
	key := cache.Key(p.provider.Name(), p.provider.Model(), prompt)

	if p.cache != nil {
		if resp, ok := p.cache.Get(key); ok {
			return resp, nil
		}
	}

	if err := p.limiter.Wait(ctx, p.provider.Name()); err != nil {
		return "", err
	}

	resp, err := p.provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if p.cache != nil {
		if err := p.cache.Set(key, resp, 0); err != nil {
			fmt.Printf("Warning: failed to cache response: %v\n", err)
		}
	}
	return resp, nil
}

// WriteAnnotations renders annotation lines to a standoff file. Lines
// are joined by newlines with a trailing newline iff the set is
// non-empty; an empty set still produces the (empty) file, marking the
// essay as processed rather than failed.
func WriteAnnotations(path string, lines []model.Line) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line.Render())
		sb.WriteString("\n")
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}
