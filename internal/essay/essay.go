package essay

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dataset selections. Corpus versions are distinguished by file name
// prefix, so selection is a glob concern rather than directory layout.
const (
	DatasetAll = "all"
	DatasetV1  = "v1"
	DatasetV2  = "v2"
)

// Essay is one input document: an immutable text identified by the
// file's stem. Offsets from the annotation model refer to Text exactly
// as held here.
type Essay struct {
	Name string // File stem, used for all derived output names
	Path string
	Text string
	HTML bool // Text was extracted from an HTML source
}

// Discover lists the corpus files for a dataset selection, sorted by
// name so runs are reproducible, optionally truncated to limit. An
// empty selection is an error: a run with nothing to process must fail
// loudly instead of producing an empty report.
func Discover(dir, dataset string, limit int) ([]string, error) {
	prefix := ""
	switch dataset {
	case "", DatasetAll:
	case DatasetV1, DatasetV2:
		prefix = dataset + "_"
	default:
		return nil, fmt.Errorf("unknown dataset: %s (expected v1, v2 or all)", dataset)
	}

	var files []string
	for _, ext := range []string{".txt", ".html"} {
		matches, err := filepath.Glob(filepath.Join(dir, prefix+"*"+ext))
		if err != nil {
			return nil, fmt.Errorf("glob essays: %w", err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no essay files found in %s (dataset %s)", dir, displayDataset(dataset))
	}
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files, nil
}

// Load reads one essay. HTML corpus files are reduced to their visible
// text, since that is the text the model is asked to annotate and the
// text its offsets must land in.
func Load(path string) (Essay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Essay{}, fmt.Errorf("read essay: %w", err)
	}

	es := Essay{
		Name: NameOf(path),
		Path: path,
		Text: string(data),
	}
	if strings.EqualFold(filepath.Ext(path), ".html") {
		text, err := StripHTML(es.Text)
		if err != nil {
			return Essay{}, fmt.Errorf("parse html essay: %w", err)
		}
		es.Text = text
		es.HTML = true
	}
	return es, nil
}

// NameOf returns the essay name for a corpus file path.
func NameOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func displayDataset(dataset string) string {
	if dataset == "" {
		return DatasetAll
	}
	return dataset
}
