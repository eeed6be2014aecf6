package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/argumint/argumint/internal/model"
)

// Validator repairs entity offsets against one essay text. Offsets in
// the standoff format count runes, not bytes, so the essay is indexed
// both ways up front: the rune slice answers "what is at [start,end)"
// and the raw string drives substring search.
//
// A Validator is tied to a single essay and is safe for concurrent use
// once built.
type Validator struct {
	text  string
	runes []rune
}

// New builds a Validator for one essay text.
func New(text string) *Validator {
	return &Validator{text: text, runes: []rune(text)}
}

// FixLines applies Fix to every entity line, passing everything else
// through unchanged. Attribute and relation lines carry no offsets and
// are never rewritten.
func (v *Validator) FixLines(lines []model.Line) []model.Line {
	fixed := make([]model.Line, len(lines))
	for i, line := range lines {
		if line.Entity != nil {
			e := v.Fix(*line.Entity)
			line.Entity = &e
		}
		fixed[i] = line
	}
	return fixed
}

// Fix returns an entity whose offsets select exactly its stored text,
// repairing them when they do not. Strategies in order:
//
//  1. Keep the offsets when the span at [Start,End) already equals the
//     stored text.
//  2. Re-search the essay for the stored text and take the leftmost
//     occurrence.
//  3. Re-search for the whitespace-trimmed text; on a hit the stored
//     text is replaced with the trimmed form.
//
// When every strategy misses, the entity is returned untouched. A wrong
// triple in the output is recoverable by a human; a dropped one is not.
func (v *Validator) Fix(e model.Entity) model.Entity {
	if v.matches(e.Start, e.End, e.Text) {
		return e
	}

	if start, end, ok := v.find(e.Text); ok {
		e.Start, e.End = start, end
		return e
	}

	trimmed := strings.TrimSpace(e.Text)
	if start, end, ok := v.find(trimmed); ok {
		e.Start, e.End = start, end
		e.Text = trimmed
		return e
	}

	return e
}

// matches reports whether [start,end) is in bounds and selects span.
func (v *Validator) matches(start, end int, span string) bool {
	if start < 0 || end < start || end > len(v.runes) {
		return false
	}
	return string(v.runes[start:end]) == span
}

// find locates the leftmost occurrence of span and reports its rune
// offsets. The byte index from the search is translated by counting
// runes up to it.
func (v *Validator) find(span string) (start, end int, ok bool) {
	idx := strings.Index(v.text, span)
	if idx < 0 {
		return 0, 0, false
	}
	start = utf8.RuneCountInString(v.text[:idx])
	return start, start + utf8.RuneCountInString(span), true
}
