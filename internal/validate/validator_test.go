package validate

import (
	"testing"

	"github.com/argumint/argumint/internal/model"
)

const essay = "School uniforms reduce bullying. Students focus on learning. School uniforms cost money."

func entity(start, end int, text string) model.Entity {
	return model.Entity{ID: "T1", Type: model.EntityClaim, Start: start, End: end, Text: text}
}

func TestFix_CorrectOffsetsUntouched(t *testing.T) {
	v := New(essay)
	e := entity(0, 31, "School uniforms reduce bullying")

	got := v.Fix(e)
	if got != e {
		t.Errorf("expected entity unchanged, got %+v", got)
	}
}

func TestFix_ReSearch(t *testing.T) {
	v := New(essay)
	got := v.Fix(entity(10, 38, "Students focus on learning"))

	if got.Start != 33 || got.End != 59 {
		t.Errorf("expected offsets 33..59, got %d..%d", got.Start, got.End)
	}
	if got.Text != "Students focus on learning" {
		t.Errorf("text changed: %q", got.Text)
	}
}

func TestFix_LeftmostOccurrenceWins(t *testing.T) {
	v := New(essay)
	// "School uniforms" appears twice; stated offsets point nowhere.
	got := v.Fix(entity(70, 85, "School uniforms"))

	if got.Start != 0 || got.End != 15 {
		t.Errorf("expected leftmost occurrence 0..15, got %d..%d", got.Start, got.End)
	}
}

func TestFix_TrimmedFallback(t *testing.T) {
	v := New(essay)
	got := v.Fix(entity(0, 10, "  Students focus on learning  "))

	if got.Text != "Students focus on learning" {
		t.Errorf("expected trimmed text stored, got %q", got.Text)
	}
	if got.Start != 33 || got.End != 59 {
		t.Errorf("expected offsets 33..59, got %d..%d", got.Start, got.End)
	}
}

func TestFix_IrrecoverableKeptVerbatim(t *testing.T) {
	v := New(essay)
	e := entity(5, 12, "television")

	got := v.Fix(e)
	if got != e {
		t.Errorf("expected unfixable entity preserved, got %+v", got)
	}
}

func TestFix_OutOfBoundsOffsets(t *testing.T) {
	v := New("short text")

	// End past the document forces a re-search.
	got := v.Fix(entity(6, 9999, "text"))
	if got.Start != 6 || got.End != 10 {
		t.Errorf("expected 6..10, got %d..%d", got.Start, got.End)
	}

	// Inverted offsets must not panic and must repair.
	got = v.Fix(entity(8, 2, "short"))
	if got.Start != 0 || got.End != 5 {
		t.Errorf("expected 0..5, got %d..%d", got.Start, got.End)
	}

	// Negative sentinel from the parser repairs the same way.
	got = v.Fix(entity(-1, -1, "text"))
	if got.Start != 6 || got.End != 10 {
		t.Errorf("expected 6..10, got %d..%d", got.Start, got.End)
	}
}

func TestFix_RuneOffsets(t *testing.T) {
	doc := "héllo wörld"
	v := New(doc)

	got := v.Fix(entity(0, 5, "wörld"))
	if got.Start != 6 || got.End != 11 {
		t.Errorf("expected rune offsets 6..11, got %d..%d", got.Start, got.End)
	}
	if string([]rune(doc)[got.Start:got.End]) != "wörld" {
		t.Errorf("repaired offsets do not select the span")
	}

	// Byte offsets for the same span would be 7..13 and must not pass
	// the direct check.
	got = v.Fix(entity(7, 13, "wörld"))
	if got.Start != 6 || got.End != 11 {
		t.Errorf("byte offsets accepted as valid: got %d..%d", got.Start, got.End)
	}
}

func TestFix_WhitespaceSpanCollapses(t *testing.T) {
	// A span that trims to nothing "matches" at position zero. The
	// degenerate empty entity is kept so the line count stays stable.
	v := New("abc")
	got := v.Fix(entity(5, 7, " \t "))

	if got.Start != 0 || got.End != 0 || got.Text != "" {
		t.Errorf("expected empty span at 0..0, got %d..%d %q", got.Start, got.End, got.Text)
	}
}

func TestFixLines_NonEntityPassthrough(t *testing.T) {
	v := New(essay)
	lines := []model.Line{
		{Raw: "A1\tStance T1 For", Attribute: &model.Attribute{ID: "A1", Kind: "Stance", Entity: "T1", Value: "For"}},
		{Raw: "R1\tsupports Arg1:T2 Arg2:T1", Relation: &model.Relation{ID: "R1", Kind: "supports", Source: "T2", Target: "T1"}},
		{Raw: "garbage line"},
		{Raw: "T1\tClaim 10 38\tStudents focus on learning", Entity: &model.Entity{ID: "T1", Type: model.EntityClaim, Start: 10, End: 38, Text: "Students focus on learning"}},
	}

	fixed := v.FixLines(lines)
	if len(fixed) != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), len(fixed))
	}
	for i := 0; i < 3; i++ {
		if fixed[i].Raw != lines[i].Raw {
			t.Errorf("line %d rewritten: %q", i, fixed[i].Raw)
		}
	}
	if fixed[3].Entity.Start != 33 {
		t.Errorf("entity line not repaired: start %d", fixed[3].Entity.Start)
	}
	if lines[3].Entity.Start != 10 {
		t.Errorf("input entity mutated: start %d", lines[3].Entity.Start)
	}
}
