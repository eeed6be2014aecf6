package stats

import (
	"strings"

	"github.com/argumint/argumint/internal/extract"
	"github.com/argumint/argumint/internal/model"
)

// Compute tallies the fixed counter set over a repaired line sequence.
//
// Lines that parsed cleanly are counted from their structures. A and R
// lines that missed the strict grammar still get a keyword-based tally:
// stance lines count on "Stance" membership plus a For-before-Against
// check, relation lines on the leftmost relation keyword. Entity lines
// have no fallback; a T line either parsed or it counts nothing.
func Compute(lines []model.Line) model.Stats {
	var s model.Stats
	for _, line := range lines {
		switch {
		case line.Entity != nil:
			countEntity(&s, line.Entity)
		case line.Attribute != nil:
			countStance(&s, line.Attribute.Value)
		case line.Relation != nil:
			countRelation(&s, line.Relation.Kind)
		default:
			countRaw(&s, line.Raw)
		}
	}
	return s
}

// Aggregate sums per-essay counters element-wise.
func Aggregate(all []model.Stats) model.Stats {
	var total model.Stats
	for _, s := range all {
		total.Add(s)
	}
	return total
}

func countEntity(s *model.Stats, e *model.Entity) {
	// A span emptied by the trimming repair no longer renders as a
	// parseable line and is not counted.
	if e.Text == "" {
		return
	}
	switch e.Type {
	case model.EntityMajorClaim:
		s.MajorClaim++
	case model.EntityClaim:
		s.Claim++
	case model.EntityPremise:
		s.Premise++
	}
}

func countStance(s *model.Stats, value string) {
	switch value {
	case model.StanceFor:
		s.StanceFor++
	case model.StanceAgainst:
		s.StanceAgainst++
	}
}

func countRelation(s *model.Stats, kind string) {
	switch kind {
	case model.RelationSupports:
		s.Supports++
	case model.RelationAttacks:
		s.Attacks++
	}
}

func countRaw(s *model.Stats, raw string) {
	if raw == "" {
		return
	}
	switch raw[0] {
	case 'A':
		if !strings.Contains(raw, model.AttributeStance) {
			return
		}
		if strings.Contains(raw, model.StanceFor) {
			s.StanceFor++
		} else if strings.Contains(raw, model.StanceAgainst) {
			s.StanceAgainst++
		}
	case 'R':
		countRelation(s, extract.RelationKeyword(raw))
	}
}
