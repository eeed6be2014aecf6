package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/argumint/argumint/internal/model"
)

// Standoff line grammars. The entity pattern deliberately has no end
// anchor: the span text runs to the end of the line and may itself
// contain tabs.
var (
	entityPattern    = regexp.MustCompile(`^(T\d+)\t(\w+) (\d+) (\d+)\t(.+)`)
	attributePattern = regexp.MustCompile(`^(A\d+)\tStance (T\d+) (For|Against)$`)
	relationPattern  = regexp.MustCompile(`^(R\d+)\t(supports|attacks) Arg1:(T\d+) Arg2:(T\d+)$`)
)

// ParseLine classifies one candidate annotation line. A line that
// matches a grammar comes back with the corresponding structure filled
// in; a line that matches nothing comes back raw-only, untouched.
func ParseLine(raw string) model.Line {
	line := model.Line{Raw: raw}
	if raw == "" {
		return line
	}

	switch raw[0] {
	case 'T':
		m := entityPattern.FindStringSubmatch(raw)
		if m == nil {
			break
		}
		start, serr := strconv.Atoi(m[3])
		end, eerr := strconv.Atoi(m[4])
		if serr != nil || eerr != nil {
			// Offsets too large for an int cannot possibly be valid
			// positions, so force the repair path.
			start, end = -1, -1
		}
		line.Entity = &model.Entity{
			ID:    m[1],
			Type:  model.EntityType(m[2]),
			Start: start,
			End:   end,
			Text:  m[5],
		}
	case 'A':
		if m := attributePattern.FindStringSubmatch(raw); m != nil {
			line.Attribute = &model.Attribute{
				ID:     m[1],
				Kind:   model.AttributeStance,
				Entity: m[2],
				Value:  m[3],
			}
		}
	case 'R':
		if m := relationPattern.FindStringSubmatch(raw); m != nil {
			line.Relation = &model.Relation{
				ID:     m[1],
				Kind:   m[2],
				Source: m[3],
				Target: m[4],
			}
		}
	}
	return line
}

// ParseLines runs ParseLine over a sanitized response.
func ParseLines(lines []string) []model.Line {
	parsed := make([]model.Line, 0, len(lines))
	for _, l := range lines {
		parsed = append(parsed, ParseLine(l))
	}
	return parsed
}

// Response is the full path from raw model output to parsed lines.
func Response(raw string) []model.Line {
	return ParseLines(Lines(raw))
}

// RelationKeyword reports the relation kind named leftmost in a line,
// for tallying R lines that missed the strict grammar. Returns "" when
// neither keyword occurs.
func RelationKeyword(raw string) string {
	si := strings.Index(raw, model.RelationSupports)
	ai := strings.Index(raw, model.RelationAttacks)
	switch {
	case si >= 0 && (ai < 0 || si < ai):
		return model.RelationSupports
	case ai >= 0:
		return model.RelationAttacks
	}
	return ""
}
