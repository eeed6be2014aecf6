package model

import "fmt"

// EntityType categorizes an argument component span
type EntityType string

const (
	EntityMajorClaim EntityType = "MajorClaim" // Central thesis of the essay
	EntityClaim      EntityType = "Claim"      // Statement for or against the MajorClaim
	EntityPremise    EntityType = "Premise"    // Evidence or reasoning backing a Claim
)

// Stance values for Claim attributes
const (
	StanceFor     = "For"     // Claim supports the MajorClaim
	StanceAgainst = "Against" // Claim opposes the MajorClaim
)

// AttributeStance is the only attribute kind in the schema
const AttributeStance = "Stance"

// Relation kinds
const (
	RelationSupports = "supports"
	RelationAttacks  = "attacks"
)

// Entity is a T line: a typed text span located by character offsets.
// Offsets count runes from the start of the essay, half-open [Start,End).
type Entity struct {
	ID    string     `json:"id"`    // T1, T2, ...
	Type  EntityType `json:"type"`  // MajorClaim, Claim, Premise
	Start int        `json:"start"` // First rune of the span
	End   int        `json:"end"`   // One past the last rune
	Text  string     `json:"text"`  // Span text as stored in the file
}

// Attribute is an A line attaching a stance to a Claim entity
type Attribute struct {
	ID     string `json:"id"`     // A1, A2, ...
	Kind   string `json:"kind"`   // Always "Stance"
	Entity string `json:"entity"` // T reference the stance applies to
	Value  string `json:"value"`  // For or Against
}

// Relation is an R line linking two entities
type Relation struct {
	ID     string `json:"id"`     // R1, R2, ...
	Kind   string `json:"kind"`   // supports or attacks
	Source string `json:"source"` // Arg1 entity reference
	Target string `json:"target"` // Arg2 entity reference
}

// Line is one line of a standoff annotation file. Raw always holds the
// text as received. At most one of Entity, Attribute or Relation is set,
// when the line matched that grammar. A line that matched nothing travels
// as raw text only, so malformed model output is preserved verbatim
// instead of being dropped.
type Line struct {
	Raw       string     `json:"raw"`
	Entity    *Entity    `json:"entity,omitempty"`
	Attribute *Attribute `json:"attribute,omitempty"`
	Relation  *Relation  `json:"relation,omitempty"`
}

// Render returns the line as it is written to an .ann file. Entity lines
// are re-rendered from their fields so offset repairs take effect;
// everything else is emitted exactly as received.
func (l Line) Render() string {
	if l.Entity != nil {
		e := l.Entity
		return fmt.Sprintf("%s\t%s %d %d\t%s", e.ID, e.Type, e.Start, e.End, e.Text)
	}
	return l.Raw
}
