package model

// Stats is the fixed counter set computed over one annotation set.
// JSON keys mirror the annotation vocabulary so summary files read the
// same as the .ann lines they describe.
type Stats struct {
	MajorClaim    int `json:"MajorClaim"`
	Claim         int `json:"Claim"`
	Premise       int `json:"Premise"`
	StanceFor     int `json:"Stance_For"`
	StanceAgainst int `json:"Stance_Against"`
	Supports      int `json:"supports"`
	Attacks       int `json:"attacks"`
}

// Add accumulates other into s, counter by counter.
func (s *Stats) Add(other Stats) {
	s.MajorClaim += other.MajorClaim
	s.Claim += other.Claim
	s.Premise += other.Premise
	s.StanceFor += other.StanceFor
	s.StanceAgainst += other.StanceAgainst
	s.Supports += other.Supports
	s.Attacks += other.Attacks
}

// Entities returns the number of counted component spans.
func (s Stats) Entities() int {
	return s.MajorClaim + s.Claim + s.Premise
}
