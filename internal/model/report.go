package model

import "time"

// Report is the immutable record of one annotation run. It is assembled
// once after every essay has finished and then only written out, never
// mutated.
type Report struct {
	Model     string    `json:"model"`              // Provider key: gemini, claude, azure
	ModelID   string    `json:"model_id,omitempty"` // Concrete model or deployment name
	Dataset   string    `json:"dataset"`            // v1, v2 or all
	Timestamp time.Time `json:"timestamp"`          // When the run finished

	Processed int `json:"processed"` // Essays attempted
	Succeeded int `json:"succeeded"` // Essays with a written annotation file
	Failed    int `json:"failed"`    // Essays that errored

	Aggregate Stats        `json:"aggregate"` // Sum over successful essays only
	Essays    []EssayStats `json:"essays"`    // Per-essay outcomes, sorted by name

	Prompt string `json:"prompt_template"` // Verbatim template used for every call
}

// EssayStats is the per-essay slice of a report. Stats is nil exactly
// when the essay failed, in which case Error carries the reason.
type EssayStats struct {
	Essay string `json:"essay"`
	Stats *Stats `json:"stats,omitempty"`
	Error string `json:"error,omitempty"`
}
