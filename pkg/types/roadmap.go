// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Action is one remediation step in a roadmap phase.
type Action struct {
	// Requirement is the framework requirement the gap refers to.
	Requirement string `json:"gap" yaml:"gap"`

	// Category is the owning framework category with code.
	Category string `json:"nist_category" yaml:"nist_category"`

	// Recommendation is the gap's remediation text.
	Recommendation string `json:"recommendation" yaml:"recommendation"`
}

// Phase is one time-boxed slice of the improvement roadmap.
type Phase struct {
	// Number is the phase sequence number, 1 through 4.
	Number int `json:"phase" yaml:"phase"`

	// Timeline is the phase's time window (e.g. "0-3 months").
	Timeline string `json:"timeline" yaml:"timeline"`

	// Priority is the display label for the phase's severity bucket.
	Priority string `json:"priority" yaml:"priority"`

	// Focus describes the phase's theme.
	Focus string `json:"focus" yaml:"focus"`

	// Actions lists one entry per gap in the phase's severity bucket.
	// Empty when the bucket has no gaps; the phase is still emitted.
	Actions []Action `json:"actions" yaml:"actions"`
}

// Overview summarizes gap counts for a roadmap.
type Overview struct {
	TotalGaps int `json:"total_gaps" yaml:"total_gaps"`
	Critical  int `json:"critical" yaml:"critical"`
	High      int `json:"high" yaml:"high"`
	Medium    int `json:"medium" yaml:"medium"`
	Low       int `json:"low" yaml:"low"`
}

// Roadmap is the phased improvement plan derived from an analysis result.
// It always carries exactly four phases, critical first; every gap in the
// result appears in exactly one phase, chosen by severity.
type Roadmap struct {
	Overview Overview `json:"overview" yaml:"overview"`
	Phases   []Phase  `json:"phases" yaml:"phases"`
}
