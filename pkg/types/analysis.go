// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Severity ranks how urgent a policy gap is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists all severity levels from most to least urgent. Iteration
// over severity buckets must use this order, not map order.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// ParseSeverity converts a string to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return Severity(s), nil
	}
	return "", fmt.Errorf("unknown severity %q", s)
}

// Rank returns the sort position of the severity, 0 being most urgent.
// Unknown severities sort last.
func (s Severity) Rank() int {
	for i, sev := range Severities {
		if s == sev {
			return i
		}
	}
	return len(Severities)
}

// Coverage descriptions recorded on a gap.
const (
	CoverageNotAddressed       = "Not addressed"
	CoveragePartiallyAddressed = "Partially addressed"
)

// Gap records one framework requirement the policy does not sufficiently
// cover. Gaps are immutable once created and live only for one analysis run.
type Gap struct {
	// Function is the owning framework function (e.g. "PROTECT").
	Function string `json:"nist_function" yaml:"nist_function"`

	// Category is the owning category name (e.g. "Data Security").
	Category string `json:"nist_category" yaml:"nist_category"`

	// CategoryCode is the category's short code (e.g. "PR.DS").
	CategoryCode string `json:"category_code" yaml:"category_code"`

	// Requirement is the framework requirement text.
	Requirement string `json:"requirement" yaml:"requirement"`

	// Severity classifies the gap: critical, high, medium, or low.
	Severity Severity `json:"severity" yaml:"severity"`

	// Coverage describes the current state: "Not addressed" when no
	// requirement keyword appears in the policy, "Partially addressed"
	// when some do but not enough.
	Coverage string `json:"current_coverage" yaml:"current_coverage"`

	// Recommendation is the remediation text synthesized for the gap.
	Recommendation string `json:"recommendation" yaml:"recommendation"`
}

// Result aggregates the outcome of analyzing one policy document.
type Result struct {
	// PolicyType labels the analyzed policy (e.g. "ISMS", "Data Privacy").
	PolicyType string `json:"policy_type" yaml:"policy_type"`

	// AnalyzedAt is the analysis timestamp in RFC 3339 format.
	AnalyzedAt string `json:"analysis_date" yaml:"analysis_date"`

	// FunctionsAnalyzed lists the framework functions checked, in
	// framework order.
	FunctionsAnalyzed []string `json:"nist_functions_analyzed" yaml:"nist_functions_analyzed"`

	// Gaps lists the identified gaps in framework order: function, then
	// category, then requirement.
	Gaps []Gap `json:"identified_gaps" yaml:"identified_gaps"`

	// SeveritySummary counts gaps per severity. All four severities are
	// always present, zero-valued when absent.
	SeveritySummary map[Severity]int `json:"severity_summary" yaml:"severity_summary"`
}

// TotalGaps returns the number of identified gaps.
func (r Result) TotalGaps() int {
	return len(r.Gaps)
}

// GapsBySeverity returns the gaps with the given severity, preserving order.
func (r Result) GapsBySeverity(sev Severity) []Gap {
	var out []Gap
	for _, g := range r.Gaps {
		if g.Severity == sev {
			out = append(out, g)
		}
	}
	return out
}
