// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roadmap

import (
	"testing"

	"github.com/pdiddy/policy-auditor/pkg/types"
)

func gap(sev types.Severity, requirement string) types.Gap {
	return types.Gap{
		Function:       "PROTECT",
		Category:       "Data Security",
		CategoryCode:   "PR.DS",
		Requirement:    requirement,
		Severity:       sev,
		Coverage:       types.CoverageNotAddressed,
		Recommendation: "Implement controls and procedures to address: " + requirement,
	}
}

func resultWith(gaps ...types.Gap) types.Result {
	r := types.Result{
		PolicyType:      "Test",
		Gaps:            gaps,
		SeveritySummary: map[types.Severity]int{},
	}
	for _, sev := range types.Severities {
		r.SeveritySummary[sev] = 0
	}
	for _, g := range gaps {
		r.SeveritySummary[g.Severity]++
	}
	return r
}

func TestBuildAlwaysEmitsFourPhases(t *testing.T) {
	rm := Build(resultWith())

	if len(rm.Phases) != 4 {
		t.Fatalf("got %d phases, want 4", len(rm.Phases))
	}
	for i, phase := range rm.Phases {
		if phase.Number != i+1 {
			t.Errorf("phase %d has number %d", i, phase.Number)
		}
		if phase.Actions == nil {
			t.Errorf("phase %d actions is nil, want empty list", phase.Number)
		}
		if len(phase.Actions) != 0 {
			t.Errorf("phase %d has %d actions for a zero-gap result", phase.Number, len(phase.Actions))
		}
	}
	if rm.Overview.TotalGaps != 0 {
		t.Errorf("TotalGaps = %d, want 0", rm.Overview.TotalGaps)
	}
}

func TestBuildPhaseLabels(t *testing.T) {
	rm := Build(resultWith())

	want := []struct {
		timeline string
		priority string
	}{
		{"0-3 months", "Critical"},
		{"3-6 months", "High"},
		{"6-12 months", "Medium"},
		{"12+ months", "Low"},
	}
	for i, w := range want {
		if rm.Phases[i].Timeline != w.timeline {
			t.Errorf("phase %d timeline = %q, want %q", i+1, rm.Phases[i].Timeline, w.timeline)
		}
		if rm.Phases[i].Priority != w.priority {
			t.Errorf("phase %d priority = %q, want %q", i+1, rm.Phases[i].Priority, w.priority)
		}
	}
}

func TestBuildEveryGapInExactlyOnePhase(t *testing.T) {
	result := resultWith(
		gap(types.SeverityLow, "low one"),
		gap(types.SeverityCritical, "crit one"),
		gap(types.SeverityMedium, "med one"),
		gap(types.SeverityCritical, "crit two"),
		gap(types.SeverityHigh, "high one"),
	)

	rm := Build(result)

	total := 0
	seen := map[string]int{}
	for _, phase := range rm.Phases {
		total += len(phase.Actions)
		for _, a := range phase.Actions {
			seen[a.Requirement]++
		}
	}
	if total != result.TotalGaps() {
		t.Errorf("actions total = %d, want %d", total, result.TotalGaps())
	}
	for req, n := range seen {
		if n != 1 {
			t.Errorf("requirement %q appears in %d phases", req, n)
		}
	}

	// Bucket assignment follows severity, with in-bucket order preserved.
	if got := len(rm.Phases[0].Actions); got != 2 {
		t.Errorf("critical phase has %d actions, want 2", got)
	}
	if rm.Phases[0].Actions[0].Requirement != "crit one" {
		t.Errorf("critical phase order wrong: %q first", rm.Phases[0].Actions[0].Requirement)
	}
	if rm.Phases[3].Actions[0].Requirement != "low one" {
		t.Errorf("low phase = %q, want \"low one\"", rm.Phases[3].Actions[0].Requirement)
	}

	if rm.Overview.Critical != 2 || rm.Overview.High != 1 || rm.Overview.Medium != 1 || rm.Overview.Low != 1 {
		t.Errorf("overview counts wrong: %+v", rm.Overview)
	}
}

func TestBuildActionCarriesRecommendation(t *testing.T) {
	rm := Build(resultWith(gap(types.SeverityHigh, "Incidents contained")))

	a := rm.Phases[1].Actions[0]
	if a.Recommendation != "Implement controls and procedures to address: Incidents contained" {
		t.Errorf("recommendation = %q", a.Recommendation)
	}
	if a.Category != "Data Security (PR.DS)" {
		t.Errorf("category = %q", a.Category)
	}
}
