// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roadmap buckets identified gaps into a fixed four-phase
// improvement plan.
package roadmap

import "github.com/pdiddy/policy-auditor/pkg/types"

// phaseDefs fixes the shape of the roadmap: one phase per severity, in
// severity order. All four phases are emitted even when empty; downstream
// consumers depend on the fixed shape.
var phaseDefs = []struct {
	severity types.Severity
	timeline string
	priority string
	focus    string
}{
	{types.SeverityCritical, "0-3 months", "Critical", "Address critical security gaps"},
	{types.SeverityHigh, "3-6 months", "High", "Strengthen security controls"},
	{types.SeverityMedium, "6-12 months", "Medium", "Enhance organizational maturity"},
	{types.SeverityLow, "12+ months", "Low", "Achieve comprehensive coverage"},
}

// Build derives the improvement roadmap from an analysis result. Every gap
// lands in exactly one phase, chosen solely by its severity; phase order
// and labels are fixed.
func Build(result types.Result) types.Roadmap {
	rm := types.Roadmap{
		Overview: types.Overview{
			TotalGaps: result.TotalGaps(),
			Critical:  result.SeveritySummary[types.SeverityCritical],
			High:      result.SeveritySummary[types.SeverityHigh],
			Medium:    result.SeveritySummary[types.SeverityMedium],
			Low:       result.SeveritySummary[types.SeverityLow],
		},
		Phases: make([]types.Phase, 0, len(phaseDefs)),
	}

	for i, def := range phaseDefs {
		phase := types.Phase{
			Number:   i + 1,
			Timeline: def.timeline,
			Priority: def.priority,
			Focus:    def.focus,
			Actions:  []types.Action{},
		}
		for _, gap := range result.GapsBySeverity(def.severity) {
			phase.Actions = append(phase.Actions, types.Action{
				Requirement:    gap.Requirement,
				Category:       gap.Category + " (" + gap.CategoryCode + ")",
				Recommendation: gap.Recommendation,
			})
		}
		rm.Phases = append(rm.Phases, phase)
	}

	return rm
}
