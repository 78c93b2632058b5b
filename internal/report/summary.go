// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"strings"

	"github.com/pdiddy/policy-auditor/pkg/types"
)

// topGapCount caps the gaps listed in the summary digest.
const topGapCount = 10

// Summary renders the human-readable digest: severity counts, functions
// analyzed, top gaps by severity, and the roadmap outline.
func Summary(result types.Result, rm types.Roadmap) string {
	var b strings.Builder

	b.WriteString("# Policy Gap Analysis Report\n")
	fmt.Fprintf(&b, "\n**Policy Type:** %s\n", result.PolicyType)
	fmt.Fprintf(&b, "**Analysis Date:** %s\n", result.AnalyzedAt)
	b.WriteString("**Analysis Framework:** NIST Cybersecurity Framework (CIS MS-ISAC 2024)\n")

	b.WriteString("\n## Executive Summary\n\n")
	fmt.Fprintf(&b, "Total Gaps Identified: **%d**\n\n", result.TotalGaps())
	for _, sev := range types.Severities {
		fmt.Fprintf(&b, "- %s: %d\n", titleCase(string(sev)), result.SeveritySummary[sev])
	}

	b.WriteString("\n## Functions Analyzed\n\n")
	for _, fn := range result.FunctionsAnalyzed {
		fmt.Fprintf(&b, "- %s\n", fn)
	}

	fmt.Fprintf(&b, "\n## Top %d Gaps\n", topGapCount)
	n := 0
	for _, sev := range types.Severities {
		for _, g := range result.GapsBySeverity(sev) {
			if n == topGapCount {
				break
			}
			n++
			fmt.Fprintf(&b, "\n### %d. [%s] %s (%s)\n", n, strings.ToUpper(string(g.Severity)), g.Category, g.CategoryCode)
			fmt.Fprintf(&b, "**Requirement:** %s\n", g.Requirement)
			fmt.Fprintf(&b, "**Recommendation:** %s\n", g.Recommendation)
		}
	}

	b.WriteString("\n## Improvement Roadmap\n")
	for _, phase := range rm.Phases {
		fmt.Fprintf(&b, "\n### Phase %d: %s Priority (%s)\n", phase.Number, phase.Priority, phase.Timeline)
		fmt.Fprintf(&b, "**Focus:** %s\n", phase.Focus)
		fmt.Fprintf(&b, "**Key Actions:** %d items\n", len(phase.Actions))
	}

	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
