// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"strings"

	"github.com/pdiddy/policy-auditor/pkg/types"
)

// SeverityTiers holds the ordered keyword lists used to classify a gap.
// Tiers are checked critical first; only the first matching tier applies,
// so a requirement matching both a critical and a medium keyword is
// critical. Anything unmatched is low.
type SeverityTiers struct {
	Critical []string
	High     []string
	Medium   []string
}

// DefaultTiers returns the built-in severity keyword lists.
func DefaultTiers() SeverityTiers {
	return SeverityTiers{
		Critical: []string{
			"password", "encryption", "access control", "authentication",
			"governance", "data protection", "backup",
		},
		High: []string{
			"risk", "incident", "vulnerability", "threat", "monitoring",
		},
		Medium: []string{
			"training", "awareness", "documentation", "testing",
		},
	}
}

// classifySeverity assigns exactly one severity to a requirement by
// first-match against the tiers. Tier keywords may be phrases; matching is
// case-insensitive substring search over the requirement text.
func classifySeverity(requirement string, tiers SeverityTiers) types.Severity {
	lowered := strings.ToLower(requirement)

	for _, tier := range []struct {
		keywords []string
		severity types.Severity
	}{
		{tiers.Critical, types.SeverityCritical},
		{tiers.High, types.SeverityHigh},
		{tiers.Medium, types.SeverityMedium},
	} {
		for _, kw := range tier.keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return tier.severity
			}
		}
	}
	return types.SeverityLow
}
