// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package revise produces the revised policy document: the original text
// plus recommended additions, rendered either from a deterministic template
// or by an external text-generation collaborator with template fallback.
package revise

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/policy-auditor/pkg/types"
)

// Generator produces prose for a list of already-decided gaps. It is the
// only seam to the external text-generation collaborator; the analysis
// core never depends on a concrete transport. Implementations must honor
// ctx cancellation.
type Generator interface {
	// Name identifies the generator for status output.
	Name() string

	// Generate renders policy additions for the gaps, given a bounded
	// excerpt of the original policy. Failures are CollaboratorErrors.
	Generate(ctx context.Context, excerpt string, gaps []types.Gap) (string, error)
}

// CollaboratorError reports a failure of the external text generator.
// Callers recover from it by falling back to the template renderer.
type CollaboratorError struct {
	Generator string
	Err       error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator %s: %v", e.Generator, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// sortedBySeverity returns the gaps ordered most urgent first, preserving
// the original order within a severity.
func sortedBySeverity(gaps []types.Gap) []types.Gap {
	out := make([]types.Gap, len(gaps))
	copy(out, gaps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})
	return out
}

// formatGapsForPrompt renders the top gaps as a numbered list for a
// generation prompt.
func formatGapsForPrompt(gaps []types.Gap, max int) string {
	ranked := sortedBySeverity(gaps)
	if max > 0 && len(ranked) > max {
		ranked = ranked[:max]
	}

	var b strings.Builder
	for i, g := range ranked {
		fmt.Fprintf(&b, "%d. [%s] %s (%s): %s\n",
			i+1, strings.ToUpper(string(g.Severity)), g.Category, g.CategoryCode, g.Requirement)
	}
	return b.String()
}

// buildPrompt assembles the generation prompt from a policy excerpt and a
// formatted gap list.
func buildPrompt(excerpt, gapList string) string {
	return fmt.Sprintf(`You are a cybersecurity policy expert. Your task is to revise an organizational policy to address identified gaps based on the NIST Cybersecurity Framework.

ORIGINAL POLICY:
%s... [truncated]

IDENTIFIED GAPS:
%s
TASK:
Generate ONLY the missing sections that need to be added to the policy to address the critical and high-severity gaps. Format each section with:
1. Section title
2. Clear policy statements
3. Specific requirements

Focus on the top 5 most critical gaps. Be concise and specific.

REVISED POLICY SECTIONS:`, excerpt, gapList)
}
