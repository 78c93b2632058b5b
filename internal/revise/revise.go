// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package revise

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/policy-auditor/pkg/types"
)

const (
	defaultExcerptLimit  = 2000
	defaultMaxPromptGaps = 10
)

// Template renders the revised policy deterministically: the original text
// followed by recommended additions grouped by framework function, in the
// order the functions were analyzed. Same inputs produce byte-identical
// output.
func Template(policyText string, result types.Result) string {
	var b strings.Builder
	b.WriteString(policyText)
	b.WriteString("\n\n## RECOMMENDED POLICY ADDITIONS\n\n")
	b.WriteString("*Generated based on NIST Cybersecurity Framework gap analysis*\n")

	for _, fn := range result.FunctionsAnalyzed {
		var fnGaps []types.Gap
		for _, g := range result.Gaps {
			if g.Function == fn {
				fnGaps = append(fnGaps, g)
			}
		}
		if len(fnGaps) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n### %s\n\n", fn)
		for _, g := range sortedBySeverity(fnGaps) {
			fmt.Fprintf(&b, "- **[%s]** %s\n", strings.ToUpper(string(g.Severity)), g.Requirement)
			fmt.Fprintf(&b, "  *%s*\n", g.Recommendation)
		}
	}

	return b.String()
}

// Render produces the revised policy. When gen is nil it uses the template
// path. Otherwise it asks the generator for additions, bounded by the
// config's excerpt and gap limits and the collaborator timeout; on any
// failure or empty response it logs a warning to w and falls back to the
// template path. The run never fails because the collaborator did.
func Render(ctx context.Context, gen Generator, policyText string, result types.Result, cfg types.ReviseConfig, w io.Writer) string {
	if gen == nil {
		return Template(policyText, result)
	}

	excerptLimit := cfg.ExcerptLimit
	if excerptLimit <= 0 {
		excerptLimit = defaultExcerptLimit
	}
	maxGaps := cfg.MaxPromptGaps
	if maxGaps <= 0 {
		maxGaps = defaultMaxPromptGaps
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	excerpt := policyText
	if len(excerpt) > excerptLimit {
		// Back off to a rune boundary so the prompt never carries a
		// split multi-byte character.
		cut := excerptLimit
		for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
			cut--
		}
		excerpt = excerpt[:cut]
	}

	generated, err := gen.Generate(ctx, excerpt, sortedBySeverity(result.Gaps)[:min(maxGaps, len(result.Gaps))])
	if err != nil {
		fmt.Fprintf(w, "warning: %s generation failed, using template revision: %v\n", gen.Name(), err)
		return Template(policyText, result)
	}
	if strings.TrimSpace(generated) == "" {
		fmt.Fprintf(w, "warning: %s returned empty output, using template revision\n", gen.Name())
		return Template(policyText, result)
	}

	return policyText + "\n\n## RECOMMENDED ADDITIONS\n\n" + generated
}
