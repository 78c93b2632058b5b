// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"fmt"
	"time"

	"github.com/pdiddy/policy-auditor/internal/framework"
	"github.com/pdiddy/policy-auditor/pkg/types"
)

// Analyzer runs gap detection against a framework catalog. It holds the
// resolved analysis tuning so repeated runs in a batch share the same
// settings. Analyzer is read-only after construction.
type Analyzer struct {
	threshold float64
	minLen    int
	stop      map[string]bool
	tiers     SeverityTiers
}

// New builds an Analyzer from config, filling unset fields with defaults.
func New(cfg types.AnalysisConfig) *Analyzer {
	threshold := cfg.CoverageThreshold
	if threshold <= 0 {
		threshold = types.DefaultCoverageThreshold
	}

	minLen := cfg.MinKeywordLength
	if minLen <= 0 {
		minLen = types.DefaultMinKeywordLength
	}

	stopWords := cfg.StopWords
	if len(stopWords) == 0 {
		stopWords = DefaultStopWords
	}

	tiers := DefaultTiers()
	if len(cfg.CriticalKeywords) > 0 {
		tiers.Critical = cfg.CriticalKeywords
	}
	if len(cfg.HighKeywords) > 0 {
		tiers.High = cfg.HighKeywords
	}
	if len(cfg.MediumKeywords) > 0 {
		tiers.Medium = cfg.MediumKeywords
	}

	return &Analyzer{
		threshold: threshold,
		minLen:    minLen,
		stop:      stopWordSet(stopWords),
		tiers:     tiers,
	}
}

// Threshold returns the coverage threshold the analyzer applies.
func (a *Analyzer) Threshold() float64 {
	return a.threshold
}

// Analyze checks the policy text against every requirement of the given
// functions and returns the identified gaps. Gap order is deterministic:
// function order, then category order, then requirement order as they
// appear in the catalog. The severity summary always carries all four
// severities, zero-valued when absent.
func (a *Analyzer) Analyze(policyText, policyType string, funcs []framework.Function) types.Result {
	doc := NormalizeDocument(policyText)

	result := types.Result{
		PolicyType:        policyType,
		AnalyzedAt:        time.Now().UTC().Format(time.RFC3339),
		FunctionsAnalyzed: framework.Names(funcs),
		SeveritySummary:   emptySummary(),
	}

	for _, fn := range funcs {
		for _, cat := range fn.Categories {
			for _, req := range cat.Requirements {
				cov := checkCoverage(doc, keywords(req, a.minLen, a.stop), a.threshold)
				if cov.Addressed {
					continue
				}

				gap := types.Gap{
					Function:       fn.Name,
					Category:       cat.Name,
					CategoryCode:   cat.Code,
					Requirement:    req,
					Severity:       classifySeverity(req, a.tiers),
					Coverage:       coverageLabel(cov),
					Recommendation: Recommendation(req),
				}
				result.Gaps = append(result.Gaps, gap)
				result.SeveritySummary[gap.Severity]++
			}
		}
	}

	return result
}

// AnalyzeForType analyzes against the functions relevant to the policy type.
func (a *Analyzer) AnalyzeForType(policyText, policyType string) types.Result {
	return a.Analyze(policyText, policyType, framework.Relevant(policyType))
}

// Recommendation synthesizes the remediation text for a requirement.
func Recommendation(requirement string) string {
	return fmt.Sprintf("Implement controls and procedures to address: %s", requirement)
}

func coverageLabel(cov Coverage) string {
	if cov.Matched == 0 {
		return types.CoverageNotAddressed
	}
	return types.CoveragePartiallyAddressed
}

func emptySummary() map[types.Severity]int {
	summary := make(map[types.Severity]int, len(types.Severities))
	for _, sev := range types.Severities {
		summary[sev] = 0
	}
	return summary
}
