// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/policy-auditor/internal/roadmap"
	"github.com/pdiddy/policy-auditor/pkg/types"
)

func sampleResult() types.Result {
	return types.Result{
		PolicyType:        "Patch Management",
		AnalyzedAt:        "2026-02-01T10:00:00Z",
		FunctionsAnalyzed: []string{"IDENTIFY", "PROTECT", "DETECT"},
		Gaps: []types.Gap{
			{
				Function: "PROTECT", Category: "Data Security", CategoryCode: "PR.DS",
				Requirement: "Data-at-rest protected", Severity: types.SeverityCritical,
				Coverage:       types.CoverageNotAddressed,
				Recommendation: "Implement controls and procedures to address: Data-at-rest protected",
			},
		},
		SeveritySummary: map[types.Severity]int{
			types.SeverityCritical: 1, types.SeverityHigh: 0,
			types.SeverityMedium: 0, types.SeverityLow: 0,
		},
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "patch_management", Slug("Patch Management"))
	assert.Equal(t, "isms", Slug(" ISMS "))
	assert.Equal(t, "general_security", Slug("General Security"))
}

func TestWriteProducesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	result := sampleResult()
	rm := roadmap.Build(result)

	err := Write(dir, result, "revised policy body", rm, io.Discard)
	require.NoError(t, err)

	for _, name := range []string{
		"patch_management_gap_analysis.json",
		"patch_management_revised_policy.md",
		"patch_management_improvement_roadmap.json",
		"patch_management_summary_report.md",
		"patch_management_run.yaml",
	} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, "missing artifact %s", name)
	}

	// The gap analysis round-trips with all four severities present.
	data, err := os.ReadFile(filepath.Join(dir, "patch_management_gap_analysis.json"))
	require.NoError(t, err)
	var decoded types.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.SeveritySummary, 4)
	assert.Equal(t, result.Gaps, decoded.Gaps)

	revised, err := os.ReadFile(filepath.Join(dir, "patch_management_revised_policy.md"))
	require.NoError(t, err)
	assert.Equal(t, "revised policy body", string(revised))
}

func TestWriteCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	result := sampleResult()

	err := Write(dir, result, "body", roadmap.Build(result), io.Discard)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestWriteReportsOutputErrors(t *testing.T) {
	// A file in the way of the output directory makes every write fail.
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "occupied")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	result := sampleResult()
	err := Write(filepath.Join(blocker, "out"), result, "body", roadmap.Build(result), io.Discard)
	require.Error(t, err)
}

func TestSummaryContents(t *testing.T) {
	result := sampleResult()
	out := Summary(result, roadmap.Build(result))

	assert.Contains(t, out, "**Policy Type:** Patch Management")
	assert.Contains(t, out, "Total Gaps Identified: **1**")
	assert.Contains(t, out, "- Critical: 1")
	assert.Contains(t, out, "- IDENTIFY")
	assert.Contains(t, out, "[CRITICAL] Data Security (PR.DS)")
	assert.Contains(t, out, "### Phase 4: Low Priority (12+ months)")
}

func TestSummaryCapsTopGaps(t *testing.T) {
	result := sampleResult()
	result.Gaps = nil
	for i := 0; i < 15; i++ {
		result.Gaps = append(result.Gaps, types.Gap{
			Function: "PROTECT", Category: "Data Security", CategoryCode: "PR.DS",
			Requirement: "req", Severity: types.SeverityHigh,
			Recommendation: "rec",
		})
	}
	result.SeveritySummary[types.SeverityHigh] = 15

	out := Summary(result, roadmap.Build(result))
	assert.Equal(t, topGapCount, strings.Count(out, "**Requirement:**"))
}
