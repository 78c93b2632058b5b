// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package audit

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/policy-auditor/pkg/types"
)

func testPipelineConfig(outputDir string) types.PipelineConfig {
	return types.PipelineConfig{
		Output: types.OutputConfig{OutputDir: outputDir},
	}
}

func writePolicy(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInferType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"policies/patch_management.txt", "Patch Management"},
		{"data_privacy.md", "Data Privacy"},
		{"isms.txt", "Isms"},
		{"Acceptable Use.md", "Acceptable Use"},
		{"évaluation_des_risques.md", "Évaluation Des Risques"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferType(tt.path), "InferType(%q)", tt.path)
	}
}

func TestReadPolicyRejectsUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	_, err := ReadPolicy(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestReadPolicyMissingFile(t *testing.T) {
	_, err := ReadPolicy(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestAuditPolicyWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results")
	path := writePolicy(t, dir, "patch_management.txt",
		"We scan for vulnerabilities monthly and patch critical systems.")

	err := AuditPolicy(context.Background(), nil, path, "Patch Management", testPipelineConfig(out), io.Discard)
	require.NoError(t, err)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "patch_management_gap_analysis.json")
	assert.Contains(t, names, "patch_management_summary_report.md")
}

func TestAuditBatchContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results")
	writePolicy(t, dir, "isms_policy.txt", "Our security policy covers governance and access control.")
	writePolicy(t, dir, "data_privacy.md", "Personal data is encrypted at rest and in transit.")
	// A dangling symlink stands in for an unreadable policy file.
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "broken_policy.txt")))

	var status strings.Builder
	result, err := AuditBatch(context.Background(), nil, dir, testPipelineConfig(out), &status)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Analyzed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total())
	assert.True(t, result.HasFailures())
	assert.Contains(t, status.String(), "failed:  broken_policy.txt")

	// The readable policies still produced artifacts.
	assert.FileExists(t, filepath.Join(out, "isms_policy_gap_analysis.json"))
	assert.FileExists(t, filepath.Join(out, "data_privacy_gap_analysis.json"))
}

func TestAuditBatchNoInput(t *testing.T) {
	dir := t.TempDir()

	_, err := AuditBatch(context.Background(), nil, dir, testPipelineConfig(dir), io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoInput), "want ErrNoInput, got %v", err)
}

func TestAuditBatchMissingDirectory(t *testing.T) {
	_, err := AuditBatch(context.Background(), nil, filepath.Join(t.TempDir(), "absent"), testPipelineConfig("out"), io.Discard)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoInput))
}

func TestDiscoverPoliciesFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writePolicy(t, dir, "b_policy.txt", "b")
	writePolicy(t, dir, "a_policy.md", "a")
	writePolicy(t, dir, "notes.pdf", "skip")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	paths, err := DiscoverPolicies(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a_policy.md"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b_policy.txt"), paths[1])
}
