// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the analysis artifacts for one policy: the gap
// analysis JSON, the revised policy, the improvement roadmap JSON, the
// human-readable summary, and a run-metadata sidecar.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/policy-auditor/pkg/types"
)

// Slug derives the artifact filename prefix from a policy type:
// lowercased, spaces replaced with underscores.
func Slug(policyType string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(policyType)), " ", "_")
}

// runMeta is the YAML sidecar recording what a run produced.
type runMeta struct {
	PolicyType string   `yaml:"policy_type"`
	AnalyzedAt string   `yaml:"analyzed_at"`
	WrittenAt  string   `yaml:"written_at"`
	Functions  []string `yaml:"functions_analyzed"`
	TotalGaps  int      `yaml:"total_gaps"`
	Artifacts  []string `yaml:"artifacts"`
}

// Write saves all artifacts for one analyzed policy into outputDir,
// creating it if needed. A failed artifact write is reported to w and the
// remaining artifacts are still attempted; the aggregate error is returned
// so the caller can surface the partial result set.
func Write(outputDir string, result types.Result, revisedPolicy string, rm types.Roadmap, w io.Writer) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	slug := Slug(result.PolicyType)

	gapsJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding gap analysis: %w", err)
	}
	roadmapJSON, err := json.MarshalIndent(rm, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding roadmap: %w", err)
	}

	artifacts := []struct {
		name string
		data []byte
	}{
		{slug + "_gap_analysis.json", gapsJSON},
		{slug + "_revised_policy.md", []byte(revisedPolicy)},
		{slug + "_improvement_roadmap.json", roadmapJSON},
		{slug + "_summary_report.md", []byte(Summary(result, rm))},
	}

	var writeErrs []error
	var written []string
	for _, a := range artifacts {
		path := filepath.Join(outputDir, a.name)
		if err := os.WriteFile(path, a.data, 0o644); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", a.name, err)
			writeErrs = append(writeErrs, fmt.Errorf("writing %s: %w", a.name, err))
			continue
		}
		fmt.Fprintf(w, "saved: %s\n", path)
		written = append(written, a.name)
	}

	meta := runMeta{
		PolicyType: result.PolicyType,
		AnalyzedAt: result.AnalyzedAt,
		WrittenAt:  time.Now().UTC().Format(time.RFC3339),
		Functions:  result.FunctionsAnalyzed,
		TotalGaps:  result.TotalGaps(),
		Artifacts:  written,
	}
	metaData, err := yaml.Marshal(meta)
	if err != nil {
		writeErrs = append(writeErrs, fmt.Errorf("encoding run metadata: %w", err))
	} else {
		metaName := slug + "_run.yaml"
		if err := os.WriteFile(filepath.Join(outputDir, metaName), metaData, 0o644); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", metaName, err)
			writeErrs = append(writeErrs, fmt.Errorf("writing %s: %w", metaName, err))
		}
	}

	return errors.Join(writeErrs...)
}
