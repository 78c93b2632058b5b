// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package audit orchestrates analysis runs: read a policy document, detect
// gaps, build the roadmap, render the revision, and write the artifacts.
// Batch runs process documents strictly sequentially and continue past
// per-item failures.
package audit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/policy-auditor/internal/analyze"
	"github.com/pdiddy/policy-auditor/internal/report"
	"github.com/pdiddy/policy-auditor/internal/revise"
	"github.com/pdiddy/policy-auditor/internal/roadmap"
	"github.com/pdiddy/policy-auditor/pkg/types"
)

// ErrNoInput reports that no policy documents were found to analyze.
// Commands map it to a distinct exit status from write failures.
var ErrNoInput = errors.New("no policy documents found")

// BatchResult holds the outcome of a batch audit run.
type BatchResult struct {
	Analyzed int
	Failed   int
}

// Total returns the number of policies processed.
func (r BatchResult) Total() int {
	return r.Analyzed + r.Failed
}

// HasFailures reports whether any policy failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ReadPolicy loads a policy document. Only plain-text formats (.txt, .md)
// are supported.
func ReadPolicy(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md":
	default:
		return "", fmt.Errorf("unsupported file format %q for %s: use .txt or .md", ext, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading policy %s: %w", path, err)
	}
	return string(data), nil
}

// InferType derives a policy type label from a filename: the stem with
// underscores as spaces, title-cased ("patch_management.txt" becomes
// "Patch Management").
func InferType(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.FieldsFunc(stem, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// DiscoverPolicies lists the .txt and .md files in dir, sorted by name.
func DiscoverPolicies(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading policy directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".md":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// AuditPolicy runs the full pipeline for one policy document: analyze,
// build the roadmap, render the revision (template or generator with
// template fallback), and write all artifacts. Per-stage status goes to w.
func AuditPolicy(ctx context.Context, gen revise.Generator, path, policyType string, cfg types.PipelineConfig, w io.Writer) error {
	policyText, err := ReadPolicy(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "analyzing: %s (%s)\n", filepath.Base(path), policyType)

	analyzer := analyze.New(cfg.Analysis)
	result := analyzer.AnalyzeForType(policyText, policyType)
	fmt.Fprintf(w, "  gaps: %d (critical %d, high %d, medium %d, low %d)\n",
		result.TotalGaps(),
		result.SeveritySummary[types.SeverityCritical],
		result.SeveritySummary[types.SeverityHigh],
		result.SeveritySummary[types.SeverityMedium],
		result.SeveritySummary[types.SeverityLow])

	rm := roadmap.Build(result)
	revised := revise.Render(ctx, gen, policyText, result, cfg.Revise, w)

	if err := report.Write(cfg.Output.OutputDir, result, revised, rm, w); err != nil {
		return fmt.Errorf("writing artifacts for %s: %w", policyType, err)
	}
	return nil
}

// AuditBatch analyzes every policy document in dir, inferring each policy
// type from its filename. Documents are processed strictly sequentially;
// a failed document is reported to w and the batch continues.
func AuditBatch(ctx context.Context, gen revise.Generator, dir string, cfg types.PipelineConfig, w io.Writer) (BatchResult, error) {
	paths, err := DiscoverPolicies(dir)
	if err != nil {
		return BatchResult{}, err
	}
	if len(paths) == 0 {
		return BatchResult{}, fmt.Errorf("%w in %s", ErrNoInput, dir)
	}

	var result BatchResult
	for _, path := range paths {
		if err := AuditPolicy(ctx, gen, path, InferType(path), cfg, w); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(path), err)
			result.Failed++
			continue
		}
		result.Analyzed++
	}

	fmt.Fprintf(w, "\nBatch summary: %d analyzed, %d failed (total: %d)\n",
		result.Analyzed, result.Failed, result.Total())
	return result, nil
}
