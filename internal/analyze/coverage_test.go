// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"testing"

	"github.com/pdiddy/policy-auditor/pkg/types"
)

func TestCheckCoverageBoundary(t *testing.T) {
	doc := NormalizeDocument("alpha bravo charlie")

	tests := []struct {
		name          string
		keywords      []string
		wantRatio     float64
		wantAddressed bool
	}{
		{
			name:          "exactly at threshold is addressed",
			keywords:      []string{"alpha", "bravo", "charlie", "delta", "echo"},
			wantRatio:     0.6,
			wantAddressed: true,
		},
		{
			name:          "below threshold is not addressed",
			keywords:      []string{"alpha", "bravo", "delta", "echo", "foxtrot"},
			wantRatio:     0.4,
			wantAddressed: false,
		},
		{
			name:          "full coverage",
			keywords:      []string{"alpha", "bravo", "charlie"},
			wantRatio:     1.0,
			wantAddressed: true,
		},
		{
			name:          "no coverage",
			keywords:      []string{"delta", "echo"},
			wantRatio:     0,
			wantAddressed: false,
		},
		{
			name:          "three of ten is not addressed",
			keywords:      []string{"alpha", "bravo", "charlie", "d1", "d2", "d3", "d4", "d5", "d6", "d7"},
			wantRatio:     0.3,
			wantAddressed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cov := checkCoverage(doc, tt.keywords, types.DefaultCoverageThreshold)
			if cov.Ratio != tt.wantRatio {
				t.Errorf("Ratio = %v, want %v", cov.Ratio, tt.wantRatio)
			}
			if cov.Addressed != tt.wantAddressed {
				t.Errorf("Addressed = %v, want %v", cov.Addressed, tt.wantAddressed)
			}
			if cov.Ratio < 0 || cov.Ratio > 1 {
				t.Errorf("Ratio = %v, outside [0,1]", cov.Ratio)
			}
		})
	}
}

func TestCheckCoverageEmptyKeywordSet(t *testing.T) {
	doc := NormalizeDocument("any policy text at all")

	cov := checkCoverage(doc, nil, types.DefaultCoverageThreshold)
	if cov.Addressed {
		t.Error("empty keyword set must never be addressed")
	}
	if cov.Ratio != 0 {
		t.Errorf("Ratio = %v, want 0", cov.Ratio)
	}
}

func TestDocumentWholeWordMatching(t *testing.T) {
	doc := NormalizeDocument("We deploy the latest software releases.")

	if doc.Contains("test") {
		t.Error(`"test" must not match inside "latest"`)
	}
	if !doc.Contains("latest") {
		t.Error(`"latest" should match`)
	}
}

func TestNormalizeDocumentCollapsesWhitespace(t *testing.T) {
	doc := NormalizeDocument("Access\tControl\n\n  POLICY")
	if got, want := doc.Text(), "access control policy"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
