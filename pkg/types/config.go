// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Defaults for the analysis heuristics. The threshold and keyword tiers are
// fixed heuristics carried over from the reference methodology; they are
// exposed through config rather than re-tuned.
const (
	// DefaultCoverageThreshold is the keyword match ratio at or above which
	// a requirement counts as addressed.
	DefaultCoverageThreshold = 0.60

	// DefaultMinKeywordLength is the minimum token length for a word to
	// count as a requirement keyword. Shorter tokens are discarded.
	DefaultMinKeywordLength = 4
)

// AnalysisConfig holds tuning for gap detection and severity classification.
type AnalysisConfig struct {
	// CoverageThreshold is the keyword match ratio required for a
	// requirement to count as addressed (default 0.60).
	CoverageThreshold float64 `json:"coverage_threshold" yaml:"coverage_threshold"`

	// MinKeywordLength is the minimum keyword token length (default 4).
	MinKeywordLength int `json:"min_keyword_length" yaml:"min_keyword_length"`

	// StopWords overrides the built-in stop-word list when non-empty.
	StopWords []string `json:"stop_words,omitempty" yaml:"stop_words,omitempty"`

	// CriticalKeywords, HighKeywords, and MediumKeywords override the
	// built-in severity tiers when non-empty. Tiers are checked in that
	// order; anything unmatched is low.
	CriticalKeywords []string `json:"critical_keywords,omitempty" yaml:"critical_keywords,omitempty"`
	HighKeywords     []string `json:"high_keywords,omitempty" yaml:"high_keywords,omitempty"`
	MediumKeywords   []string `json:"medium_keywords,omitempty" yaml:"medium_keywords,omitempty"`
}

// AIConfig holds shared settings for the text-generation collaborator.
type AIConfig struct {
	// Model is the generator model identifier (e.g. "llama3.2:3b").
	Model string `json:"model" yaml:"model"`

	// Host is the base URL of the local generation service
	// (default "http://localhost:11434").
	Host string `json:"host" yaml:"host"`

	// Timeout bounds a single generation call (default 180s). The run
	// falls back to the template renderer when it expires.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ReviseConfig holds settings for the policy revision stage.
type ReviseConfig struct {
	AIConfig `yaml:",inline"`

	// UseGenerator enables the external text-generation path. The
	// template renderer is always the fallback.
	UseGenerator bool `json:"use_generator" yaml:"use_generator"`

	// ExcerptLimit caps the number of policy characters included in a
	// generation prompt (default 2000).
	ExcerptLimit int `json:"excerpt_limit" yaml:"excerpt_limit"`

	// MaxPromptGaps caps the number of gaps described in a generation
	// prompt, highest severity first (default 10).
	MaxPromptGaps int `json:"max_prompt_gaps" yaml:"max_prompt_gaps"`
}

// OutputConfig holds settings for report writing.
type OutputConfig struct {
	// OutputDir is the directory for analysis artifacts (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// PipelineConfig groups all stage configurations for one analysis run.
type PipelineConfig struct {
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Revise   ReviseConfig   `json:"revise" yaml:"revise"`
	Output   OutputConfig   `json:"output" yaml:"output"`
}
