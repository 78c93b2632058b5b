// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/policy-auditor/internal/audit"
	"github.com/pdiddy/policy-auditor/internal/revise"
	"github.com/pdiddy/policy-auditor/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze policy documents for NIST CSF gaps",
	Long: `Analyze compares one policy file (--policy) or every .txt/.md file in a
directory (--policy-dir) against the framework catalog and writes four
artifacts per policy: gap analysis JSON, revised policy, improvement
roadmap JSON, and a summary report.

With --use-llm the revised policy's additions are generated by a local
Ollama model; when the daemon or model is unavailable the deterministic
template renderer is used instead.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("policy", "", "path to a policy document (.txt or .md)")
	analyzeCmd.Flags().String("policy-dir", "", "directory containing multiple policy documents")
	analyzeCmd.Flags().String("type", "General Security", "policy type (ISMS, Data Privacy, Patch Management, Risk Management)")
	analyzeCmd.Flags().String("output", "", "output directory for artifacts (default from config, \"output\")")
	analyzeCmd.Flags().Bool("use-llm", false, "generate revision text with a local Ollama model (config: revise.use_generator)")
	analyzeCmd.Flags().String("model", "", "Ollama model identifier (default from config, \"llama3.2:3b\")")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	policyPath, _ := cmd.Flags().GetString("policy")
	policyDir, _ := cmd.Flags().GetString("policy-dir")
	if policyPath == "" && policyDir == "" {
		return fmt.Errorf("either --policy or --policy-dir must be specified")
	}

	cfg := pipelineConfig(cmd)
	ctx := context.Background()

	var gen revise.Generator
	if cfg.Revise.UseGenerator {
		gen = newGenerator(ctx, cfg.Revise)
	}

	if policyPath != "" {
		policyType, _ := cmd.Flags().GetString("type")
		if err := audit.AuditPolicy(ctx, gen, policyPath, policyType, cfg, os.Stdout); err != nil {
			return err
		}
		return nil
	}

	result, err := audit.AuditBatch(ctx, gen, policyDir, cfg, os.Stdout)
	if err != nil {
		if errors.Is(err, audit.ErrNoInput) {
			return fmt.Errorf("nothing to analyze: %w", err)
		}
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d of %d policies failed", result.Failed, result.Total())
	}
	return nil
}

// newGenerator builds the Ollama generator and probes its availability.
// Any failure downgrades the run to the template renderer with a warning,
// never an error.
func newGenerator(ctx context.Context, cfg types.ReviseConfig) revise.Generator {
	gen, err := revise.NewOllamaGenerator(cfg.AIConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; falling back to template revision\n", err)
		return nil
	}
	if err := gen.Available(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; falling back to template revision\n", err)
		return nil
	}
	return gen
}

// pipelineConfig assembles the run configuration from viper (config file,
// env, defaults) with command flags taking precedence.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Analysis: types.AnalysisConfig{
			CoverageThreshold: viper.GetFloat64("analysis.coverage_threshold"),
			MinKeywordLength:  viper.GetInt("analysis.min_keyword_length"),
			StopWords:         viper.GetStringSlice("analysis.stop_words"),
			CriticalKeywords:  viper.GetStringSlice("analysis.critical_keywords"),
			HighKeywords:      viper.GetStringSlice("analysis.high_keywords"),
			MediumKeywords:    viper.GetStringSlice("analysis.medium_keywords"),
		},
		Revise: types.ReviseConfig{
			AIConfig: types.AIConfig{
				Model:   viper.GetString("revise.model"),
				Host:    viper.GetString("revise.host"),
				Timeout: viper.GetDuration("revise.timeout"),
			},
			UseGenerator:  viper.GetBool("revise.use_generator"),
			ExcerptLimit:  viper.GetInt("revise.excerpt_limit"),
			MaxPromptGaps: viper.GetInt("revise.max_prompt_gaps"),
		},
		Output: types.OutputConfig{
			OutputDir: viper.GetString("output.output_dir"),
		},
	}

	if useLLM, _ := cmd.Flags().GetBool("use-llm"); useLLM {
		cfg.Revise.UseGenerator = true
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Revise.Model = model
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Output.OutputDir = out
	}
	return cfg
}
