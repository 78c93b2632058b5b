// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the policy-auditor CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/policy-auditor/internal/audit"
)

// Exit codes. No-input is distinguished from processing and write failures
// so callers can tell an empty directory from a broken run.
const (
	exitFailure = 1
	exitNoInput = 2
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the policy-auditor CLI.
var rootCmd = &cobra.Command{
	Use:   "policy-auditor",
	Short: "Gap analysis of security policies against the NIST CSF",
	Long: `policy-auditor compares organizational policy documents against the NIST
Cybersecurity Framework (CIS MS-ISAC 2024 policy template guide) to find
missing or under-addressed requirements.

Each run produces a gap analysis, a revised policy with recommended
additions, a phased improvement roadmap, and a summary report. Policy
revision text comes from a deterministic template, or optionally from a
local Ollama model with automatic template fallback.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./policy-auditor.yaml or ~/.config/policy-auditor/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("policy-auditor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "policy-auditor"))
		}
	}

	viper.SetEnvPrefix("POLICY_AUDITOR")
	viper.AutomaticEnv()

	viper.SetDefault("analysis.coverage_threshold", 0.60)
	viper.SetDefault("analysis.min_keyword_length", 4)
	viper.SetDefault("revise.use_generator", false)
	viper.SetDefault("revise.model", "llama3.2:3b")
	viper.SetDefault("revise.host", "http://localhost:11434")
	viper.SetDefault("revise.timeout", 180*time.Second)
	viper.SetDefault("revise.excerpt_limit", 2000)
	viper.SetDefault("revise.max_prompt_gaps", 10)
	viper.SetDefault("output.output_dir", "output")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, audit.ErrNoInput) {
			os.Exit(exitNoInput)
		}
		os.Exit(exitFailure)
	}
}
