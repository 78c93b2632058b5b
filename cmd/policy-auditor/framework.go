// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/policy-auditor/internal/framework"
)

var frameworkCmd = &cobra.Command{
	Use:   "framework",
	Short: "Print the reference framework catalog",
	Long: `Framework prints the NIST CSF functions, categories, and requirement
counts the analyzer checks policies against. With --type it shows only the
functions relevant to that policy type.`,
	RunE: runFramework,
}

func init() {
	frameworkCmd.Flags().String("type", "", "show only functions relevant to this policy type")

	rootCmd.AddCommand(frameworkCmd)
}

func runFramework(cmd *cobra.Command, args []string) error {
	policyType, _ := cmd.Flags().GetString("type")

	funcs := framework.Catalog()
	if policyType != "" {
		funcs = framework.Relevant(policyType)
		fmt.Fprintf(os.Stdout, "Functions relevant to %q:\n\n", policyType)
	}

	for _, fn := range funcs {
		fmt.Fprintf(os.Stdout, "%s — %s\n", fn.Name, fn.Description)
		for _, cat := range fn.Categories {
			fmt.Fprintf(os.Stdout, "  %-6s %s (%d requirements)\n", cat.Code, cat.Name, len(cat.Requirements))
		}
		fmt.Fprintln(os.Stdout)
	}

	fmt.Fprintf(os.Stdout, "Total: %d functions, %d requirements\n",
		len(funcs), framework.RequirementCount(funcs))
	return nil
}
