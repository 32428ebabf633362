package main

import (
	"fmt"
	"os"

	"github.com/GMRZ11/avaliacao-imobiliaria/cmd/cli/estimate"
	"github.com/GMRZ11/avaliacao-imobiliaria/cmd/cli/regions"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddGroup(estimate.Group)
	rootCmd.AddCommand(estimate.Estimate)
	rootCmd.AddGroup(regions.Group)
	rootCmd.AddCommand(regions.List)
}

var rootCmd = &cobra.Command{
	Use:  "avaliacao-cli",
	Long: `Command line utilities for the property valuation questionnaire`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
