// Package main provides the entry point for the congestionscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for congestionscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "congestionscan",
		Short: "Find historical interdomain congestion between network pairs",
		Long: `congestionscan detects historical instances of interdomain congestion
between a set of network operators (near networks) and peer ASNs
(far networks), using the MANIC measurement API.

The lookback period is decomposed into 30-day query windows (the API's
range limit). Every detected congestion event is written to a spreadsheet
report together with two MANIC visualization links: a day-granularity view
anchored on the event day and a month-granularity view centered on it.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewFindCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
