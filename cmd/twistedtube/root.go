package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twistedtube",
	Short: "Twisted tube cross-section geometry calculator",
	Long: `twistedtube - geometry of lobed tubes on a helical sweep

Computes the cross-section geometry of twisted tubes: tubes with a
star-shaped (lobed) profile that follows a helical path along the axis,
as used in twisted-tube heat exchangers.

Given outer diameter, lobe count, lobe depth and spiral pitch the tool
reports:
  - cross-sectional area and wetted perimeter (numerical integration)
  - equivalent (hydraulic) diameter
  - inner (valley) diameter and derived radii
  - helical path length factor at the outer radius

Use 'twistedtube --help' to see available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
