package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of twistedtube",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("twistedtube v%s\n", Version)
		fmt.Println("Twisted tube cross-section geometry calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
