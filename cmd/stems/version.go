package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwlunsford/stems"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stems",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stems version %s\n", strings.TrimSpace(stems.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
