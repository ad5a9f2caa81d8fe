package main

import (
	"github.com/spf13/cobra"

	"github.com/jwlunsford/stems/internal/cli"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the whole-stem taper table",
	Long: `Tabulates predicted diameter and cumulative volume from the ground to the
tip. Output is a markdown table, rendered when stdout is a terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		step, _ := cmd.Flags().GetFloat64("step")
		runOrDie(cli.RunProfile(gatherOptions(cmd), step))
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().Float64("step", 5, "Height increment between rows, feet")
}
