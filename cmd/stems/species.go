package main

import (
	"github.com/spf13/cobra"

	"github.com/jwlunsford/stems/internal/cli"
)

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List species the coefficient source covers",
	Long:  `Lists every species the active coefficient source can resolve, one per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		runOrDie(cli.RunSpecies(gatherOptions(cmd)))
	},
}

func init() {
	rootCmd.AddCommand(speciesCmd)
}
