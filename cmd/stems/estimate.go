package main

import (
	"github.com/spf13/cobra"

	"github.com/jwlunsford/stems/internal/cli"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a single stem quantity",
	Long:  `Estimates one quantity for the tree described by --region, --species, --dbh, --height and --bark.`,
}

var diameterCmd = &cobra.Command{
	Use:   "diameter",
	Short: "Predict the stem diameter at a height",
	Long:  `Predicts the stem diameter in inches at --at feet above ground.`,
	Run: func(cmd *cobra.Command, args []string) {
		at, _ := cmd.Flags().GetFloat64("at")
		runOrDie(cli.RunEstimate(gatherOptions(cmd), cli.Estimate{Kind: "diameter", At: at}))
	},
}

var heightCmd = &cobra.Command{
	Use:   "height",
	Short: "Predict the height to a top diameter",
	Long:  `Predicts the height in feet at which the stem tapers to --at inches.`,
	Run: func(cmd *cobra.Command, args []string) {
		at, _ := cmd.Flags().GetFloat64("at")
		runOrDie(cli.RunEstimate(gatherOptions(cmd), cli.Estimate{Kind: "height", At: at}))
	},
}

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Predict the volume between two heights",
	Long:  `Predicts the cubic-foot volume of the stem between --lower and --upper feet.`,
	Run: func(cmd *cobra.Command, args []string) {
		lower, _ := cmd.Flags().GetFloat64("lower")
		upper, _ := cmd.Flags().GetFloat64("upper")
		runOrDie(cli.RunEstimate(gatherOptions(cmd), cli.Estimate{Kind: "volume", Lower: lower, Upper: upper}))
	},
}

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Predict the green weight between two heights",
	Long:  `Predicts the green weight in tons of the stem between --lower and --upper feet.`,
	Run: func(cmd *cobra.Command, args []string) {
		lower, _ := cmd.Flags().GetFloat64("lower")
		upper, _ := cmd.Flags().GetFloat64("upper")
		runOrDie(cli.RunEstimate(gatherOptions(cmd), cli.Estimate{Kind: "weight", Lower: lower, Upper: upper}))
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.AddCommand(diameterCmd, heightCmd, volumeCmd, weightCmd)

	diameterCmd.Flags().Float64("at", 0, "Height above ground, feet")
	_ = diameterCmd.MarkFlagRequired("at")

	heightCmd.Flags().Float64("at", 0, "Top diameter, inches")
	_ = heightCmd.MarkFlagRequired("at")

	for _, c := range []*cobra.Command{volumeCmd, weightCmd} {
		c.Flags().Float64("lower", 0, "Lower height, feet")
		c.Flags().Float64("upper", 0, "Upper height, feet")
		_ = c.MarkFlagRequired("lower")
		_ = c.MarkFlagRequired("upper")
	}
}
