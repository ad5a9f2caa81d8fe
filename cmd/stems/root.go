package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwlunsford/stems"
	"github.com/jwlunsford/stems/internal/cli"
	"github.com/jwlunsford/stems/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "stems",
	Short: "stems estimates tree stem taper profiles",
	Long: `stems predicts stem diameters, merchantable heights, volumes and green
weights for southern tree species from the Clark segmented profile equations.

Coefficients come from the built-in published table by default; point
--coefficients at a YAML document or --dsn at a Postgres database to use
your own.`,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(stems.Version)
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("region", "deep south", "Coefficient table region")
	rootCmd.PersistentFlags().String("species", "", "Tree species, e.g. 'loblolly pine'")
	rootCmd.PersistentFlags().Float64("dbh", 0, "Diameter at breast height, inches outside bark")
	rootCmd.PersistentFlags().Float64("height", 0, "Total stem height, feet")
	rootCmd.PersistentFlags().String("bark", "inside", "Equation basis: inside or outside bark")
	rootCmd.PersistentFlags().String("coefficients", "", "Path to a YAML/JSON coefficient document")
	rootCmd.PersistentFlags().String("dsn", getenv("STEMS_PG_DSN", ""), "Postgres coefficient database DSN")
	rootCmd.PersistentFlags().String("redis", getenv("STEMS_REDIS_ADDR", ""), "Redis address for lookup caching")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
}

// gatherOptions collects the persistent flag values for the cli layer.
func gatherOptions(cmd *cobra.Command) cli.RunOptions {
	region, _ := cmd.Flags().GetString("region")
	species, _ := cmd.Flags().GetString("species")
	dbh, _ := cmd.Flags().GetFloat64("dbh")
	height, _ := cmd.Flags().GetFloat64("height")
	bark, _ := cmd.Flags().GetString("bark")
	coefficients, _ := cmd.Flags().GetString("coefficients")
	dsn, _ := cmd.Flags().GetString("dsn")
	redisAddr, _ := cmd.Flags().GetString("redis")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return cli.RunOptions{
		Region:           region,
		Species:          species,
		DBH:              dbh,
		Height:           height,
		Bark:             bark,
		CoefficientsPath: coefficients,
		DSN:              dsn,
		RedisAddr:        redisAddr,
		Verbose:          verbose,
	}
}

// runOrDie reports a command failure on stderr and exits non-zero.
func runOrDie(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
