// Package cmd provides the CLI commands for cropscope.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cropscope/internal/logging"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cropscope",
	Short: "Bias-adjusted land-cover area estimation",
	Long: `cropscope computes bias-adjusted cropland area estimates from
stratified accuracy-assessment samples, following the Olofsson et al. (2014)
design-based estimator.

It corrects systematically biased classifier area totals using per-stratum
commission and omission error rates, propagates sampling uncertainty, and
combines independently estimated subregions into national totals across a
multi-year time series.

Examples:
  cropscope adjust --config study.hcl
  cropscope adjust --config study.hcl --format json --output results.json
  cropscope config init`,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	_ = logging.Initialize(cfg)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cropscope version 0.1.0")
	},
}
