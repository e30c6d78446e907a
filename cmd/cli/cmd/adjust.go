// Package cmd - adjust command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cropscope/core/engine"
	"cropscope/core/output"
	"cropscope/internal/config"
	"cropscope/internal/dataio"
	"cropscope/internal/logging"
)

var (
	cfgFile      string
	grossFile    string
	netFile      string
	outputFormat string
	outputFile   string
)

// adjustCmd represents the adjust command
var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Compute bias-adjusted area estimates",
	Long: `Run the full bias-correction workflow: load the study configuration
and input datasets, estimate adjusted areas per subregion, country and year
for both footprint types, and combine subregions into national totals.

Examples:
  cropscope adjust --config study.hcl
  cropscope adjust --config study.hcl --format json
  cropscope adjust --config study.hcl --output results.json`,
	Args: cobra.NoArgs,
	RunE: runAdjust,
}

func init() {
	adjustCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "study configuration file (HCL); defaults to the built-in North American study")
	adjustCmd.Flags().StringVar(&grossFile, "gross", "", "gross (cumulative) observed-area CSV, overrides the configured path")
	adjustCmd.Flags().StringVar(&netFile, "net", "", "net (annual) observed-area CSV, overrides the configured path")
	adjustCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
	adjustCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write results to a JSON file instead of stdout")
}

func runAdjust(cmd *cobra.Command, args []string) error {
	cfg, err := loadStudyConfig()
	if err != nil {
		return err
	}

	if grossFile == "" {
		grossFile = cfg.GrossFile
	}
	if netFile == "" {
		netFile = cfg.NetFile
	}

	gross, err := dataio.LoadObserved(grossFile)
	if err != nil {
		return err
	}
	net, err := dataio.LoadObserved(netFile)
	if err != nil {
		return err
	}

	regionA, err := subregionInput(cfg.RegionA())
	if err != nil {
		return err
	}
	regionB, err := subregionInput(cfg.RegionB())
	if err != nil {
		return err
	}

	orch := engine.New(regionA, regionB, cfg.CountryColumns, cfg.ExclusiveCountries, cfg.Years.Range())
	results, err := orch.Run(gross, net)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := dataio.SaveResults(outputFile, results); err != nil {
			return err
		}
		logging.Info("results written", zap.String("path", outputFile))
		return nil
	}

	formatter, err := output.New(output.Format(outputFormat))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, results)
}

func loadStudyConfig() (*config.Config, error) {
	if cfgFile == "" {
		logging.Info("no study file given, using built-in configuration")
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	logging.Info("study configuration loaded", zap.String("path", cfgFile))
	return cfg, nil
}

func subregionInput(sub *config.SubregionConfig) (engine.SubregionInput, error) {
	weights, err := sub.Weights()
	if err != nil {
		return engine.SubregionInput{}, err
	}
	samples, err := dataio.LoadAccuracy(sub.AccuracyFile)
	if err != nil {
		return engine.SubregionInput{}, err
	}
	return engine.SubregionInput{
		Name:         sub.Name,
		Samples:      samples,
		Weights:      weights,
		OverlapAreas: sub.OverlapAreas,
		EcoRegions:   sub.EcoRegions,
	}, nil
}

// configCmd manages the study configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the study configuration",
}

var configInitPath string

// configInitCmd writes the default study file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default study configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(configInitPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", configInitPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVarP(&configInitPath, "path", "p", "study.hcl", "where to write the study file")
	configCmd.AddCommand(configInitCmd)
}
