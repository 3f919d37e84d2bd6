// Package cmd defines the command-line interface for haulstat.
package cmd

import (
	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(cyclesCmd)
	rootCmd.AddCommand(productionCmd)
	rootCmd.AddCommand(productivityCmd)
	rootCmd.AddCommand(equipmentCmd)
	rootCmd.AddCommand(valuesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cycles subcommands to the parent cycles command
	cyclesCmd.AddCommand(cyclesInputsCmd)

	// Add the production subcommands to the parent production command
	productionCmd.AddCommand(productionActivityCmd)
	productionCmd.AddCommand(productionMaterialCmd)
	productionCmd.AddCommand(productionSpecCmd)
	productionCmd.AddCommand(productionTransportFleetCmd)
	productionCmd.AddCommand(productionLoadingFleetCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("start", "", "Inclusive start of the date range (e.g. 2024-01-01)")
	rootCmd.PersistentFlags().String("end", "", "Inclusive end of the date range")
	rootCmd.PersistentFlags().String("input-types", "", "Comma-separated input types to include")
	rootCmd.PersistentFlags().String("transport-fleets", "", "Comma-separated transport fleets to include")
	rootCmd.PersistentFlags().String("loading-fleets", "", "Comma-separated loading fleets to include")
	rootCmd.PersistentFlags().String("loading-tags", "", "Comma-separated loading equipment tags to include")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
