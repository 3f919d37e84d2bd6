package cmd

import (
	"github.com/oreops/haulstat/core"
	"github.com/oreops/haulstat/internal/contract"
	"github.com/spf13/cobra"
)

// cyclesCmd counts haulage cycles per calendar month.
var cyclesCmd = &cobra.Command{
	Use:   "cycles [data-dir]",
	Short: "Count haulage cycles per calendar month.",
	Long: `Count the haulage cycles found in the source exports, grouped by the
calendar month of their start timestamp.

Rows without a parseable start timestamp are excluded. Months appear in
chronological order.

Examples:
  # Count all cycles by month
  haulstat cycles

  # Count cycles within a date range
  haulstat cycles --start 2024-01-01 --end 2024-06-30

  # Export counts to CSV
  haulstat cycles --output csv --output-file cycles.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCyclesByMonth(rootCtx, cfg, engine); err != nil {
			contract.LogFatal("Cannot count cycles", err)
		}
	},
}

// cyclesInputsCmd splits the monthly cycle counts by input type.
var cyclesInputsCmd = &cobra.Command{
	Use:   "inputs [data-dir]",
	Short: "Count haulage cycles per month and input type.",
	Long: `Count the haulage cycles per calendar month, split by the input type
of each cycle. Cycles without an input type are excluded.

Examples:
  # Count cycles by month and input type
  haulstat cycles inputs

  # Restrict to selected input types
  haulstat cycles inputs --input-types Minerio,Esteril`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCyclesByInputType(rootCtx, cfg, engine); err != nil {
			contract.LogFatal("Cannot count cycles by input type", err)
		}
	},
}
