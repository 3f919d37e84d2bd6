package cmd

import (
	"github.com/oreops/haulstat/core"
	"github.com/oreops/haulstat/internal/contract"
	"github.com/spf13/cobra"
)

// productivityCmd computes the monthly productivity view.
var productivityCmd = &cobra.Command{
	Use:   "productivity [data-dir]",
	Short: "Monthly tonnage and mean daily tonnes-per-hour rate.",
	Long: `Compute the monthly productivity of the haulage operation.

For each day, the hauled mass in tonnes is divided by the number of
distinct hours with at least one cycle. The monthly rate is the mean of
those daily rates, not the monthly totals divided by monthly hours, so a
short high-intensity day weighs the same as a full one.

Each month also reports its total tonnage, operational hours, cycle count
and month-over-month growth percentages. The first month's growth is 0.

Examples:
  # Monthly productivity over all data
  haulstat productivity

  # Productivity for ore only
  haulstat productivity --input-types Minerio

  # Export to parquet for downstream analysis
  haulstat productivity --output parquet --output-file productivity.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProductivity(rootCtx, cfg, engine); err != nil {
			contract.LogFatal("Cannot compute productivity", err)
		}
	},
}
