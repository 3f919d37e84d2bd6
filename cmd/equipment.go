package cmd

import (
	"github.com/oreops/haulstat/core"
	"github.com/oreops/haulstat/internal/contract"
	"github.com/spf13/cobra"
)

// equipmentCmd computes the per-equipment daily productivity view.
var equipmentCmd = &cobra.Command{
	Use:   "equipment [data-dir]",
	Short: "Per-loading-equipment daily tonnage, hours and rates.",
	Long: `Compute the daily productivity of each loading equipment.

For every equipment tag and day, reports the hauled tonnage, the number of
distinct operating hours, the cycle count and the derived tonnes-per-hour
and cycles-per-hour rates. Cycles without a measured mass or with a
placeholder equipment tag are excluded.

Examples:
  # Daily productivity for every equipment
  haulstat equipment

  # One excavator over a single week
  haulstat equipment --loading-tags EX-041 --start 2024-03-04 --end 2024-03-10`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEquipmentDaily(rootCtx, cfg, engine); err != nil {
			contract.LogFatal("Cannot compute equipment productivity", err)
		}
	},
}
