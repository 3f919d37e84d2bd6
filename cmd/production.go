package cmd

import (
	"github.com/oreops/haulstat/core"
	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"
	"github.com/spf13/cobra"
)

// productionCmd groups the per-dimension production views.
var productionCmd = &cobra.Command{
	Use:   "production",
	Short: "Sum hauled mass per month along a dimension.",
	Long: `Sum the hauled mass per calendar month along a chosen dimension.

Each view keeps the dimension's top categories by overall mass and
consolidates everything else under "Outros", matching the legends of the
original dashboard. Only cycles with a measured mass and an input type
contribute.

Subcommands:
  activity        - group by activity type (top 2)
  material        - group by material (top 3)
  spec            - group by material specification (top 3)
  transport-fleet - group by transport fleet (top 3)
  loading-fleet   - group by loading fleet (top 3)

Examples:
  # Monthly production by material
  haulstat production material

  # Production by transport fleet for one quarter
  haulstat production transport-fleet --start 2024-01-01 --end 2024-03-31`,
}

// newProductionCmd builds one production subcommand for a dimension.
func newProductionCmd(use, short string, dim schema.Dimension) *cobra.Command {
	return &cobra.Command{
		Use:     use + " [data-dir]",
		Short:   short,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: sharedSetupWrapper,
		Run: func(_ *cobra.Command, _ []string) {
			if err := core.ExecuteProduction(rootCtx, cfg, engine, dim); err != nil {
				contract.LogFatal("Cannot compute production", err)
			}
		},
	}
}

var productionActivityCmd = newProductionCmd("activity",
	"Monthly production grouped by activity type.", schema.ActivityDim)

var productionMaterialCmd = newProductionCmd("material",
	"Monthly production grouped by material.", schema.MaterialDim)

var productionSpecCmd = newProductionCmd("spec",
	"Monthly production grouped by material specification.", schema.MaterialSpecDim)

var productionTransportFleetCmd = newProductionCmd("transport-fleet",
	"Monthly production grouped by transport fleet.", schema.TransportFleetDim)

var productionLoadingFleetCmd = newProductionCmd("loading-fleet",
	"Monthly production grouped by loading fleet.", schema.LoadingFleetDim)
