package cmd

import (
	"fmt"

	"github.com/oreops/haulstat/core"
	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"
	"github.com/spf13/cobra"
)

// valuesCmd lists the distinct values of a dimension.
var valuesCmd = &cobra.Command{
	Use:   "values <dimension> [data-dir]",
	Short: "List the distinct values present along a dimension.",
	Long: `List the distinct values found along a dimension, sorted. Useful for
discovering what to pass to the filter flags.

Dimensions: input-type, activity, material, material-spec, loading-tag,
loading-fleet, transport-fleet. Placeholder and blank values are omitted
for tag and fleet dimensions.

Examples:
  # What input types exist in the data?
  haulstat values input-type

  # Which loading equipment operated in January?
  haulstat values loading-tag --start 2024-01-01 --end 2024-01-31`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := schema.ValidDimensions[schema.Dimension(args[0])]; !ok {
			return fmt.Errorf("invalid dimension '%s'", args[0])
		}
		// The data directory positional comes after the dimension here.
		return sharedSetup(rootCtx, cmd, args[1:])
	},
	Run: func(_ *cobra.Command, args []string) {
		dim := schema.Dimension(args[0])
		if err := core.ExecuteDistinctValues(rootCtx, cfg, engine, dim); err != nil {
			contract.LogFatal("Cannot list values", err)
		}
	},
}
