package cmd

import (
	"github.com/oreops/haulstat/core"
	"github.com/oreops/haulstat/internal/contract"
	"github.com/spf13/cobra"
)

// cacheCmd focused on dataset cache management.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the in-memory dataset cache",
	Long: `Manage the dataset cache that avoids re-reading source exports.

Haulstat fingerprints the source files (path, size and modification time)
and keeps the parsed dataset in memory for the lifetime of the process.
Within a single invocation the cache mostly matters for the MCP server,
where many queries share one dataset.

Subcommands:
  status - Show whether the cached dataset matches the files on disk
  clear  - Drop the cached dataset

Examples:
  # Check cache state against the default data directory
  haulstat cache status

  # Check against another directory
  haulstat cache status /data/exports`,
}

// cacheStatusCmd shows the dataset cache diagnostic.
var cacheStatusCmd = &cobra.Command{
	Use:     "status [data-dir]",
	Short:   "Display dataset cache state and fingerprints",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCacheStatus(cfg, engine); err != nil {
			contract.LogFatal("Cannot get cache status", err)
		}
	},
}

// cacheClearCmd drops the cached dataset.
var cacheClearCmd = &cobra.Command{
	Use:     "clear [data-dir]",
	Short:   "Drop the cached dataset",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCacheClear(cfg, engine); err != nil {
			contract.LogFatal("Cannot clear cache", err)
		}
	},
}
