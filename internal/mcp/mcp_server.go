// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/oreops/haulstat/core"
	"github.com/oreops/haulstat/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// productionDimensions lists the slicing dimensions accepted by the production tool.
var productionDimensions = []string{"activity", "material", "material-spec", "transport-fleet", "loading-fleet"}

// allDimensions lists every dimension accepted by the values tool.
var allDimensions = []string{"input-type", "activity", "material", "material-spec", "loading-tag", "loading-fleet", "transport-fleet"}

// NewMCPServer initializes and configures the Haulstat MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, engine *core.Engine) *server.MCPServer {
	s := server.NewMCPServer(
		"Haulstat Statistics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		engine:  engine,
	}

	// --- 1. Tool: get_cycle_counts ---
	s.AddTool(mcp.NewTool("get_cycle_counts",
		mcp.WithDescription("Count haulage cycles per calendar month, optionally split by input type."),
		mcp.WithString("group_by", mcp.Description("Optional secondary grouping ('input-type')."), mcp.Enum("input-type")),
		mcp.WithString("start", mcp.Description("Inclusive start of the date range (e.g. '2024-01-01').")),
		mcp.WithString("end", mcp.Description("Inclusive end of the date range.")),
		mcp.WithString("input_types", mcp.Description("Comma-separated input types to include.")),
	), h.handleGetCycleCounts)

	// --- 2. Tool: get_production ---
	s.AddTool(mcp.NewTool("get_production",
		mcp.WithDescription("Sum hauled mass per month along a dimension, consolidating minor categories under 'Outros'."),
		mcp.WithString("dimension", mcp.Description("Slicing dimension."), mcp.Required(), mcp.Enum(productionDimensions...)),
		mcp.WithString("start", mcp.Description("Inclusive start of the date range.")),
		mcp.WithString("end", mcp.Description("Inclusive end of the date range.")),
		mcp.WithString("input_types", mcp.Description("Comma-separated input types to include.")),
		mcp.WithString("transport_fleets", mcp.Description("Comma-separated transport fleets to include.")),
		mcp.WithString("loading_fleets", mcp.Description("Comma-separated loading fleets to include.")),
	), h.handleGetProduction)

	// --- 3. Tool: get_productivity ---
	s.AddTool(mcp.NewTool("get_productivity",
		mcp.WithDescription("Monthly tonnage and mean daily tonnes-per-hour rate, with month-over-month growth."),
		mcp.WithString("start", mcp.Description("Inclusive start of the date range.")),
		mcp.WithString("end", mcp.Description("Inclusive end of the date range.")),
		mcp.WithString("input_types", mcp.Description("Comma-separated input types to include.")),
	), h.handleGetProductivity)

	// --- 4. Tool: get_equipment_productivity ---
	s.AddTool(mcp.NewTool("get_equipment_productivity",
		mcp.WithDescription("Per-loading-equipment daily tonnage, hours and rates."),
		mcp.WithString("start", mcp.Description("Inclusive start of the date range.")),
		mcp.WithString("end", mcp.Description("Inclusive end of the date range.")),
		mcp.WithString("loading_tags", mcp.Description("Comma-separated equipment tags to include.")),
	), h.handleGetEquipmentProductivity)

	// --- 5. Tool: get_dimension_values ---
	s.AddTool(mcp.NewTool("get_dimension_values",
		mcp.WithDescription("List the distinct values present along a dimension, sorted."),
		mcp.WithString("dimension", mcp.Description("Dimension to enumerate."), mcp.Required(), mcp.Enum(allDimensions...)),
		mcp.WithString("start", mcp.Description("Inclusive start of the date range.")),
		mcp.WithString("end", mcp.Description("Inclusive end of the date range.")),
	), h.handleGetDimensionValues)

	// --- 6. Tool: get_cache_status ---
	s.AddTool(mcp.NewTool("get_cache_status",
		mcp.WithDescription("Report whether the cached dataset still matches the source files on disk."),
	), h.handleGetCacheStatus)

	// --- 7. Tool: clear_cache ---
	s.AddTool(mcp.NewTool("clear_cache",
		mcp.WithDescription("Drop the cached dataset so the next query reloads from disk."),
	), h.handleClearCache)

	return s
}

// StartMCPServer starts the Haulstat MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, engine *core.Engine) error {
	s := NewMCPServer(baseCfg, engine)
	return server.ServeStdio(s)
}
