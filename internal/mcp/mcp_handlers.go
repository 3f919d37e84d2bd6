package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oreops/haulstat/core"
	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	engine  *core.Engine
}

// filterFromRequest merges per-request filter overrides onto a clone of the
// base config's filter. An invalid date is reported back to the model rather
// than failing the server.
func (h *toolHandler) filterFromRequest(request mcp.CallToolRequest) (schema.FilterSpec, error) {
	cfg := h.baseCfg.Clone()
	f := cfg.Filter

	if s := request.GetString("start", ""); s != "" {
		t, err := contract.ParseFilterTime(s)
		if err != nil {
			return f, fmt.Errorf("invalid start date '%s': %w", s, err)
		}
		f.Start = t
	}
	if s := request.GetString("end", ""); s != "" {
		t, err := contract.ParseFilterTime(s)
		if err != nil {
			return f, fmt.Errorf("invalid end date '%s': %w", s, err)
		}
		f.End = t
	}
	if s := request.GetString("input_types", ""); s != "" {
		f.InputTypes = contract.SplitCommaList(s)
	}
	if s := request.GetString("transport_fleets", ""); s != "" {
		f.TransportFleets = contract.SplitCommaList(s)
	}
	if s := request.GetString("loading_fleets", ""); s != "" {
		f.LoadingFleets = contract.SplitCommaList(s)
	}
	if s := request.GetString("loading_tags", ""); s != "" {
		f.LoadingTags = contract.SplitCommaList(s)
	}
	return f, nil
}

func (h *toolHandler) handleGetCycleCounts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := h.filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if request.GetString("group_by", "") == string(schema.InputTypeDim) {
		rows, err := h.engine.CyclesByInputType(ctx, f)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("cycle count failed: %v", err)), nil
		}
		return toolResultJSON(core.ProjectCategoryCounts(rows))
	}

	rows, err := h.engine.CyclesByMonth(ctx, f)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cycle count failed: %v", err)), nil
	}
	return toolResultJSON(core.ProjectMonthlyCounts(rows))
}

func (h *toolHandler) handleGetProduction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := h.filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dim := schema.Dimension(request.GetString("dimension", ""))
	rows, err := h.engine.ProductionBy(ctx, f, dim)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("production query failed: %v", err)), nil
	}
	return toolResultJSON(core.ProjectProduction(rows))
}

func (h *toolHandler) handleGetProductivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := h.filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rows, err := h.engine.MonthlyProductivity(ctx, f)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("productivity query failed: %v", err)), nil
	}
	return toolResultJSON(core.ProjectProductivity(rows))
}

func (h *toolHandler) handleGetEquipmentProductivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := h.filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rows, err := h.engine.EquipmentDaily(ctx, f)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("equipment query failed: %v", err)), nil
	}
	return toolResultJSON(core.ProjectEquipmentDays(rows))
}

func (h *toolHandler) handleGetDimensionValues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := h.filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dim := schema.Dimension(request.GetString("dimension", ""))
	values, err := h.engine.DistinctValues(ctx, f, dim)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("values query failed: %v", err)), nil
	}
	return toolResultJSON(map[string]any{
		"dimension": string(dim),
		"values":    values,
	})
}

func (h *toolHandler) handleGetCacheStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := h.engine.CacheStatus()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("status query failed: %v", err)), nil
	}
	return toolResultJSON(status)
}

func (h *toolHandler) handleClearCache(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResultJSON(h.engine.ClearCache())
}

// toolResultJSON marshals a payload for the model.
func toolResultJSON(data any) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(data, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
