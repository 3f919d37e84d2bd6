package mcp_test

import (
	"context"
	"testing"

	"github.com/oreops/haulstat/core"
	"github.com/oreops/haulstat/internal/contract"
	mcp_internal "github.com/oreops/haulstat/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		DataDir:   "missing-dir",
		Precision: contract.DefaultPrecision,
	}
	loader := &contract.MockRowLoader{}
	loader.On("ListSources", "missing-dir").Return(nil, nil)
	engine := core.NewEngine(loader, "missing-dir")
	s := mcp_internal.NewMCPServer(baseCfg, engine)

	ctx := context.Background()

	t.Run("get_production with empty directory reports tool error", func(t *testing.T) {
		tool := s.GetTool("get_production")
		require.NotNil(t, tool, "Tool get_production should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_production",
				Arguments: map[string]any{
					"dimension": "material",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "no valid source files")
	})

	t.Run("get_cycle_counts invalid date", func(t *testing.T) {
		tool := s.GetTool("get_cycle_counts")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_cycle_counts",
				Arguments: map[string]any{
					"start": "last tuesday",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid start date")
	})

	t.Run("get_cache_status works without any dataset", func(t *testing.T) {
		tool := s.GetTool("get_cache_status")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_cache_status"},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, `"has_dataset": false`)
	})
}
