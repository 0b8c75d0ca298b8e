package mcp_test

import (
	"context"
	"testing"

	"github.com/adbar/shoten/internal/contract"
	mcp_internal "github.com/adbar/shoten/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		Interval: 7,
		MaxDiff:  30,
	}

	// No store needed because we only exercise validation errors
	var store contract.RunStore
	s := mcp_internal.NewMCPServer(baseCfg, store)

	ctx := context.Background()

	t.Run("gen_freqlist missing input_dir", func(t *testing.T) {
		tool := s.GetTool("gen_freqlist")
		require.NotNil(t, tool, "Tool gen_freqlist should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "gen_freqlist",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "input_dir is required")
	})

	t.Run("gen_freqlist invalid reference date", func(t *testing.T) {
		tool := s.GetTool("gen_freqlist")
		require.NotNil(t, tool, "Tool gen_freqlist should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "gen_freqlist",
				Arguments: map[string]any{
					"input_dir": ".",
					"reference": "yesterday",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid reference date")
	})

	t.Run("trending_words missing input_dir", func(t *testing.T) {
		tool := s.GetTool("trending_words")
		require.NotNil(t, tool, "Tool trending_words should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "trending_words",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "input_dir is required")
	})
}
