package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adbar/shoten/core"
	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.RunStore
}

// requestConfig derives a per-request config from the shared base.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	inputDir := request.GetString("input_dir", "")
	if inputDir == "" {
		return nil, fmt.Errorf("input_dir is required")
	}
	cfg.InputDir = inputDir

	if interval := request.GetInt("interval", 0); interval > 0 {
		cfg.Interval = interval
	}
	if maxDays := request.GetInt("max_days", 0); maxDays > cfg.MinDiff {
		cfg.MaxDiff = maxDays
	}
	if ref := request.GetString("reference", ""); ref != "" {
		t, err := time.Parse(schema.DateFormat, ref)
		if err != nil {
			return nil, fmt.Errorf("invalid reference date %q: %v", ref, err)
		}
		cfg.Reference = t
	}
	if setting := request.GetString("setting", ""); setting != "" {
		cfg.Setting = schema.FilterSetting(setting)
	}

	return cfg, nil
}

func (h *toolHandler) handleGenFreqlist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	rows, _, err := core.GetFreqlistResults(core.WithSuppressHeader(ctx), cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleTrendingWords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	words, _, err := core.GetTrendingWords(core.WithSuppressHeader(ctx), cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(words, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
