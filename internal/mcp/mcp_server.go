// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/adbar/shoten/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Shoten MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.RunStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Shoten Trend Detection Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: gen_freqlist ---
	s.AddTool(mcp.NewTool("gen_freqlist",
		mcp.WithDescription("Ingest a corpus of XML-TEI documents and compute time-binned word frequency statistics."),
		mcp.WithString("input_dir", mcp.Description("Directory holding the corpus files."), mcp.Required()),
		mcp.WithNumber("interval", mcp.Description("Bin width in days. Defaults to 7.")),
		mcp.WithNumber("max_days", mcp.Description("Oldest admissible day offset.")),
		mcp.WithString("reference", mcp.Description("Reference date (YYYY-MM-DD). Defaults to today.")),
	), h.handleGenFreqlist)

	// --- 2. Tool: trending_words ---
	s.AddTool(mcp.NewTool("trending_words",
		mcp.WithDescription("Return the words whose frequency profile passes the significance filter chain."),
		mcp.WithString("input_dir", mcp.Description("Directory holding the corpus files."), mcp.Required()),
		mcp.WithString("setting", mcp.Description("Filter strictness (loose, normal, strict). Defaults to 'normal'."), mcp.Enum("loose", "normal", "strict")),
		mcp.WithNumber("interval", mcp.Description("Bin width in days. Defaults to 7.")),
	), h.handleTrendingWords)

	return s
}

// StartMCPServer starts the Shoten MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.RunStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
