package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rustmap/internal/outline"
)

// outlineRequest is the parsed argument set of one rust_outline call.
type outlineRequest struct {
	Source         string
	IncludePrivate bool
	FilePath       string
}

// AddRustOutlineTool registers the rust_outline tool with an MCP server.
// The registration is composable with other tools.
func AddRustOutlineTool(s *server.MCPServer, cache *outline.Cache) {
	tool := mcp.NewTool(
		"rust_outline",
		mcp.WithDescription("Extract a structured symbol outline from Rust source code: functions, structs/enums/unions with their methods, traits, inline modules, and module references, with visibility, doc comments, and source spans. Returns JSON."),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Rust source code to analyze")),
		mcp.WithBoolean("include_private",
			mcp.Description("Include items without a pub modifier (default: false)")),
		mcp.WithString("file_path",
			mcp.Description("Optional file path for context; not consulted by extraction")),
	)

	s.AddTool(tool, createRustOutlineHandler(cache))
}

// createRustOutlineHandler creates the handler for the rust_outline tool.
func createRustOutlineHandler(cache *outline.Cache) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		args, err := parseOutlineRequest(argsMap)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		requestID := uuid.NewString()
		start := time.Now()

		result, err := cache.Extract(ctx, []byte(args.Source), outline.Options{
			IncludePrivate: args.IncludePrivate,
			FilePath:       args.FilePath,
		})
		if err != nil {
			return nil, fmt.Errorf("extraction failed: %w", err)
		}

		payload, err := json.Marshal(result)
		if err != nil {
			// Never emit a partially-serialized result.
			return nil, fmt.Errorf("failed to encode outline: %w", err)
		}

		slog.Info("rust_outline request served",
			"requestId", requestID,
			"bytes", len(args.Source),
			"items", len(result.FileInfo.Items),
			"diagnostics", len(result.Diagnostics),
			"durationMs", time.Since(start).Milliseconds(),
		)

		return mcp.NewToolResultText(string(payload)), nil
	}
}

// parseOutlineRequest validates the raw argument map.
func parseOutlineRequest(argsMap map[string]interface{}) (outlineRequest, error) {
	req := outlineRequest{}

	source, ok := argsMap["source"].(string)
	if !ok || source == "" {
		return req, fmt.Errorf("source parameter is required")
	}
	req.Source = source

	if includePrivate, ok := argsMap["include_private"].(bool); ok {
		req.IncludePrivate = includePrivate
	}
	if filePath, ok := argsMap["file_path"].(string); ok {
		req.FilePath = filePath
	}

	return req, nil
}
