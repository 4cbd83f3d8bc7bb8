package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/service"
)

const (
	Name           = "jaskcalc-mcp"
	defaultTapeMax = 20
)

var errTapeDisabled = errors.New("tape disabled")

// New builds an MCP server around a fresh session.
func New(version string, tape *service.TapeService) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithRecovery(),
	)
	NewSession(tape).Register(s)
	return s
}

// Register adds the calculator tools to s.
func (ss *Session) Register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("press",
		mcp.WithDescription("Press calculator keys and return the display. "+
			"Keys: 0-9 . + - * / = %, named keys in braces: "+namedKeyList()),
		mcp.WithString("keys",
			mcp.Required(),
			mcp.Description("Key script, e.g. '12+7=' or '9{sqrt}'"),
		),
	), ss.handlePress)

	s.AddTool(mcp.NewTool("display",
		mcp.WithDescription("Return the calculator display"),
	), ss.handleDisplay)

	s.AddTool(mcp.NewTool("memory",
		mcp.WithDescription("Return the memory register"),
	), ss.handleMemory)

	s.AddTool(mcp.NewTool("reset",
		mcp.WithDescription("Clear the calculator, including memory"),
	), ss.handleReset)

	s.AddTool(mcp.NewTool("tape",
		mcp.WithDescription("List recent evaluations, newest first"),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum entries (default %d)", defaultTapeMax)),
		),
	), ss.handleTape)
}

func namedKeyList() string {
	names := calc.NamedKeys()
	for i, n := range names {
		names[i] = "{" + n + "}"
	}
	return strings.Join(names, " ")
}

func (ss *Session) handlePress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	keys, ok := args["keys"].(string)
	if !ok {
		return mcp.NewToolResultError("keys is required"), nil
	}
	events, err := calc.ParseKeys(keys)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(ss.Press(ctx, events)), nil
}

func (ss *Session) handleDisplay(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ss.Display()), nil
}

func (ss *Session) handleMemory(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ss.Memory()), nil
}

func (ss *Session) handleReset(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ss.Reset()
	return mcp.NewToolResultText(ss.Display()), nil
}

func (ss *Session) handleTape(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := defaultTapeMax
	if v, ok := request.GetArguments()["limit"].(float64); ok && v >= 1 {
		limit = int(v)
	}
	entries, err := ss.Tape(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText("tape is empty"), nil
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s = %s\n", e.Expression, e.Result)
	}
	return mcp.NewToolResultText(strings.TrimSuffix(b.String(), "\n")), nil
}
