package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("liftlog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("liftlog weightlifting program server. Read the 10-week Olympic lifting program, the selected session with target loads, and progress. Log main-lift sets and accessory work. Weeks are 1-10, days 1-4; row, set and accessory indices are 0-based."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetSession, Handler: h.getSession},
		server.ServerTool{Tool: toolGetWeek, Handler: h.getWeek},
		server.ServerTool{Tool: toolGetPosition, Handler: h.getPosition},
		server.ServerTool{Tool: toolSetPosition, Handler: h.setPosition},
		server.ServerTool{Tool: toolGetOneRM, Handler: h.getOneRM},
		server.ServerTool{Tool: toolLogMainSet, Handler: h.logMainSet},
		server.ServerTool{Tool: toolLogAccessory, Handler: h.logAccessory},
		server.ServerTool{Tool: toolGetProgramProgress, Handler: h.getProgramProgress},
		server.ServerTool{Tool: toolEstimateLoad, Handler: h.estimateLoad},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resProgram, Handler: h.programResource},
		server.ServerResource{Resource: resToday, Handler: h.todayResource},
		server.ServerResource{Resource: resOneRM, Handler: h.oneRMResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resProgram = mcp.NewResource(
	"liftlog://program",
	"Program",
	mcp.WithResourceDescription("The full 10-week program: every session's warm-up, main-lift scheme and accessories"),
	mcp.WithMIMEType("application/json"),
)

var resToday = mcp.NewResource(
	"liftlog://today",
	"Current Session",
	mcp.WithResourceDescription("The selected session with target loads, logged sets and completion"),
	mcp.WithMIMEType("application/json"),
)

var resOneRM = mcp.NewResource(
	"liftlog://one_rm",
	"One-Rep Maxes",
	mcp.WithResourceDescription("The 1RM profile in kg used for target loads"),
	mcp.WithMIMEType("application/json"),
)
