// Command liftlog-mcp serves the liftlog MCP tools over stdio, reading and
// writing state through a remote liftlog server's REST API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	liftmcp "github.com/meltforce/liftlog/internal/mcp"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	baseURL := flag.String("url", os.Getenv("LIFTLOG_URL"), "liftlog server base URL (or LIFTLOG_URL)")
	apiKey := flag.String("api-key", os.Getenv("LIFTLOG_AUTH_API_KEY"), "API key for writes (or LIFTLOG_AUTH_API_KEY)")
	flag.Parse()

	// stdout carries the protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *baseURL == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftlog-mcp -url http://liftlog.tailnet.ts.net [-api-key KEY]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ds := liftmcp.NewHTTPClient(*baseURL, *apiKey)
	s := liftmcp.New(ds, Version, log)

	log.Info("liftlog-mcp serving stdio", "version", Version, "url", *baseURL)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}
