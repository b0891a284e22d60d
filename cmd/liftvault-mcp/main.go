package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/liftvault/internal/mcp"
	"github.com/claude/liftvault/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// liftvault-mcp serves the MCP tools over stdio. Local mode talks to the
// database directly; remote mode goes through the REST API, for running the
// binary next to an MCP client while the server lives elsewhere on the
// tailnet.
func main() {
	dsn := flag.String("dsn", os.Getenv("LIFTVAULT_DSN"), "PostgreSQL DSN for local mode (or LIFTVAULT_DSN)")
	serverURL := flag.String("url", os.Getenv("LIFTVAULT_SERVER"), "server URL for remote mode (or LIFTVAULT_SERVER)")
	flag.Parse()

	// Log to stderr — stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	switch {
	case *serverURL != "":
		ds = mcp.NewHTTPClient(*serverURL)
		log.Info("MCP server in remote mode", "url", *serverURL)
	case *dsn != "":
		db, err := storage.Open(context.Background(), *dsn)
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("MCP server in local mode")
	default:
		log.Error("either -dsn or -url is required")
		os.Exit(1)
	}

	s := mcp.New(ds, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}
