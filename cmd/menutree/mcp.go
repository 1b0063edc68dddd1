package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/menutree"
	"github.com/aretw0/menutree/internal/sanitize"
	"github.com/aretw0/menutree/pkg/adapters/mcp"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/aretw0/menutree/pkg/session"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts menutree as an MCP Server.
This allows AI agents to build menu trees through tools and read exports as resources.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		sink, closeSink, err := newSink(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeSink(); err != nil {
				logger.Warn("failed to close export sink", "err", err)
			}
		}()

		sessions := session.NewManager(session.WithLogger(logger))
		srv := mcp.NewServer(sessions, menutree.Version,
			mcp.WithLogger(logger),
			mcp.WithExporter(export.NewExporter(export.WithLogger(logger))),
			mcp.WithSink(sink),
			mcp.WithSanitizer(sanitize.New(cfg.Input.MaxSize)),
		)

		switch cfg.MCP.Transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("starting menutree MCP server (stdio)")
			if err := srv.ServeStdio(); err != nil {
				return fmt.Errorf("MCP server execution failed: %w", err)
			}
		case "sse":
			logger.Info("starting menutree MCP server (SSE)", "port", cfg.MCP.Port)

			// Create a context that cancels on interrupt signal
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, cfg.MCP.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("MCP server execution failed: %w", err)
			}
			logger.Info("MCP server stopped gracefully")
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", cfg.MCP.Transport)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("mcp-transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("mcp-port", 8081, "Port to listen on (only for SSE)")
	addSinkFlags(mcpCmd.Flags())
}
