package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/menutree/internal/config"
	"github.com/aretw0/menutree/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "menutree",
	Short: "menutree builds chatbot menu trees and exports them as JSON",
	Long: `menutree edits trees of chatbot menu buttons (labels, replies, templates and
media carousels) and exports them as a deterministic JSON document.

Trees are edited over HTTP (serve), by AI agents over MCP (mcp), or written as
YAML outlines and compiled offline (build, preview, graph).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: menutree.yaml in the working directory)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
}

// setup resolves the configuration for cmd and builds the logger.
// Logs go to Stderr so Stdout stays free for documents and JSON-RPC.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewWithFormat(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if cfg.File != "" {
		logger.Debug("config loaded", "file", cfg.File)
	}
	return cfg, logger, nil
}
