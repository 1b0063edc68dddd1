package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/menutree/pkg/export"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <outline.yaml>",
	Short: "Compile a YAML outline into the JSON document",
	Long: `Replays a YAML outline through the editor and writes the exported document.
By default the document is written to ./generated_json.json; use --out - for Stdout.
With --publish the document is also delivered to the configured export sink.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		doc, err := exportOutline(args[0], cfg, logger)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "-" {
			if err := export.Encode(cmd.OutOrStdout(), doc); err != nil {
				return err
			}
		} else {
			if err := writeDocument(out, doc); err != nil {
				return err
			}
			logger.Info("document written", "path", out, "buttons", doc.Count())
		}

		sessionID, _ := cmd.Flags().GetString("publish")
		if sessionID == "" {
			return nil
		}
		sink, closeSink, err := newSink(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeSink() }()

		if err := sink.Publish(cmd.Context(), sessionID, doc); err != nil {
			return fmt.Errorf("failed to publish: %w", err)
		}
		logger.Info("document published", "session_id", sessionID, "sink", cfg.Export.Sink)
		return nil
	},
}

func writeDocument(path string, doc *export.Document) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	data, err := export.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("out", "o", export.FileName, "Output file, or - for Stdout")
	buildCmd.Flags().String("publish", "", "Also publish the document to the export sink under this session ID")
	addSinkFlags(buildCmd.Flags())
}
