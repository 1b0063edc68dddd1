package main

import (
	"fmt"
	"os"

	"github.com/aretw0/menutree/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <outline.yaml>",
	Short: "Preview an outline in the terminal",
	Long:  `Renders the exported menu as styled Markdown, or as a table of stage and button numbers with --table.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		doc, err := exportOutline(args[0], cfg, logger)
		if err != nil {
			return err
		}

		if asTable, _ := cmd.Flags().GetBool("table"); asTable {
			tui.RenderTable(cmd.OutOrStdout(), doc)
			return nil
		}

		out, err := tui.Render(os.Stdout, tui.Markdown(doc))
		if err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Bool("table", false, "Print a table instead of Markdown")
	addInputFlags(previewCmd.Flags())
}
