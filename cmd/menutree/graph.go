package main

import (
	"fmt"

	"github.com/aretw0/menutree/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <outline.yaml>",
	Short: "Export the menu tree visualization",
	Long:  `Compiles the outline and outputs a Mermaid diagram (graph TD) of the exported buttons.`,
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

		pending, _ := cmd.Flags().GetBool("pending")
		numbering, _ := cmd.Flags().GetBool("numbering")
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(doc, graph.Options{Pending: pending, Numbering: numbering}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("pending", false, "Draw labels without a sub-button as dashed nodes")
	graphCmd.Flags().Bool("numbering", false, "Annotate buttons with their stageId and buttonId")
	addInputFlags(graphCmd.Flags())
}
