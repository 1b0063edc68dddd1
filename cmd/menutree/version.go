package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/menutree"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of menutree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "menutree version %s\n", strings.TrimSpace(menutree.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
