package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/cascade"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cascade",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cascade version %s\n", strings.TrimSpace(cascade.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
