package main

import (
	"fmt"
	"os"

	"github.com/aretw0/cascade/internal/cli"
	"github.com/aretw0/cascade/internal/config"
	"github.com/spf13/cobra"
)

// settings is resolved once per invocation by the root PersistentPreRunE.
var settings *cli.Settings

var rootCmd = &cobra.Command{
	Use:   "cascade",
	Short: "cascade converts CMS asset properties between SOAP and REST payloads",
	Long: `cascade decodes raw asset property payloads of a content management web service,
validates them, and re-exports them in the SOAP or REST dialect. It also formats,
validates and visualises workflow definition documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		mode, _ := cmd.Flags().GetString("mode")
		level, _ := cmd.Flags().GetString("log-level")
		dir, _ := cmd.Flags().GetString("dir")

		s, err := cli.LoadSettings(path, cli.Overrides{Mode: mode, LogLevel: level, Fixtures: dir})
		if err != nil {
			return err
		}
		settings = s
		return nil
	},
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
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("mode", "", "Wire dialect for exports: soap or rest (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("dir", "", "Directory containing payload fixtures (overrides config)")
}
