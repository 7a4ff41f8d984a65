package main

import (
	"fmt"
	"os"

	"github.com/aretw0/cascade"
	"github.com/aretw0/cascade/internal/presentation/tui"
	"github.com/aretw0/cascade/pkg/property"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the property kinds accepted by convert",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range property.NewRegistry().Kinds() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the payload fixtures and their kinds",
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := cascade.New(settings.Fixtures, cascade.WithMode(settings.Mode), cascade.WithLogger(settings.Logger))
		if err != nil {
			return err
		}

		ids, err := conv.Fixtures(cmd.Context())
		if err != nil {
			return err
		}
		status := tui.NewStatus(cmd.ErrOrStderr(), tui.IsTerminal(os.Stderr))
		for _, id := range ids {
			f, err := conv.Fixture(cmd.Context(), id)
			if err != nil {
				return err
			}
			kind := f.Kind
			if kind == "" {
				kind = "-"
				status.Warn("fixture %s has no kind; convert it with --kind", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(fixturesCmd)
}
