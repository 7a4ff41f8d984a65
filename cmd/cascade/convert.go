package main

import (
	"fmt"

	"github.com/aretw0/cascade"
	"github.com/aretw0/cascade/internal/cli"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert a property payload to the selected wire dialect",
	Long: `Reads a JSON payload (from a file, or stdin when omitted or "-"), decodes it as
the given property kind and prints it in the selected dialect.
With --fixture the payload is loaded from the fixtures directory instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		fixture, _ := cmd.Flags().GetString("fixture")
		pretty, _ := cmd.Flags().GetBool("pretty")

		var out any
		if fixture != "" {
			conv, err := cascade.New(settings.Fixtures, cascade.WithMode(settings.Mode), cascade.WithLogger(settings.Logger))
			if err != nil {
				return err
			}
			out, err = conv.ConvertFixture(cmd.Context(), fixture, kind)
			if err != nil {
				return err
			}
		} else {
			if kind == "" {
				return fmt.Errorf("--kind is required when converting a payload file")
			}
			conv, err := cascade.New("", cascade.WithMode(settings.Mode), cascade.WithLogger(settings.Logger))
			if err != nil {
				return err
			}

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			data, err := cli.ReadSource(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			raw, err := cli.DecodeJSON(data)
			if err != nil {
				return err
			}
			out, err = conv.Convert(kind, raw)
			if err != nil {
				return err
			}
		}

		return cli.WriteJSON(cmd.OutOrStdout(), out, pretty)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("kind", "k", "", "Property kind (see 'cascade kinds')")
	convertCmd.Flags().StringP("fixture", "f", "", "Fixture ID to load from the fixtures directory")
	convertCmd.Flags().Bool("pretty", false, "Indent the JSON output")
}
