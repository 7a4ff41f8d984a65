package main

import (
	"fmt"
	"os"

	"github.com/aretw0/cascade/internal/cli"
	"github.com/aretw0/cascade/internal/presentation/graph"
	"github.com/aretw0/cascade/internal/presentation/report"
	"github.com/aretw0/cascade/internal/presentation/tui"
	"github.com/aretw0/cascade/pkg/definition"
	"github.com/spf13/cobra"
)

var definitionCmd = &cobra.Command{
	Use:     "definition",
	Aliases: []string{"def"},
	Short:   "Work with workflow definition documents",
}

var formatCmd = &cobra.Command{
	Use:   "format [file|-]",
	Short: "Print the canonical XML of a workflow definition",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, err := loadDefinition(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), wf.ToXML())
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]",
	Short: "Check a workflow definition for broken references",
	Long:  `Reports unknown initial steps, duplicate step identifiers, dangling next-id targets and undeclared triggers.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, err := loadDefinition(cmd, args)
		if err != nil {
			return err
		}

		status := tui.NewStatus(cmd.OutOrStdout(), tui.IsTerminal(os.Stdout))
		problems := wf.Problems()
		if len(problems) == 0 {
			status.Success("workflow %q is valid", wf.Name())
			return nil
		}
		for _, p := range problems {
			status.Failure("%s", p)
		}
		return wf.Validate()
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph [file|-]",
	Short: "Export the workflow as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph TD) of the steps and the actions that connect them.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, err := loadDefinition(cmd, args)
		if err != nil {
			return err
		}
		current, _ := cmd.Flags().GetString("current")
		visited, _ := cmd.Flags().GetStringSlice("visited")

		var overlay *graph.GraphOverlay
		if current != "" || len(visited) > 0 {
			overlay = &graph.GraphOverlay{CurrentStep: current, VisitedSteps: visited}
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(wf, overlay))
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe [file|-]",
	Short: "Render a readable summary of a workflow definition",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, err := loadDefinition(cmd, args)
		if err != nil {
			return err
		}
		md := report.Describe(wf)

		plain, _ := cmd.Flags().GetBool("plain")
		if plain || !tui.IsTerminal(os.Stdout) {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		render, err := tui.NewRenderer("", 0)
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func loadDefinition(cmd *cobra.Command, args []string) (*definition.WorkflowDefinition, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	wf, err := cli.LoadDefinition(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	settings.Logger.Debug("definition loaded", "name", wf.Name(), "steps", len(wf.AllSteps()))
	return wf, nil
}

func init() {
	rootCmd.AddCommand(definitionCmd)
	definitionCmd.AddCommand(formatCmd, validateCmd, graphCmd, describeCmd)

	graphCmd.Flags().String("current", "", "Highlight the current step")
	graphCmd.Flags().StringSlice("visited", nil, "Highlight visited steps")
	describeCmd.Flags().Bool("plain", false, "Print raw markdown even on a terminal")
}
