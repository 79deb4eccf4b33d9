package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/structdict/internal/presentation/graph"
	"github.com/aretw0/structdict/internal/presentation/tui"
	"github.com/aretw0/structdict/pkg/record"
)

var describeCmd = &cobra.Command{
	Use:   "describe [variant]",
	Short: "Show the schema of one or all variants",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cmd, record.Hooks{})
		if err != nil {
			return err
		}

		names := reg.Names()
		if len(args) == 1 {
			names = args
		}
		selected := make([]*record.Variant[string], 0, len(names))
		for _, name := range names {
			v, err := reg.Lookup(name)
			if err != nil {
				return err
			}
			selected = append(selected, v)
		}

		out := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "mermaid":
			highlight, _ := cmd.Flags().GetStringSlice("highlight")
			for _, name := range highlight {
				if _, err := reg.Lookup(name); err != nil {
					return err
				}
			}
			fmt.Fprint(out, graph.GenerateMermaid(selected, highlight...))
			return nil
		case "markdown":
		default:
			return fmt.Errorf("unknown format: %s", format)
		}

		render, err := tui.NewRenderer(styled(cmd, out))
		if err != nil {
			return err
		}
		for _, v := range selected {
			text, err := render(tui.DescribeMarkdown(v))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringP("format", "f", "markdown", "Output format: markdown or mermaid")
	describeCmd.Flags().StringSlice("highlight", nil, "Variants to emphasize in the mermaid diagram")
}
