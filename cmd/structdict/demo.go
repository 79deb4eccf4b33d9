package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/structdict/internal/demo"
	"github.com/aretw0/structdict/internal/presentation/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the enforcement failure paths",
	Long:  `Builds a Rectangle, prints its area, then triggers a rejected delete, a rejected update and two rejected constructions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hooks, _, err := logHooks(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		p := profile(cmd, out)
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(out, p)
		}
		return demo.Run(out, demo.Options{Profile: p, Hooks: hooks})
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Bool("banner", false, "Print the banner first")
}
