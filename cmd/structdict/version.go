package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/structdict"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of structdict",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "structdict version %s\n", strings.TrimSpace(structdict.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
