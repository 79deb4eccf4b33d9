package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/structdict/internal/dataio"
)

var validateCmd = &cobra.Command{
	Use:   "validate <variant> <file>",
	Short: "Check a data file against a variant",
	Long:  `Reads a JSON or YAML object and builds a record of the given variant, reporting every missing key, extra key and mistyped value.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hooks, _, err := logHooks(cmd)
		if err != nil {
			return err
		}
		reg, err := loadRegistry(cmd, hooks)
		if err != nil {
			return err
		}

		v, err := reg.Lookup(args[0])
		if err != nil {
			return err
		}
		data, err := dataio.ReadFile(args[1])
		if err != nil {
			return err
		}

		rec, err := v.New(dataio.Conform(data, v.Schema()))
		if err != nil {
			return fmt.Errorf("validation failed:\n%w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %s\n", v.Name(), rec)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
