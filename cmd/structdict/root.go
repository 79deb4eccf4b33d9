package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/structdict/internal/config"
	"github.com/aretw0/structdict/internal/logging"
	"github.com/aretw0/structdict/pkg/observability"
	"github.com/aretw0/structdict/pkg/record"
	"github.com/aretw0/structdict/pkg/registry"
	"github.com/aretw0/structdict/pkg/variants"
)

var rootCmd = &cobra.Command{
	Use:   "structdict",
	Short: "structdict enforces closed, typed record schemas",
	Long: `structdict validates mappings against record variants whose keys and value
types are declared once and enforced on every construction and update.`,
	SilenceUsage: true,
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
	rootCmd.PersistentFlags().String("variants", config.DefaultPath, "Variant definitions file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")
}

// newLogger builds the stderr logger from --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelStr, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}

// loadRegistry registers the built-in variants plus those declared in
// --variants, then attaches hooks to all of them.
func loadRegistry(cmd *cobra.Command, hooks record.Hooks) (*registry.Registry, error) {
	reg := registry.NewRegistry()
	variants.RegisterBuiltins(reg)

	path, _ := cmd.Flags().GetString("variants")
	custom, err := config.LoadVariants(path)
	if err != nil {
		return nil, err
	}
	for _, v := range custom {
		if _, err := reg.Lookup(v.Name()); err == nil {
			return nil, fmt.Errorf("%s: variant %s conflicts with a built-in variant", path, v.Name())
		}
		reg.Register(v)
	}

	reg.Each(func(v *record.Variant[string]) *record.Variant[string] {
		return v.With(record.WithHooks[string](hooks))
	})
	return reg, nil
}

// logHooks returns logging hooks for the command's logger.
func logHooks(cmd *cobra.Command) (record.Hooks, *slog.Logger, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return record.Hooks{}, nil, err
	}
	return observability.LogHooks(logger), logger, nil
}

// styled reports whether w is a terminal and colours are allowed.
func styled(cmd *cobra.Command, w io.Writer) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// profile picks the termenv colour profile for w.
func profile(cmd *cobra.Command, w io.Writer) termenv.Profile {
	if !styled(cmd, w) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
