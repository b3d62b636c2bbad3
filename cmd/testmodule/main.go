package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feather-lang/testmodule/internal/config"
	"github.com/feather-lang/testmodule/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	cfg        config.Config
	log        *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: log.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "testmodule",
		Short: "Run the testmodule operations from the command line",
		Long: `testmodule runs the operations exported by libtestmodule through the Go API.

Without a subcommand it runs the demo: an integer, a string and a grid taken
from the configuration, printing each input next to its result.

Examples:
  testmodule                          # demo with built-in values
  testmodule int 42
  testmodule string hello
  testmodule grid --rows "1,2;3,4"    # reverse variant
  testmodule grid -f grid.yaml --variant copy`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDemo,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Run all three operations on the configured demo values",
			Args:  cobra.NoArgs,
			RunE:  a.runDemo,
		},
		&cobra.Command{
			Use:   "int <value>",
			Short: "Round-trip a signed 32-bit integer",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runInt,
		},
		&cobra.Command{
			Use:   "string <value>",
			Short: "Duplicate a string",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runString,
		},
		a.newGridCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}
	a.cfg = cfg
	a.log = log.New(cfg.Log.Level, cfg.Log.Development)
	a.log.Debug("config loaded")
	return nil
}

func (a *app) printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
