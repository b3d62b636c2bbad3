package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/feather-lang/testmodule"
	"github.com/feather-lang/testmodule/internal/config"
)

func (a *app) runDemo(cmd *cobra.Command, _ []string) error {
	d := a.cfg.Demo

	i := int32(d.Int)
	a.printf(cmd, "%d %d\n", i, testmodule.Identity(i))

	s := []byte(d.String)
	a.printf(cmd, "%s %s\n", s, testmodule.Duplicate(s))

	src, err := testmodule.GridFromRows(d.Grid)
	if err != nil {
		return err
	}
	return a.transform(cmd, d.ParsedVariant(), src)
}

func (a *app) runInt(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("int: %w", err)
	}
	a.printf(cmd, "%d %d\n", v, testmodule.Identity(int32(v)))
	return nil
}

func (a *app) runString(cmd *cobra.Command, args []string) error {
	s := []byte(args[0])
	a.printf(cmd, "%s %s\n", s, testmodule.Duplicate(s))
	return nil
}

func (a *app) newGridCmd() *cobra.Command {
	var (
		variant string
		rows    string
		file    string
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Transform a grid and print input and output",
		Long: `Transform a grid of float64 values.

The reverse variant copies the input into the output and then rewrites the
input as the output in reverse order. The copy variant only copies.

Rows come from --rows ("1,2;3,4"), from a YAML file of rows (--file), or
from the demo grid in the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := a.cfg.Demo.ParsedVariant()
			if variant != "" {
				var err error
				if v, err = testmodule.ParseVariant(variant); err != nil {
					return err
				}
			}

			var (
				src *testmodule.Grid
				err error
			)
			switch {
			case rows != "" && file != "":
				return fmt.Errorf("--rows and --file are mutually exclusive")
			case rows != "":
				src, err = parseRows(rows)
			case file != "":
				src, err = config.ReadGrid(file)
			default:
				src, err = testmodule.GridFromRows(a.cfg.Demo.Grid)
			}
			if err != nil {
				return err
			}
			return a.transform(cmd, v, src)
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "copy or reverse (default from config)")
	cmd.Flags().StringVar(&rows, "rows", "", `grid rows, e.g. "1,2;3,4"`)
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file holding a list of rows")
	return cmd
}

// transform runs v on src and prints src and the output grid, both as they
// are after the call.
func (a *app) transform(cmd *cobra.Command, v testmodule.Variant, src *testmodule.Grid) error {
	dst, err := testmodule.NewGrid(src.Height(), src.Width())
	if err != nil {
		return err
	}
	if err := testmodule.Transform(v, dst, src); err != nil {
		return err
	}
	a.log.Debug("grid transformed", zap.Stringer("variant", v), zap.Stringer("dims", src.Dims()))
	renderGrids(cmd.OutOrStdout(), src, dst)
	return nil
}

// parseRows parses "1,2;3,4" into a 2x2 grid.
func parseRows(s string) (*testmodule.Grid, error) {
	var rows [][]float64
	for _, line := range strings.Split(s, ";") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row []float64
		for _, field := range strings.Split(line, ",") {
			f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("rows: %w", err)
			}
			row = append(row, f)
		}
		rows = append(rows, row)
	}
	return testmodule.GridFromRows(rows)
}
