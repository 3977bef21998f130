// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/rematch/iou"
	"github.com/katalvlaran/rematch/matching"
	"github.com/katalvlaran/rematch/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands.
type app struct {
	out       io.Writer
	in        io.Reader
	newLogger func(verbose bool) (*zap.Logger, error)
	log       *zap.Logger

	// flags
	verbose  bool
	file     string
	axis     string
	limited  bool
	minimize bool
	format   string
}

func newApp(out io.Writer) *app {
	return &app{
		out:       out,
		in:        os.Stdin,
		newLogger: buildLogger,
		log:       zap.NewNop(),
	}
}

// buildLogger returns a development logger (Debug, console) when verbose,
// otherwise a production logger at Warn so normal runs stay quiet.
func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// demoGrid is the detection/track overlap grid shipped with `rematch demo`.
var demoGrid = [][]float64{
	{0.0, 0.0, 0.0, 0.0, 0.0},
	{0.20689655, 0.07407407, 0.04761905, 0.0, 0.23076923},
	{0.0, 0.0, 0.38461538, 0.0, 0.0},
	{0.0, 0.0, 0.04347826, 0.5, 0.0},
	{0.5, 0.0, 0.0, 0.0, 1.0},
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rematch",
		Short: "Greedy argmax-with-displacement matching over score matrices",
		Long: `rematch assigns every row (or column) of a score matrix to its best
available counterpart. A stronger claim displaces a weaker one and the
displaced index is re-matched.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log displacement chains at debug level")
	rootCmd.PersistentFlags().StringVarP(&a.format, "output", "o", formatText, "output format: text or yaml")
	rootCmd.PersistentFlags().BoolVar(&a.limited, "limit", false, "leave subjects unmatched when nothing beats the matrix minimum")

	matchCmd := &cobra.Command{
		Use:   "match",
		Short: "Match a score (or cost) matrix read from a YAML/JSON file",
		Args:  cobra.NoArgs,
		RunE:  a.runMatch,
	}
	matchCmd.Flags().StringVarP(&a.file, "file", "f", "-", "input file, - for stdin")
	matchCmd.Flags().StringVar(&a.axis, "axis", "rows", "axis to match: rows or columns")
	matchCmd.Flags().BoolVar(&a.minimize, "minimize", false, "treat values as costs and match on the smallest")

	iouCmd := &cobra.Command{
		Use:   "iou",
		Short: "Match detections to tracks by bounding-box overlap",
		Args:  cobra.NoArgs,
		RunE:  a.runIoU,
	}
	iouCmd.Flags().StringVarP(&a.file, "file", "f", "-", "input file, - for stdin")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in 5x5 detection/track example",
		Long:  "Run the built-in 5x5 detection/track example. The demo is limited unless --limit=false is given.",
		Args:  cobra.NoArgs,
		RunE:  a.runDemo,
	}
	demoCmd.Flags().StringVar(&a.axis, "axis", "rows", "axis to match: rows or columns")

	rootCmd.AddCommand(matchCmd, iouCmd, demoCmd)
	return rootCmd
}

func (a *app) runMatch(cmd *cobra.Command, _ []string) error {
	doc, err := loadMatrixDoc(a.file, a.in)
	if err != nil {
		return err
	}

	// Explicit flags win over document defaults.
	axisName := a.axis
	if doc.Axis != "" && !cmd.Flags().Changed("axis") {
		axisName = doc.Axis
	}
	limited := a.limited
	if doc.Limited != nil && !cmd.Flags().Changed("limit") {
		limited = *doc.Limited
	}
	minimize := a.minimize
	if doc.Minimize != nil && !cmd.Flags().Changed("minimize") {
		minimize = *doc.Minimize
	}

	axis, err := matching.ParseAxis(axisName)
	if err != nil {
		return err
	}
	m, err := matrix.NewDenseFrom(doc.Matrix)
	if err != nil {
		return err
	}
	return a.match(m, axis, limited, minimize)
}

func (a *app) runIoU(cmd *cobra.Command, _ []string) error {
	doc, err := loadBoxDoc(a.file, a.in)
	if err != nil {
		return err
	}
	limited := a.limited
	if doc.Limited != nil && !cmd.Flags().Changed("limit") {
		limited = *doc.Limited
	}

	m, err := iou.Matrix(doc.Detections, doc.Tracks)
	if err != nil {
		return err
	}
	return a.match(m, matching.Rows, limited, false)
}

func (a *app) runDemo(cmd *cobra.Command, _ []string) error {
	axis, err := matching.ParseAxis(a.axis)
	if err != nil {
		return err
	}
	m, err := matrix.NewDenseFrom(demoGrid)
	if err != nil {
		return err
	}
	limited := true
	if cmd.Flags().Changed("limit") {
		limited = a.limited
	}
	return a.match(m, axis, limited, false)
}

func (a *app) match(m matrix.Matrix, axis matching.Axis, limited, minimize bool) error {
	a.log.Debug("matching",
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Stringer("axis", axis),
		zap.Bool("limited", limited),
		zap.Bool("minimize", minimize))

	res, err := matching.RecursiveMatch(m, axis, limited, minimize, matching.WithLogger(a.log))
	if err != nil {
		return err
	}
	if res.Count() == 0 {
		a.log.Warn("no subject matched", zap.Stringer("axis", axis), zap.Int("subjects", len(res)))
	}
	return render(a.out, a.format, axis, res)
}
