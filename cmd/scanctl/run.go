package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/go-iterscan/logger"
	"github.com/arloliu/go-iterscan/plan"
	"github.com/arloliu/go-iterscan/scan"
	"github.com/arloliu/go-iterscan/virtual"
)

const runLongDescription = `Run the scan described by a plan file.

Axes are simulated motors. By default they return to their start positions
when the scan ends; use --stay to leave them at the last point. Press Ctrl-C
to interrupt the scan. The axes are still restored after an interrupt.`

// stepPrinter prints the axis positions after every step.
type stepPrinter struct {
	out   io.Writer
	stay  bool
	quiet bool
}

var _ scan.Hooks = stepPrinter{}

func (h stepPrinter) PreScan(ctx context.Context, s *scan.Scan) error {
	if h.stay {
		return nil
	}

	return scan.DefaultHooks{}.PreScan(ctx, s)
}

func (h stepPrinter) PostScan(ctx context.Context, s *scan.Scan) error {
	if h.stay {
		return nil
	}

	return scan.DefaultHooks{}.PostScan(ctx, s)
}

func (stepPrinter) PreStep(context.Context, *scan.Scan) error { return nil }

func (h stepPrinter) PostStep(_ context.Context, s *scan.Scan) error {
	if h.quiet {
		return nil
	}

	positions, err := s.Positions()
	if err != nil {
		return err
	}

	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = p.String()
	}
	_, err = fmt.Fprintf(h.out, "step %d: %s\n", s.CurrentStep(), strings.Join(parts, " "))

	return err
}

func newRunCmd() *cobra.Command {
	var meshFlag, stayFlag, quietFlag bool

	cmd := &cobra.Command{
		Use:   "run <plan>",
		Short: "Run a scan plan",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.LoadFile(args[0])
			if err != nil {
				return err
			}
			if meshFlag {
				p.Mode = plan.ModeMesh
			}

			hooks := stepPrinter{out: cmd.OutOrStdout(), stay: stayFlag, quiet: viper.GetBool(runQuietKey)}
			s, err := p.Build(virtual.NewRegistry(), scan.WithHooks(hooks), scan.WithLogger(logger.GetLogger()))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			res := p.Run(ctx, s)
			printResult(cmd.OutOrStdout(), res)

			if res.Status.IsFailed() {
				return fmt.Errorf("scan %s failed: %w", res.RunID, res.Err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&meshFlag, meshFlagName, false, "run a mesh scan whatever the plan mode")
	cmd.Flags().BoolVar(&stayFlag, stayFlagName, false, "leave the axes at the last point")
	cmd.Flags().BoolVarP(&quietFlag, quietFlagName, "q", viper.GetBool(runQuietKey), "do not print every step")
	bindFlagToConfig(cmd.Flags().Lookup(quietFlagName), runQuietKey)

	return cmd
}

func printResult(w io.Writer, res scan.Result) {
	fmt.Fprintf(w, "run %s: %s scan %s after %d steps", res.RunID, res.Mode, res.Status, res.Steps)
	if res.Message != "" {
		fmt.Fprintf(w, ": %s", res.Message)
	}
	if res.Err != nil {
		fmt.Fprintf(w, " (%v)", res.Err)
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}
