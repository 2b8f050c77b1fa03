package main

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/go-iterscan/logger"
	"github.com/arloliu/go-iterscan/plan"
	"github.com/arloliu/go-iterscan/scan"
	"github.com/arloliu/go-iterscan/virtual"
)

const statsLongDescription = `Summarize one or more plans without moving any axis.

Sources are drained to compute their extrema and average step. A source that
reaches --max-steps positions is reported as infinite. Plans are evaluated
concurrently.`

type planStats struct {
	path   string
	labels []string
	stats  scan.Stats
}

func newStatsCmd() *cobra.Command {
	var maxStepsFlag, parallelFlag int

	cmd := &cobra.Command{
		Use:   "stats <plan>...",
		Short: "Summarize scan plans",
		Long:  statsLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := collectStats(cmd.Context(), args,
				viper.GetInt(statsMaxStepsKey), viper.GetInt(statsParallelKey))
			if err != nil {
				return err
			}

			for _, r := range results {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", r.path, renderStatsTable(r)); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&maxStepsFlag, maxStepsFlagName, viper.GetInt(statsMaxStepsKey),
		"stop draining a source after this many positions (0 for no limit)")
	bindFlagToConfig(cmd.Flags().Lookup(maxStepsFlagName), statsMaxStepsKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(statsParallelKey),
		"number of plans evaluated at once")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), statsParallelKey)

	return cmd
}

// collectStats loads and summarizes every plan, keeping the order of paths.
func collectStats(ctx context.Context, paths []string, maxSteps int, parallel int) ([]planStats, error) {
	results := make([]planStats, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			p, err := plan.LoadFile(path)
			if err != nil {
				return err
			}

			s, err := p.Build(virtual.NewRegistry(),
				scan.WithHooks(scan.HookFuncs{}), scan.WithLogger(logger.GetLogger().With("plan", path)))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = planStats{path: path, labels: p.Labels(), stats: s.Stats(maxSteps)}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func renderStatsTable(r planStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Axis", "Points", "Min", "Max", "Step", "Scan min", "Scan max", "Scan step"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)

	st := r.stats
	for i, label := range r.labels {
		table.Append([]string{
			label,
			formatStat(st.NPoints[i]),
			formatStat(st.IterMins[i]),
			formatStat(st.IterMaxes[i]),
			formatStat(st.IterStepAvg[i]),
			formatStat(st.ScanMins[i]),
			formatStat(st.ScanMaxes[i]),
			formatStat(st.ScanStepAvg[i]),
		})
	}

	table.SetFooter([]string{
		"linear " + formatStat(st.ScanPoints),
		"mesh " + formatStat(st.MeshPoints),
		"", "", "", "", "", "",
	})
	table.Render()

	return tableBuffer.String()
}

// formatStat renders a statistic; infinite counts and non-numeric values get a short marker.
func formatStat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "-"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

func init() {
	rootCmd.AddCommand(newStatsCmd())
}
