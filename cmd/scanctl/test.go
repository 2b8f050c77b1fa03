package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/logger"
	"github.com/arloliu/go-iterscan/plan"
	"github.com/arloliu/go-iterscan/scan"
	"github.com/arloliu/go-iterscan/virtual"
)

const testLongDescription = `Print the positions a plan would visit, without moving any axis.`

func newTestCmd() *cobra.Command {
	var meshFlag bool

	cmd := &cobra.Command{
		Use:   "test <plan>",
		Short: "Preview the positions of a scan plan",
		Long:  testLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.LoadFile(args[0])
			if err != nil {
				return err
			}
			if meshFlag {
				p.Mode = plan.ModeMesh
			}

			s, err := p.Build(virtual.NewRegistry(),
				scan.WithHooks(scan.HookFuncs{}), scan.WithLogger(logger.GetLogger()))
			if err != nil {
				return err
			}

			points := p.DryRun(cmd.Context(), s)
			_, err = io.WriteString(cmd.OutOrStdout(), renderPointsTable(p.Labels(), points))

			return err
		},
	}

	cmd.Flags().BoolVar(&meshFlag, meshFlagName, false, "preview a mesh scan whatever the plan mode")

	return cmd
}

func renderPointsTable(labels []string, points [][]axis.Position) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(append([]string{"Step"}, labels...))
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)

	for i, pts := range points {
		row := make([]string, 0, len(pts)+1)
		row = append(row, strconv.Itoa(i+1))
		for _, p := range pts {
			row = append(row, p.String())
		}
		table.Append(row)
	}

	table.SetFooter(append([]string{fmt.Sprintf("%d steps", len(points))}, make([]string, len(labels))...))
	table.Render()

	return tableBuffer.String()
}

func init() {
	rootCmd.AddCommand(newTestCmd())
}
