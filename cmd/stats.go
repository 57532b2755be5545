/*
Copyright © 2025 Shelton Louis

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	// standard library
	"fmt"
	"strconv"
	"time"

	// external
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/l2g/custom_errors"
	"github.com/louiss0/l2g/figures"
	"github.com/louiss0/l2g/gcode"
)

// Estimated cutting time is reported in whole seconds.
const timeRounding = time.Second

// NewStatsCmd creates the stats command that summarizes a figure's toolpath.
func NewStatsCmd() *cobra.Command {
	machining := newMachiningFlags()

	cmd := &cobra.Command{
		Use:   "stats <figure>",
		Short: "Show toolpath size, extents and estimated cutting time",
		Long: `Compile a figure and report how big the toolpath is: instruction count,
X/Y extents, cutting versus travel distance and the estimated cutting time
at the configured feed rate.

Examples:
  l2g stats barnsley
  l2g stats koch -n 5 --feed-rate 250`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					fmt.Sprintf("requires exactly one figure name, one of %v", figures.Names),
				)
			}
			if !lo.Contains(figures.Names[:], args[0]) {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					fmt.Sprintf("unknown figure %q, it must be one of %v", args[0], figures.Names),
				)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			goEnv := getGoEnvFromCommandContext(cmd)

			figure, err := figures.Lookup(args[0])
			if err != nil {
				return err
			}

			opts, err := machining.apply(cmd, figure.Options)
			if err != nil {
				return err
			}

			program := gcode.Compile(figure.System, opts)
			stats := program.Stats()

			rows := [][2]string{
				{"instructions", strconv.Itoa(stats.Instructions)},
				{"x range", stats.XRange.String()},
				{"y range", stats.YRange.String()},
				{"cut distance", fmt.Sprintf("%.2f mm", stats.CutDistance)},
				{"travel distance", fmt.Sprintf("%.2f mm", stats.TravelDistance)},
				{"feed rate", fmt.Sprintf("%.0f mm/min", program.Options.FeedRate)},
				{"estimated cut", stats.EstimatedCut.Round(timeRounding).String()},
			}

			if goEnv.IsDevelopmentMode() {
				lo.ForEach(rows, func(row [2]string, _ int) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", row[0], row[1])
				})
				return nil
			}

			log.Info("Toolpath statistics:", "figure", figure.Name)

			statsTableScaffold := table.New().
				Headers("metric", "value")

			lo.ForEach(rows, func(row [2]string, _ int) {
				statsTableScaffold.Rows([]string{row[0], row[1]})
			})

			statsTable := lipgloss.NewStyle().Render(
				statsTableScaffold.Render(),
			)
			fmt.Println(statsTable)

			return nil
		},
	}

	machining.register(cmd)

	return cmd
}
