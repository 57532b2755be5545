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
	"strings"

	// external
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/l2g/figures"
	"github.com/louiss0/l2g/lsystem"
)

// NewFiguresCmd creates the figures command that lists the built-in presets.
func NewFiguresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "figures",
		Short: "List the built-in figures",
		Long: `List every built-in figure together with its axiom and default
parameters. Any parameter can be overridden when generating.`,
		Aliases: []string{"f", "list"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			goEnv := getGoEnvFromCommandContext(cmd)

			all := figures.All()

			if goEnv.IsDevelopmentMode() {
				names := lo.Map(all, func(figure figures.Figure, _ int) string {
					return figure.Name
				})
				fmt.Fprintf(
					cmd.OutOrStdout(),
					"Here are the figures %s",
					strings.Join(names, ","),
				)
				return nil
			}

			log.Info("Available figures:")

			figureTableScaffold := table.New().
				Headers("name", "description", "axiom", "iterations")

			lo.ForEach(all, func(figure figures.Figure, index int) {
				figureTableScaffold.Rows([]string{
					figure.Name,
					figure.Description,
					lsystem.String(figure.System.Axiom()),
					strconv.Itoa(figure.Options.Iterations),
				})
			})

			figureTable := lipgloss.NewStyle().Render(
				figureTableScaffold.Render(),
			)
			fmt.Println(figureTable)

			return nil
		},
	}
}
