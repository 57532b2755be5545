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

	// external
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/l2g/custom_errors"
	"github.com/louiss0/l2g/custom_flags"
	"github.com/louiss0/l2g/figures"
	"github.com/louiss0/l2g/gcode"
	"github.com/louiss0/l2g/internal/canvas"
)

const (
	WIDTH_FLAG  = "width"
	HEIGHT_FLAG = "height"
)

// NewPreviewCmd creates the preview command that draws a figure's toolpath
// in the terminal before anything is written or cut.
func NewPreviewCmd() *cobra.Command {
	machining := newMachiningFlags()
	widthFlag := custom_flags.NewRangeFlagWithDefault(WIDTH_FLAG, 2, 400, 72)
	heightFlag := custom_flags.NewRangeFlagWithDefault(HEIGHT_FLAG, 2, 200, 36)

	cmd := &cobra.Command{
		Use:   "preview <figure>",
		Short: "Draw a figure's toolpath in the terminal",
		Long: `Rasterize a figure's cutting moves onto a character grid so you can
sanity-check the toolpath before generating or cutting anything.

Examples:
  l2g preview hilbert
  l2g preview koch -n 4 --width 100 --height 50`,
		Aliases: []string{"p"},
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
			drawing := canvas.Render(program, widthFlag.Value(), heightFlag.Value())
			if drawing == "" {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					fmt.Sprintf("figure %q produced no cutting moves to preview", figure.Name),
				)
			}

			if goEnv.IsDevelopmentMode() {
				fmt.Fprintln(cmd.OutOrStdout(), drawing)
				return nil
			}

			framed := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1).
				Render(drawing)
			fmt.Println(framed)

			return nil
		},
	}

	machining.register(cmd)
	cmd.Flags().Var(widthFlag, WIDTH_FLAG, "Preview width in characters")
	cmd.Flags().Var(heightFlag, HEIGHT_FLAG, "Preview height in characters")

	_ = cmd.RegisterFlagCompletionFunc(
		WIDTH_FLAG,
		cobra.NoFileCompletions,
	)

	return cmd
}
