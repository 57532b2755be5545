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
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/l2g/custom_errors"
	"github.com/louiss0/l2g/figures"
	"github.com/louiss0/l2g/gcode"
)

const (
	NAME_FLAG   = "name"
	STDOUT_FLAG = "stdout"
	OPEN_FLAG   = "open"
)

// NewGenerateCmd creates the generate command. The figure picker and viewer
// detection are injected so tests can run without a terminal or a PATH.
func NewGenerateCmd(
	newFigureSelectUI func(options []string) FigureUISelector,
	detectGCodeViewer func() (string, error),
) *cobra.Command {
	machining := newMachiningFlags()

	cmd := &cobra.Command{
		Use:   "generate [figure]",
		Short: "Compile a built-in figure and write its .nc file",
		Long: `Compile one of the built-in figures into G-code and write it to the
output directory. Without an argument an interactive picker is shown.

Examples:
  l2g generate                       # Pick a figure interactively
  l2g generate koch                  # Koch curve with its default parameters
  l2g generate barnsley -n 6         # Fewer rewrite iterations
  l2g generate hilbert --stdout      # Print the program instead of writing a file
  l2g generate sierpinski --open     # Open the result in a detected G-code viewer`,
		Aliases: []string{"g", "gen"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					fmt.Sprintf("accepts at most one figure name, got %d arguments", len(args)),
				)
			}
			if len(args) == 1 && !lo.Contains(figures.Names[:], args[0]) {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					fmt.Sprintf("unknown figure %q, it must be one of %v", args[0], figures.Names),
				)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			goEnv := getGoEnvFromCommandContext(cmd)
			debugExecutor := getDebugExecutorFromCommandContext(cmd)

			var figureName string
			if len(args) == 1 {
				figureName = args[0]
			} else {
				selectUI := newFigureSelectUI(figures.Names[:])
				if err := selectUI.Run(); err != nil {
					return err
				}
				figureName = selectUI.Value()
			}

			figure, err := figures.Lookup(figureName)
			if err != nil {
				return err
			}

			opts, err := machining.apply(cmd, figure.Options)
			if err != nil {
				return err
			}

			debugExecutor.LogDebugMessageIfDebugIsTrue(
				"Compiling figure",
				"figure", figureName,
				"iterations", opts.Iterations,
			)

			program := gcode.Compile(figure.System, opts)

			toStdout, err := cmd.Flags().GetBool(STDOUT_FLAG)
			if err != nil {
				return err
			}

			if toStdout {
				return program.Render(cmd.OutOrStdout())
			}

			baseName, err := cmd.Flags().GetString(NAME_FLAG)
			if err != nil {
				return err
			}
			if baseName == "" {
				baseName = figureName
			}

			fileWriter := getFileWriterFromCommandContext(cmd)
			outputDir := getOutputDirFromCommandContext(cmd)

			path, err := fileWriter.WriteFile(outputDir, program.FileName(baseName), program.Render)
			if err != nil {
				return err
			}

			goEnv.ExecuteIfModeIsProduction(func() {
				log.Info("Wrote program", "path", path, "instructions", len(program.Instructions))
			})

			if goEnv.IsDevelopmentMode() {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote to '%s'\n", path)
			}

			open, err := cmd.Flags().GetBool(OPEN_FLAG)
			if err != nil {
				return err
			}

			if !open {
				return nil
			}

			viewer, err := detectGCodeViewer()
			if err != nil {
				return err
			}

			debugExecutor.LogViewerCommandIfDebugIsTrue(viewer, path)

			commandRunner := getCommandRunnerFromCommandContext(cmd)
			commandRunner.Command(viewer, path)
			return commandRunner.Run()
		},
	}

	machining.register(cmd)
	cmd.Flags().String(NAME_FLAG, "", "Base name for the output file (defaults to the figure name)")
	cmd.Flags().Bool(STDOUT_FLAG, false, "Print the program instead of writing a file")
	cmd.Flags().Bool(OPEN_FLAG, false, "Open the written file with a detected G-code viewer")

	_ = cmd.RegisterFlagCompletionFunc(
		NAME_FLAG,
		cobra.NoFileCompletions,
	)

	return cmd
}
