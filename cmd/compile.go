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
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/l2g/custom_flags"
	"github.com/louiss0/l2g/gcode"
	"github.com/louiss0/l2g/lsystem"
)

const (
	AXIOM_FLAG = "axiom"
	RULE_FLAG  = "rule"
)

// NewCompileCmd creates the compile command for user-defined L-systems.
func NewCompileCmd() *cobra.Command {
	machining := newMachiningFlags()
	axiomFlag := custom_flags.NewAxiomFlag(AXIOM_FLAG)
	rulesFlag := custom_flags.NewRulesFlag(RULE_FLAG)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a custom L-system from --axiom and --rule flags",
		Long: `Compile an arbitrary L-system into G-code. The axiom and every rule are
written with the turtle alphabet: F and G cut forward, + and - turn, [ and ]
push and pop the turtle state, A, B and X rewrite without drawing.

Examples:
  l2g compile --axiom F --rule 'F=F+F-F-F+F' -n 3 --angle 90
  l2g compile --axiom=-X --rule 'X=F+[[X]-X]-F[-FX]+X' --rule F=FF \
      -n 6 --angle 25 --init-angle 80 --step-size 0.5 --name fern`,
		Aliases: []string{"c"},
		RunE: func(cmd *cobra.Command, args []string) error {
			goEnv := getGoEnvFromCommandContext(cmd)
			debugExecutor := getDebugExecutorFromCommandContext(cmd)

			system, err := lsystem.NewSystem(axiomFlag.Symbols(), rulesFlag.Rules())
			if err != nil {
				return err
			}

			opts, err := machining.apply(cmd, gcode.Options{
				Iterations:     defaultCompileIterations,
				AngleIncrement: gcode.Degrees(defaultCompileAngle),
			})
			if err != nil {
				return err
			}

			debugExecutor.LogDebugMessageIfDebugIsTrue(
				"Compiling custom system",
				"axiom", axiomFlag.String(),
				"rules", rulesFlag.String(),
				"iterations", opts.Iterations,
			)

			program := gcode.Compile(system, opts)

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
				baseName = defaultCompileBaseName
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

			return nil
		},
	}

	machining.register(cmd)
	cmd.Flags().VarP(axiomFlag, AXIOM_FLAG, "a", "The L-system axiom, e.g. 'F-G-G'")
	cmd.Flags().VarP(rulesFlag, RULE_FLAG, "r", "A production rule written as HEAD=BODY (repeatable)")
	cmd.Flags().String(NAME_FLAG, "", "Base name for the output file")
	cmd.Flags().Bool(STDOUT_FLAG, false, "Print the program instead of writing a file")

	_ = cmd.MarkFlagRequired(AXIOM_FLAG)

	return cmd
}

// Defaults for custom systems when the user doesn't say otherwise.
const (
	defaultCompileIterations = 3
	defaultCompileAngle      = 90.0
	defaultCompileBaseName   = "custom"
)
