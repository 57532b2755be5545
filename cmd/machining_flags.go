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
	// external
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/l2g/custom_errors"
	"github.com/louiss0/l2g/custom_flags"
	"github.com/louiss0/l2g/gcode"
)

// Flag names shared by the commands that compile toolpaths.
const (
	ITERATIONS_FLAG = "iterations"
	STEP_SIZE_FLAG  = "step-size"
	ANGLE_FLAG      = "angle"
	INIT_ANGLE_FLAG = "init-angle"
	FEED_RATE_FLAG  = "feed-rate"
	DEPTH_FLAG      = "depth"
)

// machiningFlags bundles the flags that override a figure's compile options
// so generate, compile, preview and stats register and apply them the same
// way.
type machiningFlags struct {
	iterations custom_flags.RangeFlag
	stepSize   custom_flags.FloatFlag
	angle      custom_flags.FloatFlag
	initAngle  custom_flags.FloatFlag
	feedRate   custom_flags.FloatFlag
	depth      custom_flags.FloatFlag
}

func newMachiningFlags() *machiningFlags {
	return &machiningFlags{
		iterations: custom_flags.NewRangeFlag(ITERATIONS_FLAG, 0, gcode.MAX_ITERATION_SIZE),
		stepSize:   custom_flags.NewFloatFlag(STEP_SIZE_FLAG),
		angle:      custom_flags.NewFloatFlag(ANGLE_FLAG),
		initAngle:  custom_flags.NewFloatFlag(INIT_ANGLE_FLAG),
		feedRate:   custom_flags.NewFloatFlag(FEED_RATE_FLAG),
		depth:      custom_flags.NewFloatFlag(DEPTH_FLAG),
	}
}

// register binds every machining flag onto the command.
func (m *machiningFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.VarP(m.iterations, ITERATIONS_FLAG, "n", "Number of L-system rewrite iterations")
	flags.Var(m.stepSize, STEP_SIZE_FLAG, "Length of one forward move in millimeters")
	flags.Var(m.angle, ANGLE_FLAG, "Turn angle in degrees for + and -")
	flags.Var(m.initAngle, INIT_ANGLE_FLAG, "Starting heading in degrees")
	flags.Var(m.feedRate, FEED_RATE_FLAG, "Cutting feed rate in mm/min")
	flags.Var(m.depth, DEPTH_FLAG, "Cutting depth in millimeters (must be negative)")
}

// apply overlays the flags the user actually set onto the base options.
// Angles on the command line are degrees; the options store radians.
func (m *machiningFlags) apply(cmd *cobra.Command, base gcode.Options) (gcode.Options, error) {
	flags := cmd.Flags()

	if flags.Changed(ITERATIONS_FLAG) {
		base.Iterations = m.iterations.Value()
	}

	if m.stepSize.IsSet() {
		if m.stepSize.Value() <= 0 {
			return base, custom_errors.CreateInvalidFlagErrorWithMessage(
				custom_errors.FlagName(STEP_SIZE_FLAG),
				"must be greater than zero",
			)
		}
		base.StepSize = m.stepSize.Value()
	}

	if m.angle.IsSet() {
		base.AngleIncrement = gcode.Degrees(m.angle.Value())
	}

	if m.initAngle.IsSet() {
		base.InitialAngle = gcode.Degrees(m.initAngle.Value())
	}

	if m.feedRate.IsSet() {
		if m.feedRate.Value() <= 0 {
			return base, custom_errors.CreateInvalidFlagErrorWithMessage(
				custom_errors.FlagName(FEED_RATE_FLAG),
				"must be greater than zero",
			)
		}
		base.FeedRate = m.feedRate.Value()
	}

	if m.depth.IsSet() {
		if m.depth.Value() >= 0 {
			return base, custom_errors.CreateInvalidFlagErrorWithMessage(
				custom_errors.FlagName(DEPTH_FLAG),
				"must be negative so the tool cuts into the material",
			)
		}
		base.CutDepth = m.depth.Value()
	}

	return base, nil
}
