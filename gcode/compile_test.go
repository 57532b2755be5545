package gcode_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiss0/l2g/gcode"
	"github.com/louiss0/l2g/lsystem"
)

// newSystem builds a system from compact strings so the cases read like the
// command line.
func newSystem(t *testing.T, axiom string, rules ...string) lsystem.System {
	t.Helper()

	axiomSymbols, err := lsystem.ParseSymbols(axiom)
	require.NoError(t, err)

	parsedRules, err := lsystem.ParseRules(rules)
	require.NoError(t, err)

	system, err := lsystem.NewSystem(axiomSymbols, parsedRules)
	require.NoError(t, err)
	return system
}

var testOptions = gcode.Options{
	StepSize:       5,
	AngleIncrement: math.Pi / 2,
	FeedRate:       100,
	CutDepth:       -0.5,
}

func TestCompileStraightLine(t *testing.T) {
	program := gcode.Compile(newSystem(t, "FF"), testOptions)

	require.Len(t, program.Instructions, 2)
	assert.Equal(t, "G01 X5 Y0 Z-0.5 F100", program.Instructions[0].String())
	assert.Equal(t, "G01 X10 Y0 Z-0.5 F100", program.Instructions[1].String())
	assert.Equal(t, 5.0, program.XRange.Min)
	assert.Equal(t, 10.0, program.XRange.Max)
}

func TestCompileTurns(t *testing.T) {
	t.Run("plus turns counterclockwise", func(t *testing.T) {
		program := gcode.Compile(newSystem(t, "F+F"), testOptions)

		require.Len(t, program.Instructions, 2)
		assert.Equal(t, "G01 X5 Y5 Z-0.5 F100", program.Instructions[1].String())
	})

	t.Run("minus turns clockwise", func(t *testing.T) {
		program := gcode.Compile(newSystem(t, "F-F"), testOptions)

		require.Len(t, program.Instructions, 2)
		assert.Equal(t, "G01 X5 Y-5 Z-0.5 F100", program.Instructions[1].String())
	})

	t.Run("G draws exactly like F", func(t *testing.T) {
		fProgram := gcode.Compile(newSystem(t, "F+F"), testOptions)
		gProgram := gcode.Compile(newSystem(t, "G+G"), testOptions)

		assert.Equal(t, fProgram.Instructions, gProgram.Instructions)
	})
}

func TestCompileBrackets(t *testing.T) {
	t.Run("pop lifts, travels back and plunges", func(t *testing.T) {
		program := gcode.Compile(newSystem(t, "F[+F]F"), testOptions)

		require.Len(t, program.Instructions, 6)
		assert.Equal(t, "G01 X5 Y0 Z-0.5 F100", program.Instructions[0].String())
		assert.Equal(t, "G01 X5 Y5 Z-0.5 F100", program.Instructions[1].String())
		// Lift out of the material, rapid over the saved position, plunge.
		assert.Equal(t, "G00 X5 Y5 Z3", program.Instructions[2].String())
		assert.Equal(t, "G00 X5 Y0 Z3", program.Instructions[3].String())
		assert.Equal(t, "G01 X5 Y0 Z-0.5 F100", program.Instructions[4].String())
		// The heading is restored too, so the last move continues along X.
		assert.Equal(t, "G01 X10 Y0 Z-0.5 F100", program.Instructions[5].String())
	})

	t.Run("pop with nothing moved emits no travel", func(t *testing.T) {
		program := gcode.Compile(newSystem(t, "F[]F"), testOptions)

		require.Len(t, program.Instructions, 2)
		assert.Equal(t, "G01 X10 Y0 Z-0.5 F100", program.Instructions[1].String())
	})

	t.Run("an unbalanced pop is ignored", func(t *testing.T) {
		program := gcode.Compile(newSystem(t, "]F"), testOptions)

		require.Len(t, program.Instructions, 1)
		assert.Equal(t, "G01 X5 Y0 Z-0.5 F100", program.Instructions[0].String())
	})
}

func TestCompilePlaceholdersDrawNothing(t *testing.T) {
	program := gcode.Compile(newSystem(t, "AXB"), testOptions)

	assert.Empty(t, program.Instructions)
}

func TestCompileExpandsBeforeWalking(t *testing.T) {
	opts := testOptions
	opts.Iterations = 1

	program := gcode.Compile(newSystem(t, "F", "F=F+F-F-F+F"), opts)

	assert.Len(t, program.Instructions, 5)
}

func TestCompileInitialAngle(t *testing.T) {
	opts := testOptions
	opts.InitialAngle = math.Pi / 2

	program := gcode.Compile(newSystem(t, "F"), opts)

	require.Len(t, program.Instructions, 1)
	assert.Equal(t, "G01 X0 Y5 Z-0.5 F100", program.Instructions[0].String())
}

func TestCompileFillsDefaults(t *testing.T) {
	program := gcode.Compile(newSystem(t, "F"), gcode.Options{AngleIncrement: math.Pi / 2})

	assert.Equal(t, gcode.DEFAULT_FEED_RATE, program.Options.FeedRate)
	assert.Equal(t, gcode.DEFAULT_CUT_DEPTH, program.Options.CutDepth)
	assert.Equal(t, gcode.DEFAULT_STEP_SIZE, program.Options.StepSize)
}
