package canvas_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiss0/l2g/gcode"
	"github.com/louiss0/l2g/internal/canvas"
)

func cuttingMove(x, y float64) gcode.Instruction {
	return gcode.Instruction{
		Command:     gcode.LINEAR_INTERPOLATION,
		Destination: gcode.Position{X: x, Y: y, Z: -0.5},
		FeedRate:    100,
	}
}

func newProgram(instructions ...gcode.Instruction) gcode.Program {
	return gcode.Program{
		Instructions: instructions,
		Options:      gcode.Options{CutDepth: -0.5, FeedRate: 100, StepSize: 5},
	}
}

func TestRender(t *testing.T) {
	t.Run("draws a horizontal cut as a filled row", func(t *testing.T) {
		program := newProgram(cuttingMove(10, 0))

		drawing := canvas.Render(program, 5, 3)

		rows := strings.Split(drawing, "\n")
		require.Len(t, rows, 3)
		// Y never leaves zero, so the whole line lands on the bottom row.
		assert.Equal(t, "█████", rows[2])
		assert.Equal(t, "     ", rows[0])
	})

	t.Run("flips the image so +Y points up", func(t *testing.T) {
		program := newProgram(
			cuttingMove(0, 10),
			cuttingMove(10, 10),
		)

		drawing := canvas.Render(program, 3, 3)

		rows := strings.Split(drawing, "\n")
		require.Len(t, rows, 3)
		assert.Contains(t, rows[0], "█", "the top row holds the highest Y")
		assert.Equal(t, '█', []rune(rows[2])[0], "the vertical rise starts bottom left")
	})

	t.Run("skips travel moves above the material", func(t *testing.T) {
		program := newProgram(
			cuttingMove(5, 0),
			gcode.Instruction{Command: gcode.RAPID_POSITIONING, Destination: gcode.Position{X: 5, Y: 0, Z: 3}},
			gcode.Instruction{Command: gcode.RAPID_POSITIONING, Destination: gcode.Position{X: 5, Y: 10, Z: 3}},
			gcode.Instruction{Command: gcode.LINEAR_INTERPOLATION, Destination: gcode.Position{X: 5, Y: 10, Z: -0.5}, FeedRate: 100},
			cuttingMove(10, 10),
		)

		drawing := canvas.Render(program, 11, 11)

		rows := strings.Split(drawing, "\n")
		require.Len(t, rows, 11)
		// The rapid from (5,0) to (5,10) must leave the middle column empty.
		assert.Equal(t, ' ', []rune(rows[5])[5])
	})

	t.Run("returns nothing for an empty program", func(t *testing.T) {
		assert.Empty(t, canvas.Render(newProgram(), 10, 10))
	})

	t.Run("returns nothing when the grid is too small", func(t *testing.T) {
		program := newProgram(cuttingMove(10, 0))

		assert.Empty(t, canvas.Render(program, 1, 10))
		assert.Empty(t, canvas.Render(program, 10, 1))
	})

	t.Run("returns nothing when no move cuts material", func(t *testing.T) {
		program := newProgram(gcode.Instruction{
			Command:     gcode.RAPID_POSITIONING,
			Destination: gcode.Position{X: 5, Y: 5, Z: 3},
		})

		assert.Empty(t, canvas.Render(program, 10, 10))
	})
}
