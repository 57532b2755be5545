package figures_test

import (
	"math"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiss0/l2g/custom_errors"
	"github.com/louiss0/l2g/figures"
	"github.com/louiss0/l2g/gcode"
	"github.com/louiss0/l2g/lsystem"
)

func TestLookup(t *testing.T) {
	t.Run("returns the named preset", func(t *testing.T) {
		figure, err := figures.Lookup(figures.KOCH)

		require.NoError(t, err)
		assert.Equal(t, figures.KOCH, figure.Name)
		assert.Equal(t, "F", lsystem.String(figure.System.Axiom()))
		assert.Equal(t, 3, figure.Options.Iterations)
		assert.InDelta(t, math.Pi/2, figure.Options.AngleIncrement, 1e-9)
	})

	t.Run("rejects an unknown name", func(t *testing.T) {
		_, err := figures.Lookup("dragon")

		assert.ErrorIs(t, err, custom_errors.ErrInvalidArgument)
	})
}

func TestAll(t *testing.T) {
	all := figures.All()

	require.Len(t, all, len(figures.Names))

	names := lo.Map(all, func(figure figures.Figure, _ int) string {
		return figure.Name
	})
	assert.Equal(t, figures.Names[:], names)
}

func TestPresetParameters(t *testing.T) {
	t.Run("sierpinski starts rotated onto the triangle", func(t *testing.T) {
		figure, err := figures.Lookup(figures.SIERPINSKI)

		require.NoError(t, err)
		assert.Equal(t, "F-G-G", lsystem.String(figure.System.Axiom()))
		assert.InDelta(t, 2*math.Pi/3, figure.Options.AngleIncrement, 1e-9)
		assert.InDelta(t, math.Pi/3, figure.Options.InitialAngle, 1e-9)
		assert.Equal(t, 4.0, figure.Options.StepSize)
	})

	t.Run("barnsley leans slightly off vertical", func(t *testing.T) {
		figure, err := figures.Lookup(figures.BARNSLEY)

		require.NoError(t, err)
		assert.Equal(t, "-X", lsystem.String(figure.System.Axiom()))
		assert.InDelta(t, gcode.Degrees(25), figure.Options.AngleIncrement, 1e-9)
		assert.InDelta(t, math.Pi/2-0.1, figure.Options.InitialAngle, 1e-9)
		assert.Equal(t, 7, figure.Options.Iterations)
		assert.Equal(t, 0.5, figure.Options.StepSize)
	})
}

func TestEveryPresetCompiles(t *testing.T) {
	for _, name := range figures.Names {
		figure, err := figures.Lookup(name)
		require.NoError(t, err)

		program := figure.Compile()

		assert.NotEmpty(t, program.Instructions, "figure %s produced no toolpath", name)
		assert.Greater(t, program.XRange.Width()+program.YRange.Width(), 0.0,
			"figure %s has no extent", name)
	}
}
