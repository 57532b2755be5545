package lsystem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiss0/l2g/custom_errors"
	"github.com/louiss0/l2g/lsystem"
)

func mustParse(t *testing.T, value string) []lsystem.Symbol {
	t.Helper()
	symbols, err := lsystem.ParseSymbols(value)
	require.NoError(t, err)
	return symbols
}

func TestNewSystem(t *testing.T) {
	t.Run("accepts a valid axiom and rules", func(t *testing.T) {
		axiom := mustParse(t, "F-G-G")
		rules := lsystem.Rules{
			lsystem.FORWARD:     mustParse(t, "F-G+F+G-F"),
			lsystem.FORWARD_ALT: mustParse(t, "GG"),
		}

		system, err := lsystem.NewSystem(axiom, rules)

		require.NoError(t, err)
		assert.Equal(t, axiom, system.Axiom())
	})

	t.Run("rejects an empty axiom", func(t *testing.T) {
		_, err := lsystem.NewSystem(nil, lsystem.Rules{})

		assert.ErrorIs(t, err, custom_errors.ErrInvalidArgument)
	})

	t.Run("rejects a rule head outside the alphabet", func(t *testing.T) {
		rules := lsystem.Rules{
			lsystem.Symbol("Q"): mustParse(t, "FF"),
		}

		_, err := lsystem.NewSystem(mustParse(t, "F"), rules)

		assert.ErrorIs(t, err, custom_errors.ErrInvalidSymbol)
	})

	t.Run("rejects an empty rule body", func(t *testing.T) {
		rules := lsystem.Rules{
			lsystem.FORWARD: nil,
		}

		_, err := lsystem.NewSystem(mustParse(t, "F"), rules)

		assert.ErrorIs(t, err, custom_errors.ErrInvalidArgument)
	})
}

func TestSystemExpand(t *testing.T) {
	t.Run("zero iterations returns the axiom", func(t *testing.T) {
		system, err := lsystem.NewSystem(mustParse(t, "F-G-G"), lsystem.Rules{})
		require.NoError(t, err)

		assert.Equal(t, "F-G-G", lsystem.String(system.Expand(0)))
	})

	t.Run("rewrites every symbol in a single parallel pass", func(t *testing.T) {
		system, err := lsystem.NewSystem(mustParse(t, "F-G-G"), lsystem.Rules{
			lsystem.FORWARD:     mustParse(t, "F-G+F+G-F"),
			lsystem.FORWARD_ALT: mustParse(t, "GG"),
		})
		require.NoError(t, err)

		assert.Equal(t, "F-G+F+G-F-GG-GG", lsystem.String(system.Expand(1)))
	})

	t.Run("keeps symbols without a rule", func(t *testing.T) {
		system, err := lsystem.NewSystem(mustParse(t, "-X"), lsystem.Rules{
			lsystem.PLACEHOLDER_X: mustParse(t, "F+[[X]-X]-F[-FX]+X"),
		})
		require.NoError(t, err)

		assert.Equal(t, "-F+[[X]-X]-F[-FX]+X", lsystem.String(system.Expand(1)))
	})

	t.Run("grows the Koch curve by a factor of five per pass", func(t *testing.T) {
		system, err := lsystem.NewSystem(mustParse(t, "F"), lsystem.Rules{
			lsystem.FORWARD: mustParse(t, "F+F-F-F+F"),
		})
		require.NoError(t, err)

		// len(n+1) = len(n) + 8 * (number of F symbols)
		assert.Len(t, system.Expand(1), 9)
		assert.Len(t, system.Expand(2), 49)
		assert.Len(t, system.Expand(3), 249)
	})

	t.Run("expands the Hilbert curve placeholders without drawing them", func(t *testing.T) {
		system, err := lsystem.NewSystem(mustParse(t, "A"), lsystem.Rules{
			lsystem.PLACEHOLDER_A: mustParse(t, "+BF-AFA-FB+"),
			lsystem.PLACEHOLDER_B: mustParse(t, "-AF+BFB+FA-"),
		})
		require.NoError(t, err)

		assert.Equal(t, "+BF-AFA-FB+", lsystem.String(system.Expand(1)))
	})
}

func TestSystemAxiom(t *testing.T) {
	system, err := lsystem.NewSystem(mustParse(t, "F-G"), lsystem.Rules{})
	require.NoError(t, err)

	axiom := system.Axiom()
	axiom[0] = lsystem.PLACEHOLDER_X

	assert.Equal(t, "F-G", lsystem.String(system.Axiom()),
		"mutating the returned axiom must not change the system")
}

func TestParseSymbols(t *testing.T) {
	t.Run("parses every symbol of the alphabet", func(t *testing.T) {
		symbols, err := lsystem.ParseSymbols("FG+-[]ABX")

		require.NoError(t, err)
		assert.Equal(t, lsystem.Alphabet[:], symbols)
	})

	t.Run("rejects characters outside the alphabet", func(t *testing.T) {
		for _, value := range []string{"FQ", "f", "F F", "F\n"} {
			_, err := lsystem.ParseSymbols(value)
			assert.ErrorIs(t, err, custom_errors.ErrInvalidSymbol, "value %q", value)
		}
	})

	t.Run("rejects an empty string", func(t *testing.T) {
		_, err := lsystem.ParseSymbols("")

		assert.ErrorIs(t, err, custom_errors.ErrInvalidArgument)
	})
}

func TestParseRule(t *testing.T) {
	t.Run("splits HEAD=BODY", func(t *testing.T) {
		head, body, err := lsystem.ParseRule("F=F+F-F-F+F")

		require.NoError(t, err)
		assert.Equal(t, lsystem.FORWARD, head)
		assert.Equal(t, "F+F-F-F+F", lsystem.String(body))
	})

	t.Run("rejects a rule without an equals sign", func(t *testing.T) {
		_, _, err := lsystem.ParseRule("F+F-F")

		assert.ErrorIs(t, err, custom_errors.ErrInvalidArgument)
	})

	t.Run("rejects a multi-symbol head", func(t *testing.T) {
		_, _, err := lsystem.ParseRule("FG=FF")

		assert.ErrorIs(t, err, custom_errors.ErrInvalidArgument)
	})

	t.Run("rejects a body outside the alphabet", func(t *testing.T) {
		_, _, err := lsystem.ParseRule("F=Fq")

		assert.ErrorIs(t, err, custom_errors.ErrInvalidSymbol)
	})
}

func TestParseRules(t *testing.T) {
	t.Run("collects every rule", func(t *testing.T) {
		rules, err := lsystem.ParseRules([]string{"X=F+[[X]-X]-F[-FX]+X", "F=FF"})

		require.NoError(t, err)
		assert.Len(t, rules, 2)
		assert.Equal(t, "FF", lsystem.String(rules[lsystem.FORWARD]))
	})

	t.Run("rejects a duplicate head", func(t *testing.T) {
		_, err := lsystem.ParseRules([]string{"F=FF", "F=F+F"})

		assert.ErrorIs(t, err, custom_errors.ErrInvalidArgument)
	})
}
