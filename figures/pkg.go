// Package figures holds the built-in L-system figure presets and their
// default machining parameters.
package figures

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/louiss0/l2g/custom_errors"
	"github.com/louiss0/l2g/gcode"
	"github.com/louiss0/l2g/lsystem"
)

// Preset names accepted on the command line.
const (
	KOCH       = "koch"
	HILBERT    = "hilbert"
	SIERPINSKI = "sierpinski"
	BARNSLEY   = "barnsley"
)

// Names lists the presets in display order.
var Names = [4]string{KOCH, HILBERT, SIERPINSKI, BARNSLEY}

// Figure couples an L-system with the parameters that render it well.
type Figure struct {
	Name        string
	Description string
	System      lsystem.System
	Options     gcode.Options
}

// Compile builds the figure's toolpath with its default parameters.
func (f Figure) Compile() gcode.Program {
	return gcode.Compile(f.System, f.Options)
}

var presets map[string]Figure

func init() {
	presets = map[string]Figure{
		KOCH: {
			Name:        KOCH,
			Description: "Koch curve",
			System: mustSystem("F", map[string]string{
				"F": "F+F-F-F+F",
			}),
			Options: gcode.Options{
				Iterations:     3,
				StepSize:       5,
				AngleIncrement: math.Pi / 2,
			},
		},
		HILBERT: {
			Name:        HILBERT,
			Description: "Hilbert space-filling curve",
			System: mustSystem("A", map[string]string{
				"A": "+BF-AFA-FB+",
				"B": "-AF+BFB+FA-",
			}),
			Options: gcode.Options{
				Iterations:     5,
				StepSize:       5,
				AngleIncrement: math.Pi / 2,
			},
		},
		SIERPINSKI: {
			Name:        SIERPINSKI,
			Description: "Sierpinski triangle",
			System: mustSystem("F-G-G", map[string]string{
				"F": "F-G+F+G-F",
				"G": "GG",
			}),
			Options: gcode.Options{
				Iterations:     5,
				StepSize:       4,
				AngleIncrement: math.Pi * 2 / 3,
				InitialAngle:   math.Pi / 3,
			},
		},
		BARNSLEY: {
			Name:        BARNSLEY,
			Description: "Barnsley fern",
			System: mustSystem("-X", map[string]string{
				"X": "F+[[X]-X]-F[-FX]+X",
				"F": "FF",
			}),
			Options: gcode.Options{
				Iterations:     7,
				StepSize:       0.5,
				AngleIncrement: gcode.Degrees(25),
				InitialAngle:   math.Pi/2 - 0.1,
			},
		},
	}
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Figure, error) {
	figure, ok := presets[name]
	if !ok {
		return Figure{}, custom_errors.CreateInvalidArgumentErrorWithMessage(
			fmt.Sprintf("unknown figure %q, it must be one of %v", name, Names),
		)
	}
	return figure, nil
}

// All returns the presets in display order.
func All() []Figure {
	return lo.Map(Names[:], func(name string, _ int) Figure {
		return presets[name]
	})
}

// mustSystem builds a preset system from compact strings. Presets are
// package constants, so a parse failure is a programming error.
func mustSystem(axiom string, rules map[string]string) lsystem.System {
	axiomSymbols, err := lsystem.ParseSymbols(axiom)
	if err != nil {
		panic(err)
	}

	parsedRules := make(lsystem.Rules, len(rules))
	for head, body := range rules {
		headSymbols, err := lsystem.ParseSymbols(head)
		if err != nil {
			panic(err)
		}
		bodySymbols, err := lsystem.ParseSymbols(body)
		if err != nil {
			panic(err)
		}
		parsedRules[headSymbols[0]] = bodySymbols
	}

	system, err := lsystem.NewSystem(axiomSymbols, parsedRules)
	if err != nil {
		panic(err)
	}
	return system
}
