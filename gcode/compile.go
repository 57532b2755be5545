package gcode

import (
	"github.com/louiss0/l2g/lsystem"
)

// Options controls how an expanded symbol string is turned into a toolpath.
type Options struct {
	Iterations     int     // number of L-system rewrite passes
	StepSize       float64 // length of one forward move, in millimeters
	AngleIncrement float64 // turn size in radians for + and -
	InitialAngle   float64 // starting heading in radians
	FeedRate       float64 // cutting feed rate in mm/min, 0 means DEFAULT_FEED_RATE
	CutDepth       float64 // Z while cutting, 0 means DEFAULT_CUT_DEPTH
}

// withDefaults fills the zero-valued machining fields.
func (o Options) withDefaults() Options {
	if o.FeedRate == 0 {
		o.FeedRate = DEFAULT_FEED_RATE
	}
	if o.CutDepth == 0 {
		o.CutDepth = DEFAULT_CUT_DEPTH
	}
	if o.StepSize == 0 {
		o.StepSize = DEFAULT_STEP_SIZE
	}
	return o
}

// Program is a compiled toolpath plus the metadata needed to name and
// annotate the rendered file.
type Program struct {
	Instructions []Instruction
	XRange       Range
	YRange       Range
	Options      Options
}

// turtleState is the drawing cursor: where the tool is and where it points.
type turtleState struct {
	position    Position
	orientation Orientation
}

// Compile expands the system Options.Iterations times and walks the result
// with a turtle. F and G cut one step forward, + and - turn by the angle
// increment, [ pushes the turtle state and ] pops it, lifting the tool and
// rapiding back over the saved position. A, B and X draw nothing.
func Compile(system lsystem.System, opts Options) Program {
	opts = opts.withDefaults()
	symbols := system.Expand(opts.Iterations)

	state := turtleState{
		position:    Position{Z: opts.CutDepth},
		orientation: NewOrientation(opts.InitialAngle),
	}
	var stack []turtleState

	xRange := NewRange()
	yRange := NewRange()
	instructions := make([]Instruction, 0, len(symbols))

	for _, symbol := range symbols {
		switch symbol {
		case lsystem.TURN_LEFT:
			state.orientation = state.orientation.Rotate(opts.AngleIncrement)
			continue

		case lsystem.TURN_RIGHT:
			state.orientation = state.orientation.Rotate(-opts.AngleIncrement)
			continue

		case lsystem.PUSH_STATE:
			stack = append(stack, state)
			continue

		case lsystem.POP_STATE:
			if len(stack) == 0 {
				// Unbalanced pop, nothing to restore.
				continue
			}
			previous := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if previous == state {
				// Nothing moved since the push, so there is nothing to
				// rapid back to.
				continue
			}

			instructions = append(instructions,
				// Lift out of the material, travel over the saved position,
				// then plunge back down to it.
				Instruction{Command: RAPID_POSITIONING, Destination: state.position.Above(RETRACT_HEIGHT)},
				Instruction{Command: RAPID_POSITIONING, Destination: previous.position.Above(RETRACT_HEIGHT)},
				Instruction{Command: LINEAR_INTERPOLATION, Destination: previous.position, FeedRate: opts.FeedRate},
			)
			state = previous
			continue

		case lsystem.FORWARD, lsystem.FORWARD_ALT:
			state.position = state.position.Add(state.orientation.Vector(opts.StepSize))

		default:
			// Placeholders rewrite but never draw.
			continue
		}

		xRange = xRange.Update(state.position.X)
		yRange = yRange.Update(state.position.Y)
		instructions = append(instructions, Instruction{
			Command:     LINEAR_INTERPOLATION,
			Destination: state.position,
			FeedRate:    opts.FeedRate,
		})
	}

	return Program{
		Instructions: instructions,
		XRange:       xRange,
		YRange:       yRange,
		Options:      opts,
	}
}
