// Package gcode compiles expanded L-system symbol strings into CNC toolpaths
// and renders them as G-code programs.
package gcode

import (
	"fmt"
	"math"
	"strconv"
)

// Machining defaults. Feed rate is in millimeters per minute, heights and
// depths in millimeters.
const (
	DEFAULT_FEED_RATE  = 100.0
	DEFAULT_CUT_DEPTH  = -0.5
	DEFAULT_STEP_SIZE  = 5.0
	RETRACT_HEIGHT     = 3.0
	START_HEIGHT       = 10.0
	END_HEIGHT         = 5.0
	SPINDLE_SPEED_RPM  = 10000
	COORDINATE_DIGITS  = 2
	MAX_ITERATION_SIZE = 12
)

// Vector is a 2D displacement in the XY plane.
type Vector struct {
	X, Y float64
}

// Position is an absolute 3D machine position.
type Position struct {
	X, Y, Z float64
}

// Add returns the position displaced by v in the XY plane. Z is unchanged.
func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z}
}

// Above returns the same XY position lifted to the given height.
func (p Position) Above(z float64) Position {
	return Position{X: p.X, Y: p.Y, Z: z}
}

// String renders the position as G-code coordinate words rounded to two
// decimals, e.g. "X2.5 Y0 Z-0.5".
func (p Position) String() string {
	return fmt.Sprintf(
		"X%s Y%s Z%s",
		formatCoordinate(p.X),
		formatCoordinate(p.Y),
		formatCoordinate(p.Z),
	)
}

// Command is a G-code motion command number.
type Command int

// The two motion commands the compiler emits.
const (
	RAPID_POSITIONING    Command = 0 // G00, travel move above the material
	LINEAR_INTERPOLATION Command = 1 // G01, cutting move at the feed rate
)

// String renders the command word, zero padded as most controllers print it.
func (c Command) String() string {
	return fmt.Sprintf("G%02d", int(c))
}

// Instruction is a single G-code motion line. A zero FeedRate means the line
// carries no feed word; rapid moves never carry one regardless.
type Instruction struct {
	Command     Command
	Destination Position
	FeedRate    float64
}

// String renders the full G-code line for this instruction.
func (i Instruction) String() string {
	out := fmt.Sprintf("%s %s", i.Command, i.Destination)
	if i.FeedRate != 0 && i.Command != RAPID_POSITIONING {
		out += fmt.Sprintf(" F%s", strconv.FormatFloat(i.FeedRate, 'f', -1, 64))
	}
	return out
}

// Range tracks the minimum and maximum coordinate reached on one axis.
// The zero value is not useful; use NewRange.
type Range struct {
	Min, Max float64
}

// NewRange returns an empty range that any update will narrow.
func NewRange() Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Update widens the range to include the given coordinate.
func (r Range) Update(coordinate float64) Range {
	if coordinate < r.Min {
		r.Min = coordinate
	}
	if coordinate > r.Max {
		r.Max = coordinate
	}
	return r
}

// Width returns the extent covered by the range, or 0 if nothing was tracked.
func (r Range) Width() float64 {
	if r.Min > r.Max {
		return 0
	}
	return r.Max - r.Min
}

// String renders the range the way program header comments print it.
func (r Range) String() string {
	return fmt.Sprintf("(min=%.2f, max=%.2f)", r.Min, r.Max)
}

// Orientation is a turtle heading in radians, normalized to [0, 2π).
type Orientation struct {
	angle float64
}

// NewOrientation normalizes the given angle into [0, 2π).
func NewOrientation(angle float64) Orientation {
	return Orientation{angle: math.Mod(math.Mod(angle, math.Pi*2)+math.Pi*2, math.Pi*2)}
}

// Angle returns the normalized heading in radians.
func (o Orientation) Angle() float64 {
	return o.angle
}

// Rotate returns the heading turned by delta radians. Positive deltas turn
// counterclockwise.
func (o Orientation) Rotate(delta float64) Orientation {
	return NewOrientation(o.angle + delta)
}

// Vector returns the heading as an XY displacement of the given length.
func (o Orientation) Vector(scale float64) Vector {
	return Vector{X: scale * math.Cos(o.angle), Y: scale * math.Sin(o.angle)}
}

// Degrees converts degrees to radians.
func Degrees(degrees float64) float64 {
	return degrees / 180 * math.Pi
}

// formatCoordinate rounds to two decimals and trims trailing zeros so lines
// stay short, e.g. 2.50 prints as "2.5" and 0.00 as "0".
func formatCoordinate(value float64) string {
	rounded := math.Round(value*math.Pow10(COORDINATE_DIGITS)) / math.Pow10(COORDINATE_DIGITS)
	if rounded == 0 {
		// Avoid "-0" for tiny negative values.
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
