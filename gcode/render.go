package gcode

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// Render writes the full G-code program: header comments with the XY
// extents, spindle start, absolute metric mode, a rapid above the origin
// followed by the plunge to cut depth, the toolpath itself, a final lift
// clear of the material and the spindle stop.
func (p Program) Render(w io.Writer) error {
	if len(p.Instructions) == 0 {
		return fmt.Errorf("cannot render an empty program")
	}

	lines := []string{
		fmt.Sprintf("; x_range = %s", p.XRange),
		fmt.Sprintf("; y_range = %s", p.YRange),
		fmt.Sprintf("M3 S%d", SPINDLE_SPEED_RPM),
		"G90",
		"G21",
		Instruction{Command: RAPID_POSITIONING, Destination: Position{Z: START_HEIGHT}}.String(),
		Instruction{
			Command:     LINEAR_INTERPOLATION,
			Destination: Position{Z: p.Options.CutDepth},
			FeedRate:    p.Options.FeedRate,
		}.String(),
	}

	for _, instruction := range p.Instructions {
		lines = append(lines, instruction.String())
	}

	lastPosition := p.Instructions[len(p.Instructions)-1].Destination
	lines = append(lines,
		Instruction{Command: RAPID_POSITIONING, Destination: lastPosition.Above(END_HEIGHT)}.String(),
		"M5",
	)

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// FileName builds the conventional output name for the program, encoding
// the parameters that shaped it, e.g. "koch_n3_s5.00_ia0.00_ai1.57.nc".
func (p Program) FileName(base string) string {
	return fmt.Sprintf(
		"%s_n%d_s%.2f_ia%.2f_ai%.2f.nc",
		base,
		p.Options.Iterations,
		p.Options.StepSize,
		p.Options.InitialAngle,
		p.Options.AngleIncrement,
	)
}

// Stats summarizes a compiled program for display.
type Stats struct {
	Instructions   int
	CutDistance    float64 // total length of G01 moves, in millimeters
	TravelDistance float64 // total length of G00 moves, in millimeters
	EstimatedCut   time.Duration
	XRange         Range
	YRange         Range
}

// Stats walks the toolpath and accumulates distances per command kind. The
// estimated cutting time is the cut distance at the program's feed rate;
// rapids are excluded because their speed is machine-dependent.
func (p Program) Stats() Stats {
	current := Position{Z: p.Options.CutDepth}
	stats := Stats{
		Instructions: len(p.Instructions),
		XRange:       p.XRange,
		YRange:       p.YRange,
	}

	for _, instruction := range p.Instructions {
		distance := current.distanceTo(instruction.Destination)
		if instruction.Command == RAPID_POSITIONING {
			stats.TravelDistance += distance
		} else {
			stats.CutDistance += distance
		}
		current = instruction.Destination
	}

	if p.Options.FeedRate > 0 {
		minutes := stats.CutDistance / p.Options.FeedRate
		stats.EstimatedCut = time.Duration(minutes * float64(time.Minute))
	}

	return stats
}

func (p Position) distanceTo(other Position) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	dz := other.Z - p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
