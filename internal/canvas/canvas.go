// Package canvas rasterizes compiled toolpaths onto a rune grid so they can
// be previewed in the terminal before any material gets cut.
package canvas

import (
	"math"
	"strings"

	"github.com/louiss0/l2g/gcode"
)

const (
	drawRune  = '█'
	emptyRune = ' '
)

// segment is one cutting move projected onto the XY plane.
type segment struct {
	x0, y0, x1, y1 float64
}

// Render projects the program's cutting moves onto a width×height grid and
// returns it as newline-joined rows. Travel moves above the material are
// not drawn. The image is scaled to fit and flipped so +Y points up.
func Render(program gcode.Program, width, height int) string {
	if width < 2 || height < 2 || len(program.Instructions) == 0 {
		return ""
	}

	segments, minX, minY, maxX, maxY := cuttingSegments(program)
	if len(segments) == 0 {
		return ""
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	scaleX := float64(width-1) / spanX
	scaleY := float64(height-1) / spanY

	grid := make([][]rune, height)
	for row := range grid {
		grid[row] = make([]rune, width)
		for col := range grid[row] {
			grid[row][col] = emptyRune
		}
	}

	for _, seg := range segments {
		x0 := int(math.Round((seg.x0 - minX) * scaleX))
		y0 := height - 1 - int(math.Round((seg.y0-minY)*scaleY))
		x1 := int(math.Round((seg.x1 - minX) * scaleX))
		y1 := height - 1 - int(math.Round((seg.y1-minY)*scaleY))
		drawLine(grid, x0, y0, x1, y1)
	}

	rows := make([]string, height)
	for row := range grid {
		rows[row] = string(grid[row])
	}
	return strings.Join(rows, "\n")
}

// cuttingSegments extracts the XY projection of every move made at cut
// depth, together with the bounds of the drawing.
func cuttingSegments(program gcode.Program) (segments []segment, minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	current := gcode.Position{Z: program.Options.CutDepth}
	for _, instruction := range program.Instructions {
		destination := instruction.Destination

		if instruction.Command == gcode.LINEAR_INTERPOLATION && current.Z < 0 && destination.Z < 0 {
			segments = append(segments, segment{
				x0: current.X, y0: current.Y,
				x1: destination.X, y1: destination.Y,
			})
			minX = math.Min(minX, math.Min(current.X, destination.X))
			minY = math.Min(minY, math.Min(current.Y, destination.Y))
			maxX = math.Max(maxX, math.Max(current.X, destination.X))
			maxY = math.Max(maxY, math.Max(current.Y, destination.Y))
		}

		current = destination
	}

	return segments, minX, minY, maxX, maxY
}

// drawLine plots a Bresenham line between two grid cells.
func drawLine(grid [][]rune, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	stepX := 1
	if x0 > x1 {
		stepX = -1
	}
	stepY := 1
	if y0 > y1 {
		stepY = -1
	}
	err := dx + dy

	for {
		plot(grid, x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += stepX
		}
		if e2 <= dx {
			err += dx
			y0 += stepY
		}
	}
}

func plot(grid [][]rune, x, y int) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = drawRune
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
