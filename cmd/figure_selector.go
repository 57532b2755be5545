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
	"github.com/charmbracelet/huh"
	"github.com/samber/lo"

	// internal
	"github.com/louiss0/l2g/figures"
)

// figureSelectUI is a private struct implementing FigureUISelector.
type figureSelectUI struct {
	sel   *huh.Select[string]
	value string
}

// newFigureSelectUI creates the interactive picker over the given figure
// names. Constructor returns the interface, the struct stays private.
func newFigureSelectUI(options []string) FigureUISelector {
	opts := lo.Map(options, func(name string, _ int) huh.Option[string] {
		description := name
		if figure, err := figures.Lookup(name); err == nil {
			description = name + " - " + figure.Description
		}
		return huh.NewOption(description, name)
	})

	sel := huh.NewSelect[string]().
		Title("Figure").
		Description("Pick the figure to compile").
		Options(opts...)

	return &figureSelectUI{sel: sel}
}

// Run executes the interactive UI and stores the selected value.
func (s *figureSelectUI) Run() error {
	s.sel.Value(&s.value)
	return s.sel.Run()
}

// Value returns the selected figure name.
func (s *figureSelectUI) Value() string {
	return s.value
}
