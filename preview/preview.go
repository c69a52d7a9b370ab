// seehuhn.de/go/penstroke - stroke documents from pen-plotter G-code
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package preview draws stroke documents, for visual inspection of
// conversion results.
//
// Strokes are drawn in white on a black background, so that pixel values
// can be read as pen coverage.  Canvas coordinates are used unchanged,
// with the origin in the top-left corner; points outside the canvas are
// clipped.
package preview

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/penstroke"
)

// Default canvas size, matching a reMarkable tablet in portrait
// orientation.
const (
	DefaultWidth  = 1404
	DefaultHeight = 1872
)

// DefaultLineWidth is the pen width in canvas pixels.
const DefaultLineWidth = 3

// Options control the size and appearance of a preview.
// Zero values select the defaults.
type Options struct {
	// Width and Height give the canvas size in canvas pixels.
	Width, Height int

	// Scale is the number of output pixels (or PDF points) per canvas
	// pixel.
	Scale float64

	// LineWidth is the pen width in canvas pixels.
	LineWidth float64
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if !(o.Scale > 0) {
		o.Scale = 1
	}
	if !(o.LineWidth > 0) {
		o.LineWidth = DefaultLineWidth
	}
	return o
}

// size returns the output size in device units.
func (o Options) size() (w, h int) {
	w = max(int(math.Ceil(float64(o.Width)*o.Scale)), 1)
	h = max(int(math.Ceil(float64(o.Height)*o.Scale)), 1)
	return w, h
}

// centres returns the centres of the pixels of a stroke.
func centres(s penstroke.Stroke, buf []vec.Vec2) []vec.Vec2 {
	buf = buf[:0]
	for _, p := range s {
		buf = append(buf, vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5})
	}
	return buf
}
