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

package penstroke

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transformer maps source coordinates to canvas coordinates.
//
// The map first applies the affine transformation M and then, if FlipY is
// set, mirrors the y-coordinate at Height.  The result is truncated
// towards zero, not rounded.
type Transformer struct {
	M      matrix.Matrix
	FlipY  bool
	Height float64
}

// NewTransformer returns the transformer described by the scale, offset
// and flip fields of cfg.
func NewTransformer(cfg Config) *Transformer {
	return &Transformer{
		M:      matrix.Matrix{cfg.ScaleX, 0, 0, cfg.ScaleY, cfg.OffsetX, cfg.OffsetY},
		FlipY:  cfg.FlipY,
		Height: float64(cfg.CanvasHeight),
	}
}

// Apply transforms the source point (x, y).
func (t *Transformer) Apply(x, y float64) Point {
	sx := t.M[0]*x + t.M[2]*y + t.M[4]
	sy := t.M[1]*x + t.M[3]*y + t.M[5]
	if t.FlipY {
		sy = t.Height - sy
	}
	// conversion to int truncates towards zero
	return Point{X: int(sx), Y: int(sy)}
}

// ApplyVec transforms the source point v.
func (t *Transformer) ApplyVec(v vec.Vec2) Point {
	return t.Apply(v.X, v.Y)
}
