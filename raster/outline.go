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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline appends to dst a closed polygon for every segment of the
// polyline pts, as drawn by a pen of the given width with square end
// caps.  Every polygon has the same orientation, so that filling dst
// with the nonzero rule gives the union of the segments.  A polyline
// whose points all coincide becomes a square centred on that point.
//
// If dst is nil, a new path is allocated.  The resulting path is returned.
func Outline(pts []vec.Vec2, width float64, dst *path.Data) *path.Data {
	if dst == nil {
		dst = &path.Data{}
	}
	if len(pts) == 0 || width <= 0 {
		return dst
	}
	h := width / 2

	drawn := false
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Length()
		if l < zeroLengthThreshold {
			continue
		}
		t := d.Mul(h / l)
		n := vec.Vec2{X: -t.Y, Y: t.X}
		a = a.Sub(t)
		b = b.Add(t)
		dst.MoveTo(a.Add(n)).LineTo(b.Add(n)).LineTo(b.Sub(n)).LineTo(a.Sub(n)).Close()
		drawn = true
	}
	if !drawn {
		p := pts[0]
		dst.MoveTo(vec.Vec2{X: p.X - h, Y: p.Y + h}).
			LineTo(vec.Vec2{X: p.X + h, Y: p.Y + h}).
			LineTo(vec.Vec2{X: p.X + h, Y: p.Y - h}).
			LineTo(vec.Vec2{X: p.X - h, Y: p.Y - h}).
			Close()
	}
	return dst
}

// zeroLengthThreshold is the length below which a segment is treated as
// a single point.
const zeroLengthThreshold = 1e-9
