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

// Package raster draws anti-aliased polygons into coverage buffers.
//
// The rasteriser computes, for every pixel, the exact fraction of the
// pixel area covered by a polygon filled with the nonzero winding rule.
// It is used to render previews of stroke documents; strokes are first
// turned into polygons by [Outline].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x-coordinate of the edge's line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser converts polygons to pixel coverage values between 0
// (outside) and 1 (inside).  Create one instance and reuse it: internal
// buffers grow as needed but are never released.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this device rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	cover     []float32 // signed vertical coverage change per pixel; reused as output
	area      []float32 // signed area left of the edges within each pixel
	edges     []edge
	active    []int     // indices into edges, for the current scanline
	crossings []float64 // scratch space for accumulate

	bbox struct {
		empty                  bool
		xMin, xMax, yMin, yMax float64
	}
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// Reset prepares the Rasteriser for a new clip rectangle and restores the
// identity transformation, keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillNonZero fills the path using the nonzero winding rule.  Open
// subpaths are closed implicitly.  The coverage is passed to emit one
// scanline at a time, from top to bottom; leading and trailing zeros are
// omitted.  The coverage slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}
		// drop edges which ended above this scanline
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].yMax() <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bot, xMin, xMax)
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// collectEdges transforms the path to device space and stores its
// non-horizontal edges.  The returned pixel bounds are clipped.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bbox.empty = true

	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// outlines never contain curves, use the chord
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}

	if r.bbox.empty {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbox.xMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.xMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.yMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms p0-p1 to device space and records it.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / (y1 - y0)})

	if r.bbox.empty {
		r.bbox.xMin, r.bbox.xMax = x0, x0
		r.bbox.yMin, r.bbox.yMax = y0, y0
		r.bbox.empty = false
	}
	r.bbox.xMin = min(r.bbox.xMin, x0, x1)
	r.bbox.xMax = max(r.bbox.xMax, x0, x1)
	r.bbox.yMin = min(r.bbox.yMin, y0, y1)
	r.bbox.yMax = max(r.bbox.yMax, y0, y1)
}

// Coverage model: an edge piece of height dy crossing pixel column x at
// horizontal offset f within the pixel adds sign*dy to cover[x] and
// sign*dy*(1-f) to area[x].  Summing cover from the left and adding the
// area of the current pixel gives the signed coverage of that pixel.

// accumulate adds the part of e between the heights top and bot to the
// cover and area buffers, which span the pixel columns [xMin, xMax).
func (r *Rasteriser) accumulate(e *edge, top, bot float64, xMin, xMax int) {
	top = max(top, e.yMin())
	bot = min(bot, e.yMax())
	if bot <= top {
		return
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(top), e.xAt(bot)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	// Split the piece where it crosses pixel column boundaries.
	r.crossings = append(r.crossings[:0], top, bot)
	if left != right {
		dydx := 1 / e.dxdy
		for x := left + 1; x <= right; x++ {
			yx := e.y0 + dydx*(float64(x)-e.x0)
			if yx > top && yx < bot {
				r.crossings = append(r.crossings, yx)
			}
		}
		slices.Sort(r.crossings)
	}

	for i := 1; i < len(r.crossings); i++ {
		y0, y1 := r.crossings[i-1], r.crossings[i]
		if y1 <= y0 {
			continue
		}
		xMid := e.xAt((y0 + y1) / 2)
		pix := int(math.Floor(xMid))
		c := sign * float32(y1-y0)

		switch {
		case pix < xMin:
			r.cover[0] += c
			r.area[0] += c
		case pix < xMax:
			r.cover[pix-xMin] += c
			r.area[pix-xMin] += c * float32(1-(xMid-float64(pix)))
		}
	}
}

// integrateNonZero turns cover and area into coverage values in [0, 1],
// in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of row between the first and last non-zero
// entry, and the offset of that part.  It returns nil if all entries are
// zero.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

// horizontalEdgeThreshold is the smallest vertical extent, in device
// pixels, for an edge to contribute coverage.
const horizontalEdgeThreshold = 1e-10
