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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// render fills p into a new w×h coverage image.
func render(r *Rasteriser, p *path.Data, w, h int) [][]float32 {
	res := make([][]float32, h)
	for y := range res {
		res[y] = make([]float32, w)
	}
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		copy(res[y][xMin:], coverage)
	})
	return res
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
	coverage := render(r, triangle, 10, 1)[0]

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestClip(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: -5, Y: -5}).
		LineTo(vec.Vec2{X: 15, Y: -5}).
		LineTo(vec.Vec2{X: 15, Y: 15}).
		LineTo(vec.Vec2{X: -5, Y: 15}).
		Close()

	r := NewRasteriser(rect.Rect{LLx: 2, LLy: 3, URx: 6, URy: 5})
	r.FillNonZero(square, func(y, xMin int, coverage []float32) {
		if y < 3 || y >= 5 {
			t.Errorf("row %d outside clip", y)
		}
		if xMin != 2 || len(coverage) != 4 {
			t.Errorf("row %d: got columns [%d, %d), want [2, 6)", y, xMin, xMin+len(coverage))
		}
		for i, c := range coverage {
			if c != 1 {
				t.Errorf("pixel (%d, %d): coverage %g, want 1", xMin+i, y, c)
			}
		}
	})
}

func TestCTM(t *testing.T) {
	unit := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 0, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Matrix{4, 0, 0, 4, 2, 3}
	img := render(r, unit, 10, 10)

	for y := range 10 {
		for x := range 10 {
			want := float32(0)
			if x >= 2 && x < 6 && y >= 3 && y < 7 {
				want = 1
			}
			if img[y][x] != want {
				t.Errorf("pixel (%d, %d): coverage %g, want %g", x, y, img[y][x], want)
			}
		}
	}

	r.Reset(rect.Rect{URx: 10, URy: 10})
	if r.CTM != matrix.Identity {
		t.Errorf("Reset did not restore the identity CTM")
	}
}

func TestOutlineSegment(t *testing.T) {
	p := Outline([]vec.Vec2{{X: 5, Y: 10}, {X: 25, Y: 10}}, 4, nil)

	r := NewRasteriser(rect.Rect{URx: 30, URy: 20})
	img := render(r, p, 30, 20)

	for y := range 20 {
		for x := range 30 {
			// square caps extend the segment by half the width
			inside := x >= 3 && x < 27 && y >= 8 && y < 12
			got := img[y][x]
			if inside && got != 1 {
				t.Errorf("pixel (%d, %d): coverage %g, want 1", x, y, got)
			} else if !inside && got != 0 {
				t.Errorf("pixel (%d, %d): coverage %g, want 0", x, y, got)
			}
		}
	}
}

func TestOutlineOrientation(t *testing.T) {
	// A stroke that doubles back on itself must not cancel out.
	pts := []vec.Vec2{{X: 5, Y: 10}, {X: 25, Y: 10}, {X: 5, Y: 10}}
	p := Outline(pts, 4, nil)

	r := NewRasteriser(rect.Rect{URx: 30, URy: 20})
	img := render(r, p, 30, 20)
	for x := 3; x < 27; x++ {
		if img[10][x] != 1 {
			t.Errorf("pixel (%d, 10): coverage %g, want 1", x, img[10][x])
		}
	}
}

func TestOutlinePoint(t *testing.T) {
	for _, pts := range [][]vec.Vec2{
		{{X: 10, Y: 10}},
		{{X: 10, Y: 10}, {X: 10, Y: 10}},
	} {
		p := Outline(pts, 2, nil)

		r := NewRasteriser(rect.Rect{URx: 20, URy: 20})
		img := render(r, p, 20, 20)

		var total float32
		for y := range 20 {
			for x := range 20 {
				total += img[y][x]
			}
		}
		if total != 4 {
			t.Errorf("%d points: total coverage %g, want 4", len(pts), total)
		}
		if img[9][9] != 1 || img[10][10] != 1 {
			t.Errorf("%d points: square not centred on the point", len(pts))
		}
	}
}

func TestOutlineEmpty(t *testing.T) {
	if p := Outline(nil, 3, nil); len(p.Cmds) != 0 {
		t.Errorf("empty polyline gave %d commands", len(p.Cmds))
	}
	if p := Outline([]vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}, 0, nil); len(p.Cmds) != 0 {
		t.Errorf("zero width gave %d commands", len(p.Cmds))
	}
}

// TestAgainstVector compares the coverage of a slanted stroke with the
// output of golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 40
	pts := []vec.Vec2{{X: 4.3, Y: 6.1}, {X: 33.7, Y: 21.9}, {X: 12.2, Y: 35.5}}
	p := Outline(pts, 3.5, nil)

	r := NewRasteriser(rect.Rect{URx: size, URy: size})
	ours := render(r, p, size, size)

	ref := referenceImage(p, size)
	for y := range size {
		for x := range size {
			want := float64(ref.AlphaAt(x, y).A) / 255
			got := float64(ours[y][x])
			if math.Abs(got-want) > 3.0/255 {
				t.Errorf("pixel (%d, %d): coverage %.3f, x/image/vector gives %.3f", x, y, got, want)
			}
		}
	}
}

// referenceImage rasterises p with x/image/vector.
func referenceImage(p *path.Data, size int) *image.Alpha {
	v := vector.NewRasterizer(size, size)
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			v.MoveTo(float32(p.Coords[k].X), float32(p.Coords[k].Y))
			k++
		case path.CmdLineTo:
			v.LineTo(float32(p.Coords[k].X), float32(p.Coords[k].Y))
			k++
		case path.CmdClose:
			v.ClosePath()
		}
	}
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	v.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})
	return dst
}

// zigzag returns a polyline filling most of a size×size canvas.
func zigzag(size int) []vec.Vec2 {
	var pts []vec.Vec2
	s := float64(size)
	for i := range 20 {
		y := s * (0.05 + 0.9*float64(i)/19)
		x := s * 0.05
		if i%2 == 1 {
			x = s * 0.95
		}
		pts = append(pts, vec.Vec2{X: x, Y: y})
	}
	return pts
}

// BenchmarkRasteriserStroke benchmarks filling the outline of a zigzag stroke.
func BenchmarkRasteriserStroke(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			p := Outline(zigzag(size), float64(size)/100+1, nil)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorStroke benchmarks x/image/vector on the same outline.
func BenchmarkVectorStroke(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			p := Outline(zigzag(size), float64(size)/100+1, nil)

			b.ReportAllocs()
			for b.Loop() {
				referenceImage(p, size)
			}
		})
	}
}
