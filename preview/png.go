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

package preview

import (
	"image"
	"image/png"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/penstroke"
	"seehuhn.de/go/penstroke/raster"
)

// Image renders the document into a new grayscale image.
func Image(doc *penstroke.Document, opts Options) *image.Gray {
	opts = opts.withDefaults()
	w, h := opts.size()
	img := image.NewGray(image.Rect(0, 0, w, h))

	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	r := raster.NewRasteriser(clip)
	r.CTM = matrix.Scale(opts.Scale, opts.Scale)

	emit := func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			v := uint8(c*255 + 0.5)
			if v > row[i] {
				row[i] = v
			}
		}
	}

	var pts []vec.Vec2
	outline := &path.Data{}
	for _, char := range doc.Characters {
		for _, s := range char.Strokes {
			pts = centres(s, pts)
			outline.Cmds = outline.Cmds[:0]
			outline.Coords = outline.Coords[:0]
			raster.Outline(pts, opts.LineWidth, outline)
			r.FillNonZero(outline, emit)
		}
	}
	return img
}

// PNG renders the document and writes it to w in PNG format.
func PNG(w io.Writer, doc *penstroke.Document, opts Options) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, Image(doc, opts))
}
