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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/penstroke"
)

// PDF writes the document as a single-page PDF file.  Each stroke
// becomes one vector path with round caps and joins.  The page size is
// the canvas size times opts.Scale, in PDF points.
func PDF(fname string, doc *penstroke.Document, opts Options) error {
	opts = opts.withDefaults()
	w := float64(opts.Width) * opts.Scale
	h := float64(opts.Height) * opts.Scale

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF has the origin in the bottom-left corner, the canvas in the
	// top-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	page.Transform(matrix.Scale(opts.Scale, opts.Scale))

	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(opts.LineWidth)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for _, char := range doc.Characters {
		for _, s := range char.Strokes {
			if len(s) == 0 {
				continue
			}
			pts := centres(s, nil)
			page.MoveTo(pts[0].X, pts[0].Y)
			if len(pts) == 1 {
				// a zero-length segment with round caps draws a dot
				page.LineTo(pts[0].X, pts[0].Y)
			}
			for _, p := range pts[1:] {
				page.LineTo(p.X, p.Y)
			}
			page.Stroke()
		}
	}

	return page.Close()
}
