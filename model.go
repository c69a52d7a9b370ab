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
	"encoding/json"
	"fmt"
)

// Point is a position on the target canvas.
// In JSON, a point is written as a two-element array [x, y].
type Point struct {
	X, Y int
}

// MarshalJSON implements the json.Marshaler interface.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Point) UnmarshalJSON(data []byte) error {
	var xy []int
	if err := json.Unmarshal(data, &xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("point must have 2 coordinates, got %d", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// Stroke is one continuous path traced while the pen was down.
// Strokes in a [Document] are never empty.
type Stroke []Point

// Character is a group of strokes which together form one glyph.
type Character struct {
	// Label is the glyph this character represents.  If no label was
	// available, a placeholder of the form "unknown_<index>" is used.
	Label string `json:"character"`

	// Strokes are given in drawing order.
	Strokes []Stroke `json:"strokes"`
}

// Document is the result of converting a motion program.
type Document struct {
	Characters []Character `json:"characters"`
}

// MarshalJSON implements the json.Marshaler interface.
// An empty document is written as {"characters": []}.
func (d Document) MarshalJSON() ([]byte, error) {
	type plain Document
	if d.Characters == nil {
		d.Characters = []Character{}
	}
	return json.Marshal(plain(d))
}

// NumStrokes returns the total number of strokes in the document.
func (d Document) NumStrokes() int {
	n := 0
	for _, c := range d.Characters {
		n += len(c.Strokes)
	}
	return n
}

// Bounds returns the smallest rectangle containing all points of the
// document, as (xMin, yMin) and (xMax, yMax).  The last return value is
// false if the document has no points.
func (d Document) Bounds() (lo, hi Point, ok bool) {
	for _, c := range d.Characters {
		for _, s := range c.Strokes {
			for _, p := range s {
				if !ok {
					lo, hi, ok = p, p, true
					continue
				}
				lo.X = min(lo.X, p.X)
				lo.Y = min(lo.Y, p.Y)
				hi.X = max(hi.X, p.X)
				hi.Y = max(hi.Y, p.Y)
			}
		}
	}
	return lo, hi, ok
}
