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

package segment

// Distance starts a new character whenever the pen travels further than
// Threshold source units between two strokes.
//
// Only the rapid move directly following a pen-up is considered.  The
// pen need not go down again after that move for the boundary to count.
type Distance struct {
	Threshold float64
}

// Segment implements the [Policy] interface.
func (p *Distance) Segment(t *Trace, numLabels int) *Result {
	res := &Result{}
	splitAt(t, res, p.isBoundary(t))
	return res
}

func (p *Distance) isBoundary(t *Trace) func(int) bool {
	return func(i int) bool {
		d, ok := t.Gap(i)
		return ok && d > p.Threshold
	}
}
