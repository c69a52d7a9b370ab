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

import "fmt"

// FixedCount assigns strokes to characters by count alone.
//
// With N labels and K strokes, character i receives the strokes
// floor(i*K/N) up to (but excluding) floor((i+1)*K/N).  If fewer than N/2
// strokes are available, the partition would be meaningless and all
// strokes are returned as a single fallback character instead.
type FixedCount struct {
	// PerCharacter, if positive, overrides the label-based partition:
	// every character gets this many strokes.
	PerCharacter int
}

// Segment implements the [Policy] interface.
func (p *FixedCount) Segment(t *Trace, numLabels int) *Result {
	res := &Result{}
	k := len(t.Strokes)
	if k == 0 {
		return res
	}

	if p.PerCharacter > 0 {
		for start := 0; start < k; start += p.PerCharacter {
			end := min(start+p.PerCharacter, k)
			res.Groups = append(res.Groups, Group{Start: start, End: end, Index: len(res.Groups)})
		}
		return res
	}

	n := numLabels
	switch {
	case n == 0:
		res.Warnings = append(res.Warnings,
			"fixed-count segmentation without labels, treating all strokes as one character")
		res.Groups = []Group{{Start: 0, End: k, Fallback: true}}
		return res
	case 2*k < n:
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("only %d strokes for %d labels, treating all strokes as one character", k, n))
		res.Groups = []Group{{Start: 0, End: k, Fallback: true}}
		return res
	}

	for i := range n {
		start := i * k / n
		end := (i + 1) * k / n
		if start >= end {
			continue
		}
		res.Groups = append(res.Groups, Group{Start: start, End: end, Index: i})
	}
	fallback(t, res)
	return res
}
