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

import (
	"cmp"
	"slices"
)

// Outlier ranks the distances between consecutive rapid moves over the
// whole program and treats the M largest ones as character boundaries.
//
// M is half the number of labels if labels are given, and a tenth of the
// number of strokes otherwise.  A stroke ends a character if the rapid
// move following it is one of the selected gaps.
type Outlier struct{}

// Segment implements the [Policy] interface.
func (p *Outlier) Segment(t *Trace, numLabels int) *Result {
	res := &Result{}
	splitAt(t, res, outlierBoundary(t, numLabels))
	return res
}

// outlierBoundary selects the largest rapid-to-rapid gaps.  Gap j is the
// distance between rapid j-1 and rapid j and is attributed to rapid j.
func outlierBoundary(t *Trace, numLabels int) func(int) bool {
	type gap struct {
		rapid int
		dist  float64
	}
	var gaps []gap
	for j := 1; j < len(t.Rapids); j++ {
		d := t.Rapids[j].Target.Sub(t.Rapids[j-1].Target).Length()
		gaps = append(gaps, gap{rapid: j, dist: d})
	}
	// ties keep input order
	slices.SortStableFunc(gaps, func(a, b gap) int {
		return cmp.Compare(b.dist, a.dist)
	})

	m := len(t.Strokes) / 10
	if numLabels > 0 {
		m = numLabels / 2
	}
	m = min(m, len(gaps))

	selected := make(map[int]bool, m)
	for _, g := range gaps[:m] {
		selected[g.rapid] = true
	}
	return func(i int) bool {
		return selected[t.Strokes[i].Next]
	}
}

// Hybrid combines [Distance] and [Outlier]: a stroke ends a character if
// either policy says so.
type Hybrid struct {
	Distance Distance
}

// Segment implements the [Policy] interface.
func (p *Hybrid) Segment(t *Trace, numLabels int) *Result {
	byDistance := p.Distance.isBoundary(t)
	byRank := outlierBoundary(t, numLabels)

	res := &Result{}
	splitAt(t, res, func(i int) bool {
		return byDistance(i) || byRank(i)
	})
	return res
}
