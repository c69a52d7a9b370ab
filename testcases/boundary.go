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

package testcases

import "seehuhn.de/go/penstroke/segment"

// threeApart draws three short horizontal strokes, 9 units apart.
const threeApart = "G0 X0Y0\nM3\nG1 X1Y0\nM5\n" +
	"G0 X10Y0\nM3\nG1 X11Y0\nM5\n" +
	"G0 X20Y0\nM3\nG1 X21Y0\nM5\n"

// fourClose draws four short strokes; all pen-up travels are below the
// distance threshold, the one between the second and third stroke is
// the longest.
const fourClose = "G0 X0Y0\nM3\nG1 X1Y0\nM5\n" +
	"G0 X1.5Y0\nM3\nG1 X2.5Y0\nM5\n" +
	"G0 X4Y0\nM3\nG1 X5Y0\nM5\n" +
	"G0 X5.5Y0\nM3\nG1 X6.5Y0\nM5\n"

var (
	fourClose0 = stroke(pt(1, 0))
	fourClose1 = stroke(pt(1.5, 0), pt(2.5, 0))
	fourClose2 = stroke(pt(4, 0), pt(5, 0))
	fourClose3 = stroke(pt(5.5, 0), pt(6.5, 0))
)

var distanceCases = []TestCase{
	{
		Name:  "two_characters",
		Input: "G0 X0Y0\nM3\nG1 X1Y1\nM5\nG0 X10Y10\nM3\nG1 X11Y11\nM5\n",
		Mode:  segment.ModeDistance,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{stroke(pt(1, 1))}},
			{Label: "unknown_1", Strokes: [][][2]int{stroke(pt(10, 10), pt(11, 11))}},
		},
	},
	{
		Name:  "one_character",
		Input: fourClose,
		Mode:  segment.ModeDistance,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{fourClose0, fourClose1, fourClose2, fourClose3}},
		},
	},
	{
		Name:  "comment_before_rapid",
		Input: "G0 X0Y0\nM3\nG1 X1Y0\nM5\n; next glyph\n\nG0 X10Y0\nM3\nG1 X11Y0\nM5\n",
		Mode:  segment.ModeDistance,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{stroke(pt(1, 0))}},
			{Label: "unknown_1", Strokes: [][][2]int{stroke(pt(10, 0), pt(11, 0))}},
		},
	},
	{
		Name:  "command_before_rapid",
		Input: "G0 X0Y0\nM3\nG1 X1Y0\nM5\nG4 P0.2\nG0 X10Y0\nM3\nG1 X11Y0\nM5\n",
		Mode:  segment.ModeDistance,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{stroke(pt(1, 0)), stroke(pt(10, 0), pt(11, 0))}},
		},
	},
	{
		Name:   "label_exhaustion",
		Input:  threeApart,
		Labels: []string{"永"},
		Mode:   segment.ModeDistance,
		Want: []Character{
			{Label: "永", Strokes: [][][2]int{stroke(pt(1, 0))}},
			{Label: "unknown_1", Strokes: [][][2]int{stroke(pt(10, 0), pt(11, 0))}},
			{Label: "unknown_2", Strokes: [][][2]int{stroke(pt(20, 0), pt(21, 0))}},
		},
	},
	{
		Name:   "labels",
		Input:  threeApart,
		Labels: []string{"天", "地", "人"},
		Mode:   segment.ModeDistance,
		Want: []Character{
			{Label: "天", Strokes: [][][2]int{stroke(pt(1, 0))}},
			{Label: "地", Strokes: [][][2]int{stroke(pt(10, 0), pt(11, 0))}},
			{Label: "人", Strokes: [][][2]int{stroke(pt(20, 0), pt(21, 0))}},
		},
	},
}

var fixedCases = []TestCase{
	{
		Name:   "partition",
		Input:  fourClose,
		Labels: []string{"a", "b"},
		Mode:   segment.ModeFixed,
		Want: []Character{
			{Label: "a", Strokes: [][][2]int{fourClose0, fourClose1}},
			{Label: "b", Strokes: [][][2]int{fourClose2, fourClose3}},
		},
	},
	{
		Name:   "too_few_strokes",
		Input:  fourClose,
		Labels: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
		Mode:   segment.ModeFixed,
		Want: []Character{
			{Label: "a", Strokes: [][][2]int{fourClose0, fourClose1, fourClose2, fourClose3}},
		},
		Fallback: true,
	},
	{
		Name:         "per_character",
		Input:        fourClose,
		Mode:         segment.ModeFixed,
		PerCharacter: 3,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{fourClose0, fourClose1, fourClose2}},
			{Label: "unknown_1", Strokes: [][][2]int{fourClose3}},
		},
	},
	{
		Name:  "no_labels",
		Input: threeApart,
		Mode:  segment.ModeFixed,
		Want: []Character{
			{Label: "unknown", Strokes: [][][2]int{
				stroke(pt(1, 0)),
				stroke(pt(10, 0), pt(11, 0)),
				stroke(pt(20, 0), pt(21, 0)),
			}},
		},
		Fallback: true,
	},
}

var outlierCases = []TestCase{
	{
		Name:   "largest_gap",
		Input:  fourClose,
		Labels: []string{"a", "b"},
		Mode:   segment.ModeOutlier,
		Want: []Character{
			{Label: "a", Strokes: [][][2]int{fourClose0, fourClose1}},
			{Label: "b", Strokes: [][][2]int{fourClose2, fourClose3}},
		},
	},
	{
		Name:  "too_few_strokes_for_ranking",
		Input: fourClose,
		Mode:  segment.ModeOutlier,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{fourClose0, fourClose1, fourClose2, fourClose3}},
		},
	},
	{
		Name:   "hybrid",
		Input:  fourClose + "G0 X20Y0\nM3\nG1 X21Y0\nM5\n",
		Labels: []string{"a", "b", "c"},
		Mode:   segment.ModeHybrid,
		Want: []Character{
			{Label: "a", Strokes: [][][2]int{fourClose0, fourClose1, fourClose2, fourClose3}},
			{Label: "b", Strokes: [][][2]int{stroke(pt(20, 0), pt(21, 0))}},
		},
	},
}
