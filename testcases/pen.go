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

var penCases = []TestCase{
	{
		Name:  "empty",
		Input: "",
		Mode:  segment.ModeDistance,
		Want:  nil,
	},
	{
		Name:  "comments_only",
		Input: "; generated by a plotter driver\n\n;another comment\n   \n",
		Mode:  segment.ModeDistance,
		Want:  nil,
	},
	{
		Name:  "single_point",
		Input: "G0 X0Y0\nM3\nG1 X1Y1\nM5\n",
		Mode:  segment.ModeDistance,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{stroke([2]int{820, 1140})}},
		},
	},
	{
		Name:  "carry_over_start",
		Input: "G0 X1Y2\nM3\nG1 X2Y2\nG1 X2Y3\nM5\n",
		Mode:  segment.ModeDistance,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{stroke(pt(1, 2), pt(2, 2), pt(2, 3))}},
		},
	},
	{
		// only the origin itself suppresses the start point
		Name:  "carry_over_start_on_axis",
		Input: "G0 X0Y5\nM3\nG1 X1Y5\nM5\n",
		Mode:  segment.ModeDistance,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{stroke(pt(0, 5), pt(1, 5))}},
		},
	},
	{
		Name:  "pen_down_up_without_moves",
		Input: "G0 X5Y5\nM3\nM5\nG0 X6Y6\nM3\nM5\n",
		Mode:  segment.ModeDistance,
		Want:  nil,
	},
	{
		Name:  "pen_up_without_down",
		Input: "M5\nG1 X1Y1\nG1 X2Y2\nM5\n",
		Mode:  segment.ModeDistance,
		Want:  nil,
	},
	{
		Name:  "unterminated_stroke",
		Input: "G0 X1Y1\nM3\nG1 X2Y1",
		Mode:  segment.ModeDistance,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{stroke(pt(1, 1), pt(2, 1))}},
		},
	},
	{
		Name:  "rapid_while_down",
		Input: "G0 X1Y1\nM3\nG1 X2Y1\nG0 X3Y1\nG1 X4Y1\nM5\n",
		Mode:  segment.ModeDistance,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{stroke(pt(1, 1), pt(2, 1), pt(4, 1))}},
		},
	},
	{
		Name: "noise",
		Input: "%\nG21\nG90\nF3000\n" +
			"G0 X1Y1\nM3 S1000\nG1 X1.2.3Y4\nG1 X2Y1 F1200\nG4 P0.1\nG1 X2Y2 ; up\nM5\n" +
			"M30\n",
		Mode: segment.ModeDistance,
		Want: []Character{
			{Label: "unknown_0", Strokes: [][][2]int{stroke(pt(1, 1), pt(2, 1), pt(2, 2))}},
		},
	},
	{
		Name:  "truncation",
		Input: "G0 X0Y0\nM3\nG1 X0.01Y0.01\nG1 X-40.01Y0\nM5\n",
		Mode:  segment.ModeDistance,
		Want: []Character{
			// 0.2+800 and 2160-1000.2, then -800.2+800
			{Label: "unknown_0", Strokes: [][][2]int{stroke([2]int{800, 1159}, [2]int{0, 1160})}},
		},
	},
}
