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

// Package penstroke converts pen-plotter motion programs into stroke
// documents.
//
// The input is a G-code program as produced by plotter and laser-engraver
// toolchains for handwriting: rapid moves (G0) reposition the pen, linear
// moves (G1) draw while the pen is down, and M3/M5 lower and lift the pen.
// The output is a [Document]: an ordered list of characters, each an
// ordered list of strokes, each an ordered list of integer points in the
// coordinate space of the target canvas.
//
// The program itself does not say where one character ends and the next
// one begins.  A [Converter] recovers these boundaries with one of the
// policies from package [seehuhn.de/go/penstroke/segment], selected by
// [Config.Mode].  Labels for the characters can be supplied as a list of
// glyphs, see [SplitLabels] and [LoadLabels].
//
// A typical use is
//
//	conv, err := penstroke.NewConverter(penstroke.DefaultConfig())
//	if err != nil {
//		...
//	}
//	doc, report, err := conv.ConvertFile("poem.gcode", "poem.txt")
//	if err != nil {
//		...
//	}
//	err = penstroke.WriteFile("poem.json", doc, true)
package penstroke
