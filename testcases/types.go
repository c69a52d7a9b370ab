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

// Package testcases holds a catalog of small G-code programs together
// with the documents they are expected to convert to.
//
// All expectations assume the default configuration: scale 20, offsets
// 800/1000, y-axis flipped at height 2160, distance threshold 5.
package testcases

import "seehuhn.de/go/penstroke/segment"

// TestCase is a single conversion test.
type TestCase struct {
	Name   string   // lowercase a-z and _ only
	Input  string   // G-code program
	Labels []string // character labels, may be nil

	Mode         segment.Mode // boundary policy
	PerCharacter int          // strokes per character for segment.ModeFixed

	Want     []Character // expected document
	Fallback bool        // whether the single-character fallback must fire
}

// Character is an expected character of the output document.
type Character struct {
	Label   string
	Strokes [][][2]int
}

// pt returns the canvas position of the source point (x, y) under the
// default configuration.  Only use it for coordinates where 20*x and
// 20*y are exact.
func pt(x, y float64) [2]int {
	return [2]int{int(20*x + 800), int(2160 - (20*y + 1000))}
}

// stroke is a helper to write a list of points.
func stroke(pts ...[2]int) [][2]int {
	return pts
}
