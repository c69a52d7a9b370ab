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

package gcode

import (
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// number matches an optionally signed decimal with optional fraction.
const number = `([+-]?[0-9]*\.?[0-9]+)`

var (
	// moveRe matches G0/G1, with or without the leading zero padding,
	// followed by an X and a Y operand.  The Y operand must end the line
	// or be followed by whitespace or another word letter.
	moveRe = regexp.MustCompile(`^G0?([01])\s*X` + number + `\s*Y` + number + `(?:$|[\sA-Z])`)

	// penRe matches M3, M4 and M5 (also M03 etc.), but not M30 or M50.
	penRe = regexp.MustCompile(`^M0*([345])(?:$|[^0-9])`)
)

// ParseLine classifies a single line of G-code.
//
// Leading and trailing white space is ignored, as is a trailing comment
// introduced by ';'.  Command letters are matched case-insensitively.
// Lines which cannot be interpreted, including lines with malformed
// numeric operands, are returned as [Unrecognized]; ParseLine never fails.
func ParseLine(line string) Token {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == ';' {
		return Token{Kind: Skip}
	}
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	line = strings.ToUpper(line)

	switch line[0] {
	case 'G':
		m := moveRe.FindStringSubmatch(line)
		if m == nil {
			break
		}
		x, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			break
		}
		y, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			break
		}
		kind := RapidMove
		if m[1] == "1" {
			kind = LinearMove
		}
		return Token{Kind: kind, Pos: vec.Vec2{X: x, Y: y}}

	case 'M':
		m := penRe.FindStringSubmatch(line)
		if m == nil {
			break
		}
		if m[1] == "5" {
			return Token{Kind: PenUp}
		}
		return Token{Kind: PenDown}
	}

	return Token{Kind: Unrecognized}
}
