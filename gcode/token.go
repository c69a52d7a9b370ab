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

// Package gcode classifies the lines of a pen-plotter motion program.
//
// Only the small subset of G-code which pen plotters and laser engravers
// use for drawing is understood: rapid moves (G0), linear moves (G1) and
// the spindle/laser on and off commands (M3, M4, M5) which stand for
// pen-down and pen-up.  Everything else is reported as [Unrecognized] and
// is meant to be ignored by the caller.
package gcode

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Kind identifies the class of a G-code line.
type Kind int

// These are the token kinds produced by [ParseLine].
const (
	Skip         Kind = iota // blank line or comment
	RapidMove                // G0 X.. Y..
	LinearMove               // G1 X.. Y..
	PenDown                  // M3 or M4
	PenUp                    // M5
	Unrecognized             // anything else, including malformed operands
)

func (k Kind) String() string {
	switch k {
	case Skip:
		return "skip"
	case RapidMove:
		return "rapid"
	case LinearMove:
		return "linear"
	case PenDown:
		return "pen-down"
	case PenUp:
		return "pen-up"
	case Unrecognized:
		return "unrecognized"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsMove reports whether tokens of this kind carry a target position.
func (k Kind) IsMove() bool {
	return k == RapidMove || k == LinearMove
}

// Token is one classified line of input.
type Token struct {
	Kind Kind

	// Pos is the target of a move, in source coordinates.
	// It is only meaningful if Kind.IsMove() is true.
	Pos vec.Vec2

	// Line is the 1-based line number, or 0 if the token was not
	// produced by a [Scanner].
	Line int
}

func (t Token) String() string {
	if t.Kind.IsMove() {
		return fmt.Sprintf("%d: %s (%g, %g)", t.Line, t.Kind, t.Pos.X, t.Pos.Y)
	}
	return fmt.Sprintf("%d: %s", t.Line, t.Kind)
}
