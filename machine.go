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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/penstroke/gcode"
	"seehuhn.de/go/penstroke/segment"
)

// PenState is the logical position of the drawing tool.
type PenState int

// These are the two pen states.
const (
	PenUp PenState = iota
	PenDown
)

func (s PenState) String() string {
	if s == PenDown {
		return "down"
	}
	return "up"
}

// machine follows the pen through a stream of tokens and collects the
// strokes drawn.  Tokens must be fed in input order.
type machine struct {
	tf *Transformer

	state  PenState
	cursor vec.Vec2 // source space
	buf    Stroke   // stroke in progress
	drawn  bool     // buf contains at least one point from a linear move

	strokes []Stroke
	trace   segment.Trace

	// waiting is the index of the stroke whose following rapid move is
	// still to be determined, or -1.
	waiting int

	// counters for the report
	unrecognized   int
	rapidWhileDown int
}

func newMachine(tf *Transformer) *machine {
	return &machine{tf: tf, waiting: -1}
}

// step processes a single token.
func (m *machine) step(tok gcode.Token) {
	if tok.Kind == gcode.Skip {
		return
	}

	if m.waiting >= 0 {
		if tok.Kind == gcode.RapidMove {
			m.trace.Strokes[m.waiting].Next = len(m.trace.Rapids)
		}
		m.waiting = -1
	}

	switch tok.Kind {
	case gcode.PenDown:
		m.state = PenDown
		if len(m.buf) == 0 && m.cursor != (vec.Vec2{}) {
			// the pen goes down where the last move ended
			m.buf = append(m.buf, m.tf.ApplyVec(m.cursor))
		}

	case gcode.PenUp:
		if m.state == PenDown && m.drawn {
			m.seal(tok.Line)
			m.waiting = len(m.strokes) - 1
		}
		// A pen-down/pen-up pair without linear moves leaves no stroke,
		// not even the carried-over start point.
		m.buf = nil
		m.state = PenUp

	case gcode.RapidMove:
		m.cursor = tok.Pos
		m.trace.Rapids = append(m.trace.Rapids, segment.Rapid{Target: tok.Pos, Line: tok.Line})
		if m.state == PenDown {
			// Rapid moves are travel moves by convention, so no point is
			// recorded even if the pen is down.
			m.rapidWhileDown++
		}

	case gcode.LinearMove:
		m.cursor = tok.Pos
		if m.state == PenDown {
			m.buf = append(m.buf, m.tf.ApplyVec(tok.Pos))
			m.drawn = true
		}

	case gcode.Unrecognized:
		m.unrecognized++
	}
}

// finish seals the stroke in progress at the end of input.
func (m *machine) finish(line int) {
	if m.state == PenDown && m.drawn {
		m.seal(line)
	}
	m.buf = nil
	m.waiting = -1
}

// seal moves the stroke in progress into the list of completed strokes.
func (m *machine) seal(line int) {
	m.strokes = append(m.strokes, m.buf)
	m.trace.Strokes = append(m.trace.Strokes, segment.StrokeInfo{
		End:  m.cursor,
		Next: segment.NoRapid,
		Line: line,
	})
	m.buf = nil
	m.drawn = false
}
