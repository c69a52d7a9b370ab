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
	"bufio"
	"bytes"
	"io"
)

// maxLineLength is the longest input line a [Scanner] interprets.
// Longer lines are skipped as noise.
const maxLineLength = 1 << 20

// Scanner reads G-code from an io.Reader and returns one [Token] per line.
//
// Usage follows bufio.Scanner:
//
//	s := gcode.NewScanner(r)
//	for s.Scan() {
//		tok := s.Token()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
type Scanner struct {
	r    *bufio.Reader
	buf  []byte
	tok  Token
	line int
	done bool
	err  error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 64*1024)}
}

// Scan advances to the next line.  It returns false at the end of input
// or after a read error; Err distinguishes the two cases.
//
// A line longer than 1 MiB is not interpreted: it is returned as
// [Skip] if it starts with a comment, and as [Unrecognized] otherwise.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	s.buf = s.buf[:0]
	overlong := false
	read := false
	for {
		chunk, err := s.r.ReadSlice('\n')
		read = read || len(chunk) > 0
		if !overlong {
			if len(s.buf)+len(chunk) > maxLineLength+1 {
				// keep the start of the line for classification
				overlong = true
			} else {
				s.buf = append(s.buf, chunk...)
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil {
			s.done = true
			if err != io.EOF {
				s.err = err
				return false
			}
			if !read {
				return false
			}
		}
		break
	}

	s.line++
	if overlong {
		s.tok = Token{Kind: Unrecognized}
		if bytes.HasPrefix(bytes.TrimSpace(s.buf), []byte{';'}) {
			s.tok.Kind = Skip
		}
	} else {
		s.tok = ParseLine(string(s.buf))
	}
	s.tok.Line = s.line
	return true
}

// Token returns the token for the line most recently read by Scan.
func (s *Scanner) Token() Token {
	return s.tok
}

// Err returns the first read error encountered, or nil at a clean
// end of input.
func (s *Scanner) Err() error {
	return s.err
}

// ReadAll scans r to the end and returns all tokens, including Skip and
// Unrecognized ones, in input order.
func ReadAll(r io.Reader) ([]Token, error) {
	var toks []Token
	s := NewScanner(r)
	for s.Scan() {
		toks = append(toks, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}
