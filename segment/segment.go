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

// Package segment decides where the strokes of one character end and the
// strokes of the next character begin.
//
// A motion program carries no explicit character boundaries.  The
// policies in this package recover them heuristically, either by
// counting strokes ([FixedCount]), by looking at the length of the pen-up
// travel after each stroke ([Distance]), or by ranking all pen-up travels
// of a program and picking the longest ones ([Outlier]).
package segment

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// NoRapid marks a stroke which is not followed by a rapid move.
const NoRapid = -1

// Rapid is a rapid move (G0) seen in the input stream.
type Rapid struct {
	Target vec.Vec2 // target position in source coordinates
	Line   int      // 1-based input line
}

// StrokeInfo describes a completed stroke as far as segmentation is
// concerned.  The stroke geometry itself is not needed here.
type StrokeInfo struct {
	// End is the pen position, in source coordinates, at the moment the
	// stroke was sealed.
	End vec.Vec2

	// Next is the index into Trace.Rapids of the rapid move which
	// immediately followed the pen-up sealing this stroke, ignoring
	// blank and comment lines.  It is NoRapid if the next command was
	// something else or the input ended.
	Next int

	// Line is the input line on which the stroke was sealed.
	Line int
}

// HasNext reports whether the stroke is directly followed by a rapid move.
func (s StrokeInfo) HasNext() bool {
	return s.Next != NoRapid
}

// Trace is the output of a scan, in input order.
type Trace struct {
	Strokes []StrokeInfo
	Rapids  []Rapid
}

// Gap returns the source-space distance travelled by the pen after stroke
// i, before it went down again.  The second return value is false if
// stroke i is not followed by a rapid move.
func (t *Trace) Gap(i int) (float64, bool) {
	s := t.Strokes[i]
	if !s.HasNext() {
		return 0, false
	}
	return s.End.Sub(t.Rapids[s.Next].Target).Length(), true
}

// Group is a contiguous run of strokes forming one character.
type Group struct {
	Start, End int // stroke indices, half-open

	// Index is the label slot of the group.  Slot i takes the i-th label
	// if there is one.
	Index int

	// Fallback is set if segmentation failed and the group contains
	// every stroke of the input.  Such a group takes the first label.
	Fallback bool
}

// Len returns the number of strokes in the group.
func (g Group) Len() int {
	return g.End - g.Start
}

// Boundary records a character boundary decision.
type Boundary struct {
	After    int     // index of the last stroke of the finished character
	Line     int     // input line of the rapid move which triggered the boundary
	Distance float64 // length of that rapid move in source units
}

// Result is the outcome of segmenting a trace.
type Result struct {
	Groups     []Group
	Boundaries []Boundary

	// Warnings describe degraded results, for example when too few
	// strokes were found to match the labels.
	Warnings []string
}

// Policy partitions the strokes of a trace into characters.
type Policy interface {
	// Segment partitions the strokes of t.  numLabels is the number of
	// labels available for the characters; it may be zero.
	Segment(t *Trace, numLabels int) *Result
}

// Mode names a boundary detection strategy.
type Mode int

// These are the supported modes.
const (
	ModeFixed    Mode = iota // fixed number of strokes per label
	ModeDistance             // long pen-up travel after a stroke
	ModeOutlier              // globally longest rapid-to-rapid gaps
	ModeHybrid               // ModeDistance or ModeOutlier
)

var modeNames = []string{
	ModeFixed:    "fixed",
	ModeDistance: "distance",
	ModeOutlier:  "outlier",
	ModeHybrid:   "hybrid",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ErrUnknownMode is returned for mode names and values not known to this
// package.
var ErrUnknownMode = errors.New("unknown segmentation mode")

// ParseMode converts a mode name, as returned by Mode.String, into a Mode.
// The single letters "a", "b" and "c" are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "a":
		return ModeFixed, nil
	case "b":
		return ModeDistance, nil
	case "c":
		return ModeOutlier, nil
	}
	for m, name := range modeNames {
		if s == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// DefaultThreshold is the pen-up travel, in source units, above which
// the distance policy starts a new character.
const DefaultThreshold = 5.0

// Options holds the tuning parameters of the policies.
type Options struct {
	// Threshold is used by ModeDistance and ModeHybrid.  With a zero
	// threshold, every pen-up travel of non-zero length ends a character.
	Threshold float64

	// PerCharacter, if positive, makes ModeFixed put exactly this many
	// strokes into each character (the last one may have fewer),
	// regardless of the number of labels.
	PerCharacter int
}

// New returns the policy for the given mode.
func New(mode Mode, opts Options) (Policy, error) {
	threshold := opts.Threshold
	if threshold < 0 {
		return nil, fmt.Errorf("negative distance threshold %g", threshold)
	}

	switch mode {
	case ModeFixed:
		if opts.PerCharacter < 0 {
			return nil, fmt.Errorf("negative strokes per character %d", opts.PerCharacter)
		}
		return &FixedCount{PerCharacter: opts.PerCharacter}, nil
	case ModeDistance:
		return &Distance{Threshold: threshold}, nil
	case ModeOutlier:
		return &Outlier{}, nil
	case ModeHybrid:
		return &Hybrid{Distance: Distance{Threshold: threshold}}, nil
	default:
		return nil, fmt.Errorf("%w %s", ErrUnknownMode, mode)
	}
}

// splitAt seals a group after every stroke for which isBoundary returns
// true, and the remaining strokes at the end.  Groups are indexed in
// order.  isBoundary is only called for strokes which are followed by a
// rapid move.
func splitAt(t *Trace, res *Result, isBoundary func(i int) bool) {
	start := 0
	for i, s := range t.Strokes {
		if !s.HasNext() || !isBoundary(i) {
			continue
		}
		d, _ := t.Gap(i)
		res.Boundaries = append(res.Boundaries, Boundary{
			After:    i,
			Line:     t.Rapids[s.Next].Line,
			Distance: d,
		})
		res.Groups = append(res.Groups, Group{Start: start, End: i + 1, Index: len(res.Groups)})
		start = i + 1
	}
	if start < len(t.Strokes) {
		res.Groups = append(res.Groups, Group{Start: start, End: len(t.Strokes), Index: len(res.Groups)})
	}
	fallback(t, res)
}

// fallback replaces an empty result by a single group holding all strokes.
func fallback(t *Trace, res *Result) {
	if len(res.Groups) > 0 || len(t.Strokes) == 0 {
		return
	}
	res.Groups = []Group{{Start: 0, End: len(t.Strokes), Fallback: true}}
	res.Warnings = append(res.Warnings,
		fmt.Sprintf("no character boundaries found, treating all %d strokes as one character", len(t.Strokes)))
}
