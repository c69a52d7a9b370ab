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
	"strconv"

	"seehuhn.de/go/penstroke/segment"
)

// placeholder is the label of a character when no labels are available.
const placeholder = "unknown"

// assemble builds the document from the sealed strokes and the groups
// chosen by the boundary policy.  Empty strokes and characters without
// strokes are dropped.
func assemble(strokes []Stroke, groups []segment.Group, labels []string) *Document {
	doc := &Document{Characters: make([]Character, 0, len(groups))}
	for _, g := range groups {
		var cs []Stroke
		for _, s := range strokes[g.Start:g.End] {
			if len(s) > 0 {
				cs = append(cs, s)
			}
		}
		if len(cs) == 0 {
			continue
		}
		doc.Characters = append(doc.Characters, Character{
			Label:   label(g, labels),
			Strokes: cs,
		})
	}
	return doc
}

// label returns the label for a group.
func label(g segment.Group, labels []string) string {
	if g.Fallback {
		if len(labels) > 0 {
			return labels[0]
		}
		return placeholder
	}
	if g.Index < len(labels) {
		return labels[g.Index]
	}
	return placeholder + "_" + strconv.Itoa(g.Index)
}
