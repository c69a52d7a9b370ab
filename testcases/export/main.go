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

// Command export writes every catalog test case as a G-code program,
// a label file and the expected JSON document, for use by other
// implementations of the converter.  Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/penstroke"
	"seehuhn.de/go/penstroke/testcases"
)

const outDir = "testdata/catalog"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(tc, filepath.Join(outDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(tc testcases.TestCase, base string) error {
	if err := os.WriteFile(base+".gcode", []byte(tc.Input), 0644); err != nil {
		return err
	}
	if tc.Labels != nil {
		labels := strings.Join(tc.Labels, "\n") + "\n"
		if err := os.WriteFile(base+".txt", []byte(labels), 0644); err != nil {
			return err
		}
	}
	return penstroke.WriteFile(base+".json", toDocument(tc.Want), true)
}

func toDocument(want []testcases.Character) *penstroke.Document {
	doc := &penstroke.Document{}
	for _, c := range want {
		char := penstroke.Character{Label: c.Label}
		for _, s := range c.Strokes {
			stroke := make(penstroke.Stroke, len(s))
			for i, p := range s {
				stroke[i] = penstroke.Point{X: p[0], Y: p[1]}
			}
			char.Strokes = append(char.Strokes, stroke)
		}
		doc.Characters = append(doc.Characters, char)
	}
	return doc
}
