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

// Command genpreview renders every catalog test case to PDF and PNG
// previews, for visual inspection of conversion results.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/penstroke"
	"seehuhn.de/go/penstroke/preview"
	"seehuhn.de/go/penstroke/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	opts := preview.Options{Scale: 0.5, LineWidth: 6}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(outDir, name), opts); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, base string, opts preview.Options) error {
	cfg := penstroke.DefaultConfig()
	cfg.Mode = tc.Mode
	cfg.StrokesPerCharacter = tc.PerCharacter
	conv, err := penstroke.NewConverter(cfg)
	if err != nil {
		return err
	}
	doc, _, err := conv.Convert(strings.NewReader(tc.Input), tc.Labels)
	if err != nil {
		return err
	}

	if err := preview.PDF(base+".pdf", doc, opts); err != nil {
		return err
	}

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	err = preview.PNG(f, doc, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
