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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"seehuhn.de/go/penstroke/segment"
	"seehuhn.de/go/penstroke/testcases"
)

func convertCase(t *testing.T, tc testcases.TestCase) (*Document, *Report) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Mode = tc.Mode
	cfg.StrokesPerCharacter = tc.PerCharacter
	conv, err := NewConverter(cfg)
	if err != nil {
		t.Fatal(err)
	}
	doc, report, err := conv.Convert(strings.NewReader(tc.Input), tc.Labels)
	if err != nil {
		t.Fatal(err)
	}
	return doc, report
}

func TestCatalog(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				doc, report := convertCase(t, tc)

				if len(doc.Characters) != len(tc.Want) {
					t.Fatalf("got %d characters, want %d: %v", len(doc.Characters), len(tc.Want), doc.Characters)
				}
				for i, want := range tc.Want {
					got := doc.Characters[i]
					if got.Label != want.Label {
						t.Errorf("character %d: label %q, want %q", i, got.Label, want.Label)
					}
					if len(got.Strokes) != len(want.Strokes) {
						t.Errorf("character %d: %d strokes, want %d", i, len(got.Strokes), len(want.Strokes))
						continue
					}
					for j, s := range got.Strokes {
						var pts [][2]int
						for _, p := range s {
							pts = append(pts, [2]int{p.X, p.Y})
						}
						if !slices.Equal(pts, want.Strokes[j]) {
							t.Errorf("character %d, stroke %d: %v, want %v", i, j, pts, want.Strokes[j])
						}
					}
				}
				if report.Fallback != tc.Fallback {
					t.Errorf("fallback = %t, want %t", report.Fallback, tc.Fallback)
				}
				if report.Characters != len(doc.Characters) {
					t.Errorf("report lists %d characters, document has %d", report.Characters, len(doc.Characters))
				}
			})
		}
	}
}

// TestInvariants checks that no empty strokes or characters are produced,
// also for inputs where the pen state is inconsistent.
func TestInvariants(t *testing.T) {
	inputs := []string{
		"M3\nM3\nM5\nM5\n",
		"M5\nM3\n",
		"G0 X3Y3\nM3\n",
		"G0 X3Y3\nM3\nG0 X4Y4\nM5\n",
		"M3\nG1 X1Y1\nM3\nG1 X2Y2\nM5\nM5\nG0 X100Y100\nM3\n",
		"G1 X1Y1\nG1 X2Y2\n",
		"M3\nG1 X0Y0\nM5\nG0 X50Y0\nM3\nG1 X51Y0\n",
	}
	for _, mode := range []segment.Mode{segment.ModeFixed, segment.ModeDistance, segment.ModeOutlier, segment.ModeHybrid} {
		cfg := DefaultConfig()
		cfg.Mode = mode
		conv, err := NewConverter(cfg)
		if err != nil {
			t.Fatal(err)
		}
		for _, in := range inputs {
			for _, labels := range [][]string{nil, {"x"}, {"x", "y", "z"}} {
				doc, _, err := conv.Convert(strings.NewReader(in), labels)
				if err != nil {
					t.Fatal(err)
				}
				for _, c := range doc.Characters {
					if len(c.Strokes) == 0 {
						t.Errorf("%s, %q: empty character %q", mode, in, c.Label)
					}
					for _, s := range c.Strokes {
						if len(s) == 0 {
							t.Errorf("%s, %q: empty stroke in %q", mode, in, c.Label)
						}
					}
				}
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	var in strings.Builder
	for i := range 40 {
		x := float64(i%7) * 3.25
		y := float64(i/7) * 4.5
		in.WriteString("G0 X" + ftoa(x) + "Y" + ftoa(y) + "\nM3\n")
		in.WriteString("G1 X" + ftoa(x+1.1) + "Y" + ftoa(y-0.3) + "\n")
		in.WriteString("G1 X" + ftoa(x+1.7) + "Y" + ftoa(y+0.9) + "\nM5\n")
	}
	labels := SplitLabels("春眠不觉晓处处闻啼鸟")

	for _, mode := range []segment.Mode{segment.ModeFixed, segment.ModeDistance, segment.ModeOutlier, segment.ModeHybrid} {
		cfg := DefaultConfig()
		cfg.Mode = mode
		conv, err := NewConverter(cfg)
		if err != nil {
			t.Fatal(err)
		}

		var outputs [2]bytes.Buffer
		for i := range outputs {
			doc, _, err := conv.Convert(strings.NewReader(in.String()), labels)
			if err != nil {
				t.Fatal(err)
			}
			if err := doc.WriteJSON(&outputs[i], true); err != nil {
				t.Fatal(err)
			}
		}
		if !bytes.Equal(outputs[0].Bytes(), outputs[1].Bytes()) {
			t.Errorf("%s: output differs between runs", mode)
		}
	}
}

type brokenReader struct{}

var errBroken = errors.New("device unplugged")

func (brokenReader) Read([]byte) (int, error) {
	return 0, errBroken
}

func TestConvertReadError(t *testing.T) {
	conv, err := NewConverter(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = conv.Convert(brokenReader{}, nil)
	if !errors.Is(err, errBroken) {
		t.Errorf("got %v, want %v", err, errBroken)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	gcodePath := filepath.Join(dir, "in.gcode")
	err := os.WriteFile(gcodePath, []byte("G0 X0Y0\nM3\nG1 X1Y1\nM5\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	conv, err := NewConverter(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("missing input", func(t *testing.T) {
		_, _, err := conv.ConvertFile(filepath.Join(dir, "nope.gcode"), "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("got %v, want not-exist error", err)
		}
	})

	t.Run("missing labels", func(t *testing.T) {
		doc, report, err := conv.ConvertFile(gcodePath, filepath.Join(dir, "nope.txt"))
		if err != nil {
			t.Fatal(err)
		}
		if len(report.Warnings) == 0 {
			t.Error("no warning for missing label file")
		}
		if len(doc.Characters) != 1 || doc.Characters[0].Label != "unknown_0" {
			t.Errorf("unexpected document %v", doc)
		}
	})

	t.Run("labels", func(t *testing.T) {
		labelPath := filepath.Join(dir, "chars.txt")
		if err := os.WriteFile(labelPath, []byte("  永 \n"), 0o644); err != nil {
			t.Fatal(err)
		}
		doc, report, err := conv.ConvertFile(gcodePath, labelPath)
		if err != nil {
			t.Fatal(err)
		}
		if report.Labels != 1 || doc.Characters[0].Label != "永" {
			t.Errorf("labels not used: %v, %+v", doc, report)
		}
	})
}

func TestConvertAll(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, in := range []string{
		"G0 X0Y0\nM3\nG1 X1Y1\nM5\n",
		"",
		"G0 X0Y0\nM3\nG1 X1Y1\nM5\nG0 X10Y10\nM3\nG1 X11Y11\nM5\n",
	} {
		p := filepath.Join(dir, "f"+ftoa(float64(i))+".gcode")
		if err := os.WriteFile(p, []byte(in), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	conv, err := NewConverter(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	docs, reports, err := conv.ConvertAll(t.Context(), paths, "", 2)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []int{1, 0, 2} {
		if got := len(docs[i].Characters); got != want {
			t.Errorf("file %d: %d characters, want %d", i, got, want)
		}
		if reports[i].Characters != want {
			t.Errorf("file %d: report lists %d characters", i, reports[i].Characters)
		}
	}

	_, _, err = conv.ConvertAll(t.Context(), append(paths, filepath.Join(dir, "missing.gcode")), "", 2)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not-exist error", err)
	}
}

func TestNewConverterInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = segment.Mode(17)
	if _, err := NewConverter(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown mode: got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Threshold = -2
	if _, err := NewConverter(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative threshold: got %v", err)
	}
}

func TestReportCounts(t *testing.T) {
	conv, err := NewConverter(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	in := "G21\nG0 X1Y1\nM3\nG1 X2Y2\nG0 X3Y3\nG1 X4Y4\nM5\n"
	_, report, err := conv.Convert(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}
	if report.Lines != 7 || report.Unrecognized != 1 || report.Rapids != 2 ||
		report.RapidWhileDown != 1 || report.Strokes != 1 {
		t.Errorf("unexpected report %+v", report)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("warnings = %q", report.Warnings)
	}
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func TestZeroThreshold(t *testing.T) {
	in := "G0 X0Y0\nM3\nG1 X1Y1\nM5\nG0 X2Y1\nM3\nG1 X3Y1\nM5\n"
	for _, c := range []struct {
		threshold float64
		want      int
	}{
		{0, 2},
		{segment.DefaultThreshold, 1},
	} {
		cfg := DefaultConfig()
		cfg.Threshold = c.threshold
		conv, err := NewConverter(cfg)
		if err != nil {
			t.Fatal(err)
		}
		doc, _, err := conv.Convert(strings.NewReader(in), nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(doc.Characters) != c.want {
			t.Errorf("threshold %g: %d characters, want %d", c.threshold, len(doc.Characters), c.want)
		}
	}
}

func TestConvertLongLine(t *testing.T) {
	conv, err := NewConverter(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	in := "G0 X0Y0\nM3\nG1 X1Y1\nM5\n;" + strings.Repeat("A", 2<<20) + "\nM3\nG1 X2Y2\nM5\n"
	doc, report, err := conv.Convert(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}
	if report.Lines != 8 {
		t.Errorf("report counts %d lines, want 8", report.Lines)
	}
	if n := doc.NumStrokes(); n != 2 {
		t.Errorf("got %d strokes, want 2", n)
	}
}

func TestConvertAllCancelled(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := range 8 {
		p := filepath.Join(dir, "f"+ftoa(float64(i))+".gcode")
		if err := os.WriteFile(p, []byte("G0 X0Y0\nM3\nG1 X1Y1\nM5\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	buf := &bytes.Buffer{}
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(buf, nil))
	conv, err := NewConverter(cfg)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, _, err = conv.ConvertAll(ctx, paths, "", 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
	if strings.Contains(buf.String(), "conversion finished") {
		t.Errorf("files were converted after cancellation:\n%s", buf.String())
	}
}
