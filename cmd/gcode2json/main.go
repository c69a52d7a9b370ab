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

// Command gcode2json converts pen-plotter G-code into a JSON stroke
// document, grouping strokes into labelled characters.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"seehuhn.de/go/penstroke"
	"seehuhn.de/go/penstroke/preview"
	"seehuhn.de/go/penstroke/segment"
)

func main() {
	cfg := penstroke.DefaultConfig()

	flag.Float64Var(&cfg.ScaleX, "scale-x", cfg.ScaleX, "horizontal scale factor")
	flag.Float64Var(&cfg.ScaleY, "scale-y", cfg.ScaleY, "vertical scale factor")
	flag.Float64Var(&cfg.OffsetX, "offset-x", cfg.OffsetX, "horizontal offset, in canvas pixels")
	flag.Float64Var(&cfg.OffsetY, "offset-y", cfg.OffsetY, "vertical offset, in canvas pixels")
	noFlip := flag.Bool("no-flip-y", false, "do not mirror the y-axis")
	flag.IntVar(&cfg.CanvasHeight, "canvas-height", cfg.CanvasHeight, "canvas height used to mirror the y-axis")
	mode := flag.String("mode", cfg.Mode.String(), "character boundary mode: fixed, distance, outlier or hybrid")
	flag.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "pen-up travel which starts a new character (distance mode)")
	flag.IntVar(&cfg.StrokesPerCharacter, "per-char", 0, "strokes per character (fixed mode)")
	chars := flag.String("chars", "", "file with the character labels, in drawing order")
	flag.BoolVar(&cfg.Debug, "debug", false, "log every boundary decision")
	indent := flag.Bool("indent", false, "indent the JSON output")
	withPNG := flag.Bool("png", false, "also write a PNG preview next to each output file")
	withPDF := flag.Bool("pdf", false, "also write a PDF preview next to each output file")
	workers := flag.Int("j", runtime.NumCPU(), "number of files converted in parallel")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `gcode2json - convert pen-plotter G-code into stroke documents

Usage:
  gcode2json [options] input.gcode output.json
  gcode2json [options] input.gcode... output-dir

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Output files ending in .gz are gzip-compressed.  When several inputs are
given, the output directory receives one <name>.json per input.

Examples:
  gcode2json -chars chars.txt poem.gcode poem.json
  gcode2json -mode fixed -per-char 3 -png a.gcode b.gcode out/
`)
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	cfg.Logger = logger

	cfg.FlipY = !*noFlip
	m, err := segment.ParseMode(*mode)
	if err != nil {
		fatal(err)
	}
	cfg.Mode = m

	conv, err := penstroke.NewConverter(cfg)
	if err != nil {
		fatal(err)
	}

	out := outputs{indent: *indent, png: *withPNG, pdf: *withPDF}
	args := flag.Args()
	inputs, target := args[:len(args)-1], args[len(args)-1]

	if len(inputs) == 1 && !isDir(target) {
		doc, _, err := conv.ConvertFile(inputs[0], *chars)
		if err != nil {
			fatal(err)
		}
		if err := out.write(target, doc); err != nil {
			fatal(err)
		}
		return
	}

	if !isDir(target) {
		fatal(fmt.Errorf("%s: not a directory", target))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	docs, _, err := conv.ConvertAll(ctx, inputs, *chars, *workers)
	if err != nil {
		fatal(err)
	}
	for i, in := range inputs {
		name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ".json"
		if err := out.write(filepath.Join(target, name), docs[i]); err != nil {
			fatal(err)
		}
	}
}

// outputs describes which files are written for every converted document.
type outputs struct {
	indent   bool
	png, pdf bool
}

func (o outputs) write(fname string, doc *penstroke.Document) error {
	if err := penstroke.WriteFile(fname, doc, o.indent); err != nil {
		return err
	}

	base := strings.TrimSuffix(fname, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	opts := preview.Options{}
	if o.pdf {
		if err := preview.PDF(base+".pdf", doc, opts); err != nil {
			return err
		}
	}
	if o.png {
		f, err := os.Create(base + ".png")
		if err != nil {
			return err
		}
		err = preview.PNG(f, doc, opts)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	slog.Info("written", "file", fname, "characters", len(doc.Characters), "strokes", doc.NumStrokes())
	return nil
}

func isDir(name string) bool {
	fi, err := os.Stat(name)
	return err == nil && fi.IsDir()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "gcode2json:", err)
	os.Exit(1)
}
