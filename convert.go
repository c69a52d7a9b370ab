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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/penstroke/gcode"
	"seehuhn.de/go/penstroke/segment"
)

// Report summarises a conversion.
type Report struct {
	Lines          int          // input lines read
	Unrecognized   int          // lines which were neither commands nor comments
	Rapids         int          // rapid moves
	RapidWhileDown int          // rapid moves issued while the pen was down
	Strokes        int          // strokes found
	Characters     int          // characters in the document
	Labels         int          // labels available
	Mode           segment.Mode // boundary policy used

	// Fallback is set if segmentation failed and all strokes were put
	// into a single character.
	Fallback bool

	// Warnings lists recoverable problems, for example an unreadable
	// label file or too few strokes for the labels given.
	Warnings []string
}

// Converter turns G-code programs into documents.
// A Converter holds no per-run state and can be used concurrently.
type Converter struct {
	cfg    Config
	tf     *Transformer
	policy segment.Policy
	log    *slog.Logger
}

// NewConverter returns a converter for the given configuration.
func NewConverter(cfg Config) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := segment.New(cfg.Mode, segment.Options{
		Threshold:    cfg.Threshold,
		PerCharacter: cfg.StrokesPerCharacter,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Converter{
		cfg:    cfg,
		tf:     NewTransformer(cfg),
		policy: policy,
		log:    log,
	}, nil
}

// Convert reads a G-code program from r and returns the document drawn by
// it.  labels supplies the character labels in order and may be nil.
//
// Lines which cannot be interpreted are skipped.  The only error
// condition is a failure to read from r.
func (c *Converter) Convert(r io.Reader, labels []string) (*Document, *Report, error) {
	m := newMachine(c.tf)
	s := gcode.NewScanner(r)
	lines := 0
	for s.Scan() {
		m.step(s.Token())
		lines = s.Token().Line
	}
	if err := s.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading G-code: %w", err)
	}
	m.finish(lines)

	c.log.Debug("scanned input",
		"lines", lines,
		"rapids", len(m.trace.Rapids),
		"strokes", len(m.strokes))

	res := c.policy.Segment(&m.trace, len(labels))
	if c.cfg.Debug {
		for _, b := range res.Boundaries {
			c.log.Debug("character boundary",
				"line", b.Line,
				"after_stroke", b.After,
				"distance", b.Distance)
		}
	}

	doc := assemble(m.strokes, res.Groups, labels)

	report := &Report{
		Lines:          lines,
		Unrecognized:   m.unrecognized,
		Rapids:         len(m.trace.Rapids),
		RapidWhileDown: m.rapidWhileDown,
		Strokes:        len(m.strokes),
		Characters:     len(doc.Characters),
		Labels:         len(labels),
		Mode:           c.cfg.Mode,
		Warnings:       res.Warnings,
	}
	for _, g := range res.Groups {
		report.Fallback = report.Fallback || g.Fallback
	}
	if report.RapidWhileDown > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d rapid moves while the pen was down were not drawn", report.RapidWhileDown))
	}

	for _, w := range report.Warnings {
		c.log.Warn(w)
	}
	c.log.Info("conversion finished",
		"strokes", report.Strokes,
		"characters", report.Characters,
		"mode", report.Mode.String())

	return doc, report, nil
}

// ConvertFile converts the G-code file at path.  If labelPath is not
// empty, character labels are read from that file using [LoadLabels].
//
// A missing or unreadable G-code file is an error.  A missing or
// unreadable label file is not: the conversion proceeds without labels
// and the problem is recorded in the report.
func (c *Converter) ConvertFile(path, labelPath string) (*Document, *Report, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening G-code: %w", err)
	}
	defer fd.Close()

	var labels []string
	var warning string
	if labelPath != "" {
		labels, err = LoadLabels(labelPath)
		if err != nil {
			warning = fmt.Sprintf("cannot read labels, continuing without: %v", err)
			c.log.Warn(warning)
			labels = nil
		} else {
			c.log.Info("labels loaded", "count", len(labels))
		}
	}

	doc, report, err := c.Convert(fd, labels)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if warning != "" {
		report.Warnings = append([]string{warning}, report.Warnings...)
	}
	return doc, report, nil
}

// ConvertAll converts several files with the same labels file.  The files
// are processed independently, at most `workers` at a time.  The results
// are returned in the order of paths; the first error encountered is
// returned and cancels the remaining work.
func (c *Converter) ConvertAll(ctx context.Context, paths []string, labelPath string, workers int) ([]*Document, []*Report, error) {
	workers = max(workers, 1)
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	docs := make([]*Document, len(paths))
	reports := make([]*Report, len(paths))

	jobs := make(chan int)
	done := make(chan struct{})
	for range min(workers, len(paths)) {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				doc, report, err := c.ConvertFile(paths[i], labelPath)
				if err != nil {
					cancel(err)
					continue
				}
				docs[i], reports[i] = doc, report
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	for range min(workers, len(paths)) {
		<-done
	}

	if err := context.Cause(ctx); err != nil {
		return nil, nil, err
	}
	return docs, reports, nil
}
