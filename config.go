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
	"errors"
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/penstroke/segment"
)

// Config holds the parameters of a conversion.
// Use [DefaultConfig] to obtain a Config with the standard values.
type Config struct {
	// ScaleX and ScaleY convert source units (usually millimetres) into
	// canvas pixels.
	ScaleX, ScaleY float64

	// OffsetX and OffsetY are added after scaling.
	OffsetX, OffsetY float64

	// FlipY mirrors the vertical axis at CanvasHeight.  G-code has the
	// y-axis pointing up, while screen coordinates have it pointing down.
	FlipY bool

	// CanvasHeight is the height of the target canvas in pixels.
	// It is only used if FlipY is set.
	CanvasHeight int

	// Mode selects the character boundary policy.
	Mode segment.Mode

	// Threshold is the pen-up travel in source units above which
	// segment.ModeDistance starts a new character.
	Threshold float64

	// StrokesPerCharacter, if positive, makes segment.ModeFixed group
	// this many strokes into every character.
	StrokesPerCharacter int

	// Debug enables logging of every boundary decision.
	Debug bool

	// Logger receives diagnostics.  If nil, diagnostics are only
	// returned in the [Report].
	Logger *slog.Logger
}

// Default values for [Config].  These match the reMarkable 2 canvas.
const (
	DefaultScale        = 20.0
	DefaultOffsetX      = 800.0
	DefaultOffsetY      = 1000.0
	DefaultCanvasHeight = 2160
)

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		ScaleX:       DefaultScale,
		ScaleY:       DefaultScale,
		OffsetX:      DefaultOffsetX,
		OffsetY:      DefaultOffsetY,
		FlipY:        true,
		CanvasHeight: DefaultCanvasHeight,
		Mode:         segment.ModeDistance,
		Threshold:    segment.DefaultThreshold,
	}
}

// ErrInvalidConfig is wrapped by all errors returned by [Config.Validate].
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks that the configuration can be used for a conversion.
func (c *Config) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"scale-x", c.ScaleX},
		{"scale-y", c.ScaleY},
		{"offset-x", c.OffsetX},
		{"offset-y", c.OffsetY},
		{"threshold", c.Threshold},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, v.name)
		}
	}
	if c.CanvasHeight < 0 {
		return fmt.Errorf("%w: negative canvas height %d", ErrInvalidConfig, c.CanvasHeight)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("%w: negative threshold %g", ErrInvalidConfig, c.Threshold)
	}
	if c.StrokesPerCharacter < 0 {
		return fmt.Errorf("%w: negative strokes per character %d", ErrInvalidConfig, c.StrokesPerCharacter)
	}
	return nil
}
