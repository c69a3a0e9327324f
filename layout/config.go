// seehuhn.de/go/handwriting - render captured pen strokes as vector text
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

package layout

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/handwriting/glyph"
)

// Config holds the parameters of a render request.
type Config struct {
	// FontSize is the em height of rendered glyphs, in output units.
	FontSize float64

	// LetterSpacing is added after every glyph, in output units.
	LetterSpacing float64

	// LineHeight is the distance between baselines, as a multiple of
	// FontSize.
	LineHeight float64

	// Variation controls the amount of random distortion, on a scale from
	// 0 (none) to 10.
	Variation float64

	// ConnectCursive enables joining strokes between adjacent glyphs.
	ConnectCursive bool

	// StrokeColor is a hex color ("#rgb" or "#rrggbb") or an SVG color
	// keyword.
	StrokeColor string

	// Widths gives the stroke width range in output units.
	Widths glyph.WidthRange

	// Padding is the margin around the text, in output units.
	Padding float64
}

// DefaultConfig returns the default render parameters.
func DefaultConfig() Config {
	return Config{
		FontSize:      48,
		LetterSpacing: 2,
		LineHeight:    1.5,
		Variation:     3,
		StrokeColor:   "#1a1a2e",
		Widths:        glyph.DefaultWidthRange,
		Padding:       20,
	}
}

// GlyphVariation converts the Variation setting into distortion ranges.
func (c *Config) GlyphVariation() glyph.Variation {
	v := c.Variation
	return glyph.Variation{
		PositionJitter: 0.004 * v,
		RotationRange:  0.6 * v,
		ScaleRange:     0.008 * v,
	}
}

// ConfigError is returned by [Config.Validate] for invalid settings.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("invalid render config: %s = %v: %v", err.Field, err.Value, err.Err)
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}

// Validate checks that all parameters are within their permitted ranges.
func (c *Config) Validate() error {
	ranges := []struct {
		field    string
		val      float64
		min, max float64
	}{
		{"FontSize", c.FontSize, 20, 200},
		{"LetterSpacing", c.LetterSpacing, -10, 50},
		{"LineHeight", c.LineHeight, 1, 3},
		{"Variation", c.Variation, 0, 10},
	}
	for _, r := range ranges {
		if !(r.val >= r.min && r.val <= r.max) {
			return &ConfigError{
				Field: r.field,
				Value: r.val,
				Err:   fmt.Errorf("must be in [%g, %g]", r.min, r.max),
			}
		}
	}

	if _, err := ParseColor(c.StrokeColor); err != nil {
		return &ConfigError{Field: "StrokeColor", Value: c.StrokeColor, Err: err}
	}

	w := c.Widths
	if !(w.Min > 0 && w.Max >= w.Min) || math.IsInf(w.Max, 0) {
		return &ConfigError{
			Field: "Widths",
			Value: w,
			Err:   errors.New("need 0 < Min <= Max"),
		}
	}
	if !(c.Padding >= 0) || math.IsInf(c.Padding, 0) {
		return &ConfigError{
			Field: "Padding",
			Value: c.Padding,
			Err:   errors.New("must be non-negative"),
		}
	}
	return nil
}

var errColor = errors.New("not a hex color or color name")

// ParseColor resolves a hex color ("#rgb" or "#rrggbb") or an SVG color
// keyword.
func ParseColor(s string) (color.RGBA, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		switch len(hex) {
		case 3:
			v, err := strconv.ParseUint(hex, 16, 16)
			if err != nil {
				return color.RGBA{}, errColor
			}
			r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
			return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}, nil
		case 6:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return color.RGBA{}, errColor
			}
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		}
		return color.RGBA{}, errColor
	}

	if col, ok := colornames.Map[strings.ToLower(s)]; ok {
		return col, nil
	}
	return color.RGBA{}, errColor
}
