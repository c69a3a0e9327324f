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

// Package glyph implements the geometry pipeline for hand-captured glyphs:
// simplification of captured strokes, normalization into em-relative
// units, per-instance variation, cursive connectors, and conversion of
// strokes into smooth curves.
//
// Captured coordinates use a y-down system, with the origin at the top
// left of the capture area.  Normalized coordinates are measured in
// multiples of the em height, with y = 0 at the ascender line.
package glyph

import (
	"encoding/json"
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultPressure is used for points where the capture surface did not
// report a pressure value.
const DefaultPressure = 0.5

// Point is a single sample of a pen stroke.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Pressure is the (possibly simulated) pen pressure in the range [0, 1].
	Pressure float64 `json:"pressure"`

	// Timestamp is the time in milliseconds since the first sample of the
	// capture session.
	Timestamp float64 `json:"timestamp"`
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A missing pressure value is replaced by [DefaultPressure].
func (p *Point) UnmarshalJSON(data []byte) error {
	type plain Point
	q := plain{Pressure: DefaultPressure}
	if err := json.Unmarshal(data, &q); err != nil {
		return err
	}
	*p = Point(q)
	return nil
}

// Vec returns the position of the point.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// pressure returns the pressure of p, with NaN mapped to the default.
func (p Point) pressure() float64 {
	if math.IsNaN(p.Pressure) {
		return DefaultPressure
	}
	return p.Pressure
}

// Stroke is the sequence of points recorded between pen-down and pen-up.
// A stroke with a single point represents a dot.
type Stroke struct {
	Points []Point `json:"points"`
}

// Bounds is the axis-aligned bounding box of a set of strokes.
type Bounds struct {
	MinX   float64 `json:"minX"`
	MinY   float64 `json:"minY"`
	MaxX   float64 `json:"maxX"`
	MaxY   float64 `json:"maxY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether all fields of b are zero.
func (b Bounds) IsZero() bool {
	return b == Bounds{}
}

// Center returns the center of the bounding box.
func (b Bounds) Center() vec.Vec2 {
	return vec.Vec2{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// BoundsOf computes the bounding box of all points in the given strokes.
// The bounds of a stroke set without points are all zero.
func BoundsOf(strokes []Stroke) Bounds {
	first := true
	var b Bounds
	for _, s := range strokes {
		for _, p := range s.Points {
			if first {
				b.MinX, b.MaxX = p.X, p.X
				b.MinY, b.MaxY = p.Y, p.Y
				first = false
				continue
			}
			b.MinX = min(b.MinX, p.X)
			b.MaxX = max(b.MaxX, p.X)
			b.MinY = min(b.MinY, p.Y)
			b.MaxY = max(b.MaxY, p.Y)
		}
	}
	b.Width = b.MaxX - b.MinX
	b.Height = b.MaxY - b.MinY
	return b
}

// Metrics describes the writing guides which were visible while a glyph
// was captured.  All values are in capture coordinates; vertical values are
// measured from the top of the capture area.
type Metrics struct {
	Ascender     float64 `json:"ascender"`
	CapHeight    float64 `json:"capHeight"`
	XHeight      float64 `json:"xHeight"`
	Baseline     float64 `json:"baseline"`
	Descender    float64 `json:"descender"`
	EmHeight     float64 `json:"emHeight"`
	CaptureWidth float64 `json:"captureWidth"`
}

// BaselineRatio returns the position of the baseline below the ascender
// line, in units of the em height.  The second return value is false if
// the metrics do not allow to compute the ratio.
func (m *Metrics) BaselineRatio() (float64, bool) {
	if m == nil || m.EmHeight == 0 {
		return 0, false
	}
	return (m.Baseline - m.Ascender) / m.EmHeight, true
}

// Connector holds the anchor points used to join a glyph to its
// neighbours in cursive writing.  All values are in normalized units.
type Connector struct {
	Entry vec.Vec2
	Exit  vec.Vec2
	Width float64
}

type xy struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type connectorJSON struct {
	Entry xy      `json:"entry"`
	Exit  xy      `json:"exit"`
	Width float64 `json:"width"`
}

// MarshalJSON implements the [json.Marshaler] interface.
func (c Connector) MarshalJSON() ([]byte, error) {
	return json.Marshal(connectorJSON{
		Entry: xy{c.Entry.X, c.Entry.Y},
		Exit:  xy{c.Exit.X, c.Exit.Y},
		Width: c.Width,
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (c *Connector) UnmarshalJSON(data []byte) error {
	var aux connectorJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Entry = vec.Vec2{X: aux.Entry.X, Y: aux.Entry.Y}
	c.Exit = vec.Vec2{X: aux.Exit.X, Y: aux.Exit.Y}
	c.Width = aux.Width
	return nil
}

// Clone returns a deep copy of the given strokes.
func Clone(strokes []Stroke) []Stroke {
	if strokes == nil {
		return nil
	}
	res := make([]Stroke, len(strokes))
	for i, s := range strokes {
		res[i].Points = append([]Point(nil), s.Points...)
	}
	return res
}
