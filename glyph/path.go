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

package glyph

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// WidthRange gives the stroke widths, in output units, corresponding to
// the lowest and the highest pen pressure.
type WidthRange struct {
	Min, Max float64
}

// DefaultWidthRange is the width range used when none is configured.
var DefaultWidthRange = WidthRange{Min: 1.5, Max: 4}

// PathFor converts the points of a stroke into a smooth curve.
// Each point p is mapped to origin + scale*p.
//
// Interior points are used as control points of quadratic Bézier segments
// which end at the midpoints between consecutive samples, and the final
// sample is reached by a straight line.  Two points give a single line
// segment.  For fewer than two points, nil is returned and the caller should
// draw a dot instead.
func PathFor(points []Point, scale float64, origin vec.Vec2) *path.Data {
	if len(points) < 2 {
		return nil
	}

	at := func(i int) vec.Vec2 {
		return origin.Add(points[i].Vec().Mul(scale))
	}

	n := len(points)
	p := (&path.Data{}).MoveTo(at(0))
	for i := 1; i < n-1; i++ {
		ctrl := at(i)
		end := ctrl.Add(at(i + 1)).Mul(0.5)
		p = p.QuadTo(ctrl, end)
	}
	p = p.LineTo(at(n - 1))
	return p
}

// WidthFor maps the mean pressure of a stroke linearly into r.
// Missing pressure values count as [DefaultPressure], and each pressure is
// clamped to [0, 1] before averaging.  An empty stroke gets the width for
// the default pressure.
func WidthFor(s Stroke, r WidthRange) float64 {
	mean := DefaultPressure
	if len(s.Points) > 0 {
		sum := 0.0
		for _, p := range s.Points {
			sum += math.Max(0, math.Min(1, p.pressure()))
		}
		mean = sum / float64(len(s.Points))
	}
	return r.Min + mean*(r.Max-r.Min)
}
