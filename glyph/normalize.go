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

// Normalize maps captured strokes into em-relative units.
//
// The horizontal origin is the left edge of b.  If metrics are available,
// the vertical origin is the ascender line and one unit corresponds to the
// em height.  Otherwise the top of b is used as the origin and the height
// of b as the unit.  If the unit would be zero, 1 is used instead.
//
// The input is not modified.
func Normalize(strokes []Stroke, b Bounds, m *Metrics) []Stroke {
	originX := b.MinX
	originY := b.MinY
	if m != nil {
		originY = m.Ascender
	}

	scale := 1.0
	switch {
	case m != nil && m.EmHeight != 0:
		scale = m.EmHeight
	case b.Height != 0:
		scale = b.Height
	}

	res := make([]Stroke, len(strokes))
	for i, s := range strokes {
		pts := make([]Point, len(s.Points))
		for j, p := range s.Points {
			pts[j] = Point{
				X:         (p.X - originX) / scale,
				Y:         (p.Y - originY) / scale,
				Pressure:  p.pressure(),
				Timestamp: p.Timestamp,
			}
		}
		res[i].Points = pts
	}
	return res
}
