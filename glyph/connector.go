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

// ExtractConnectors returns the cursive anchor points of a glyph: the
// entry is the first point of the first stroke, the exit is the last point
// of the last stroke.  The result is nil if there are no strokes, or if the
// first or last stroke is empty.
func ExtractConnectors(strokes []Stroke) *Connector {
	if len(strokes) == 0 {
		return nil
	}
	first := strokes[0].Points
	last := strokes[len(strokes)-1].Points
	if len(first) == 0 || len(last) == 0 {
		return nil
	}
	return &Connector{
		Entry: first[0].Vec(),
		Exit:  last[len(last)-1].Vec(),
		Width: BoundsOf(strokes).Width,
	}
}
