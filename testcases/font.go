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

// Package testcases provides a small sample font and sample texts.
//
// The glyphs were drawn on a 100x100 capture area with the standard
// writing guides, see [capture.Guides].
package testcases

import (
	"time"

	"seehuhn.de/go/handwriting/capture"
	"seehuhn.de/go/handwriting/font"
	"seehuhn.de/go/handwriting/glyph"
)

// Created is the capture time recorded in the sample font.
var Created = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// Guides is the capture area used for the sample glyphs.
var Guides = capture.Guides{Width: 100, Height: 100}

// glyphs holds the pen traces of the sample font.  Each inner slice is a
// stroke given as x, y pairs.
var glyphs = map[string][][]float64{
	"a": {
		{55, 50, 45, 45, 35, 48, 30, 58, 33, 68, 43, 70, 52, 64, 55, 55},
		{55, 45, 55, 62, 57, 70, 61, 70},
	},
	"c": {
		{55, 50, 48, 45, 38, 47, 32, 57, 35, 67, 45, 70, 55, 66},
	},
	"e": {
		{33, 58, 55, 58, 52, 49, 43, 45, 35, 49, 32, 60, 37, 68, 47, 70, 55, 66},
	},
	"h": {
		{35, 15, 35, 70},
		{35, 55, 42, 47, 50, 45, 56, 50, 57, 60, 57, 70},
	},
	"i": {
		{45, 45, 45, 70},
		{45, 33},
	},
	"l": {
		{43, 15, 43, 60, 46, 68, 52, 70},
	},
	"n": {
		{35, 45, 35, 70},
		{35, 55, 42, 47, 50, 45, 56, 50, 57, 60, 57, 70},
	},
	"o": {
		{45, 45, 35, 49, 31, 58, 35, 67, 45, 70, 55, 66, 58, 57, 54, 48, 45, 45},
	},
	"t": {
		{42, 22, 42, 64, 46, 70, 53, 69},
		{34, 45, 52, 45},
	},
	"th": {
		{30, 22, 30, 64, 34, 70, 40, 69},
		{24, 45, 40, 45},
		{50, 15, 50, 70},
		{50, 55, 58, 47, 66, 45, 72, 50, 73, 60, 73, 70},
	},
}

// Font returns a new copy of the sample font.
func Font() *font.Document {
	m := Guides.Metrics()
	doc := font.New()
	for key, traces := range glyphs {
		c := font.NewCharacter(strokes(traces), &m)
		c.Timestamp = Created
		if err := doc.Set(key, c); err != nil {
			panic(err)
		}
	}
	doc.Metadata.Created = Created
	doc.Metadata.Modified = Created
	doc.Metadata.Author = "seehuhn.de/go/handwriting samples"
	return doc
}

// strokes converts pen traces into strokes.  Points are 16ms apart, and
// the pressure varies slightly along each stroke.
func strokes(traces [][]float64) []glyph.Stroke {
	res := make([]glyph.Stroke, len(traces))
	for i, xy := range traces {
		pts := make([]glyph.Point, len(xy)/2)
		for j := range pts {
			pts[j] = glyph.Point{
				X:         xy[2*j],
				Y:         xy[2*j+1],
				Pressure:  0.45 + 0.05*float64(j%3),
				Timestamp: 16 * float64(j),
			}
		}
		res[i].Points = pts
	}
	return res
}
