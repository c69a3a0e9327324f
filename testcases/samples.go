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

package testcases

import "seehuhn.de/go/handwriting/layout"

// Sample is a text to render with the sample font.
type Sample struct {
	Name   string // lowercase a-z and _ only
	Text   string
	Config layout.Config
}

// Samples returns the sample texts, each with its render configuration.
func Samples() []Sample {
	plain := layout.DefaultConfig()
	plain.Variation = 0

	cursive := layout.DefaultConfig()
	cursive.ConnectCursive = true

	large := layout.DefaultConfig()
	large.FontSize = 120
	large.LetterSpacing = -4
	large.StrokeColor = "darkred"

	wide := layout.DefaultConfig()
	wide.LineHeight = 2.5
	wide.LetterSpacing = 12

	return []Sample{
		{Name: "hello", Text: "hello", Config: plain},
		{Name: "ligature", Text: "that", Config: plain},
		{Name: "varied", Text: "hello hello hello", Config: layout.DefaultConfig()},
		{Name: "cursive", Text: "cat on the hill", Config: cursive},
		{Name: "large", Text: "lichen", Config: large},
		{Name: "lines", Text: "the cat\r\nate\nno lion", Config: wide},
		{Name: "missing", Text: "hello, world!", Config: plain},
	}
}
