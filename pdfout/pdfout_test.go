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

package pdfout

import (
	"bytes"
	"image/color"
	"testing"
	"time"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handwriting/internal/meta"
	"seehuhn.de/go/handwriting/layout"
)

func TestWrite(t *testing.T) {
	stroke := (&path.Data{}).
		MoveTo(vec.Vec2{X: 20, Y: 50}).
		QuadTo(vec.Vec2{X: 30, Y: 40}, vec.Vec2{X: 40, Y: 60}).
		LineTo(vec.Vec2{X: 45, Y: 62})
	page := &layout.Page{
		Width:  200,
		Height: 112,
		Color:  color.RGBA{0x1a, 0x1a, 0x2e, 255},
		Lines: []layout.Line{
			{Text: "i", Baseline: 92, LineResult: layout.LineResult{Marks: []layout.Mark{
				{Kind: layout.StrokeMark, Path: stroke, Width: 2.75, Key: "i"},
				{Kind: layout.DotMark, Center: vec.Vec2{X: 20, Y: 40}, Width: 3, Key: "i"},
				{Kind: layout.JoinMark, Path: &path.Data{}, Width: 2},
			}}},
		},
		Info: meta.Info{
			Created:     time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
			FontVersion: "1.0",
			Title:       "i",
			Missing:     []string{"q"},
		},
	}

	buf := &bytes.Buffer{}
	if err := Write(buf, page); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-1.7")) {
		t.Errorf("unexpected header %q", out[:min(len(out), 10)])
	}
	for _, want := range []string{"/Metadata", meta.Generator, "%%EOF"} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestWriteEmptyPage(t *testing.T) {
	page := &layout.Page{Width: 10, Height: 10, Color: color.RGBA{A: 255}}
	buf := &bytes.Buffer{}
	if err := Write(buf, page); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("no output")
	}
}
