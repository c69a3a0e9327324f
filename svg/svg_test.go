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

package svg

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"strings"
	"testing"
	"time"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handwriting/internal/meta"
	"seehuhn.de/go/handwriting/layout"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{1.5, "1.5"},
		{1.234, "1.23"},
		{-0.001, "0"},
		{100.10, "100.1"},
		{-7.25, "-7.25"},
	}
	for _, c := range cases {
		if got := format(c.in); got != c.want {
			t.Errorf("format(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPathData(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 5}).
		LineTo(vec.Vec2{X: 10, Y: 10.126})
	got := PathData(p)
	want := "M0,0 Q10,0 10,5 L10,10.13"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type svgPath struct {
	D     string `xml:"d,attr"`
	Width string `xml:"stroke-width,attr"`
}

type svgCircle struct {
	R    string `xml:"r,attr"`
	Fill string `xml:"fill,attr"`
}

type svgGroup struct {
	Stroke  string      `xml:"stroke,attr"`
	Fill    string      `xml:"fill,attr"`
	Cap     string      `xml:"stroke-linecap,attr"`
	Paths   []svgPath   `xml:"path"`
	Circles []svgCircle `xml:"circle"`
}

type svgDoc struct {
	XMLName xml.Name   `xml:"svg"`
	Width   string     `xml:"width,attr"`
	Height  string     `xml:"height,attr"`
	ViewBox string     `xml:"viewBox,attr"`
	Groups  []svgGroup `xml:"g"`
}

func TestWrite(t *testing.T) {
	stroke := (&path.Data{}).MoveTo(vec.Vec2{X: 20, Y: 50}).LineTo(vec.Vec2{X: 40, Y: 60})
	page := &layout.Page{
		Width:     200,
		Height:    112.5,
		Color:     color.RGBA{0x1a, 0x1a, 0x2e, 255},
		ColorName: "#1a1a2e",
		Lines: []layout.Line{
			{Text: "i", Baseline: 92, LineResult: layout.LineResult{Marks: []layout.Mark{
				{Kind: layout.StrokeMark, Path: stroke, Width: 2.75, Key: "i"},
				{Kind: layout.DotMark, Center: vec.Vec2{X: 20, Y: 40}, Width: 3, Key: "i"},
			}}},
			{Text: "", Baseline: 164},
		},
		Info: meta.Info{
			Created:     time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
			FontVersion: "1.0",
			Title:       "i",
		},
	}

	buf := &bytes.Buffer{}
	if err := Write(buf, page); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<metadata>") {
		t.Error("no metadata element")
	}

	var doc svgDoc
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid XML: %v\n%s", err, buf.String())
	}
	if doc.Width != "200" || doc.Height != "112.5" || doc.ViewBox != "0 0 200 112.5" {
		t.Errorf("size %s x %s, viewBox %q", doc.Width, doc.Height, doc.ViewBox)
	}
	if len(doc.Groups) != 2 {
		t.Fatalf("%d groups, want 2", len(doc.Groups))
	}
	g := doc.Groups[0]
	if g.Stroke != "#1a1a2e" || g.Fill != "none" || g.Cap != "round" {
		t.Errorf("group attributes %+v", g)
	}
	if len(g.Paths) != 1 || g.Paths[0].D != "M20,50 L40,60" || g.Paths[0].Width != "2.75" {
		t.Errorf("paths %+v", g.Paths)
	}
	if len(g.Circles) != 1 || g.Circles[0].R != "1.5" || g.Circles[0].Fill != "#1a1a2e" {
		t.Errorf("circles %+v", g.Circles)
	}
}
