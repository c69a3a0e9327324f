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

package handwriting

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/handwriting/font"
	"seehuhn.de/go/handwriting/layout"
	"seehuhn.de/go/handwriting/testcases"
)

func sampleRenderer(t *testing.T, cfg layout.Config) *Renderer {
	t.Helper()
	lib := font.NewLibrary(nil)
	lib.Replace(testcases.Font())
	r := NewRenderer(lib, cfg, 42)
	r.Now = func() time.Time { return testcases.Created }
	return r
}

func TestRenderNoDocument(t *testing.T) {
	r := NewRenderer(font.NewLibrary(nil), layout.DefaultConfig(), 1)
	buf := &bytes.Buffer{}
	page, err := r.RenderSVG(buf, "a")
	if !errors.Is(err, ErrNoDocument) {
		t.Errorf("got error %v, want %v", err, ErrNoDocument)
	}
	if page != nil || buf.Len() != 0 {
		t.Error("output produced without a document")
	}

	r = &Renderer{Config: layout.DefaultConfig()}
	if _, err := r.Render("a"); !errors.Is(err, ErrNoDocument) {
		t.Errorf("nil library: got error %v", err)
	}
}

func TestRenderEmptyText(t *testing.T) {
	r := sampleRenderer(t, layout.DefaultConfig())
	for _, text := range []string{"", "   ", "\n\r\n\t"} {
		if _, err := r.Render(text); !errors.Is(err, ErrEmptyText) {
			t.Errorf("%q: got error %v, want %v", text, err, ErrEmptyText)
		}
	}
}

func TestRenderInvalidConfig(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.FontSize = 10
	r := sampleRenderer(t, cfg)
	_, err := r.Render("hello")
	var cfgErr *layout.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "FontSize" {
		t.Errorf("got error %v, want a FontSize ConfigError", err)
	}
}

func TestRenderMissing(t *testing.T) {
	r := sampleRenderer(t, layout.DefaultConfig())
	page, err := r.Render("hello, world!")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"!", ",", "d", "r", "w"}
	if d := cmp.Diff(want, page.Missing); d != "" {
		t.Errorf("missing glyphs (-want +got):\n%s", d)
	}
}

func TestRenderDeterministic(t *testing.T) {
	render := func() string {
		r := sampleRenderer(t, layout.DefaultConfig())
		buf := &bytes.Buffer{}
		if _, err := r.RenderSVG(buf, "the cat\nate"); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}
	a, b := render(), render()
	if a != b {
		t.Error("same seed gives different output")
	}
	if n := strings.Count(a, "<g "); n != 2 {
		t.Errorf("%d line groups, want 2", n)
	}
}

func TestRenderFormats(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.ConnectCursive = true
	r := sampleRenderer(t, cfg)

	buf := &bytes.Buffer{}
	if _, err := r.RenderPDF(buf, "hello"); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("PDF output has no PDF header")
	}

	buf.Reset()
	page, err := r.RenderPNG(buf, "hello", 2)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() < int(2*page.Width) || b.Dy() < int(2*page.Height) {
		t.Errorf("image size %v for page %gx%g", b, page.Width, page.Height)
	}
}
