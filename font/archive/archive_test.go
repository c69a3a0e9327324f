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

package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/handwriting/font"
	"seehuhn.de/go/handwriting/glyph"
)

func testDoc(t *testing.T) *font.Document {
	t.Helper()
	doc := font.New()
	for i, key := range []string{"a", "b", "th"} {
		c := font.NewCharacter([]glyph.Stroke{
			{Points: []glyph.Point{
				{X: float64(i), Y: 10, Pressure: 0.5},
				{X: float64(i) + 5, Y: 20, Pressure: 0.7, Timestamp: 8},
			}},
			{Points: []glyph.Point{{X: 3, Y: 3, Pressure: 0.5}}},
		}, nil)
		c.Timestamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		if err := doc.Set(key, c); err != nil {
			t.Fatal(err)
		}
	}
	doc.Metadata.Author = "test"
	return doc
}

func TestRoundTrip(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "glyphs.sst")}
	doc := testDoc(t)
	if err := s.Save(doc); err != nil {
		t.Fatal(err)
	}

	back, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(doc, back); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestLookup(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "glyphs.sst")}
	doc := testDoc(t)
	if err := s.Save(doc); err != nil {
		t.Fatal(err)
	}

	c, err := s.Lookup("th")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := doc.Get("th")
	if d := cmp.Diff(want, c); d != "" {
		t.Errorf("lookup (-want +got):\n%s", d)
	}

	_, err = s.Lookup("z")
	if !errors.Is(err, font.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestMissing(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "none.sst")}
	doc, err := s.Load()
	if doc != nil || err != nil {
		t.Errorf("got %v, %v", doc, err)
	}
}

func TestLibrary(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "glyphs.sst")}
	lib := font.NewLibrary(s)
	lib.Replace(testDoc(t))
	if err := lib.Save(); err != nil {
		t.Fatal(err)
	}

	lib2 := font.NewLibrary(s)
	if err := lib2.Load(); err != nil {
		t.Fatal(err)
	}
	if got := lib2.Snapshot().Keys(); !cmp.Equal(got, []string{"a", "b", "th"}) {
		t.Errorf("keys = %v", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(s.Path))
	if len(entries) != 1 {
		t.Errorf("%d files in archive directory", len(entries))
	}
}
