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

import (
	"regexp"
	"testing"
)

func TestFont(t *testing.T) {
	doc := Font()
	if err := doc.Validate(); err != nil {
		t.Fatal(err)
	}
	if doc.Len() != len(glyphs) {
		t.Errorf("%d glyphs, want %d", doc.Len(), len(glyphs))
	}
	if lig := doc.LigatureKeys(); len(lig) != 1 || lig[0] != "th" {
		t.Errorf("ligatures %q", lig)
	}
	i, _ := doc.Get("i")
	if len(i.Strokes) != 2 || len(i.Strokes[1].Points) != 1 {
		t.Error("the dot of the i is missing")
	}
	for key, c := range doc.Characters {
		if c.Connectors == nil {
			t.Errorf("%q: no connectors", key)
		}
		if c.Baseline != 70 {
			t.Errorf("%q: baseline %g", key, c.Baseline)
		}
	}
}

func TestSamples(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z_]+$`)
	seen := map[string]bool{}
	for _, s := range Samples() {
		if !valid.MatchString(s.Name) || seen[s.Name] {
			t.Errorf("bad sample name %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Config.Validate(); err != nil {
			t.Errorf("%s: %v", s.Name, err)
		}
	}
}
