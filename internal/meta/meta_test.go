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

package meta

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWrite(t *testing.T) {
	info := &Info{
		Created:     time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC),
		FontVersion: "1.0",
		Title:       "hello world",
		Author:      "Jane Doe",
		Missing:     []string{"q", "z"},
	}
	buf := &bytes.Buffer{}
	if err := Write(buf, info); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"http://ns.seehuhn.de/handwriting/1.0/",
		Generator,
		"hello world",
		"Jane Doe",
		"q z",
		"2026-05-04",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("packet does not contain %q:\n%s", want, out)
		}
	}
}

func TestWriteMinimal(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Write(buf, &Info{Generator: "test-generator"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "test-generator") {
		t.Errorf("generator missing:\n%s", buf.String())
	}
}
