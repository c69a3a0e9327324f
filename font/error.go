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

package font

import (
	"errors"
	"strconv"
)

var (
	errNoCharacters = errors.New("missing \"characters\" object")
	errDuplicateKey = errors.New("glyph key occurs twice after normalization")
)

// MalformedError indicates that a font document could not be used.
type MalformedError struct {
	Key string // the offending glyph key, if any
	Err error
}

func (err *MalformedError) Error() string {
	middle := ""
	if err.Key != "" {
		middle = " (glyph " + strconv.Quote(err.Key) + ")"
	}
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return "malformed font document" + middle + tail
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}

type strokeError struct {
	Index int
}

func (err *strokeError) Error() string {
	return "stroke " + strconv.Itoa(err.Index) + " has no points"
}
