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
	"encoding/json"
	"io"

	"golang.org/x/text/unicode/norm"
)

// Decode reads a font document in JSON format.
//
// Documents without a "characters" object, and documents containing empty
// strokes, are rejected with a [*MalformedError].  Unknown fields are
// ignored.  Glyph keys are converted to normalization form C; two keys
// with the same normal form are rejected.
func Decode(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, &MalformedError{Err: err}
	}
	if doc.Characters == nil {
		return nil, &MalformedError{Err: errNoCharacters}
	}

	chars := make(map[string]*Character, len(doc.Characters))
	for key, c := range doc.Characters {
		nfc := norm.NFC.String(key)
		if _, dup := chars[nfc]; dup {
			return nil, &MalformedError{Key: nfc, Err: errDuplicateKey}
		}
		chars[nfc] = c
	}
	doc.Characters = chars
	if doc.Metadata.Version == "" {
		doc.Metadata.Version = CurrentVersion
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Encode writes d in JSON format.
func Encode(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
