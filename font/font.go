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

// Package font implements handwriting font documents.
//
// A font document maps glyph keys to captured characters.  A glyph key is
// either a single character, or a two-character ligature like "th".  Keys
// are stored in Unicode normalization form C.
package font

import (
	"errors"
	"maps"
	"slices"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/handwriting/glyph"
)

// CurrentVersion is the format version written into new documents.
const CurrentVersion = "1.0"

var (
	// ErrInvalidKey is returned when a glyph key is empty or longer than
	// two characters.
	ErrInvalidKey = errors.New("invalid glyph key")

	// ErrNotFound is returned when a glyph key is not present in a document.
	ErrNotFound = errors.New("glyph not found")
)

// now is replaced in tests.
var now = time.Now

// Character is the captured geometry for one glyph key.
//
// Characters are replaced as a whole when a glyph is re-captured.
// A Character stored in a [Document] must not be modified.
type Character struct {
	// Strokes holds the simplified strokes, in capture coordinates.
	Strokes []glyph.Stroke `json:"strokes"`

	// Bounds is the bounding box of Strokes.
	Bounds glyph.Bounds `json:"bounds"`

	// Baseline is the y coordinate of the baseline in capture coordinates.
	Baseline float64 `json:"baseline"`

	// Metrics describes the writing guides used during capture.
	// This is nil for glyphs captured without guides.
	Metrics *glyph.Metrics `json:"metrics"`

	// Connectors gives the cursive anchors in normalized units.
	Connectors *glyph.Connector `json:"connectors"`

	// Timestamp is the time when the glyph was captured.
	Timestamp time.Time `json:"timestamp"`
}

// NewCharacter assembles a Character from captured strokes.
// Bounds, baseline and connectors are computed from the strokes and the
// (optional) metrics.  The strokes are copied.
func NewCharacter(strokes []glyph.Stroke, m *glyph.Metrics) *Character {
	strokes = glyph.Clone(strokes)
	b := glyph.BoundsOf(strokes)

	c := &Character{
		Strokes:   strokes,
		Bounds:    b,
		Baseline:  b.MaxY,
		Timestamp: now(),
	}
	if m != nil {
		mCopy := *m
		c.Metrics = &mCopy
		c.Baseline = m.Baseline
	}
	c.Connectors = glyph.ExtractConnectors(glyph.Normalize(strokes, b, c.Metrics))
	return c
}

// Clone returns a deep copy of c.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	res := *c
	res.Strokes = glyph.Clone(c.Strokes)
	if c.Metrics != nil {
		m := *c.Metrics
		res.Metrics = &m
	}
	if c.Connectors != nil {
		conn := *c.Connectors
		res.Connectors = &conn
	}
	return &res
}

// Validate checks that every stroke of c has at least one point.
func (c *Character) Validate() error {
	if c == nil {
		return errors.New("missing character data")
	}
	for i, s := range c.Strokes {
		if len(s.Points) == 0 {
			return &strokeError{Index: i}
		}
	}
	return nil
}

// Metadata holds document-level information.
type Metadata struct {
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	Version  string    `json:"version"`
	Author   string    `json:"author,omitempty"`
}

// Document is a handwriting font: a map from glyph keys to characters.
//
// A Document which has been handed to a [Library] must not be modified;
// use [Document.Clone] to obtain a private copy.
type Document struct {
	Metadata   Metadata              `json:"metadata"`
	Characters map[string]*Character `json:"characters"`
}

// New returns an empty document.
func New() *Document {
	t := now()
	return &Document{
		Metadata: Metadata{
			Created:  t,
			Modified: t,
			Version:  CurrentVersion,
		},
		Characters: make(map[string]*Character),
	}
}

// NormalizeKey converts a glyph key to normalization form C and checks
// that it consists of one or two characters.
func NormalizeKey(key string) (string, error) {
	key = norm.NFC.String(key)
	n := utf8.RuneCountInString(key)
	if n < 1 || n > 2 || !utf8.ValidString(key) {
		return "", ErrInvalidKey
	}
	return key, nil
}

// Set stores a copy of c under the given key, replacing any previous
// character for this key.  The modification time of the document is
// updated.
func (d *Document) Set(key string, c *Character) error {
	key, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return &MalformedError{Key: key, Err: err}
	}
	if d.Characters == nil {
		d.Characters = make(map[string]*Character)
	}
	c = c.Clone()
	if c.Timestamp.IsZero() {
		c.Timestamp = now()
	}
	d.Characters[key] = c
	d.Metadata.Modified = now()
	return nil
}

// Get returns the character stored under key.
func (d *Document) Get(key string) (*Character, bool) {
	c, ok := d.Characters[norm.NFC.String(key)]
	return c, ok
}

// Has reports whether a character is stored under key.
func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Delete removes the character stored under key.
// If there is no such character, [ErrNotFound] is returned.
func (d *Document) Delete(key string) error {
	key = norm.NFC.String(key)
	if _, ok := d.Characters[key]; !ok {
		return ErrNotFound
	}
	delete(d.Characters, key)
	d.Metadata.Modified = now()
	return nil
}

// Keys returns the glyph keys of the document in sorted order.
func (d *Document) Keys() []string {
	return slices.Sorted(maps.Keys(d.Characters))
}

// LigatureKeys returns the sorted list of two-character keys.
func (d *Document) LigatureKeys() []string {
	var res []string
	for _, key := range d.Keys() {
		if utf8.RuneCountInString(key) > 1 {
			res = append(res, key)
		}
	}
	return res
}

// Len returns the number of glyphs in the document.
func (d *Document) Len() int {
	return len(d.Characters)
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	res := &Document{
		Metadata:   d.Metadata,
		Characters: make(map[string]*Character, len(d.Characters)),
	}
	for key, c := range d.Characters {
		res.Characters[key] = c.Clone()
	}
	return res
}

// Validate checks all characters of the document.
func (d *Document) Validate() error {
	if d.Characters == nil {
		return &MalformedError{Err: errNoCharacters}
	}
	for _, key := range d.Keys() {
		if _, err := NormalizeKey(key); err != nil {
			return &MalformedError{Key: key, Err: err}
		}
		if err := d.Characters[key].Validate(); err != nil {
			return &MalformedError{Key: key, Err: err}
		}
	}
	return nil
}
