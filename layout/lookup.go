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

package layout

import (
	"slices"
	"unicode/utf8"
)

// Lookup finds the glyph keys matching a piece of text.
// Longer keys (ligatures) take precedence over shorter ones.
type Lookup struct {
	keys    map[string]bool
	lengths []int // key lengths in runes, longest first
}

// NewLookup returns a Lookup for the given glyph keys.
func NewLookup(keys []string) *Lookup {
	l := &Lookup{keys: make(map[string]bool, len(keys))}
	for _, key := range keys {
		n := utf8.RuneCountInString(key)
		if n == 0 {
			continue
		}
		l.keys[key] = true
		if !slices.Contains(l.lengths, n) {
			l.lengths = append(l.lengths, n)
		}
	}
	slices.Sort(l.lengths)
	slices.Reverse(l.lengths)
	return l
}

// Match returns the longest key which matches text at position pos.
// The second return value is the number of runes consumed.  If no key
// matches, Match returns "", 0.
func (l *Lookup) Match(text []rune, pos int) (string, int) {
	for _, n := range l.lengths {
		if pos+n > len(text) {
			continue
		}
		key := string(text[pos : pos+n])
		if l.keys[key] {
			return key, n
		}
	}
	return "", 0
}
