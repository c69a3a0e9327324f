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

// Package meta builds the XMP metadata packets embedded into rendered
// documents.
package meta

import (
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"
)

// Generator is the default generator name recorded in rendered documents.
const Generator = "seehuhn.de/go/handwriting"

// Info describes a rendered document.
type Info struct {
	Generator   string
	Created     time.Time
	FontVersion string
	Title       string
	Author      string

	// Missing lists the glyph keys which were not available in the font.
	Missing []string
}

// Handwriting is the XMP namespace for rendering information.
type Handwriting struct {
	_             xmp.Namespace `xmp:"http://ns.seehuhn.de/handwriting/1.0/"`
	_             xmp.Prefix    `xmp:"hw"`
	Generator     xmp.AgentName
	CreateDate    xmp.Date
	FontVersion   xmp.Text
	MissingGlyphs xmp.Text
}

// Packet converts info into an XMP packet.
func (info *Info) Packet() *xmp.Packet {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}

	hw := &Handwriting{}
	gen := info.Generator
	if gen == "" {
		gen = Generator
	}
	hw.Generator = xmp.NewAgentName(gen)
	if !info.Created.IsZero() {
		hw.CreateDate = xmp.NewDate(info.Created)
	}
	if info.FontVersion != "" {
		hw.FontVersion = xmp.NewText(info.FontVersion)
	}
	if len(info.Missing) > 0 {
		hw.MissingGlyphs = xmp.NewText(strings.Join(info.Missing, " "))
	}

	packet := xmp.NewPacket()
	packet.Set(dc, hw)
	return packet
}

// Write writes the XMP packet for info to w.
func Write(w io.Writer, info *Info) error {
	opt := &xmp.PacketOptions{
		Pretty: true,
	}
	return info.Packet().Write(w, opt)
}
