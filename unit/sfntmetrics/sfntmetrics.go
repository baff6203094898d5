// seehuhn.de/go/drawing - vector geometry for document rendering
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Package sfntmetrics computes the font metrics used for resolving
// font-relative lengths ("em", "ex" and "ch") from an OpenType or TrueType
// font.
package sfntmetrics

import (
	"errors"
	"fmt"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/drawing/unit"
)

// fallbackRatio is used for the x-height and the digit width, relative to
// the font size, when the font does not provide the information.
const fallbackRatio = 0.5

// New returns the metrics of font f, set at the given font size.
// The size must be an absolute length.
func New(f *sfnt.Font, size unit.Unit) (unit.FontMetrics, error) {
	if f == nil {
		return unit.FontMetrics{}, errors.New("sfntmetrics: missing font")
	}
	em, err := size.ToPoints()
	if err != nil {
		return unit.FontMetrics{}, fmt.Errorf("sfntmetrics: font size: %w", err)
	}
	if f.UnitsPerEm == 0 {
		return unit.FontMetrics{}, errors.New("sfntmetrics: invalid unitsPerEm")
	}

	scale := em / float64(f.UnitsPerEm)
	m := unit.FontMetrics{
		EmHeight:  em,
		ExHeight:  fallbackRatio * em,
		ZeroWidth: fallbackRatio * em,
	}
	if f.XHeight > 0 {
		m.ExHeight = f.XHeight.AsFloat(scale)
	}
	if w, ok := zeroWidth(f); ok {
		m.ZeroWidth = float64(w) * scale
	}
	return m, nil
}

// zeroWidth returns the advance width of the glyph for the digit zero.
func zeroWidth(f *sfnt.Font) (funit.Float64, bool) {
	if f.CMapTable == nil {
		return 0, false
	}
	cmap, err := f.CMapTable.GetBest()
	if err != nil || cmap == nil {
		return 0, false
	}
	gid := cmap.Lookup('0')
	if gid == 0 {
		return 0, false
	}
	w := f.GlyphWidth(gid)
	if w <= 0 {
		return 0, false
	}
	return funit.Float64(w), true
}
