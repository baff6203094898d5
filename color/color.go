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

// Package color represents the sRGB colours used in gradient stops.
//
// Colours are given by red, green and blue components in the range [0, 1]
// together with an opacity value.  [Parse] reads the CSS colour notations
// which appear in gradient descriptors.
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/drawing/internal/float"
)

// Color is a colour in the sRGB colour space.
// All components are in the range from 0 to 1.
type Color struct {
	R, G, B float64

	// Alpha is the opacity of the colour, from 0 (transparent) to 1
	// (opaque).
	Alpha float64
}

// These are frequently used colours.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = Color{}
)

// RGB returns an opaque colour.
// Each component must be in the range [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, Alpha: 1}
}

// RGBA returns a colour with the given opacity.
func RGBA(r, g, b, alpha float64) Color {
	return Color{R: r, G: g, B: b, Alpha: alpha}
}

// Components returns the red, green and blue components of c.
// The opacity is not included.
func (c Color) Components() []float64 {
	return []float64{c.R, c.G, c.B}
}

// IsOpaque reports whether c has full opacity.
func (c Color) IsOpaque() bool {
	return c.Alpha >= 1
}

// Hex returns the colour in "#rrggbb" notation, with two more digits
// for the opacity if c is not opaque.
func (c Color) Hex() string {
	s := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	if c.IsOpaque() {
		return s
	}
	return s + fmt.Sprintf("%02x", toByte(c.Alpha))
}

// String returns the colour in CSS rgb() or rgba() notation.
func (c Color) String() string {
	r, g, b := toByte(c.R), toByte(c.G), toByte(c.B)
	if c.IsOpaque() {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, float.Format(c.Alpha, 3))
}

func toByte(x float64) uint8 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 255
	}
	return uint8(x*255 + 0.5)
}
