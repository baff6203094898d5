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

package unit

import "fmt"

// Conversion factors between the absolute units.
const (
	PointsPerInch  = 72.0
	PointsPerMM    = PointsPerInch / 25.4
	PointsPerPixel = PointsPerInch / 96.0
)

// Kind identifies the unit a length is measured in.
type Kind uint8

// These are the supported unit kinds.  The first four are absolute.
const (
	Points Kind = iota
	Millimeters
	Inches
	Pixels

	Percent
	EmHeight
	ExHeight
	ZeroWidth // "ch", the advance width of the digit zero
	RootEmHeight
	ViewportWidth
	ViewportHeight
	ViewportMin
	ViewportMax

	numKinds
)

// IsRelative reports whether lengths of kind k need a reference before
// their size is known.
func (k Kind) IsRelative() bool {
	return k >= Percent && k < numKinds
}

// String returns the suffix used for k in style sheets.
func (k Kind) String() string {
	if k < numKinds {
		return suffixes[k]
	}
	return fmt.Sprintf("unit.Kind(%d)", k)
}

// pointsPer gives the size of one unit of an absolute kind, in points.
func (k Kind) pointsPer() float64 {
	switch k {
	case Millimeters:
		return PointsPerMM
	case Inches:
		return PointsPerInch
	case Pixels:
		return PointsPerPixel
	default:
		return 1
	}
}

// Unit is a length.
//
// The zero value is a length of zero points.
type Unit struct {
	// val is the size in points for absolute kinds, and the authored
	// number for relative kinds.
	val  float64
	kind Kind
}

// New returns a length of the given magnitude, measured in units of kind k.
func New(value float64, k Kind) Unit {
	if k.IsRelative() {
		return Unit{val: value, kind: k}
	}
	return Unit{val: value * k.pointsPer(), kind: k}
}

// Zero is a length of zero points.
var Zero = Unit{}

// Pt returns a length in PDF points.
func Pt(x float64) Unit { return Unit{val: x, kind: Points} }

// MM returns a length in millimetres.
func MM(x float64) Unit { return New(x, Millimeters) }

// In returns a length in inches.
func In(x float64) Unit { return New(x, Inches) }

// Px returns a length in CSS pixels, 1/96 inch.
func Px(x float64) Unit { return New(x, Pixels) }

// Pct returns a percentage of a reference length.
func Pct(x float64) Unit { return New(x, Percent) }

// Em returns a multiple of the font size.
func Em(x float64) Unit { return New(x, EmHeight) }

// Ex returns a multiple of the x-height of the font.
func Ex(x float64) Unit { return New(x, ExHeight) }

// Ch returns a multiple of the width of the digit zero.
func Ch(x float64) Unit { return New(x, ZeroWidth) }

// Rem returns a multiple of the root font size.
func Rem(x float64) Unit { return New(x, RootEmHeight) }

// VW returns a percentage of the viewport width.
func VW(x float64) Unit { return New(x, ViewportWidth) }

// VH returns a percentage of the viewport height.
func VH(x float64) Unit { return New(x, ViewportHeight) }

// VMin returns a percentage of the smaller viewport dimension.
func VMin(x float64) Unit { return New(x, ViewportMin) }

// VMax returns a percentage of the larger viewport dimension.
func VMax(x float64) Unit { return New(x, ViewportMax) }

// Kind returns the unit u was specified in.
func (u Unit) Kind() Kind {
	return u.kind
}

// IsRelative reports whether u must be resolved before use.
func (u Unit) IsRelative() bool {
	return u.kind.IsRelative()
}

// IsZero reports whether u has zero magnitude.  A zero length is zero in
// every unit, relative or not.
func (u Unit) IsZero() bool {
	return u.val == 0
}

// Value returns the magnitude of u, measured in its own kind.
func (u Unit) Value() float64 {
	if u.kind.IsRelative() {
		return u.val
	}
	return u.val / u.kind.pointsPer()
}

// ToPoints returns the size of an absolute length in points.
func (u Unit) ToPoints() (float64, error) {
	if u.kind.IsRelative() {
		return 0, newInvalidState("ToPoints", u.kind)
	}
	return u.val, nil
}

// ToInches returns the size of an absolute length in inches.
func (u Unit) ToInches() (float64, error) {
	if u.kind.IsRelative() {
		return 0, newInvalidState("ToInches", u.kind)
	}
	return u.val / PointsPerInch, nil
}

// ToMillimeters returns the size of an absolute length in millimetres.
func (u Unit) ToMillimeters() (float64, error) {
	if u.kind.IsRelative() {
		return 0, newInvalidState("ToMillimeters", u.kind)
	}
	return u.val / PointsPerMM, nil
}

// ToPixels returns the size of an absolute length in CSS pixels.
func (u Unit) ToPixels() (float64, error) {
	if u.kind.IsRelative() {
		return 0, newInvalidState("ToPixels", u.kind)
	}
	return u.val / PointsPerPixel, nil
}

// MustPoints is like [Unit.ToPoints] but panics if u is relative.
func (u Unit) MustPoints() float64 {
	pt, err := u.ToPoints()
	if err != nil {
		panic(err)
	}
	return pt
}

// Convert changes the kind of an absolute length to the absolute kind k.
// The size is unchanged, only the unit used for printing differs.
func (u Unit) Convert(k Kind) (Unit, error) {
	if u.kind.IsRelative() || k.IsRelative() || k >= numKinds {
		return Unit{}, newInvalidOperation("convert", u.kind, k)
	}
	return Unit{val: u.val, kind: k}, nil
}
