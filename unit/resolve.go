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

import "math"

// FontMetrics describes the font which font-relative lengths refer to.
// All fields are in points.
type FontMetrics struct {
	EmHeight  float64 // the font size
	ExHeight  float64 // the x-height
	ZeroWidth float64 // the advance width of the digit zero
}

// Context holds the values which relative lengths are resolved against.
// All lengths in a Context must be absolute.
type Context struct {
	ViewportWidth  Unit
	ViewportHeight Unit
	Font           FontMetrics

	// RootEm is the font size of the root element.
	RootEm Unit
}

// ToAbsolute resolves u to an absolute length.
//
// Percentages are taken of reference.  Viewport units are percentages of
// the viewport dimensions in ctx, font-relative units are multiples of the
// corresponding font metric and "rem" is a multiple of ctx.RootEm.
// Absolute lengths are returned unchanged, and lengths with zero
// magnitude resolve to zero points whatever their kind.  A nil ctx is
// treated like a zero Context.
func (u Unit) ToAbsolute(reference Unit, ctx *Context) (Unit, error) {
	if !u.kind.IsRelative() {
		return u, nil
	}
	if u.val == 0 {
		return Zero, nil
	}
	if ctx == nil {
		ctx = &Context{}
	}

	var pt float64
	switch u.kind {
	case Percent:
		ref, err := reference.ToPoints()
		if err != nil {
			return Unit{}, err
		}
		pt = ref * u.val / 100
	case EmHeight:
		pt = u.val * ctx.Font.EmHeight
	case ExHeight:
		pt = u.val * ctx.Font.ExHeight
	case ZeroWidth:
		pt = u.val * ctx.Font.ZeroWidth
	case RootEmHeight:
		rem, err := ctx.RootEm.ToPoints()
		if err != nil {
			return Unit{}, err
		}
		pt = u.val * rem
	default:
		w, err := ctx.ViewportWidth.ToPoints()
		if err != nil {
			return Unit{}, err
		}
		h, err := ctx.ViewportHeight.ToPoints()
		if err != nil {
			return Unit{}, err
		}
		var ref float64
		switch u.kind {
		case ViewportWidth:
			ref = w
		case ViewportHeight:
			ref = h
		case ViewportMin:
			ref = math.Min(w, h)
		case ViewportMax:
			ref = math.Max(w, h)
		}
		pt = ref * u.val / 100
	}
	return Pt(pt), nil
}

// MustAbsolute is like [Unit.ToAbsolute] but panics on error.
func (u Unit) MustAbsolute(reference Unit, ctx *Context) Unit {
	v, err := u.ToAbsolute(reference, ctx)
	if err != nil {
		panic(err)
	}
	return v
}
