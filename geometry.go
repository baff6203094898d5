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

package drawing

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/drawing/unit"
)

// ErrRelative is returned when an absolute length is required, but a
// relative length was given.
var ErrRelative = errors.New("drawing: relative length needs to be resolved first")

// Point is a location on the page.
type Point struct {
	X, Y unit.Unit
}

// Pt returns the point with the given coordinates, measured in points.
func Pt(x, y float64) Point {
	return Point{X: unit.Pt(x), Y: unit.Pt(y)}
}

// PointFromVec converts a vector in PDF points to a Point.
func PointFromVec(v vec.Vec2) Point {
	return Pt(v.X, v.Y)
}

// Add returns p+q.
func (p Point) Add(q Point) (Point, error) {
	x, err := p.X.Add(q.X)
	if err != nil {
		return Point{}, err
	}
	y, err := p.Y.Add(q.Y)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// Sub returns p-q.
func (p Point) Sub(q Point) (Point, error) {
	x, err := p.X.Sub(q.X)
	if err != nil {
		return Point{}, err
	}
	y, err := p.Y.Sub(q.Y)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// IsRelative reports whether either coordinate of p is a relative length.
func (p Point) IsRelative() bool {
	return p.X.IsRelative() || p.Y.IsRelative()
}

// Equal reports whether p and q describe the same location.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Vec returns the coordinates of p in PDF points.
func (p Point) Vec() (vec.Vec2, error) {
	if p.IsRelative() {
		return vec.Vec2{}, ErrRelative
	}
	return vec.Vec2{X: p.X.MustPoints(), Y: p.Y.MustPoints()}, nil
}

// MustVec is like [Point.Vec] but panics if p is relative.
func (p Point) MustVec() vec.Vec2 {
	v, err := p.Vec()
	if err != nil {
		panic(err)
	}
	return v
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Size is the extent of a box.
type Size struct {
	Width, Height unit.Unit
}

// IsRelative reports whether either dimension of s is a relative length.
func (s Size) IsRelative() bool {
	return s.Width.IsRelative() || s.Height.IsRelative()
}

// IsZero reports whether s has zero area.
func (s Size) IsZero() bool {
	return s.Width.IsZero() || s.Height.IsZero()
}

func (s Size) String() string {
	return fmt.Sprintf("%s x %s", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle.  Origin is the corner with the
// smallest coordinates, the Size is normally non-negative.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect returns the rectangle with the given origin and size, in points.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		Origin: Pt(x, y),
		Size:   Size{Width: unit.Pt(width), Height: unit.Pt(height)},
	}
}

// RectFromVec returns the smallest rectangle containing a and b.
// The coordinates are in PDF points.
func RectFromVec(a, b vec.Vec2) Rect {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// RectFromGeom converts a rectangle from the geom package.
func RectFromGeom(r rect.Rect) Rect {
	return RectFromVec(vec.Vec2{X: r.LLx, Y: r.LLy}, vec.Vec2{X: r.URx, Y: r.URy})
}

// X returns the horizontal position of the origin.
func (r Rect) X() unit.Unit { return r.Origin.X }

// Y returns the vertical position of the origin.
func (r Rect) Y() unit.Unit { return r.Origin.Y }

// Width returns the horizontal extent of r.
func (r Rect) Width() unit.Unit { return r.Size.Width }

// Height returns the vertical extent of r.
func (r Rect) Height() unit.Unit { return r.Size.Height }

// Right returns X+Width.
func (r Rect) Right() (unit.Unit, error) {
	return r.Origin.X.Add(r.Size.Width)
}

// Bottom returns Y+Height.  In the top-down coordinate system used for
// layout, this is the lower edge of the rectangle.
func (r Rect) Bottom() (unit.Unit, error) {
	return r.Origin.Y.Add(r.Size.Height)
}

// IsEmpty reports whether r has zero width or zero height.
func (r Rect) IsEmpty() bool {
	return r.Size.IsZero()
}

// IsRelative reports whether any of the lengths describing r is relative.
func (r Rect) IsRelative() bool {
	return r.Origin.IsRelative() || r.Size.IsRelative()
}

// Geom converts r to a rectangle in PDF points.
func (r Rect) Geom() (rect.Rect, error) {
	if r.IsRelative() {
		return rect.Rect{}, ErrRelative
	}
	x := r.Origin.X.MustPoints()
	y := r.Origin.Y.MustPoints()
	w := r.Size.Width.MustPoints()
	h := r.Size.Height.MustPoints()
	return rect.Rect{
		LLx: math.Min(x, x+w),
		LLy: math.Min(y, y+h),
		URx: math.Max(x, x+w),
		URy: math.Max(y, y+h),
	}, nil
}

// Contains reports whether the point p lies inside r or on its boundary.
// Points or rectangles with relative coordinates are never contained.
func (r Rect) Contains(p Point) bool {
	g, err := r.Geom()
	if err != nil {
		return false
	}
	v, err := p.Vec()
	if err != nil {
		return false
	}
	const eps = unit.Epsilon
	return v.X >= g.LLx-eps && v.X <= g.URx+eps &&
		v.Y >= g.LLy-eps && v.Y <= g.URy+eps
}

// Union returns the smallest rectangle which contains both r and other.
// The zero Rect acts as the empty set.
func (r Rect) Union(other Rect) (Rect, error) {
	if r == (Rect{}) {
		return other, nil
	}
	if other == (Rect{}) {
		return r, nil
	}
	a, err := r.Geom()
	if err != nil {
		return Rect{}, err
	}
	b, err := other.Geom()
	if err != nil {
		return Rect{}, err
	}
	return RectFromVec(
		vec.Vec2{X: math.Min(a.LLx, b.LLx), Y: math.Min(a.LLy, b.LLy)},
		vec.Vec2{X: math.Max(a.URx, b.URx), Y: math.Max(a.URy, b.URy)},
	), nil
}

func (r Rect) String() string {
	return fmt.Sprintf("%s+%s", r.Origin, r.Size)
}
