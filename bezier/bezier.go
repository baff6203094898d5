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

// Package bezier converts elliptical arcs and quadratic Bézier curves
// into cubic Bézier curves, and evaluates cubic curves.
//
// All coordinates are in PDF points.
package bezier

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Cubic is a cubic Bézier curve segment.
type Cubic struct {
	Start   vec.Vec2
	Handle1 vec.Vec2
	Handle2 vec.Vec2
	End     vec.Vec2
}

// Line returns a cubic segment which traces the straight line from a to b.
// The handles are placed on the end points.
func Line(a, b vec.Vec2) Cubic {
	return Cubic{Start: a, Handle1: a, Handle2: b, End: b}
}

// FromQuadratic returns the cubic curve which traces the same curve as the
// quadratic Bézier curve with the given start, control and end points.
func FromQuadratic(start, control, end vec.Vec2) Cubic {
	return Cubic{
		Start:   start,
		Handle1: start.Add(control.Sub(start).Mul(2.0 / 3.0)),
		Handle2: end.Add(control.Sub(end).Mul(2.0 / 3.0)),
		End:     end,
	}
}

// At returns the point on the curve at parameter t, where t=0 gives the
// start point and t=1 gives the end point.
func (c Cubic) At(t float64) vec.Vec2 {
	s := 1 - t
	a := s * s * s
	b := 3 * s * s * t
	d := 3 * s * t * t
	e := t * t * t
	return vec.Vec2{
		X: a*c.Start.X + b*c.Handle1.X + d*c.Handle2.X + e*c.End.X,
		Y: a*c.Start.Y + b*c.Handle1.Y + d*c.Handle2.Y + e*c.End.Y,
	}
}

// Tangent returns the derivative of the curve at parameter t.
// The result is the zero vector if all four points coincide.
func (c Cubic) Tangent(t float64) vec.Vec2 {
	s := 1 - t
	d0 := c.Handle1.Sub(c.Start).Mul(3 * s * s)
	d1 := c.Handle2.Sub(c.Handle1).Mul(6 * s * t)
	d2 := c.End.Sub(c.Handle2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// ControlBox returns the smallest rectangle containing the four control
// points.  The curve is always contained in this rectangle.
func (c Cubic) ControlBox() rect.Rect {
	r := rect.Rect{LLx: c.Start.X, LLy: c.Start.Y, URx: c.Start.X, URy: c.Start.Y}
	for _, p := range []vec.Vec2{c.Handle1, c.Handle2, c.End} {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}
