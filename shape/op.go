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

package shape

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/drawing"
	"seehuhn.de/go/drawing/bezier"
	"seehuhn.de/go/drawing/unit"
)

// Placement selects a position along a path operation.
type Placement int

// These are the supported placements.
const (
	Start Placement = iota
	Middle
	End
)

func (pl Placement) String() string {
	switch pl {
	case Start:
		return "start"
	case Middle:
		return "middle"
	case End:
		return "end"
	default:
		return "placement?"
	}
}

// Op is a single operation in a subpath.
//
// The concrete types are [MoveTo], [LineTo], [Close], [QuadTo], [CubeTo]
// and [ArcTo].  Operations do not store their start point, so the
// position from which the operation starts must be given when locations
// or angles are computed.  [Subpath.LocationAt] and [Subpath.AngleAt]
// supply this automatically.
type Op interface {
	// EndPoint returns the position of the cursor after the operation.
	EndPoint() drawing.Point

	// LocationAt returns the position of the given placement along the
	// operation.
	LocationAt(from drawing.Point, pl Placement) drawing.Point

	// AngleAt returns the direction of travel at the given placement, as
	// an angle in radians.
	AngleAt(from drawing.Point, pl Placement) float64

	// points appends all points stored in the operation.
	points(dst []drawing.Point) []drawing.Point

	// curves returns the operation as a sequence of cubic Bézier curves,
	// in PDF points.
	curves(from vec.Vec2) []bezier.Cubic
}

// MoveTo starts a new contour at the given point.
type MoveTo struct {
	To drawing.Point
}

// LineTo draws a straight line to the given point.
type LineTo struct {
	To drawing.Point
}

// Close draws a straight line back to the start of the contour.
// To is the start point of the contour.
type Close struct {
	To drawing.Point
}

// QuadTo draws a quadratic Bézier curve.
type QuadTo struct {
	Control drawing.Point
	To      drawing.Point
}

// CubeTo draws a cubic Bézier curve.
//
// A curve may be specified with only one of the two handles.  A missing
// first handle is taken to coincide with the start point, a missing
// second handle coincides with the end point.
type CubeTo struct {
	Handle1, Handle2       drawing.Point
	HasHandle1, HasHandle2 bool
	To                     drawing.Point
}

// ArcTo draws an elliptical arc, in SVG endpoint notation.
type ArcTo struct {
	RadiusX, RadiusY unit.Unit
	Rotation         float64 // rotation of the x-axis of the ellipse, in degrees
	LargeArc         bool
	Sweep            bool
	To               drawing.Point
}

// EndPoint implements the [Op] interface.
func (op MoveTo) EndPoint() drawing.Point { return op.To }

// EndPoint implements the [Op] interface.
func (op LineTo) EndPoint() drawing.Point { return op.To }

// EndPoint implements the [Op] interface.
func (op Close) EndPoint() drawing.Point { return op.To }

// EndPoint implements the [Op] interface.
func (op QuadTo) EndPoint() drawing.Point { return op.To }

// EndPoint implements the [Op] interface.
func (op CubeTo) EndPoint() drawing.Point { return op.To }

// EndPoint implements the [Op] interface.
func (op ArcTo) EndPoint() drawing.Point { return op.To }

// LocationAt implements the [Op] interface.
// All placements of a MoveTo are at the target point.
func (op MoveTo) LocationAt(from drawing.Point, pl Placement) drawing.Point {
	return op.To
}

// AngleAt implements the [Op] interface.
// A MoveTo has no direction, the angle is always zero.
func (op MoveTo) AngleAt(from drawing.Point, pl Placement) float64 {
	return 0
}

// LocationAt implements the [Op] interface.
func (op LineTo) LocationAt(from drawing.Point, pl Placement) drawing.Point {
	return locationAt(op, from, pl)
}

// AngleAt implements the [Op] interface.
func (op LineTo) AngleAt(from drawing.Point, pl Placement) float64 {
	return angleAt(op, from, pl)
}

// LocationAt implements the [Op] interface.
func (op Close) LocationAt(from drawing.Point, pl Placement) drawing.Point {
	return locationAt(op, from, pl)
}

// AngleAt implements the [Op] interface.
func (op Close) AngleAt(from drawing.Point, pl Placement) float64 {
	return angleAt(op, from, pl)
}

// LocationAt implements the [Op] interface.
func (op QuadTo) LocationAt(from drawing.Point, pl Placement) drawing.Point {
	return locationAt(op, from, pl)
}

// AngleAt implements the [Op] interface.
func (op QuadTo) AngleAt(from drawing.Point, pl Placement) float64 {
	return angleAt(op, from, pl)
}

// LocationAt implements the [Op] interface.
func (op CubeTo) LocationAt(from drawing.Point, pl Placement) drawing.Point {
	return locationAt(op, from, pl)
}

// AngleAt implements the [Op] interface.
func (op CubeTo) AngleAt(from drawing.Point, pl Placement) float64 {
	return angleAt(op, from, pl)
}

// LocationAt implements the [Op] interface.
func (op ArcTo) LocationAt(from drawing.Point, pl Placement) drawing.Point {
	return locationAt(op, from, pl)
}

// AngleAt implements the [Op] interface.
func (op ArcTo) AngleAt(from drawing.Point, pl Placement) float64 {
	return angleAt(op, from, pl)
}

func (op MoveTo) points(dst []drawing.Point) []drawing.Point { return append(dst, op.To) }
func (op LineTo) points(dst []drawing.Point) []drawing.Point { return append(dst, op.To) }
func (op Close) points(dst []drawing.Point) []drawing.Point  { return dst }
func (op QuadTo) points(dst []drawing.Point) []drawing.Point {
	return append(dst, op.Control, op.To)
}
func (op ArcTo) points(dst []drawing.Point) []drawing.Point { return append(dst, op.To) }

func (op CubeTo) points(dst []drawing.Point) []drawing.Point {
	if op.HasHandle1 {
		dst = append(dst, op.Handle1)
	}
	if op.HasHandle2 {
		dst = append(dst, op.Handle2)
	}
	return append(dst, op.To)
}

func (op MoveTo) curves(from vec.Vec2) []bezier.Cubic { return nil }

func (op LineTo) curves(from vec.Vec2) []bezier.Cubic {
	return []bezier.Cubic{bezier.Line(from, op.To.MustVec())}
}

func (op Close) curves(from vec.Vec2) []bezier.Cubic {
	return []bezier.Cubic{bezier.Line(from, op.To.MustVec())}
}

func (op QuadTo) curves(from vec.Vec2) []bezier.Cubic {
	return []bezier.Cubic{bezier.FromQuadratic(from, op.Control.MustVec(), op.To.MustVec())}
}

func (op CubeTo) curves(from vec.Vec2) []bezier.Cubic {
	to := op.To.MustVec()
	c := bezier.Cubic{Start: from, Handle1: from, Handle2: to, End: to}
	if op.HasHandle1 {
		c.Handle1 = op.Handle1.MustVec()
	}
	if op.HasHandle2 {
		c.Handle2 = op.Handle2.MustVec()
	}
	return []bezier.Cubic{c}
}

func (op ArcTo) curves(from vec.Vec2) []bezier.Cubic {
	return bezier.FromArc(from, op.To.MustVec(),
		op.RadiusX.MustPoints(), op.RadiusY.MustPoints(),
		op.Rotation, op.LargeArc, op.Sweep)
}

// locationAt finds a placement along the curves which make up op.
func locationAt(op Op, from drawing.Point, pl Placement) drawing.Point {
	switch pl {
	case Start:
		return from
	case End:
		return op.EndPoint()
	}
	cc := op.curves(from.MustVec())
	if len(cc) == 0 {
		return op.EndPoint()
	}
	c, t := middle(cc)
	return drawing.PointFromVec(c.At(t))
}

// angleAt finds the direction of travel at a placement along op.
func angleAt(op Op, from drawing.Point, pl Placement) float64 {
	cc := op.curves(from.MustVec())
	if len(cc) == 0 {
		return 0
	}
	switch pl {
	case Start:
		c := cc[0]
		return direction(c.Handle1.Sub(c.Start), c.Handle2.Sub(c.Start), c.End.Sub(c.Start))
	case End:
		c := cc[len(cc)-1]
		return direction(c.End.Sub(c.Handle2), c.End.Sub(c.Handle1), c.End.Sub(c.Start))
	default:
		c, t := middle(cc)
		return direction(c.Tangent(t))
	}
}

// middle returns the curve and parameter value half way along a
// sequence of curves.
func middle(cc []bezier.Cubic) (bezier.Cubic, float64) {
	n := len(cc)
	if n%2 == 1 {
		return cc[n/2], 0.5
	}
	return cc[n/2-1], 1
}

// direction returns the angle of the first non-zero vector in candidates.
func direction(candidates ...vec.Vec2) float64 {
	for _, v := range candidates {
		if v.X != 0 || v.Y != 0 {
			return angle(v)
		}
	}
	return 0
}

// angle returns the angle of v in radians, in the range [-π/2, 3π/2).
// The zero vector has angle 0.
func angle(v vec.Vec2) float64 {
	switch {
	case v.X == 0 && v.Y == 0:
		return 0
	case v.X == 0: // also catches -0
		return math.Copysign(math.Pi/2, v.Y)
	}
	a := math.Atan(v.Y / v.X)
	if v.X < 0 {
		a += math.Pi
	}
	return a
}
