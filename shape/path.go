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

// Package shape implements a builder for graphics paths.
//
// A [Path] consists of one or more subpaths, each of which is a sequence
// of path operations.  The builder keeps track of the current point
// ("cursor"), of the last control handle for smooth curves and of the
// bounding box of all points added so far.
//
// The methods of [Path] mirror the commands of SVG path data: the "To"
// methods take absolute coordinates, the "For" methods take offsets
// relative to the cursor.  All coordinates must be absolute lengths;
// passing relative lengths is a programming error and causes a panic.
package shape

import (
	"math"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/drawing"
	"seehuhn.de/go/drawing/unit"
)

// FillRule specifies how the interior of a path is determined.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "fillrule?"
	}
}

// Subpath is a sequence of path operations.
type Subpath struct {
	// Start is the cursor position when the subpath was begun.  This is
	// where the first operation starts.
	Start drawing.Point

	Ops []Op
}

// from returns the point where operation i starts.
func (s *Subpath) from(i int) drawing.Point {
	if i > 0 {
		return s.Ops[i-1].EndPoint()
	}
	return s.Start
}

// LocationAt returns the location of a placement along operation i.
func (s *Subpath) LocationAt(i int, pl Placement) drawing.Point {
	return s.Ops[i].LocationAt(s.from(i), pl)
}

// AngleAt returns the direction of travel, in radians, at a placement
// along operation i.
func (s *Subpath) AngleAt(i int, pl Placement) float64 {
	return s.Ops[i].AngleAt(s.from(i), pl)
}

// Path is a graphics path under construction.
//
// A new Path has one open, empty subpath.  Further subpaths are started
// using [Path.BeginPath], and [Path.EndPath] closes the current subpath
// for modification.  All drawing methods panic if no subpath is open.
//
// A Path must not be modified concurrently.  Use [Path.Clone] to obtain a
// copy which can be handed to a different goroutine.
type Path struct {
	// FillRule is the rule used to fill the path.
	FillRule FillRule

	// Transform, if set, is applied to the path geometry when the outline
	// is generated.  It does not affect the bounds.
	Transform *matrix.Matrix

	subpaths []*Subpath
	open     []int // indices into subpaths, the top is the current subpath

	cursor     drawing.Point
	start      drawing.Point // start of the current contour
	lastHandle drawing.Point
	hasHandle  bool

	bbox    [4]float64 // xMin, yMin, xMax, yMax in points
	hasBBox bool
}

// New returns a path with one open, empty subpath.
func New() *Path {
	p := &Path{}
	p.BeginPath()
	return p
}

// BeginPath starts a new subpath, which becomes the current subpath.
func (p *Path) BeginPath() {
	p.subpaths = append(p.subpaths, &Subpath{Start: p.cursor})
	p.open = append(p.open, len(p.subpaths)-1)
	p.start = p.cursor
}

// EndPath ends the current subpath.  This does not close the subpath,
// it only prevents further modification.  The previously open subpath,
// if any, becomes current again.  If no subpath is open, EndPath does
// nothing.
func (p *Path) EndPath() {
	if len(p.open) > 0 {
		p.open = p.open[:len(p.open)-1]
	}
}

// HasCurrentPath reports whether a subpath is open for modification.
func (p *Path) HasCurrentPath() bool {
	return len(p.open) > 0
}

// Subpaths returns all subpaths of the path, in the order they were
// started.  The returned slice must not be modified.
func (p *Path) Subpaths() []*Subpath {
	return p.subpaths
}

// Cursor returns the current point.
func (p *Path) Cursor() drawing.Point {
	return p.cursor
}

// LastHandle returns the control handle of the previous curve, if the
// previous operation recorded one.
func (p *Path) LastHandle() (drawing.Point, bool) {
	return p.lastHandle, p.hasHandle
}

// Bounds returns the smallest rectangle containing all points added to
// the path, including the control points of curves.  If no points have
// been added, the zero Rect is returned.
func (p *Path) Bounds() drawing.Rect {
	if !p.hasBBox {
		return drawing.Rect{}
	}
	return drawing.RectFromVec(
		vec.Vec2{X: p.bbox[0], Y: p.bbox[1]},
		vec.Vec2{X: p.bbox[2], Y: p.bbox[3]},
	)
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	res := *p
	res.subpaths = make([]*Subpath, len(p.subpaths))
	for i, s := range p.subpaths {
		// Ops are values, copying the slice is enough.
		res.subpaths[i] = &Subpath{Start: s.Start, Ops: slices.Clone(s.Ops)}
	}
	res.open = slices.Clone(p.open)
	if p.Transform != nil {
		m := *p.Transform
		res.Transform = &m
	}
	return &res
}

// AllPoints returns every point stored in the path operations, in order.
// Handles which were not specified are omitted, and arcs contribute only
// their end point.
func (p *Path) AllPoints() []drawing.Point {
	var res []drawing.Point
	for _, s := range p.subpaths {
		for _, op := range s.Ops {
			res = op.points(res)
		}
	}
	return res
}

// MoveTo starts a new contour at pt.
func (p *Path) MoveTo(pt drawing.Point) {
	p.append(MoveTo{To: pt}, pt)
	p.cursor = pt
	p.start = pt
	p.hasHandle = false
}

// MoveBy starts a new contour at the cursor, offset by delta.
func (p *Path) MoveBy(delta drawing.Point) {
	p.MoveTo(p.offset(delta))
}

// LineTo draws a straight line from the cursor to end.
func (p *Path) LineTo(end drawing.Point) {
	p.append(LineTo{To: end}, end)
	p.cursor = end
	p.hasHandle = false
}

// LineFor draws a straight line from the cursor to the cursor plus delta.
func (p *Path) LineFor(delta drawing.Point) {
	p.LineTo(p.offset(delta))
}

// HorizontalLineTo draws a horizontal line to the given x coordinate.
func (p *Path) HorizontalLineTo(x unit.Unit) {
	p.LineTo(drawing.Point{X: x, Y: p.cursor.Y})
}

// HorizontalLineFor draws a horizontal line of length dx.
func (p *Path) HorizontalLineFor(dx unit.Unit) {
	p.LineTo(p.offset(drawing.Point{X: dx, Y: unit.Zero}))
}

// VerticalLineTo draws a vertical line to the given y coordinate.
func (p *Path) VerticalLineTo(y unit.Unit) {
	p.LineTo(drawing.Point{X: p.cursor.X, Y: y})
}

// VerticalLineFor draws a vertical line of length dy.
func (p *Path) VerticalLineFor(dy unit.Unit) {
	p.LineTo(p.offset(drawing.Point{X: unit.Zero, Y: dy}))
}

// ClosePath closes the current contour.  The cursor moves back to the
// start of the contour.  If end is true, the current subpath is also
// ended, see [Path.EndPath].
func (p *Path) ClosePath(end bool) {
	s := p.current()
	s.Ops = append(s.Ops, Close{To: p.start})
	p.cursor = p.start
	p.hasHandle = false
	if end {
		p.EndPath()
	}
}

// QuadraticCurveTo draws a quadratic Bézier curve from the cursor to end.
func (p *Path) QuadraticCurveTo(end, control drawing.Point) {
	p.append(QuadTo{Control: control, To: end}, end, control)
	p.cursor = end
	p.lastHandle = control
	p.hasHandle = true
}

// QuadraticCurveFor is like [Path.QuadraticCurveTo], but the points are
// given relative to the cursor.
func (p *Path) QuadraticCurveFor(endDelta, controlDelta drawing.Point) {
	p.QuadraticCurveTo(p.offset(endDelta), p.offset(controlDelta))
}

// SmoothQuadraticCurveTo draws a quadratic Bézier curve, using the
// reflection of the previous handle about the cursor as the control
// point.  If no handle was recorded, a straight line is drawn instead.
func (p *Path) SmoothQuadraticCurveTo(end drawing.Point) {
	if !p.hasHandle {
		p.LineTo(end)
		return
	}
	p.QuadraticCurveTo(end, p.reflectedHandle())
}

// SmoothQuadraticCurveFor is like [Path.SmoothQuadraticCurveTo], but end
// is given relative to the cursor.
func (p *Path) SmoothQuadraticCurveFor(endDelta drawing.Point) {
	p.SmoothQuadraticCurveTo(p.offset(endDelta))
}

// CubicCurveTo draws a cubic Bézier curve from the cursor to end.
func (p *Path) CubicCurveTo(end, handle1, handle2 drawing.Point) {
	op := CubeTo{
		Handle1: handle1, HasHandle1: true,
		Handle2: handle2, HasHandle2: true,
		To: end,
	}
	p.append(op, end, handle1, handle2)
	p.cursor = end
	p.lastHandle = handle2
	p.hasHandle = true
}

// CubicCurveFor is like [Path.CubicCurveTo], but the points are given
// relative to the cursor.
func (p *Path) CubicCurveFor(endDelta, handle1Delta, handle2Delta drawing.Point) {
	p.CubicCurveTo(p.offset(endDelta), p.offset(handle1Delta), p.offset(handle2Delta))
}

// SmoothCubicCurveTo draws a cubic Bézier curve, using the reflection of
// the previous handle about the cursor as the first handle.  If no handle
// was recorded, a straight line is drawn instead.
func (p *Path) SmoothCubicCurveTo(end, handle2 drawing.Point) {
	if !p.hasHandle {
		p.LineTo(end)
		return
	}
	p.CubicCurveTo(end, p.reflectedHandle(), handle2)
}

// SmoothCubicCurveFor is like [Path.SmoothCubicCurveTo], but the points
// are given relative to the cursor.
func (p *Path) SmoothCubicCurveFor(endDelta, handle2Delta drawing.Point) {
	p.SmoothCubicCurveTo(p.offset(endDelta), p.offset(handle2Delta))
}

// CubicCurveToWithHandleStart draws a cubic Bézier curve where only the
// first handle is given.  The second handle coincides with the end point.
// No handle is recorded for a following smooth curve.
func (p *Path) CubicCurveToWithHandleStart(end, handle1 drawing.Point) {
	op := CubeTo{Handle1: handle1, HasHandle1: true, To: end}
	p.append(op, end, handle1)
	p.cursor = end
	p.hasHandle = false
}

// CubicCurveToWithHandleEnd draws a cubic Bézier curve where only the
// second handle is given.  The first handle coincides with the cursor.
func (p *Path) CubicCurveToWithHandleEnd(end, handle2 drawing.Point) {
	op := CubeTo{Handle2: handle2, HasHandle2: true, To: end}
	p.append(op, end, handle2)
	p.cursor = end
	p.lastHandle = handle2
	p.hasHandle = true
}

// CubicCurveForWithHandleStart is like [Path.CubicCurveToWithHandleStart],
// but the points are given relative to the cursor.
func (p *Path) CubicCurveForWithHandleStart(endDelta, handle1Delta drawing.Point) {
	p.CubicCurveToWithHandleStart(p.offset(endDelta), p.offset(handle1Delta))
}

// CubicCurveForWithHandleEnd is like [Path.CubicCurveToWithHandleEnd],
// but the points are given relative to the cursor.
func (p *Path) CubicCurveForWithHandleEnd(endDelta, handle2Delta drawing.Point) {
	p.CubicCurveToWithHandleEnd(p.offset(endDelta), p.offset(handle2Delta))
}

// ArcTo draws an elliptical arc from the cursor to end.
// The parameters have the same meaning as for the SVG "A" command,
// the rotation is given in degrees.
//
// The arc is stored as a single [ArcTo] operation.  For the bounds, the
// arc is approximated by cubic Bézier curves and all their control points
// are included.
func (p *Path) ArcTo(rx, ry unit.Unit, rotation float64, large, sweep bool, end drawing.Point) {
	s := p.current()
	op := ArcTo{
		RadiusX:  rx,
		RadiusY:  ry,
		Rotation: rotation,
		LargeArc: large,
		Sweep:    sweep,
		To:       end,
	}
	// relative lengths panic here, before the path is modified
	to := end.MustVec()
	cc := op.curves(p.cursor.MustVec())

	s.Ops = append(s.Ops, op)
	p.include(to)
	for _, c := range cc {
		p.include(c.Handle1, c.Handle2, c.End)
	}
	p.cursor = end
	p.hasHandle = false
}

// ArcFor is like [Path.ArcTo], but end is given relative to the cursor.
func (p *Path) ArcFor(rx, ry unit.Unit, rotation float64, large, sweep bool, endDelta drawing.Point) {
	p.ArcTo(rx, ry, rotation, large, sweep, p.offset(endDelta))
}

// current returns the current subpath.
func (p *Path) current() *Subpath {
	if len(p.open) == 0 {
		panic("shape: no open subpath")
	}
	return p.subpaths[p.open[len(p.open)-1]]
}

// append adds op to the current subpath and includes the given points
// in the bounds.
func (p *Path) append(op Op, pts ...drawing.Point) {
	s := p.current()
	vv := make([]vec.Vec2, len(pts))
	for i, pt := range pts {
		vv[i] = pt.MustVec()
	}
	s.Ops = append(s.Ops, op)
	p.include(vv...)
}

func (p *Path) include(vv ...vec.Vec2) {
	for _, v := range vv {
		if !p.hasBBox {
			p.bbox = [4]float64{v.X, v.Y, v.X, v.Y}
			p.hasBBox = true
			continue
		}
		p.bbox[0] = math.Min(p.bbox[0], v.X)
		p.bbox[1] = math.Min(p.bbox[1], v.Y)
		p.bbox[2] = math.Max(p.bbox[2], v.X)
		p.bbox[3] = math.Max(p.bbox[3], v.Y)
	}
}

// offset returns the cursor moved by delta.
func (p *Path) offset(delta drawing.Point) drawing.Point {
	res, err := p.cursor.Add(delta)
	if err != nil {
		panic(err)
	}
	return res
}

// reflectedHandle returns the reflection of the last handle about the
// cursor.
func (p *Path) reflectedHandle() drawing.Point {
	d, err := p.cursor.Sub(p.lastHandle)
	if err != nil {
		panic(err)
	}
	return p.offset(d)
}
