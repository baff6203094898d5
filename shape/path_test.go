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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/drawing"
	"seehuhn.de/go/drawing/unit"
)

var (
	pointCmp = cmp.Comparer(func(a, b drawing.Point) bool { return a.Equal(b) })
	approx   = cmpopts.EquateApprox(0, 1e-9)
)

func bounds(t *testing.T, p *Path) rect.Rect {
	t.Helper()
	r, err := p.Bounds().Geom()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestNew(t *testing.T) {
	p := New()
	if !p.HasCurrentPath() {
		t.Error("new path has no open subpath")
	}
	if n := len(p.Subpaths()); n != 1 {
		t.Errorf("new path has %d subpaths", n)
	}
	if b := p.Bounds(); b != (drawing.Rect{}) {
		t.Errorf("empty path has bounds %s", b)
	}
	if _, ok := p.LastHandle(); ok {
		t.Error("new path has a last handle")
	}
}

func TestBoundsIncludeHandles(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.CubicCurveTo(drawing.Pt(10, 0), drawing.Pt(5, 20), drawing.Pt(5, -20))

	b := p.Bounds()
	for _, pt := range []drawing.Point{
		drawing.Pt(0, 0), drawing.Pt(10, 0), drawing.Pt(5, 20), drawing.Pt(5, -20),
	} {
		if !b.Contains(pt) {
			t.Errorf("bounds %s do not contain %s", b, pt)
		}
	}
	want := rect.Rect{LLx: 0, LLy: -20, URx: 10, URy: 20}
	if d := cmp.Diff(want, bounds(t, p), approx); d != "" {
		t.Error(d)
	}
}

func TestBoundsQuadratic(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(2, 3))
	p.QuadraticCurveTo(drawing.Pt(8, 3), drawing.Pt(5, 30))
	want := rect.Rect{LLx: 2, LLy: 3, URx: 8, URy: 30}
	if d := cmp.Diff(want, bounds(t, p), approx); d != "" {
		t.Error(d)
	}
}

func TestBoundsArc(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.ArcTo(unit.Pt(5), unit.Pt(5), 0, false, true, drawing.Pt(10, 0))

	b := bounds(t, p)
	if math.Abs(b.LLx) > 1e-9 || math.Abs(b.URx-10) > 1e-9 {
		t.Errorf("horizontal extent %g..%g", b.LLx, b.URx)
	}
	// The control points of a half circle of radius 5 extend beyond the
	// circle, to a distance of 5*4/3.
	h := b.URy - b.LLy
	if h < 5 || h > 5*4.0/3.0+1e-9 {
		t.Errorf("vertical extent %g", h)
	}

	ops := p.Subpaths()[0].Ops
	if len(ops) != 2 {
		t.Fatalf("got %d ops", len(ops))
	}
	if _, ok := ops[1].(ArcTo); !ok {
		t.Errorf("arc stored as %T", ops[1])
	}
}

func TestSmoothDegradesToLine(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.SmoothCubicCurveTo(drawing.Pt(10, 0), drawing.Pt(5, 5))
	p.SmoothQuadraticCurveTo(drawing.Pt(20, 0))

	ops := p.Subpaths()[0].Ops
	if len(ops) != 3 {
		t.Fatalf("got %d ops", len(ops))
	}
	for i, op := range ops[1:] {
		if _, ok := op.(LineTo); !ok {
			t.Errorf("op %d is %T, not LineTo", i+1, op)
		}
	}
	if d := cmp.Diff(drawing.Pt(20, 0), p.Cursor(), pointCmp); d != "" {
		t.Error(d)
	}
}

func TestSmoothReflection(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.QuadraticCurveTo(drawing.Pt(10, 0), drawing.Pt(5, 5))
	p.SmoothQuadraticCurveTo(drawing.Pt(20, 0))

	ops := p.Subpaths()[0].Ops
	q, ok := ops[2].(QuadTo)
	if !ok {
		t.Fatalf("op 2 is %T", ops[2])
	}
	if d := cmp.Diff(drawing.Pt(15, -5), q.Control, pointCmp); d != "" {
		t.Error(d)
	}

	p.SmoothCubicCurveTo(drawing.Pt(30, 0), drawing.Pt(28, 4))
	ops = p.Subpaths()[0].Ops
	cube, ok := ops[3].(CubeTo)
	if !ok {
		t.Fatalf("op 3 is %T", ops[3])
	}
	want := CubeTo{
		Handle1: drawing.Pt(25, 5), HasHandle1: true,
		Handle2: drawing.Pt(28, 4), HasHandle2: true,
		To: drawing.Pt(30, 0),
	}
	if d := cmp.Diff(want, cube, pointCmp); d != "" {
		t.Error(d)
	}
	h, ok := p.LastHandle()
	if !ok || !h.Equal(drawing.Pt(28, 4)) {
		t.Errorf("last handle %s, %t", h, ok)
	}
}

func TestHandleStartEnd(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.CubicCurveToWithHandleEnd(drawing.Pt(10, 0), drawing.Pt(8, 2))
	if h, ok := p.LastHandle(); !ok || !h.Equal(drawing.Pt(8, 2)) {
		t.Errorf("last handle %s, %t", h, ok)
	}
	p.CubicCurveToWithHandleStart(drawing.Pt(20, 0), drawing.Pt(12, -2))
	if _, ok := p.LastHandle(); ok {
		t.Error("handle recorded after CubicCurveToWithHandleStart")
	}
	p.SmoothCubicCurveTo(drawing.Pt(30, 0), drawing.Pt(25, 5))

	ops := p.Subpaths()[0].Ops
	if _, ok := ops[3].(LineTo); !ok {
		t.Errorf("smooth curve after handle-start curve is %T", ops[3])
	}

	c := ops[1].(CubeTo)
	if c.HasHandle1 || !c.HasHandle2 {
		t.Errorf("wrong handles: %+v", c)
	}
	c = ops[2].(CubeTo)
	if !c.HasHandle1 || c.HasHandle2 {
		t.Errorf("wrong handles: %+v", c)
	}
}

func TestRelativeMethods(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(1, 1))
	p.MoveBy(drawing.Pt(1, 1))
	p.LineFor(drawing.Pt(10, 5))
	p.HorizontalLineFor(unit.Pt(-2))
	p.VerticalLineFor(unit.Pt(3))
	p.HorizontalLineTo(unit.Pt(0))
	p.VerticalLineTo(unit.Pt(0))
	p.QuadraticCurveFor(drawing.Pt(4, 0), drawing.Pt(2, 2))
	p.CubicCurveFor(drawing.Pt(4, 0), drawing.Pt(1, 1), drawing.Pt(3, 1))
	p.SmoothCubicCurveFor(drawing.Pt(4, 0), drawing.Pt(3, -1))
	p.SmoothQuadraticCurveFor(drawing.Pt(4, 0))
	p.CubicCurveForWithHandleStart(drawing.Pt(4, 0), drawing.Pt(1, 1))
	p.CubicCurveForWithHandleEnd(drawing.Pt(4, 0), drawing.Pt(3, 1))
	p.ArcFor(unit.Pt(2), unit.Pt(2), 0, false, true, drawing.Pt(4, 0))

	var ends []drawing.Point
	for _, op := range p.Subpaths()[0].Ops {
		ends = append(ends, op.EndPoint())
	}
	want := []drawing.Point{
		drawing.Pt(1, 1),
		drawing.Pt(2, 2),
		drawing.Pt(12, 7),
		drawing.Pt(10, 7),
		drawing.Pt(10, 10),
		drawing.Pt(0, 10),
		drawing.Pt(0, 0),
		drawing.Pt(4, 0),
		drawing.Pt(8, 0),
		drawing.Pt(12, 0),
		drawing.Pt(16, 0),
		drawing.Pt(20, 0),
		drawing.Pt(24, 0),
		drawing.Pt(28, 0),
	}
	if d := cmp.Diff(want, ends, pointCmp); d != "" {
		t.Error(d)
	}

	// control points are relative to the cursor at the time of the call
	ops := p.Subpaths()[0].Ops
	q := ops[7].(QuadTo)
	if !q.Control.Equal(drawing.Pt(2, 2)) {
		t.Errorf("quadratic control %s", q.Control)
	}
	c := ops[8].(CubeTo)
	if !c.Handle1.Equal(drawing.Pt(5, 1)) || !c.Handle2.Equal(drawing.Pt(7, 1)) {
		t.Errorf("cubic handles %s %s", c.Handle1, c.Handle2)
	}
	s := ops[9].(CubeTo)
	if !s.Handle1.Equal(drawing.Pt(9, -1)) {
		t.Errorf("reflected handle %s", s.Handle1)
	}
}

func TestMixedAbsoluteUnits(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Point{X: unit.In(1), Y: unit.MM(0)})
	p.LineFor(drawing.Point{X: unit.Pt(72), Y: unit.In(0.5)})
	if d := cmp.Diff(drawing.Pt(144, 36), p.Cursor(), pointCmp); d != "" {
		t.Error(d)
	}
}

func TestClosePath(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(1, 2))
	p.QuadraticCurveTo(drawing.Pt(5, 2), drawing.Pt(3, 6))
	p.LineTo(drawing.Pt(5, 0))
	p.ClosePath(false)

	if d := cmp.Diff(drawing.Pt(1, 2), p.Cursor(), pointCmp); d != "" {
		t.Error(d)
	}
	if _, ok := p.LastHandle(); ok {
		t.Error("handle recorded after ClosePath")
	}
	if !p.HasCurrentPath() {
		t.Fatal("ClosePath(false) ended the subpath")
	}

	p.ClosePath(true)
	if p.HasCurrentPath() {
		t.Error("ClosePath(true) did not end the subpath")
	}
}

func TestSubpathStack(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.BeginPath()
	p.MoveTo(drawing.Pt(5, 5))
	p.LineTo(drawing.Pt(6, 6))
	p.EndPath()
	p.LineTo(drawing.Pt(1, 0))
	p.EndPath()
	p.EndPath() // no-op

	sp := p.Subpaths()
	if len(sp) != 2 {
		t.Fatalf("got %d subpaths", len(sp))
	}
	if len(sp[0].Ops) != 2 || len(sp[1].Ops) != 2 {
		t.Errorf("ops per subpath: %d, %d", len(sp[0].Ops), len(sp[1].Ops))
	}
	if p.HasCurrentPath() {
		t.Error("subpath still open")
	}
}

func TestPanics(t *testing.T) {
	cases := map[string]func(p *Path){
		"no subpath": func(p *Path) {
			p.EndPath()
			p.LineTo(drawing.Pt(1, 1))
		},
		"relative point": func(p *Path) {
			p.MoveTo(drawing.Point{X: unit.Pct(50), Y: unit.Pt(0)})
		},
		"relative delta": func(p *Path) {
			p.LineFor(drawing.Point{X: unit.Em(1), Y: unit.Pt(0)})
		},
		"relative radius": func(p *Path) {
			p.ArcTo(unit.VW(5), unit.Pt(5), 0, false, false, drawing.Pt(10, 0))
		},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			f(New())
		})
	}
}

func TestClone(t *testing.T) {
	m := matrix.Translate(1, 2)
	p := New()
	p.FillRule = EvenOdd
	p.Transform = &m
	p.MoveTo(drawing.Pt(0, 0))
	p.LineTo(drawing.Pt(1, 1))

	q := p.Clone()
	q.LineTo(drawing.Pt(2, 2))
	q.BeginPath()
	q.Transform[4] = 100

	if n := len(p.Subpaths()); n != 1 {
		t.Errorf("original has %d subpaths", n)
	}
	if n := len(p.Subpaths()[0].Ops); n != 2 {
		t.Errorf("original has %d ops", n)
	}
	if p.Transform[4] != 1 {
		t.Error("transform is shared")
	}
	if q.FillRule != EvenOdd {
		t.Error("fill rule not copied")
	}
	if d := cmp.Diff(drawing.Pt(1, 1), p.Cursor(), pointCmp); d != "" {
		t.Error(d)
	}
}

func TestAllPoints(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.CubicCurveToWithHandleStart(drawing.Pt(3, 0), drawing.Pt(1, 1))
	p.QuadraticCurveTo(drawing.Pt(6, 0), drawing.Pt(4, 1))
	p.ClosePath(false)

	want := []drawing.Point{
		drawing.Pt(0, 0),
		drawing.Pt(1, 1), drawing.Pt(3, 0),
		drawing.Pt(4, 1), drawing.Pt(6, 0),
	}
	if d := cmp.Diff(want, p.AllPoints(), pointCmp); d != "" {
		t.Error(d)
	}
}

func TestOutline(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.LineTo(drawing.Pt(10, 0))
	p.QuadraticCurveTo(drawing.Pt(10, 10), drawing.Pt(15, 5))
	p.CubicCurveToWithHandleEnd(drawing.Pt(0, 10), drawing.Pt(2, 12))
	p.ClosePath(false)
	p.ArcTo(unit.Pt(5), unit.Pt(5), 0, false, true, drawing.Pt(10, 0))

	out := p.Outline()
	wantCmds := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose,
		path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo,
	}
	if d := cmp.Diff(wantCmds, out.Cmds); d != "" {
		t.Fatal(d)
	}
	wantStart := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 15, Y: 5}, {X: 10, Y: 10},
		{X: 10, Y: 10}, {X: 2, Y: 12}, {X: 0, Y: 10},
		{X: 0, Y: 0},
	}
	if d := cmp.Diff(wantStart, out.Coords[:len(wantStart)], approx); d != "" {
		t.Error(d)
	}
	last := out.Coords[len(out.Coords)-1]
	if d := cmp.Diff(vec.Vec2{X: 10, Y: 0}, last, approx); d != "" {
		t.Error(d)
	}
}

func TestOutlineTransform(t *testing.T) {
	m := matrix.Matrix{2, 0, 0, 2, 1, 1}
	p := New()
	p.Transform = &m
	p.MoveTo(drawing.Pt(1, 2))
	p.LineTo(drawing.Pt(3, 4))

	out := p.Outline()
	want := []vec.Vec2{{X: 3, Y: 5}, {X: 7, Y: 9}}
	if d := cmp.Diff(want, out.Coords, approx); d != "" {
		t.Error(d)
	}

	// the bounds are in path coordinates
	if d := cmp.Diff(rect.Rect{LLx: 1, LLy: 2, URx: 3, URy: 4}, bounds(t, p), approx); d != "" {
		t.Error(d)
	}
}

func TestSegmentsStop(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.LineTo(drawing.Pt(1, 0))
	p.LineTo(drawing.Pt(1, 1))

	n := 0
	for range p.Segments() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("loop ran %d times", n)
	}
}

func TestLocationAndAngle(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.LineTo(drawing.Pt(10, 10))
	p.LineTo(drawing.Pt(0, 10))
	p.CubicCurveTo(drawing.Pt(0, 20), drawing.Pt(0, 10), drawing.Pt(5, 20))
	p.LineTo(drawing.Pt(-10, 20))
	s := p.Subpaths()[0]

	type check struct {
		op    int
		pl    Placement
		loc   drawing.Point
		angle float64
	}
	checks := []check{
		{0, Start, drawing.Pt(0, 0), 0},
		{0, End, drawing.Pt(0, 0), 0},
		{1, Start, drawing.Pt(0, 0), math.Pi / 4},
		{1, Middle, drawing.Pt(5, 5), math.Pi / 4},
		{1, End, drawing.Pt(10, 10), math.Pi / 4},
		{2, Middle, drawing.Pt(5, 10), math.Pi},
		// the first handle coincides with the start point, so the
		// direction is taken from the second handle
		{3, Start, drawing.Pt(0, 10), math.Atan(10.0 / 5.0)},
		{3, End, drawing.Pt(0, 20), math.Pi},
		{4, Start, drawing.Pt(0, 20), math.Pi},
	}
	for _, c := range checks {
		loc := s.LocationAt(c.op, c.pl)
		if !loc.Equal(c.loc) {
			t.Errorf("op %d, %s: location %s, want %s", c.op, c.pl, loc, c.loc)
		}
		a := s.AngleAt(c.op, c.pl)
		if math.Abs(a-c.angle) > 1e-9 {
			t.Errorf("op %d, %s: angle %g, want %g", c.op, c.pl, a, c.angle)
		}
	}
}

func TestSubpathWithoutMoveTo(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.BeginPath()
	p.LineTo(drawing.Pt(10, 10))

	s := p.Subpaths()[1]
	if d := cmp.Diff(drawing.Pt(0, 0), s.Start, pointCmp); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(drawing.Pt(0, 0), s.LocationAt(0, Start), pointCmp); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(drawing.Pt(5, 5), s.LocationAt(0, Middle), pointCmp); d != "" {
		t.Error(d)
	}
	if a := s.AngleAt(0, Middle); math.Abs(a-math.Pi/4) > 1e-9 {
		t.Errorf("angle %g, want %g", a, math.Pi/4)
	}

	out := p.Outline()
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdMoveTo, path.CmdLineTo}
	if d := cmp.Diff(wantCmds, out.Cmds); d != "" {
		t.Fatal(d)
	}
	wantCoords := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 10}}
	if d := cmp.Diff(wantCoords, out.Coords, approx); d != "" {
		t.Error(d)
	}

	q := p.Clone()
	if d := cmp.Diff(s.Start, q.Subpaths()[1].Start, pointCmp); d != "" {
		t.Error(d)
	}
}

func TestArcRelativeRadiusKeepsPath(t *testing.T) {
	p := New()
	p.MoveTo(drawing.Pt(0, 0))
	p.LineTo(drawing.Pt(1, 1))

	func() {
		defer func() {
			if recover() == nil {
				t.Error("no panic")
			}
		}()
		p.ArcTo(unit.Pt(5), unit.Em(1), 0, false, false, drawing.Pt(20, 0))
	}()

	if n := len(p.Subpaths()[0].Ops); n != 2 {
		t.Errorf("%d ops after failed arc", n)
	}
	if d := cmp.Diff(drawing.Pt(1, 1), p.Cursor(), pointCmp); d != "" {
		t.Error(d)
	}
	want := rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}
	if d := cmp.Diff(want, bounds(t, p), approx); d != "" {
		t.Error(d)
	}
}

func TestAngle(t *testing.T) {
	cases := []struct {
		v    vec.Vec2
		want float64
	}{
		{vec.Vec2{}, 0},
		{vec.Vec2{X: 1}, 0},
		{vec.Vec2{Y: 1}, math.Pi / 2},
		{vec.Vec2{Y: -1}, -math.Pi / 2},
		{vec.Vec2{X: -1}, math.Pi},
		{vec.Vec2{X: -1, Y: -1}, 5 * math.Pi / 4},
		{vec.Vec2{X: math.Copysign(0, -1), Y: 2}, math.Pi / 2},
	}
	for _, c := range cases {
		if got := angle(c.v); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("angle(%v) = %g, want %g", c.v, got, c.want)
		}
	}
}
