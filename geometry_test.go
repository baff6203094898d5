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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/drawing/unit"
)

func TestPointArith(t *testing.T) {
	p := Point{X: unit.MM(10), Y: unit.Pt(5)}
	q := Pt(2, 3)

	s, err := p.Add(q)
	if err != nil {
		t.Fatal(err)
	}
	want := vec.Vec2{X: 10*unit.PointsPerMM + 2, Y: 8}
	if d := cmp.Diff(want, s.MustVec(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	d, err := s.Sub(q)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(p) {
		t.Errorf("%s != %s", d, p)
	}

	_, err = Point{X: unit.Pct(10), Y: unit.Pt(0)}.Add(q)
	if !errors.Is(err, &unit.InvalidOperationError{}) {
		t.Errorf("relative + absolute: %v", err)
	}
}

func TestPointVec(t *testing.T) {
	v, err := Pt(1, 2).Vec()
	if err != nil || v != (vec.Vec2{X: 1, Y: 2}) {
		t.Errorf("Vec() = %v, %v", v, err)
	}
	_, err = Point{X: unit.Em(1)}.Vec()
	if err != ErrRelative {
		t.Errorf("relative point: %v", err)
	}
	if got := PointFromVec(vec.Vec2{X: 3, Y: 4}); !got.Equal(Pt(3, 4)) {
		t.Errorf("PointFromVec = %s", got)
	}
}

func TestRectAccessors(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	right, err := r.Right()
	if err != nil || !right.Equal(unit.Pt(40)) {
		t.Errorf("Right() = %s, %v", right, err)
	}
	bottom, err := r.Bottom()
	if err != nil || !bottom.Equal(unit.Pt(60)) {
		t.Errorf("Bottom() = %s, %v", bottom, err)
	}
	if r.IsEmpty() {
		t.Error("non-empty rect reported empty")
	}
	if !NewRect(1, 1, 0, 5).IsEmpty() {
		t.Error("zero-width rect not empty")
	}

	g, err := r.Geom()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(rect.Rect{LLx: 10, LLy: 20, URx: 40, URy: 60}, g); d != "" {
		t.Error(d)
	}
	if back := RectFromGeom(g); back != r {
		t.Errorf("round trip gave %s", back)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 5)
	cases := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(10, 5), true},
		{Pt(5, 2.5), true},
		{Pt(-0.1, 2), false},
		{Pt(5, 5.1), false},
		{Point{X: unit.Pct(50), Y: unit.Pt(1)}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%s) = %t", c.p, got)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(-5, 5, 10, 20)

	u, err := a.Union(b)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewRect(-5, 0, 15, 25); u != want {
		t.Errorf("union = %s, want %s", u, want)
	}

	u, err = Rect{}.Union(b)
	if err != nil || u != b {
		t.Errorf("empty union = %s, %v", u, err)
	}

	rel := Rect{Size: Size{Width: unit.Pct(100), Height: unit.Pct(100)}}
	_, err = a.Union(rel)
	if err != ErrRelative {
		t.Errorf("relative union: %v", err)
	}
}

func TestRectFromVec(t *testing.T) {
	r := RectFromVec(vec.Vec2{X: 4, Y: -1}, vec.Vec2{X: 1, Y: 3})
	if want := NewRect(1, -1, 3, 4); r != want {
		t.Errorf("RectFromVec = %s, want %s", r, want)
	}
}
