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

package bezier

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/drawing"
)

// FromArc approximates an elliptical arc by cubic Bézier curves.
//
// The arc is given in SVG endpoint notation: it runs from start to end,
// along an ellipse with radii rx and ry whose x-axis is rotated by
// rotation degrees.  Of the four arcs which satisfy these constraints,
// large selects one spanning more than 180 degrees and sweep selects the
// arc which runs in the direction of increasing angle.
//
// If the radii are too small for the ellipse to reach from start to end,
// they are scaled up uniformly.  If start and end coincide, the arc is
// omitted and nil is returned.  If one of the radii is zero, a single
// straight segment is returned.
//
// Each returned segment spans at most 90 degrees of the ellipse.  The
// first segment starts exactly at start, and the last segment ends
// exactly at end.
func FromArc(start, end vec.Vec2, rx, ry, rotation float64, large, sweep bool) []Cubic {
	if start == end {
		return nil
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []Cubic{Line(start, end)}
	}

	phi := rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// Compute the centre, following section F.6.5 of the SVG 1.1
	// specification.
	dx := (start.X - end.X) / 2
	dy := (start.Y - end.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		drawing.Logger().Debug("arc radii scaled up",
			"rx", rx, "ry", ry, "factor", scale)
		rx *= scale
		ry *= scale
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	var root float64
	if num > 0 && den > 0 {
		root = math.Sqrt(num / den)
	}
	if large == sweep {
		root = -root
	}
	cx1 := root * rx * y1 / ry
	cy1 := -root * ry * x1 / rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (start.X+end.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (start.Y+end.Y)/2

	theta := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	dTheta := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx) - theta
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	} else if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}

	// point and derivative on the ellipse, by angle
	at := func(t float64) vec.Vec2 {
		sin, cos := math.Sincos(t)
		return vec.Vec2{
			X: cosPhi*rx*cos - sinPhi*ry*sin + cx,
			Y: sinPhi*rx*cos + cosPhi*ry*sin + cy,
		}
	}
	deriv := func(t float64) vec.Vec2 {
		sin, cos := math.Sincos(t)
		return vec.Vec2{
			X: -cosPhi*rx*sin - sinPhi*ry*cos,
			Y: -sinPhi*rx*sin + cosPhi*ry*cos,
		}
	}

	// The small offset avoids an extra segment when dTheta is a multiple
	// of 90 degrees, up to rounding errors.
	nSegment := int(math.Ceil(math.Abs(dTheta)/(0.5*math.Pi) - 1e-9))
	nSegment = max(nSegment, 1)
	dPhi := dTheta / float64(nSegment)
	k := 4.0 / 3.0 * math.Tan(dPhi/4)

	res := make([]Cubic, nSegment)
	p0 := start
	for i := range nSegment {
		t0 := theta + float64(i)*dPhi
		t1 := t0 + dPhi
		p1 := at(t1)
		if i == nSegment-1 {
			p1 = end
		}
		res[i] = Cubic{
			Start:   p0,
			Handle1: p0.Add(deriv(t0).Mul(k)),
			Handle2: p1.Sub(deriv(t1).Mul(k)),
			End:     p1,
		}
		p0 = p1
	}
	return res
}
