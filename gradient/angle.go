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

package gradient

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/drawing"
	"seehuhn.de/go/drawing/internal/float"
)

// AxisDecimals is the number of decimal places kept in the coordinates of
// a computed gradient axis.
const AxisDecimals = 10

// angleDecimals is the number of decimal places kept when an angle is
// reduced to [0, 360), so that θ and θ+360 give the same axis.
const angleDecimals = 12

// corner selects a corner of a rectangle, as multiples of the width and
// height added to the origin.
type corner struct {
	dx, dy float64
}

// axisRule describes how the gradient axis is found for a range of
// angles.  For multiples of 90 degrees, the axis runs from start to
// other.  Otherwise, the axis starts at start and ends where the line
// through other, perpendicular to the axis, crosses it.
type axisRule struct {
	start, other corner
}

// axisRules is indexed by 2*q for angles 90*q, and by 2*q+1 for angles
// strictly between 90*q and 90*(q+1).
var axisRules = [8]axisRule{
	{start: corner{0, 0}, other: corner{1, 0}}, // 0
	{start: corner{0, 0}, other: corner{1, 1}}, // (0, 90)
	{start: corner{0, 0}, other: corner{0, 1}}, // 90
	{start: corner{1, 0}, other: corner{0, 1}}, // (90, 180)
	{start: corner{1, 0}, other: corner{0, 0}}, // 180
	{start: corner{1, 1}, other: corner{0, 0}}, // (180, 270)
	{start: corner{0, 1}, other: corner{0, 0}}, // 270
	{start: corner{0, 1}, other: corner{1, 0}}, // (270, 360)
}

var errAngle = errors.New("gradient: angle must be finite")

// normalizeAngle maps an angle in degrees to the range [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	deg = float.Round(deg, angleDecimals)
	if deg >= 360 || deg == 0 {
		// catches -0 and rounding up of tiny negative values
		deg = 0
	}
	return deg
}

// OptimumAxis returns the start and end point of the axis of a linear
// gradient with the given angle, so that the gradient covers the bounds.
//
// The angle is measured in degrees, clockwise from the positive x-axis,
// with y growing downwards.  The axis starts at a corner of the
// rectangle; it ends where the perpendicular through the opposite corner
// crosses it.  If flip is set, the result is given for a coordinate
// system where y grows upwards: the angle is negated and the rectangle is
// mirrored at the x-axis.
//
// For rectangles with zero width or height, the angle is rounded to the
// nearest multiple of 90 degrees.  The bounds must not use relative
// units.
func OptimumAxis(bounds drawing.Rect, angle float64, flip bool) (start, end drawing.Point, err error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return drawing.Point{}, drawing.Point{}, errAngle
	}
	if bounds.IsRelative() {
		return drawing.Point{}, drawing.Point{}, fmt.Errorf("gradient: bounds %s: %w", bounds, drawing.ErrRelative)
	}
	x := bounds.X().MustPoints()
	y := bounds.Y().MustPoints()
	w := bounds.Width().MustPoints()
	h := bounds.Height().MustPoints()

	theta := normalizeAngle(angle)
	if flip {
		theta = normalizeAngle(360 - theta)
		y = -(y + h)
	}

	q := theta / 90
	idx := 2*int(q) + 1
	if q == math.Floor(q) {
		idx = 2 * int(q)
	} else if w == 0 || h == 0 {
		n := math.Floor(q)
		if q-n > 0.5 {
			n++
		}
		idx = (2 * int(n)) % 8
		drawing.Logger().Debug("degenerate gradient bounds",
			"bounds", bounds,
			"angle", theta,
			"snapped", 90*float64(idx/2))
	}
	rule := axisRules[idx]

	sx := x + rule.start.dx*w
	sy := y + rule.start.dy*h
	px := x + rule.other.dx*w
	py := y + rule.other.dy*h

	if idx%2 == 0 {
		return drawing.Pt(sx, sy), drawing.Pt(px, py), nil
	}

	m1 := math.Tan(theta * math.Pi / 180)
	c1 := sy - m1*sx
	m2 := -1 / m1
	c2 := py - m2*px
	ex := (c2 - c1) / (m1 - m2)
	ey := m1*ex + c1

	start = drawing.Pt(float.Round(sx, AxisDecimals), float.Round(sy, AxisDecimals))
	end = drawing.Pt(float.Round(ex, AxisDecimals), float.Round(ey, AxisDecimals))
	return start, end, nil
}
