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
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/drawing"
	"seehuhn.de/go/drawing/internal/float"
)

// DefaultAngle is the angle of a gradient which does not specify a
// direction.  This corresponds to "to bottom" in CSS.
const DefaultAngle = 90

// Linear describes a linear gradient.
//
// The stop table is finalized on first use: missing distances are filled
// in and, for repeating gradients, the stops are tiled to cover the whole
// axis.  A Linear must not be used concurrently; use [Linear.Clone] to
// hand a copy to another goroutine.
type Linear struct {
	angle     float64
	repeating bool
	stops     []Stop

	final     []Stop
	domain    [2]float64
	finalized bool
}

// NewLinear returns a linear gradient with the given angle, in degrees
// clockwise from the positive x-axis.  The stops are used as given; no
// implicit stops are added.
func NewLinear(angle float64, repeating bool, stops []Stop) *Linear {
	return &Linear{
		angle:     normalizeAngle(angle),
		repeating: repeating,
		stops:     slices.Clone(stops),
	}
}

// Angle returns the direction of the gradient, in degrees clockwise from the
// positive x-axis.  The value is in the range [0, 360).
func (g *Linear) Angle() float64 {
	return g.angle
}

// IsRepeating reports whether the stops repeat along the axis.
func (g *Linear) IsRepeating() bool {
	return g.repeating
}

// Finalize computes the final stop table.  It is called automatically by
// the methods which need the stops.
func (g *Linear) Finalize() {
	if g.finalized {
		return
	}
	stops := slices.Clone(g.stops)
	EnsureDistances(stops)
	domain := [2]float64{0, 1}
	if g.repeating {
		stops, domain = ExpandRepeating(stops)
	}
	g.final = stops
	g.domain = domain
	g.finalized = true
}

// Stops returns the finalized stops, with distances assigned to all of
// them.  The returned slice is a copy.
func (g *Linear) Stops() []Stop {
	g.Finalize()
	return slices.Clone(g.final)
}

// Domain returns the range of distances covered by the stops.
// This is [0, 1] unless the gradient is repeating.
func (g *Linear) Domain() [2]float64 {
	g.Finalize()
	return g.domain
}

// CoordsForBounds returns the gradient axis for the given rectangle, as
// [x0, y0, x1, y1] in PDF points.  See [OptimumAxis] for the meaning of
// flip.
func (g *Linear) CoordsForBounds(r drawing.Rect, flip bool) ([4]float64, error) {
	start, end, err := OptimumAxis(r, g.angle, flip)
	if err != nil {
		return [4]float64{}, err
	}
	a := start.MustVec()
	b := end.MustVec()
	return [4]float64{a.X, a.Y, b.X, b.Y}, nil
}

// Clone returns an independent copy of g.
func (g *Linear) Clone() *Linear {
	res := *g
	res.stops = slices.Clone(g.stops)
	res.final = slices.Clone(g.final)
	return &res
}

// String returns the gradient in CSS notation.
func (g *Linear) String() string {
	var b strings.Builder
	if g.repeating {
		b.WriteString("repeating-")
	}
	b.WriteString("linear-gradient(")
	b.WriteString(float.Format(cssFromAngle(g.angle), 6))
	b.WriteString("deg")
	for _, st := range g.stops {
		b.WriteString(", ")
		b.WriteString(st.String())
	}
	b.WriteString(")")
	return b.String()
}
