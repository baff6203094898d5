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

	"seehuhn.de/go/drawing/function"
)

// Function returns a stitching function which maps distances along the
// gradient axis to red, green and blue colour components.  The input
// domain of the function is [Linear.Domain].
//
// Each pair of adjacent stops contributes one linear segment.  Stops at
// the same distance produce a hard colour change.  Outside the first and
// last stop, the colour of the nearest stop is used.
func (g *Linear) Function() (*function.Type3, error) {
	return stitch(g.Stops(), g.Domain(), func(s Stop) []float64 {
		return s.Color.Components()
	})
}

// OpacityFunction returns a stitching function which maps distances along
// the gradient axis to opacity values.  If all stops are opaque, nil is
// returned.
func (g *Linear) OpacityFunction() (*function.Type3, error) {
	stops := g.Stops()
	opaque := true
	for _, st := range stops {
		if !st.Color.IsOpaque() {
			opaque = false
			break
		}
	}
	if opaque {
		return nil, nil
	}
	return stitch(stops, g.Domain(), func(s Stop) []float64 {
		return []float64{s.Color.Alpha}
	})
}

type piece struct {
	lo, hi float64
	fn     *function.Type2
	e0, e1 float64
}

// stitch builds a stitching function over the stops, which must have
// non-decreasing distances.
func stitch(stops []Stop, domain [2]float64, values func(Stop) []float64) (*function.Type3, error) {
	if len(stops) == 0 {
		return nil, errors.New("gradient: no colour stops")
	}
	d0, d1 := domain[0], domain[1]

	constant := func(s Stop) *function.Type2 {
		v := values(s)
		return &function.Type2{XMin: 0, XMax: 1, C0: v, C1: v, N: 1}
	}

	var pieces []piece
	add := func(a, b float64, fn *function.Type2) {
		lo, hi := max(a, d0), min(b, d1)
		if hi <= lo {
			return
		}
		pieces = append(pieces, piece{
			lo: lo,
			hi: hi,
			fn: fn,
			e0: (lo - a) / (b - a),
			e1: (hi - a) / (b - a),
		})
	}

	first, last := stops[0], stops[len(stops)-1]
	if first.Distance > d0 {
		add(d0, first.Distance, constant(first))
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		add(a.Distance, b.Distance, &function.Type2{
			XMin: 0, XMax: 1,
			C0: values(a),
			C1: values(b),
			N:  1,
		})
	}
	if last.Distance < d1 {
		add(last.Distance, d1, constant(last))
	}
	if len(pieces) == 0 {
		return nil, fmt.Errorf("gradient: stops do not cover [%g, %g]", d0, d1)
	}

	f := &function.Type3{
		XMin:      d0,
		XMax:      d1,
		Functions: make([]function.Func, len(pieces)),
		Bounds:    make([]float64, len(pieces)-1),
		Encode:    make([]float64, 2*len(pieces)),
	}
	for i, p := range pieces {
		f.Functions[i] = p.fn
		if i > 0 {
			f.Bounds[i-1] = p.lo
		}
		f.Encode[2*i] = p.e0
		f.Encode[2*i+1] = p.e1
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}
	return f, nil
}
