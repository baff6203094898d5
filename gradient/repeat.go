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
	"math"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/drawing"
	"seehuhn.de/go/drawing/internal/float"
)

// DistanceDecimals is the number of decimal places kept when distances of
// a repeating gradient are computed.  Rounding at every step ensures that
// the tiling loops terminate.
const DistanceDecimals = 3

// maxReplicas bounds the number of copies made in each direction.
const maxReplicas = 4096

// ExpandRepeating tiles the stops of a repeating gradient so that they
// cover the distances from 0 to 1.  The stops should have distances
// assigned, see [EnsureDistances]; if the first or last stop has none, it
// is set to 0 or 1, respectively, in the given slice.
//
// The repeat unit is the span from the first to the last stop.  Copies of
// the stop sequence, shifted by whole multiples of this span, are added
// before the first stop until distance 0 is reached and after the last
// stop until distance 1 is reached.  The second return value is the range
// of distances covered by the result, but at least [0, 1].  All distances
// in the result are rounded to DistanceDecimals places.
func ExpandRepeating(stops []Stop) ([]Stop, [2]float64) {
	if len(stops) == 0 {
		return nil, [2]float64{0, 1}
	}

	first := &stops[0]
	if !first.HasDistance {
		first.Distance, first.HasDistance = 0, true
	}
	last := &stops[len(stops)-1]
	if !last.HasDistance {
		last.Distance, last.HasDistance = 1, true
	}
	base := slices.Clone(stops)
	for i := range base {
		base[i].Distance = float.Round(base[i].Distance, DistanceDecimals)
		base[i].HasDistance = true
	}
	offset := float.Round(base[len(base)-1].Distance-base[0].Distance, DistanceDecimals)

	lo, hi := math.Inf(+1), math.Inf(-1)
	for _, st := range base {
		lo = min(lo, st.Distance)
		hi = max(hi, st.Distance)
	}
	if offset <= 0 {
		return base, [2]float64{min(0, lo), max(1, hi)}
	}

	shifted := func(k int) []Stop {
		rep := slices.Clone(base)
		for i := range rep {
			d := float.Round(rep[i].Distance+float64(k)*offset, DistanceDecimals)
			rep[i].Distance = d
			rep[i].HasDistance = true
			lo = min(lo, d)
			hi = max(hi, d)
		}
		return rep
	}

	var before [][]Stop
	lead := base[0].Distance
	for k := 1; lead > 0 && k <= maxReplicas; k++ {
		rep := shifted(-k)
		before = append(before, rep)
		lead = rep[0].Distance
	}

	var after [][]Stop
	trail := base[len(base)-1].Distance
	for k := 1; trail < 1 && k <= maxReplicas; k++ {
		rep := shifted(k)
		after = append(after, rep)
		trail = rep[len(rep)-1].Distance
	}

	res := make([]Stop, 0, (len(before)+len(after)+1)*len(base))
	for i := len(before) - 1; i >= 0; i-- {
		res = append(res, before[i]...)
	}
	res = append(res, base...)
	for _, rep := range after {
		res = append(res, rep...)
	}

	domain := [2]float64{min(0, lo), max(1, hi)}
	drawing.Logger().Debug("repeating gradient expanded",
		"offset", offset,
		"before", len(before),
		"after", len(after),
		"domain", domain)
	if lead > 0 || trail < 1 {
		drawing.Logger().Debug("repeating gradient truncated", "limit", maxReplicas)
	}
	return res, domain
}
