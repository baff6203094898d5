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

	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/drawing/color"
	"seehuhn.de/go/drawing/internal/float"
)

// Stop is a colour stop of a gradient.
//
// Distances are fractions of the gradient axis length, so that 0 is the
// start and 1 is the end of the axis.  Values outside this range are
// allowed.
type Stop struct {
	Color       color.Color
	Distance    float64
	HasDistance bool
}

// String returns the stop in CSS notation.
func (s Stop) String() string {
	if !s.HasDistance {
		return s.Color.String()
	}
	return s.Color.String() + " " + float.Format(100*s.Distance, 3) + "%"
}

// ParseStop reads a colour stop of the form "<color> [<percentage>]".
func ParseStop(s string) (Stop, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return Stop{}, wrapParseError(s, "invalid colour stop", err)
	}
	tokens = trimSpace(tokens)
	if len(tokens) == 0 {
		return Stop{}, newParseError(s, "empty colour stop")
	}

	var st Stop
	n := len(tokens)
	if n > 2 && tokens[n-1].tt == css.PercentageToken && tokens[n-2].tt == css.WhitespaceToken {
		x, unit, ok := splitDimension(tokens[n-1].data)
		if !ok || unit != "%" || math.IsInf(x, 0) || math.IsNaN(x) {
			return Stop{}, newParseError(s, "invalid distance %q", tokens[n-1].data)
		}
		st.Distance = x / 100
		st.HasDistance = true
		tokens = trimSpace(tokens[:n-1])
	}

	c, err := color.Parse(join(tokens))
	if err != nil {
		return Stop{}, wrapParseError(s, "invalid colour", err)
	}
	st.Color = c
	return st, nil
}

// ParseStops reads a list of colour stops.  The second return value
// reports whether any of the stops has an explicit distance.
//
// If padStart is set and the first stop has a positive distance, a stop of
// the same colour is inserted at distance 0.  If padEnd is set, the last
// stop has a distance less than 1 and an earlier stop has an explicit
// distance, a stop of the same colour as the last one is appended at
// distance 1.
func ParseStops(tokens []string, padStart, padEnd bool) ([]Stop, bool, error) {
	if len(tokens) == 0 {
		return nil, false, newParseError("", "no colour stops")
	}

	stops := make([]Stop, 0, len(tokens)+2)
	hasDistance := false
	for _, tok := range tokens {
		st, err := ParseStop(tok)
		if err != nil {
			return nil, false, err
		}
		stops = append(stops, st)
		hasDistance = hasDistance || st.HasDistance
	}

	earlierDistance := false
	for _, st := range stops[:len(stops)-1] {
		if st.HasDistance {
			earlierDistance = true
			break
		}
	}

	if first := stops[0]; padStart && first.HasDistance && first.Distance > 0 {
		stops = slices.Insert(stops, 0, Stop{Color: first.Color, HasDistance: true})
	}
	if last := stops[len(stops)-1]; padEnd && last.HasDistance && last.Distance < 1 && earlierDistance {
		stops = append(stops, Stop{Color: last.Color, Distance: 1, HasDistance: true})
	}

	return stops, hasDistance, nil
}

// EnsureDistances assigns a distance to every stop which does not have one.
//
// The first stop defaults to 0 and the last stop defaults to 1.  Runs of
// stops without distance are spaced evenly between their neighbours.
// As in CSS, a distance smaller than the distance of an earlier stop is
// raised to that value.
func EnsureDistances(stops []Stop) {
	if len(stops) == 0 {
		return
	}
	if !stops[0].HasDistance {
		stops[0].Distance = 0
		stops[0].HasDistance = true
	}
	last := len(stops) - 1
	if !stops[last].HasDistance {
		stops[last].Distance = 1
		stops[last].HasDistance = true
	}

	maxSeen := stops[0].Distance
	for i := 1; i <= last; i++ {
		if stops[i].HasDistance && stops[i].Distance < maxSeen {
			stops[i].Distance = maxSeen
		}
		if stops[i].HasDistance {
			maxSeen = stops[i].Distance
		}
	}

	prev := 0
	for i := 1; i <= last; i++ {
		if !stops[i].HasDistance {
			continue
		}
		if gap := i - prev; gap > 1 {
			d0 := stops[prev].Distance
			step := (stops[i].Distance - d0) / float64(gap)
			for j := prev + 1; j < i; j++ {
				stops[j].Distance = d0 + float64(j-prev)*step
				stops[j].HasDistance = true
			}
		}
		prev = i
	}
}
