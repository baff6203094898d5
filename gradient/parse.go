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
	"strings"

	"github.com/tdewolff/parse/v2/css"

	"seehuhn.de/go/drawing/internal/cssprep"
)

// sideAngles maps the keywords of the "to <side>" notation to angles.
// Keys list the vertical side first.
var sideAngles = map[string]float64{
	"right":        0,
	"bottom right": 45,
	"bottom":       90,
	"bottom left":  135,
	"left":         180,
	"top left":     225,
	"top":          270,
	"top right":    315,
}

// ParseLinear reads a gradient in CSS notation, either
// "linear-gradient(...)" or "repeating-linear-gradient(...)".
//
// The first argument may give the direction, either as an angle with one of
// the units "deg", "rad", "grad" or "turn", or in the form "to <side>".
// Without a direction, the gradient runs from top to bottom.  The remaining
// arguments are colour stops, see [ParseStop].  At least two colour stops
// are required.
func ParseLinear(s string) (*Linear, error) {
	in, err := cssprep.Clean(s)
	if err != nil {
		return nil, wrapParseError(s, "invalid characters", err)
	}
	tokens, err := tokenize(in)
	if err != nil {
		return nil, wrapParseError(s, "invalid syntax", err)
	}
	tokens = trimSpace(tokens)

	if len(tokens) < 2 || tokens[0].tt != css.FunctionToken || tokens[len(tokens)-1].tt != css.RightParenthesisToken {
		return nil, newParseError(s, "not a gradient")
	}
	var repeating bool
	switch tokens[0].data {
	case "linear-gradient(":
		// pass
	case "repeating-linear-gradient(":
		repeating = true
	default:
		return nil, newParseError(s, "unsupported gradient type %q", strings.TrimSuffix(tokens[0].data, "("))
	}

	args, err := splitArgs(tokens[1 : len(tokens)-1])
	if err != nil {
		return nil, wrapParseError(s, "invalid syntax", err)
	}

	angle := float64(DefaultAngle)
	if a, ok, err := parseDirection(args[0]); err != nil {
		return nil, wrapParseError(s, "invalid direction", err)
	} else if ok {
		angle = a
		args = args[1:]
	}
	if len(args) < 2 {
		return nil, newParseError(s, "at least two colour stops are needed")
	}

	stopTokens := make([]string, len(args))
	for i, arg := range args {
		if len(arg) == 0 {
			return nil, newParseError(s, "empty argument")
		}
		stopTokens[i] = join(arg)
	}
	stops, _, err := ParseStops(stopTokens, !repeating, !repeating)
	if err != nil {
		return nil, err
	}

	return &Linear{
		angle:     angle,
		repeating: repeating,
		stops:     stops,
	}, nil
}

// parseDirection interprets the first argument of a gradient.  The second
// return value is false if the argument does not give a direction.
func parseDirection(arg []token) (float64, bool, error) {
	words := withoutSpace(arg)
	if len(words) == 0 {
		return 0, false, nil
	}

	if words[0].tt == css.IdentToken && words[0].data == "to" {
		var names []string
		for _, w := range words[1:] {
			if w.tt != css.IdentToken {
				return 0, false, errDirection
			}
			names = append(names, w.data)
		}
		if len(names) == 2 && (names[0] == "left" || names[0] == "right") {
			names[0], names[1] = names[1], names[0]
		}
		a, ok := sideAngles[strings.Join(names, " ")]
		if !ok {
			return 0, false, errDirection
		}
		return a, true, nil
	}

	if len(words) != 1 {
		return 0, false, nil
	}
	var deg float64
	switch w := words[0]; w.tt {
	case css.DimensionToken:
		x, unit, ok := splitDimension(w.data)
		if !ok {
			return 0, false, errDirection
		}
		switch unit {
		case "deg":
			deg = x
		case "rad":
			deg = x * 180 / math.Pi
		case "grad":
			deg = x * 0.9
		case "turn":
			deg = x * 360
		default:
			return 0, false, errDirection
		}
	case css.NumberToken:
		// CSS allows a unitless zero angle
		x, _, ok := splitDimension(w.data)
		if !ok || x != 0 {
			return 0, false, errDirection
		}
	default:
		return 0, false, nil
	}
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0, false, errDirection
	}
	return angleFromCSS(deg), true, nil
}

// angleFromCSS converts a CSS gradient angle, where 0deg points upwards,
// to an angle measured clockwise from the positive x-axis.
func angleFromCSS(deg float64) float64 {
	return normalizeAngle(deg - 90)
}

// cssFromAngle is the inverse of angleFromCSS.
func cssFromAngle(angle float64) float64 {
	return normalizeAngle(angle + 90)
}
