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

// Package float contains helpers for rounding and printing the
// floating point numbers which appear in lengths and coordinates.
package float

import (
	"math"
	"regexp"
	"strconv"
)

// Format prints x with at most the given number of digits after the decimal
// point.  Trailing zeros, and a trailing decimal point, are removed.
// A negative precision selects the shortest representation which parses
// back to x.  The result never uses exponent notation.
func Format(x float64, precision int) string {
	if x == 0 {
		// avoid "-0"
		return "0"
	}
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		return "0"
	}
	return out
}

// Round rounds x to the given number of decimal digits.
//
// The rounding goes through the decimal representation of x, so that
// values like 0.1+0.2 come out as the float64 closest to 0.3.
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	y, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', digits, 64), 64)
	if err != nil {
		panic(err)
	}
	if y == 0 {
		return 0
	}
	return y
}

// NearlyEqual reports whether x and y differ by at most eps.
func NearlyEqual(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
