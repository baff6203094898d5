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

package function

import (
	"math"
	"testing"
)

func TestIsRange(t *testing.T) {
	type testCase struct {
		x, y  float64
		valid bool
	}

	testCases := []testCase{
		{0, 1, true},
		{1, 0, false},
		{-1, 1, true},
		{1, -1, false},
		{0, 0, true},
		{-1, 1, true},

		{math.NaN(), 1, false},
		{1, math.NaN(), false},
		{math.Inf(-1), 0, false},
		{math.Inf(-1), math.Inf(1), false},
		{0, math.Inf(1), false},
	}
	for i, tc := range testCases {
		if isRange(tc.x, tc.y) != tc.valid {
			t.Errorf("Test case %d failed: isRange(%f, %f) = %v, want %v",
				i, tc.x, tc.y, !tc.valid, tc.valid)
		}
	}
}

func TestInterpolate(t *testing.T) {
	cases := []struct {
		x, xMin, xMax, yMin, yMax float64
		want                      float64
	}{
		{0.5, 0, 1, 0, 10, 5},
		{2, 1, 3, 1, 0, 0.5},
		{1, 1, 1, 7, 9, 7}, // empty input range
	}
	for _, c := range cases {
		got := interpolate(c.x, c.xMin, c.xMax, c.yMin, c.yMax)
		if got != c.want {
			t.Errorf("interpolate(%g, %g, %g, %g, %g) = %g, want %g",
				c.x, c.xMin, c.xMax, c.yMin, c.yMax, got, c.want)
		}
	}
}
