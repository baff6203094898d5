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

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x    float64
		prec int
		want string
	}{
		{0, 3, "0"},
		{math.Copysign(0, -1), 3, "0"},
		{1, 3, "1"},
		{1.5, 3, "1.5"},
		{0.25, 3, "0.25"},
		{-0.25, 3, "-0.25"},
		{12.3456, 2, "12.35"},
		{-0.0001, 2, "0"},
		{100, 0, "100"},
		{0.1 + 0.2, -1, "0.30000000000000004"},
		{7.5, -1, "7.5"},
	}
	for _, c := range cases {
		got := Format(c.x, c.prec)
		if got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.x, c.prec, got, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		want   float64
	}{
		{0.1 + 0.2, 3, 0.3},
		{0.5 - 0.1 - 0.1 - 0.1, 3, 0.2},
		{12.07106781186547, 10, 12.0710678119},
		{-1.0005, 3, -1.0},
		{-0.0004, 3, 0},
	}
	for _, c := range cases {
		got := Round(c.x, c.digits)
		if got != c.want {
			t.Errorf("Round(%g, %d) = %g, want %g", c.x, c.digits, got, c.want)
		}
	}

	if !math.IsNaN(Round(math.NaN(), 3)) {
		t.Error("NaN not preserved")
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-10, 1e-9) {
		t.Error("values within eps reported as different")
	}
	if NearlyEqual(1, 1+1e-8, 1e-9) {
		t.Error("values outside eps reported as equal")
	}
}
