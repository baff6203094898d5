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

// Func is a function which maps m input values to n output values.
type Func interface {
	// Shape returns the number of input and output values of the function.
	Shape() (int, int)

	// Apply evaluates the function.  The number of inputs must match
	// the first value returned by Shape.
	Apply(inputs ...float64) []float64

	// Validate checks that the function is well-formed.
	Validate() error
}

var (
	_ Func = (*Type2)(nil)
	_ Func = (*Type3)(nil)
)
