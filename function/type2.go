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
	"fmt"
	"math"
)

// Type2 represents a power interpolation functions, of the form y = C0 + x^N ×
// (C1 - C0).  These functions have a single input x and can have one or more
// outputs.  The PDF specification refers to this type of function as
// "exponential interpolation".
//
// Between two colour stops of a gradient, C0 and C1 hold the colour
// components of the stops and N is 1.
type Type2 struct {
	// XMin is the minimum value of the input range.  Input values x smaller
	// than XMin are clipped to XMin.  This must be less than or equal to XMax.
	XMin float64

	// XMax is the maximum value of the input range.  Input values x larger
	// than XMax are clipped to XMax.  This must be greater than or equal
	// to XMin.
	XMax float64

	// Range (optional) defines clipping ranges for the outputs, in the form
	// [min0, max0, min1, max1, ...]. It this is missing, no clipping is
	// applied.  If present, this must have the same length as C0 and C1.
	Range []float64

	// C0 defines function result when x = 0.0.
	// This must contain at least one value and must have the same length as C1.
	C0 []float64

	// C1 defines function result when x = 1.0.
	// This must contain at least one value and must have the same length as C0.
	C1 []float64

	// N is the interpolation exponent.
	N float64
}

// Shape returns the number of input and output values of the function.
func (f *Type2) Shape() (int, int) {
	return 1, len(f.C0)
}

// Apply applies the function to the given input value and returns the output values.
func (f *Type2) Apply(inputs ...float64) []float64 {
	if len(inputs) != 1 {
		panic(fmt.Sprintf("Type 2 function expects 1 input, got %d", len(inputs)))
	}

	x := clip(inputs[0], f.XMin, f.XMax)

	var xPowN float64
	switch f.N {
	case 0:
		xPowN = 1.0
	case 1:
		xPowN = x
	default:
		xPowN = math.Pow(x, f.N)
	}

	_, n := f.Shape()
	outputs := make([]float64, n)
	for i := range outputs {
		c0 := f.C0[i]
		c1 := 1.0
		if i < len(f.C1) {
			c1 = f.C1[i]
		}
		outputs[i] = c0 + xPowN*(c1-c0)
	}

	clipOutputs(outputs, f.Range)
	return outputs
}

// Validate checks if the Type2 function is properly configured.
func (f *Type2) Validate() error {
	if !isRange(f.XMin, f.XMax) {
		return newInvalidFunctionError(2, "Xmin/XMax", "invalid domain [%g,%g]",
			f.XMin, f.XMax)
	}

	if len(f.C0) < 1 || len(f.C0) != len(f.C1) {
		return newInvalidFunctionError(2, "C0/C1", "invalid length %d,%d",
			len(f.C0), len(f.C1))
	}

	if !isFinite(f.N) {
		return newInvalidFunctionError(2, "N", "must be a finite number, got %g", f.N)
	}
	if f.N != math.Trunc(f.N) && f.XMin < 0 {
		// If N is non-integer, x must be >= 0
		return newInvalidFunctionError(2, "Domain",
			"minimum must be >= 0 when N is non-integer, got %f", f.XMin)
	}
	if f.N < 0 && f.XMin <= 0 && f.XMax >= 0 {
		// If N is negative, x must not be 0
		return newInvalidFunctionError(2, "Domain", "must not include 0 when N is negative")
	}

	_, n := f.Shape()
	if f.Range != nil {
		if len(f.Range) != 2*n {
			return newInvalidFunctionError(2, "Range", "invalid length %d",
				len(f.Range))
		}
		for i := range n {
			if !isRange(f.Range[2*i], f.Range[2*i+1]) {
				return newInvalidFunctionError(2, "Range",
					"invalid range for output %d: [%g, %g]",
					i, f.Range[2*i], f.Range[2*i+1])
			}
		}
	}

	return nil
}
