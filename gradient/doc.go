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

// Package gradient resolves CSS linear gradients into the data needed to
// render them: the start and end point of the gradient axis for a given
// rectangle, a table of colour stops with normalized distances, and the
// value domain of the gradient.
//
// A gradient is usually obtained from its CSS notation:
//
//	g, err := gradient.ParseLinear("linear-gradient(to right, red, blue 50%)")
//	...
//	coords, err := g.CoordsForBounds(bounds, false)
//	stops := g.Stops()
//
// Angles are measured in degrees, clockwise from the positive x-axis, in a
// coordinate system where y grows downwards.  This differs from CSS, where
// 0deg points upwards; the conversion is done by [ParseLinear].
package gradient
