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

// Package function implements parameterized functions which map input values
// to output values.  They are used to describe how colours vary along a
// gradient axis.
//
// Two function types are supported:
//
//   - [Type2]: Power interpolation functions defining y = C0 + x^N × (C1 - C0)
//   - [Type3]: Stitching functions combining multiple 1-input functions across subdomains
//
// The numbering follows the function types of the PDF specification, so
// that renderers can write the functions into shading dictionaries
// without conversion.  All function types implement the [Func] interface.
package function
