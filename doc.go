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

// Package drawing provides the geometric primitives used to lay out
// shapes and gradients on a page.
//
// Lengths are represented by [unit.Unit] values, which can be absolute
// (points, millimetres, inches and pixels) or relative to some reference
// (percentages, font-relative and viewport-relative lengths).  A [Point]
// combines two lengths, a [Size] gives the extent of a box, and a [Rect]
// combines both.
//
// Paths are built using the [seehuhn.de/go/drawing/shape] package,
// gradients are described by the [seehuhn.de/go/drawing/gradient] package.
//
// By default, the packages in this module do not produce any log output.
// Use [SetLogger] to enable diagnostics.
package drawing
