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

// Package unit implements lengths as they appear in style sheets and
// drawing instructions.
//
// A [Unit] is either absolute or relative.  Absolute units (points,
// millimetres, inches and CSS pixels) have a fixed size; internally their
// magnitude is kept in PDF points, 1/72 inch.  Relative units (percentages,
// font-relative units and viewport units) only acquire a size once they are
// resolved against a reference, using [Unit.ToAbsolute]:
//
//	w, err := unit.Parse("50%")
//	if err != nil {
//		// handle error
//	}
//	abs, err := w.ToAbsolute(unit.Pt(300), &unit.Context{})
//	// abs is 150pt
//
// Units of different relative kinds can never be combined.  Arithmetic and
// ordering between such units fail with an [InvalidOperationError], and
// asking a relative unit for its size in points fails with an
// [InvalidStateError].
package unit
