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

package unit

import "seehuhn.de/go/drawing/internal/float"

// Epsilon is the tolerance used when comparing lengths, in points for
// absolute lengths and in the authored unit for relative ones.
// [Unit.Equal] compares relative lengths exactly.
const Epsilon = 1e-9

// compatible reports whether lengths of kinds a and b can be combined.
// This is the case if both are absolute, or if both have the same kind.
func compatible(a, b Kind) bool {
	if a.IsRelative() || b.IsRelative() {
		return a == b
	}
	return true
}

// Add returns u+v.
//
// Absolute lengths can be added regardless of their kind, the result is
// measured in points.  Relative lengths can only be added to lengths of
// the same kind.
func (u Unit) Add(v Unit) (Unit, error) {
	if !compatible(u.kind, v.kind) {
		return Unit{}, newInvalidOperation("add", u.kind, v.kind)
	}
	if u.kind.IsRelative() {
		return Unit{val: u.val + v.val, kind: u.kind}, nil
	}
	return Unit{val: u.val + v.val, kind: Points}, nil
}

// Sub returns u-v.  The same rules as for [Unit.Add] apply.
func (u Unit) Sub(v Unit) (Unit, error) {
	if !compatible(u.kind, v.kind) {
		return Unit{}, newInvalidOperation("subtract", u.kind, v.kind)
	}
	if u.kind.IsRelative() {
		return Unit{val: u.val - v.val, kind: u.kind}, nil
	}
	return Unit{val: u.val - v.val, kind: Points}, nil
}

// Mul returns u scaled by f.  The kind of u is kept.
func (u Unit) Mul(f float64) Unit {
	return Unit{val: u.val * f, kind: u.kind}
}

// Div returns u divided by f.  The kind of u is kept.
func (u Unit) Div(f float64) (Unit, error) {
	if f == 0 {
		return Unit{}, newInvalidOperation("divide by zero", u.kind, u.kind)
	}
	return Unit{val: u.val / f, kind: u.kind}, nil
}

// Neg returns -u.
func (u Unit) Neg() Unit {
	return Unit{val: -u.val, kind: u.kind}
}

// Equal reports whether u and v describe the same length.
//
// Absolute lengths are equal if their sizes in points differ by at most
// [Epsilon].  Relative lengths are only equal to lengths of the same kind
// and the same magnitude.
func (u Unit) Equal(v Unit) bool {
	if u.kind.IsRelative() || v.kind.IsRelative() {
		return u.kind == v.kind && u.val == v.val
	}
	return float.NearlyEqual(u.val, v.val, Epsilon)
}

// Compare returns -1, 0 or +1, depending on whether u is shorter than,
// equal to, or longer than v.  An error is returned if the two lengths
// cannot be compared.
func (u Unit) Compare(v Unit) (int, error) {
	if !compatible(u.kind, v.kind) {
		return 0, newInvalidOperation("compare", u.kind, v.kind)
	}
	switch {
	case float.NearlyEqual(u.val, v.val, Epsilon):
		return 0, nil
	case u.val < v.val:
		return -1, nil
	default:
		return +1, nil
	}
}

// Min returns the shorter of u and v.
func Min(u, v Unit) (Unit, error) {
	c, err := u.Compare(v)
	if err != nil {
		return Unit{}, err
	}
	if c > 0 {
		return v, nil
	}
	return u, nil
}

// Max returns the longer of u and v.
func Max(u, v Unit) (Unit, error) {
	c, err := u.Compare(v)
	if err != nil {
		return Unit{}, err
	}
	if c < 0 {
		return v, nil
	}
	return u, nil
}
