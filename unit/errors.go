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

import "fmt"

// FormatError is returned when a string cannot be parsed as a length.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unit: cannot parse %q: %s", e.Input, e.Reason)
}

// Is allows errors.Is to match any FormatError.
func (e *FormatError) Is(target error) bool {
	_, ok := target.(*FormatError)
	return ok
}

func newFormatError(input, format string, args ...any) *FormatError {
	return &FormatError{
		Input:  input,
		Reason: fmt.Sprintf(format, args...),
	}
}

// InvalidOperationError is returned when two lengths of incompatible kinds
// are combined or compared.
type InvalidOperationError struct {
	Op   string
	A, B Kind
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("unit: cannot %s %s and %s", e.Op, e.A, e.B)
}

// Is allows errors.Is to match any InvalidOperationError.
func (e *InvalidOperationError) Is(target error) bool {
	_, ok := target.(*InvalidOperationError)
	return ok
}

func newInvalidOperation(op string, a, b Kind) *InvalidOperationError {
	return &InvalidOperationError{Op: op, A: a, B: b}
}

// InvalidStateError is returned when an operation needs an absolute
// length but a relative one was given.
type InvalidStateError struct {
	Op   string
	Kind Kind
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("unit: %s needs an absolute length, got %s", e.Op, e.Kind)
}

// Is allows errors.Is to match any InvalidStateError.
func (e *InvalidStateError) Is(target error) bool {
	_, ok := target.(*InvalidStateError)
	return ok
}

func newInvalidState(op string, k Kind) *InvalidStateError {
	return &InvalidStateError{Op: op, Kind: k}
}
