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

package drawing

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the logger installed by SetLogger.  A nil value means that
// log records are dropped.
var logger atomic.Pointer[slog.Logger]

var discard = slog.New(slog.DiscardHandler)

// SetLogger directs the log output of this module to l.  Passing nil
// turns logging off again, which is also the initial state.
//
// Only debug messages are written.  They report input which had to be
// adjusted before it could be drawn, for example arc radii too small to
// reach the end point, or gradients on rectangles without area.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the logger set by [SetLogger].  The result is never nil.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discard
}
