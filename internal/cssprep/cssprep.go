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

// Package cssprep normalizes CSS-like value strings before they are parsed.
//
// Values often come from hand-written style sheets or from text which went
// through word processors.  Clean removes the invisible characters such
// tools insert (soft hyphens, zero-width spaces, byte order marks), folds
// case, and applies NFKC normalization so that full-width digits and
// letters are read as their ASCII counterparts.
package cssprep

import (
	"strings"

	"github.com/xdg-go/stringprep"
)

// profile follows RFC 3454: B.1 maps invisible characters to nothing, B.2
// folds case for use with NFKC.  Control characters are rejected.
var profile = stringprep.Profile{
	Mappings: []stringprep.Mapping{
		stringprep.TableB1,
		stringprep.TableB2,
	},
	Normalize: true,
	Prohibits: []stringprep.Set{
		stringprep.TableC2_1,
		stringprep.TableC2_2,
	},
}

// Clean returns the normalized form of s with leading and trailing white
// space removed.  An error is returned if s contains control characters.
func Clean(s string) (string, error) {
	if isPlainASCII(s) {
		return strings.TrimSpace(strings.ToLower(s)), nil
	}
	out, err := profile.Prepare(strings.Map(spaceToBlank, s))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func spaceToBlank(r rune) rune {
	switch r {
	case '\t', '\n', '\r', '\f':
		return ' '
	}
	return r
}

// isPlainASCII reports whether s consists of printable ASCII and ASCII
// white space only.  For such strings the profile reduces to lower-casing.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
		case c < 0x20 || c >= 0x7f:
			return false
		}
	}
	return true
}
