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

import (
	"sort"
	"strconv"
	"strings"

	cssnum "github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/exp/maps"

	"seehuhn.de/go/drawing/internal/cssprep"
	"seehuhn.de/go/drawing/internal/float"
)

var suffixes = [numKinds]string{
	Points:         "pt",
	Millimeters:    "mm",
	Inches:         "in",
	Pixels:         "px",
	Percent:        "%",
	EmHeight:       "em",
	ExHeight:       "ex",
	ZeroWidth:      "ch",
	RootEmHeight:   "rem",
	ViewportWidth:  "vw",
	ViewportHeight: "vh",
	ViewportMin:    "vmin",
	ViewportMax:    "vmax",
}

var suffixKind = func() map[string]Kind {
	m := make(map[string]Kind, len(suffixes))
	for k, s := range suffixes {
		m[s] = Kind(k)
	}
	return m
}()

// KeywordSizes lists the CSS absolute-size keywords, with their sizes in
// points.
var KeywordSizes = map[string]float64{
	"xx-small":  6,
	"x-small":   7.5,
	"small":     10,
	"medium":    12,
	"large":     14,
	"x-large":   18,
	"xx-large":  24,
	"xxx-large": 32,
}

// Parse reads a length from a string.
//
// The accepted forms are a decimal number, optionally preceded by a minus
// sign and optionally followed by one of the suffixes "pt", "mm", "in",
// "px", "%", "em", "ex", "ch", "rem", "vw", "vh", "vmin" or "vmax", and the
// absolute-size keywords in [KeywordSizes].  A number without suffix is
// measured in points.  Letter case is ignored.
func Parse(s string) (Unit, error) {
	clean, err := cssprep.Clean(s)
	if err != nil {
		return Unit{}, newFormatError(s, "%v", err)
	}
	if clean == "" {
		return Unit{}, newFormatError(s, "empty string")
	}

	if pt, ok := KeywordSizes[clean]; ok {
		return Pt(pt), nil
	}

	n := numberLength(clean)
	if n == 0 {
		return Unit{}, newFormatError(s, "missing number")
	}
	if _, m := cssnum.ParseFloat([]byte(clean[:n])); m != n {
		return Unit{}, newFormatError(s, "malformed number %q", clean[:n])
	}
	// cssnum is not correctly rounded in the last bit, so the value itself
	// is converted by strconv to make String and Parse exact inverses.
	x, err := strconv.ParseFloat(clean[:n], 64)
	if err != nil {
		return Unit{}, newFormatError(s, "malformed number %q", clean[:n])
	}

	suffix := clean[n:]
	if suffix == "" {
		return Pt(x), nil
	}
	k, ok := suffixKind[suffix]
	if !ok {
		return Unit{}, newFormatError(s, "unknown unit %q (expected one of %s)",
			suffix, strings.Join(knownSuffixes(), ", "))
	}
	return New(x, k), nil
}

// MustParse is like [Parse] but panics if s cannot be parsed.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// numberLength returns the length of the longest prefix of s which matches
// -?[0-9]*(\.[0-9]+)?, or 0 if that prefix contains no digits.
func numberLength(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func knownSuffixes() []string {
	keys := maps.Keys(suffixKind)
	sort.Strings(keys)
	return keys
}

// String returns the length in the notation accepted by [Parse].
func (u Unit) String() string {
	return float.Format(u.Value(), -1) + u.kind.String()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
