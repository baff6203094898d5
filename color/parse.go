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

package color

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/drawing/internal/cssprep"
)

// ParseError is returned when a colour cannot be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("color: invalid colour %q: %s", e.Input, e.Reason)
}

// Is allows to use [errors.Is] to check for ParseError.
func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

func newParseError(input, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// Parse reads a colour in CSS notation.
//
// The following forms are recognized: the CSS named colours including
// "transparent", hexadecimal notation with 3, 4, 6 or 8 digits, and the
// functional forms rgb(r, g, b) and rgba(r, g, b, a).  The channels of the
// functional forms are either numbers in the range 0 to 255 or percentages;
// the opacity is a number in the range 0 to 1 or a percentage.
func Parse(s string) (Color, error) {
	in, err := cssprep.Clean(s)
	if err != nil {
		return Color{}, newParseError(s, "%v", err)
	}
	if in == "" {
		return Color{}, newParseError(s, "empty string")
	}

	switch {
	case in == "transparent":
		return Transparent, nil
	case in[0] == '#':
		return parseHex(s, in)
	case strings.HasPrefix(in, "rgb(") || strings.HasPrefix(in, "rgba("):
		return parseFunctional(s, in)
	}

	c, ok := colornames.Map[in]
	if !ok {
		return Color{}, newParseError(s, "unknown colour name")
	}
	return RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255), nil
}

func parseHex(orig, in string) (Color, error) {
	digits := in[1:]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Color{}, newParseError(orig, "invalid hex digit %q", digits[i])
		}
	}

	var alpha float64 = 1
	switch len(digits) {
	case 3, 6:
		// pass
	case 4:
		alpha = float64(hexValue(digits[3])*17) / 255
		digits = digits[:3]
	case 8:
		alpha = float64(hexValue(digits[6])*16+hexValue(digits[7])) / 255
		digits = digits[:6]
	default:
		return Color{}, newParseError(orig, "wrong number of hex digits")
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, newParseError(orig, "%v", err)
	}
	return RGBA(c.R, c.G, c.B, alpha), nil
}

func parseFunctional(orig, in string) (Color, error) {
	open := strings.IndexByte(in, '(')
	if !strings.HasSuffix(in, ")") {
		return Color{}, newParseError(orig, "missing closing parenthesis")
	}
	name := in[:open]
	body := in[open+1 : len(in)-1]

	var args []string
	if strings.Contains(body, ",") {
		args = strings.Split(body, ",")
	} else {
		// space separated form, with optional "/ alpha"
		args = strings.Fields(strings.Replace(body, "/", " ", 1))
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	switch {
	case name == "rgb" && len(args) != 3 && len(args) != 4:
		return Color{}, newParseError(orig, "rgb() needs three channels")
	case name == "rgba" && len(args) != 4:
		return Color{}, newParseError(orig, "rgba() needs four values")
	}

	var rgb [3]float64
	for i := range rgb {
		x, err := parseChannel(args[i])
		if err != nil {
			return Color{}, newParseError(orig, "channel %d: %v", i+1, err)
		}
		rgb[i] = x
	}
	alpha := 1.0
	if len(args) == 4 {
		a, err := parseAlpha(args[3])
		if err != nil {
			return Color{}, newParseError(orig, "opacity: %v", err)
		}
		alpha = a
	}
	return RGBA(rgb[0], rgb[1], rgb[2], alpha), nil
}

// parseChannel reads a colour channel and returns it scaled to [0, 1].
func parseChannel(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		x, err := parseNumber(pct)
		if err != nil {
			return 0, err
		}
		return clamp(x / 100), nil
	}
	x, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return clamp(x / 255), nil
}

func parseAlpha(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		x, err := parseNumber(pct)
		if err != nil {
			return 0, err
		}
		return clamp(x / 100), nil
	}
	x, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return clamp(x), nil
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing number")
	}
	x, n := strconv.ParseFloat([]byte(s))
	if n != len(s) {
		return 0, fmt.Errorf("malformed number %q", s)
	}
	return x, nil
}

func clamp(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
