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

package gradient

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/strconv"
)

type token struct {
	tt   css.TokenType
	data string
}

// tokenize splits s into CSS tokens.  Comments are dropped.
func tokenize(s string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(s))
	var res []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return nil, err
			}
			return res, nil
		case css.CommentToken:
			continue
		}
		res = append(res, token{tt: tt, data: string(data)})
	}
}

var errUnbalanced = errors.New("unbalanced parentheses")

// splitArgs splits a token sequence at the commas which are not nested
// inside parentheses.
func splitArgs(tokens []token) ([][]token, error) {
	var args [][]token
	depth := 0
	start := 0
	for i, t := range tokens {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth < 0 {
				return nil, errUnbalanced
			}
		case css.CommaToken:
			if depth == 0 {
				args = append(args, trimSpace(tokens[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errUnbalanced
	}
	return append(args, trimSpace(tokens[start:])), nil
}

// trimSpace removes leading and trailing white space tokens.
func trimSpace(tokens []token) []token {
	for len(tokens) > 0 && tokens[0].tt == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].tt == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// withoutSpace returns the tokens which are not white space.
func withoutSpace(tokens []token) []token {
	var res []token
	for _, t := range tokens {
		if t.tt != css.WhitespaceToken {
			res = append(res, t)
		}
	}
	return res
}

func join(tokens []token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.data)
	}
	return b.String()
}

// splitDimension splits a number with unit, like "45deg", into its parts.
func splitDimension(s string) (float64, string, bool) {
	x, n := strconv.ParseFloat([]byte(s))
	if n == 0 {
		return 0, "", false
	}
	return x, strings.ToLower(s[n:]), true
}
