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

// Gradient-axis resolves a CSS linear gradient against a rectangle and
// prints the gradient axis together with the finalized colour stops.
//
// Usage:
//
//	gradient-axis [options] 'linear-gradient(...)'
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/drawing"
	"seehuhn.de/go/drawing/gradient"
	"seehuhn.de/go/drawing/unit"
)

func main() {
	rectArg := flag.String("rect", "0,0,100,100", "bounding rectangle `x,y,width,height`")
	flip := flag.Bool("flip", false, "compute the axis for a y-up coordinate system")
	lang := flag.String("lang", "en", "language for number formatting")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Printf("Usage: %s [options] 'linear-gradient(...)'\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		drawing.SetLogger(slog.New(h))
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing language: %v\n", err)
		os.Exit(1)
	}

	r, err := parseRect(*rectArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rectangle: %v\n", err)
		os.Exit(1)
	}

	g, err := gradient.ParseLinear(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing gradient: %v\n", err)
		os.Exit(1)
	}

	out := &report{
		p:     message.NewPrinter(tag),
		table: term.IsTerminal(int(os.Stdout.Fd())),
	}
	err = out.write(os.Stdout, g, r, *flip)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseRect reads a rectangle given as four comma-separated lengths.
// Lengths without a unit are in PDF points.
func parseRect(s string) (drawing.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return drawing.Rect{}, errors.New("need four values x,y,width,height")
	}
	var v [4]unit.Unit
	for i, part := range parts {
		u, err := unit.Parse(part)
		if err != nil {
			return drawing.Rect{}, err
		}
		if u.IsRelative() {
			return drawing.Rect{}, fmt.Errorf("%s: only absolute lengths are allowed", u)
		}
		v[i] = u
	}
	return drawing.Rect{
		Origin: drawing.Point{X: v[0], Y: v[1]},
		Size:   drawing.Size{Width: v[2], Height: v[3]},
	}, nil
}

// report formats the resolved gradient.  If table is set, the output is
// aligned for reading on a terminal, otherwise fields are separated by
// tabs.
type report struct {
	p     *message.Printer
	table bool
}

func (rep *report) write(w io.Writer, g *gradient.Linear, r drawing.Rect, flip bool) error {
	coords, err := g.CoordsForBounds(r, flip)
	if err != nil {
		return err
	}
	domain := g.Domain()

	sep := "\t"
	if rep.table {
		sep = "  "
	}
	p := rep.p
	p.Fprintf(w, "gradient%s%s\n", sep, g)
	p.Fprintf(w, "bounds%s%s\n", sep, r)
	p.Fprintf(w, "angle%s%.2f\n", sep, g.Angle())
	p.Fprintf(w, "axis%s%.4f%s%.4f%s%.4f%s%.4f\n", sep,
		coords[0], sep, coords[1], sep, coords[2], sep, coords[3])
	p.Fprintf(w, "domain%s%.3f%s%.3f\n", sep, domain[0], sep, domain[1])

	stops := g.Stops()
	for i, st := range stops {
		if rep.table {
			p.Fprintf(w, "stop %3d  %8.3f  %s\n", i, st.Distance, st.Color.Hex())
		} else {
			p.Fprintf(w, "stop\t%d\t%.3f\t%s\n", i, st.Distance, st.Color.Hex())
		}
	}
	return nil
}
