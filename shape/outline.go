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

package shape

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline returns the geometry of the path, with all lengths converted to
// PDF points.  Arcs are converted to cubic Bézier curves and the
// transformation matrix, if any, is applied.
//
// Subpaths which do not start with a MoveTo operation start at
// [Subpath.Start].
func (p *Path) Outline() *path.Data {
	res := &path.Data{}
	for cmd, pts := range p.Segments() {
		res.Cmds = append(res.Cmds, cmd)
		res.Coords = append(res.Coords, pts...)
	}
	return res
}

// Segments iterates over the geometry of the path.  See [Path.Outline]
// for details.  The slice passed to the loop body is only valid until the
// next iteration.
func (p *Path) Segments() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		tr := func(v vec.Vec2) vec.Vec2 { return v }
		if p.Transform != nil {
			m := *p.Transform
			tr = func(v vec.Vec2) vec.Vec2 {
				x, y := m.Apply(v.X, v.Y)
				return vec.Vec2{X: x, Y: y}
			}
		}

		for _, s := range p.subpaths {
			current := s.Start.MustVec()
			inContour := false
			for _, op := range s.Ops {
				if m, ok := op.(MoveTo); ok {
					current = m.To.MustVec()
					buf[0] = tr(current)
					if !yield(path.CmdMoveTo, buf[:1]) {
						return
					}
					inContour = true
					continue
				}
				if !inContour {
					buf[0] = tr(current)
					if !yield(path.CmdMoveTo, buf[:1]) {
						return
					}
					inContour = true
				}

				switch op := op.(type) {
				case Close:
					if !yield(path.CmdClose, nil) {
						return
					}
					current = op.To.MustVec()
					inContour = false
				case LineTo:
					current = op.To.MustVec()
					buf[0] = tr(current)
					if !yield(path.CmdLineTo, buf[:1]) {
						return
					}
				case QuadTo:
					current = op.To.MustVec()
					buf[0] = tr(op.Control.MustVec())
					buf[1] = tr(current)
					if !yield(path.CmdQuadTo, buf[:2]) {
						return
					}
				default:
					for _, c := range op.curves(current) {
						buf[0] = tr(c.Handle1)
						buf[1] = tr(c.Handle2)
						buf[2] = tr(c.End)
						if !yield(path.CmdCubeTo, buf[:3]) {
							return
						}
					}
					current = op.EndPoint().MustVec()
				}
			}
		}
	}
}
