// seehuhn.de/go/sweep - band decomposition for rectilinear polygons
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package sweep

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// An Edge is a directed axis-aligned segment of the polygon boundary.
// Start and End are distinct points sharing a row (horizontal edge) or a
// column (vertical edge).
type Edge struct {
	Start, End Point
}

// Horizontal reports whether both endpoints share a row.
func (e Edge) Horizontal() bool {
	return e.Start.Row == e.End.Row
}

// Vertical reports whether both endpoints share a column.
func (e Edge) Vertical() bool {
	return e.Start.Col == e.End.Col
}

// Top returns the smaller of the two endpoint rows.
func (e Edge) Top() int {
	return min(e.Start.Row, e.End.Row)
}

// Bottom returns the larger of the two endpoint rows.
func (e Edge) Bottom() int {
	return max(e.Start.Row, e.End.Row)
}

// Left returns the smaller of the two endpoint columns.
func (e Edge) Left() int {
	return min(e.Start.Col, e.End.Col)
}

// Right returns the larger of the two endpoint columns.
func (e Edge) Right() int {
	return max(e.Start.Col, e.End.Col)
}

// goesDown reports whether the edge is directed towards larger rows.
func (e Edge) goesDown() bool {
	return e.Start.Row < e.End.Row
}

// connected reports whether one edge ends where the other begins.
func connected(a, b Edge) bool {
	return a.Start == b.End || b.Start == a.End
}

// touches reports whether either endpoint of e lies on the given row.
func (e Edge) touches(row int) bool {
	return e.Start.Row == row || e.End.Row == row
}

// A Polygon is the boundary of a simple rectilinear polygon, given as its
// vertices in traversal order (either winding). Consecutive vertices,
// including the wrap-around pair from the last vertex back to the first,
// must differ in exactly one coordinate.
type Polygon []Point

// Edges returns the closed cyclic edge loop of the polygon, including the
// synthetic edge from the last vertex back to the first. It returns a
// *MalformedPolygonError if fewer than two vertices are given, or if any
// pair of consecutive vertices coincides or differs in both coordinates.
func (p Polygon) Edges() ([]Edge, error) {
	if len(p) < 2 {
		return nil, &MalformedPolygonError{Reason: "polygon needs at least 2 vertices"}
	}

	edges := make([]Edge, 0, len(p))
	for i, from := range p {
		to := p[(i+1)%len(p)]
		e := Edge{Start: from, End: to}
		if from == to {
			return nil, &MalformedPolygonError{Edge: e, Reason: "zero-length edge"}
		}
		if !e.Horizontal() && !e.Vertical() {
			return nil, &MalformedPolygonError{Edge: e, Reason: "edge is neither horizontal nor vertical"}
		}
		edges = append(edges, e)
	}
	return edges, nil
}

// Path returns the polygon outline as a path, with columns mapped to x
// and rows to y. This allows the shape to be handed to vector
// rasterizers; no validation is performed.
func (p Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(p) == 0 {
			return
		}
		buf := make([]vec.Vec2, 1)
		buf[0] = vec.Vec2{X: float64(p[0].Col), Y: float64(p[0].Row)}
		if !yield(path.CmdMoveTo, buf) {
			return
		}
		for _, v := range p[1:] {
			buf[0] = vec.Vec2{X: float64(v.Col), Y: float64(v.Row)}
			if !yield(path.CmdLineTo, buf) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
