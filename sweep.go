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

// Package sweep decomposes simple rectilinear polygons on an integer grid
// into maximal horizontal bands, and uses the band stream to enumerate the
// axis-aligned rectangles that lie entirely inside the polygon with two
// boundary vertices as opposite corners.
//
// Coordinates are row-major: a [Point] is a (row, column) pair of tiles,
// rows increasing downwards. The polygon interior includes its boundary
// tiles.
package sweep

// A Point is a tile position on the grid.
type Point struct {
	Row, Col int
}

// A Span is a half-open interval [Start, End) of columns.
type Span struct {
	Start, End int
}

// Contains reports whether the column c lies within the span.
func (s Span) Contains(c int) bool {
	return s.Start <= c && c < s.End
}

// IsEmpty reports whether the span contains no columns.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Intersect returns the overlap of two spans.
// The second return value is false if the spans are disjoint.
func (s Span) Intersect(t Span) (Span, bool) {
	u := Span{Start: max(s.Start, t.Start), End: min(s.End, t.End)}
	if u.IsEmpty() {
		return Span{}, false
	}
	return u, true
}

// Area returns the number of tiles in the bounding box spanned by two
// points, boundary included. Points sharing a row or column give the
// length of the connecting line rather than a two-dimensional area.
func Area(a, b Point) int {
	top := min(a.Row, b.Row)
	bottom := max(a.Row, b.Row)
	left := min(a.Col, b.Col)
	right := max(a.Col, b.Col)
	return (bottom - top + 1) * (right - left + 1)
}
