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

// Package testcases provides a catalogue of rectilinear test polygons
// together with their expected band decompositions, and a brute-force
// grid fill used as the reference implementation in property tests.
package testcases

import "seehuhn.de/go/sweep"

// Shape defines a single test polygon.
type Shape struct {
	Name    string        // lowercase a-z, 0-9 and _ only
	Polygon sweep.Polygon // boundary vertices in traversal order

	// Bands is the expected band decomposition, top to bottom.
	Bands []sweep.Band

	// MaxArea is the area of the largest rectangle that has two
	// boundary vertices as opposite corners and lies entirely inside
	// the shape.
	MaxArea int
}

// pt is a helper to create a Point from row and column.
func pt(row, col int) sweep.Point {
	return sweep.Point{Row: row, Col: col}
}

// span is a helper to create a half-open column Span.
func span(start, end int) sweep.Span {
	return sweep.Span{Start: start, End: end}
}
