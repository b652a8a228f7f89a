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

package testcases

import "seehuhn.de/go/sweep"

// A Grid is a row-major bitset over a rectangle of tiles, used as the
// brute-force reference for which tiles lie inside a polygon. It is far
// too slow for real shapes, and deliberately shares no code with the
// band decomposer.
type Grid struct {
	minRow, minCol int
	rows, cols     int
	words          []uint64
}

func newGrid(minRow, minCol, rows, cols int) *Grid {
	return &Grid{
		minRow: minRow,
		minCol: minCol,
		rows:   rows,
		cols:   cols,
		words:  make([]uint64, (rows*cols+63)/64),
	}
}

func (g *Grid) index(row, col int) (int, bool) {
	r, c := row-g.minRow, col-g.minCol
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return 0, false
	}
	return r*g.cols + c, true
}

func (g *Grid) set(row, col int) {
	if i, ok := g.index(row, col); ok {
		g.words[i>>6] |= 1 << (i & 63)
	}
}

func (g *Grid) test(row, col int) bool {
	i, ok := g.index(row, col)
	return ok && g.words[i>>6]&(1<<(i&63)) != 0
}

// Inside reports whether the tile lies inside the polygon the grid was
// filled from, boundary included. Tiles outside the grid's bounds are
// outside the polygon.
func (g *Grid) Inside(p sweep.Point) bool {
	return g.test(p.Row, p.Col)
}

// RectInside reports whether every tile of the bounding box spanned by
// the two points lies inside the polygon.
func (g *Grid) RectInside(a, b sweep.Point) bool {
	top, bottom := min(a.Row, b.Row), max(a.Row, b.Row)
	left, right := min(a.Col, b.Col), max(a.Col, b.Col)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if !g.test(row, col) {
				return false
			}
		}
	}
	return true
}

// RowSpans returns the interior columns of one row as sorted spans.
func (g *Grid) RowSpans(row int) []sweep.Span {
	var spans []sweep.Span
	inRun := false
	for col := g.minCol; col < g.minCol+g.cols; col++ {
		switch {
		case g.test(row, col) && !inRun:
			spans = append(spans, sweep.Span{Start: col, End: col + 1})
			inRun = true
		case g.test(row, col):
			spans[len(spans)-1].End = col + 1
		default:
			inRun = false
		}
	}
	return spans
}

// Fill rasterizes a polygon the slow, obviously-correct way: mark every
// tile on the boundary, flood-fill the exterior from outside the
// bounding box, and take the complement.
func Fill(p sweep.Polygon) *Grid {
	edges, err := p.Edges()
	if err != nil {
		panic("testcases: invalid polygon: " + err.Error())
	}

	minRow, maxRow := p[0].Row, p[0].Row
	minCol, maxCol := p[0].Col, p[0].Col
	for _, v := range p {
		minRow, maxRow = min(minRow, v.Row), max(maxRow, v.Row)
		minCol, maxCol = min(minCol, v.Col), max(maxCol, v.Col)
	}

	// One tile of padding on every side, so that the whole exterior is
	// connected within the grid.
	minRow, minCol = minRow-1, minCol-1
	rows := maxRow - minRow + 2
	cols := maxCol - minCol + 2

	boundary := newGrid(minRow, minCol, rows, cols)
	for _, e := range edges {
		for row := e.Top(); row <= e.Bottom(); row++ {
			for col := e.Left(); col <= e.Right(); col++ {
				boundary.set(row, col)
			}
		}
	}

	outside := newGrid(minRow, minCol, rows, cols)
	stack := []sweep.Point{{Row: minRow, Col: minCol}}
	outside.set(minRow, minCol)
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range []sweep.Point{
			{Row: t.Row - 1, Col: t.Col},
			{Row: t.Row + 1, Col: t.Col},
			{Row: t.Row, Col: t.Col - 1},
			{Row: t.Row, Col: t.Col + 1},
		} {
			if _, ok := outside.index(n.Row, n.Col); !ok {
				continue
			}
			if outside.test(n.Row, n.Col) || boundary.test(n.Row, n.Col) {
				continue
			}
			outside.set(n.Row, n.Col)
			stack = append(stack, n)
		}
	}

	inside := newGrid(minRow, minCol, rows, cols)
	for row := minRow; row < minRow+rows; row++ {
		for col := minCol; col < minCol+cols; col++ {
			if !outside.test(row, col) {
				inside.set(row, col)
			}
		}
	}
	return inside
}

// MaxRectArea finds the largest two-corner rectangle by checking every
// pair of boundary vertices against the flood-filled grid.
func MaxRectArea(p sweep.Polygon) int {
	g := Fill(p)
	largest := 1
	for i, a := range p {
		for _, b := range p[:i] {
			if !g.RectInside(a, b) {
				continue
			}
			if area := sweep.Area(a, b); area > largest {
				largest = area
			}
		}
	}
	return largest
}
