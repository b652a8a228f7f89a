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
	"cmp"
	"log/slog"
	"slices"
)

// A Band is a range of rows within which the column runs covered by the
// polygon do not change, and within which boundary vertices ("red tiles")
// appear only in the top row.
//
// Successive bands do not overlap, so every boundary vertex belongs to
// exactly one band.
type Band struct {
	// Top and Bottom are the first and last row of the band, inclusive.
	Top, Bottom int

	// Runs lists the columns covered by the polygon at any row of the
	// band, as sorted non-overlapping spans.
	Runs []Span

	// Reds lists the columns of the boundary vertices in the band's top
	// row, sorted, without duplicates.
	Reds []int
}

// A Decomposer sweeps a polygon's edge loop from top to bottom and
// produces its bands one at a time. It is a forward-only generator:
// once a band has been produced there is no way back, and a fresh
// Decomposer must be built to traverse the shape again.
type Decomposer struct {
	// nextRow is the starting row of the next band, if any.
	nextRow int

	// active holds all edges that touch nextRow, ordered by their
	// bottommost row. Since the shape is connected, active is empty
	// exactly when iteration is over.
	active *edgeQueue

	// pending holds the edges the sweep has not yet reached, ordered by
	// their topmost row.
	pending *edgeQueue
}

// NewDecomposer builds a Decomposer for the polygon's edge loop.
func NewDecomposer(p Polygon) (*Decomposer, error) {
	edges, err := p.Edges()
	if err != nil {
		return nil, err
	}
	return NewDecomposerEdges(edges)
}

// NewDecomposerEdges builds a Decomposer from an explicit edge loop.
// The edges must form a single closed chain of axis-aligned segments:
// each edge must end where the next one starts, the last wrapping around
// to the first.
func NewDecomposerEdges(edges []Edge) (*Decomposer, error) {
	if len(edges) < 2 {
		return nil, &MalformedPolygonError{Reason: "edge loop needs at least 2 edges"}
	}
	for i, e := range edges {
		if e.Start == e.End {
			return nil, &MalformedPolygonError{Edge: e, Reason: "zero-length edge"}
		}
		if !e.Horizontal() && !e.Vertical() {
			return nil, &MalformedPolygonError{Edge: e, Reason: "edge is neither horizontal nor vertical"}
		}
		if next := edges[(i+1)%len(edges)]; e.End != next.Start {
			return nil, &MalformedPolygonError{Edge: e, Reason: "edge loop is not connected"}
		}
	}

	// Start with all edges pending; the minimal top row is the top of
	// the shape and of the first band.
	pending := newEdgeQueue(byTop, slices.Clone(edges))
	nextRow := pending.peek().Top()

	// The first band's active set is every edge touching its top row.
	active := newEdgeQueue(byBottom, nil)
	for pending.len() > 0 && pending.peek().Top() == nextRow {
		active.push(pending.pop())
	}

	return &Decomposer{
		nextRow: nextRow,
		active:  active,
		pending: pending,
	}, nil
}

// Next produces the next band, or (nil, nil) once the sweep has passed
// the bottom of the shape. A *MalformedPolygonError aborts the
// decomposition; there is no partial result and no way to resume.
func (d *Decomposer) Next() (*Band, error) {
	if d.active.len() == 0 {
		return nil, nil
	}
	bandTop := d.nextRow
	Logger().Debug("band sweep",
		slog.Int("top", bandTop),
		slog.Int("active", d.active.len()),
		slog.Int("pending", d.pending.len()))

	reds, err := d.collectReds(bandTop)
	if err != nil {
		return nil, err
	}

	runs, bottomEdge, err := d.scanRow(bandTop)
	if err != nil {
		return nil, err
	}

	// Edges whose bottom row is bandTop end here.
	for d.active.len() > 0 {
		bottom := d.active.peek().Bottom()
		if bottom > bandTop {
			break
		}
		if bottom < bandTop {
			panic("sweep: edge outlived its band")
		}
		d.active.pop()
	}

	// The band extends down to the row before the next edge event,
	// unless its top row carries a bottom edge: then the next tile row
	// is outside the shape, and since red tiles may appear only in a
	// band's top row the band is a single row.
	bandBottom := bandTop
	if !bottomEdge {
		switch {
		case d.active.len() > 0 && d.pending.len() > 0:
			bandBottom = min(d.active.peek().Bottom(), d.pending.peek().Top()) - 1
		case d.active.len() > 0:
			bandBottom = d.active.peek().Bottom() - 1
		case d.pending.len() > 0:
			bandBottom = d.pending.peek().Top() - 1
		}
	}
	if bandBottom < bandTop {
		panic("sweep: band bottom above band top")
	}

	// Bring in the edges relevant to the next band.
	d.nextRow = bandBottom + 1
	for d.pending.len() > 0 && d.pending.peek().Top() == d.nextRow {
		d.active.push(d.pending.pop())
	}

	return &Band{Top: bandTop, Bottom: bandBottom, Runs: runs, Reds: reds}, nil
}

// collectReds gathers the boundary vertex columns on the band's top row.
// Every vertex is shared by exactly two edges of the loop, and the active
// set contains all edges touching the row, so each column must be seen
// exactly twice.
func (d *Decomposer) collectReds(bandTop int) ([]int, error) {
	var reds []int
	for _, e := range d.active.edges {
		if e.Horizontal() {
			if e.Start.Row != bandTop {
				return nil, &MalformedPolygonError{Edge: e, Row: bandTop,
					Reason: "horizontal edge away from the band's top row"}
			}
			reds = append(reds, e.Start.Col, e.End.Col)
		} else if e.touches(bandTop) {
			reds = append(reds, e.Start.Col)
		}
	}
	slices.Sort(reds)

	withDups := len(reds)
	reds = slices.Compact(reds)
	if 2*len(reds) != withDups {
		return nil, &MalformedPolygonError{Row: bandTop,
			Reason: "boundary vertex not shared by exactly two edges"}
	}
	return reds, nil
}

// scanRow runs the per-row automaton over the active edges, left to
// right, to assemble the band's runs.
func (d *Decomposer) scanRow(bandTop int) (runs []Span, bottomEdge bool, err error) {
	edges := slices.Clone(d.active.edges)
	slices.SortStableFunc(edges, scanOrder)

	s := newRowScanner(bandTop)
	for _, e := range edges {
		if err := s.edge(e); err != nil {
			return nil, false, err
		}
	}
	if err := s.finish(); err != nil {
		return nil, false, err
	}
	return s.runs, s.bottomEdge, nil
}

// scanOrder orders edges for the row scan: left to right, with an edge
// horizontally contained in another coming first, and of two connected
// vertical edges at the same column the incoming one before the outgoing.
func scanOrder(a, b Edge) int {
	if c := cmp.Compare(a.Left(), b.Left()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Right(), b.Right()); c != 0 {
		return c
	}
	if a.End == b.Start {
		return -1
	}
	if a.Start == b.End {
		return 1
	}
	return 0
}
