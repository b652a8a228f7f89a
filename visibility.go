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

// activeRed is a boundary vertex from an earlier band which may still be
// the upper corner of a rectangle completed in a later band. The vertex
// stays active as long as a ray dropped straight down from it remains
// inside the shape; visible is the column range within which that ray has
// stayed unobstructed through every band seen so far.
type activeRed struct {
	pos     Point
	visible Span
}

// A Tracker consumes a band stream in order and finds every pair of
// boundary vertices whose bounding box lies entirely inside the polygon.
// Bands must be presented from top to bottom; the Tracker never modifies
// them.
type Tracker struct {
	// active is sorted by column. It is replaced, not mutated, when a
	// band is observed, so a caller may snapshot it between bands.
	active []activeRed
}

// NewTracker returns a Tracker with no active vertices.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe processes the next band. For every rectangle completed by this
// band, spanned by a previously seen vertex and a vertex of this band or
// by two mutually visible vertices of this band, emit is called once
// with the two corners. The first argument is the older (or leftmost)
// corner.
func (t *Tracker) Observe(band *Band, emit func(a, b Point)) {
	// Narrow the visibility of the active vertices to this band's runs,
	// dropping any vertex that is no longer visible. Both lists are
	// sorted by column, so a single merge scan suffices. Note that a
	// vertex whose own column has left the covered area is dropped even
	// if its visible range still intersects some run: the downward ray
	// from the vertex itself must stay inside the shape.
	kept := make([]activeRed, 0, len(t.active)+len(band.Reds))
	runs := band.Runs
	for _, a := range t.active {
		for len(runs) > 0 && runs[0].End <= a.pos.Col {
			runs = runs[1:]
		}
		if len(runs) == 0 || !runs[0].Contains(a.pos.Col) {
			continue
		}
		vis, ok := a.visible.Intersect(runs[0])
		if !ok {
			continue
		}
		kept = append(kept, activeRed{pos: a.pos, visible: vis})
	}

	// Build entries for the band's own vertices. Every red tile lies in
	// one of the band's runs; the run is the vertex's initial visibility.
	fresh := make([]activeRed, 0, len(band.Reds))
	runs = band.Runs
	for _, red := range band.Reds {
		for len(runs) > 0 && runs[0].End <= red {
			runs = runs[1:]
		}
		if len(runs) == 0 || !runs[0].Contains(red) {
			panic("sweep: red tile outside every run of its band")
		}
		fresh = append(fresh, activeRed{
			pos:     Point{Row: band.Top, Col: red},
			visible: runs[0],
		})
	}

	Logger().Debug("tracker",
		slog.Int("top", band.Top),
		slog.Int("culled", len(kept)),
		slog.Int("new", len(fresh)))

	// Rectangles between an older vertex and one of this band's. If the
	// upper vertex sees the lower one's column, the lower sees the
	// upper's as well; the reverse need not hold, since the upper
	// vertex's visibility has been narrowed by the bands in between.
	for _, a := range kept {
		for _, b := range fresh {
			if a.visible.Contains(b.pos.Col) {
				emit(a.pos, b.pos)
			}
		}
	}

	// Rectangles within the band itself; here visibility is mutual.
	for i, a := range fresh {
		for _, b := range fresh[i+1:] {
			if a.visible.Contains(b.pos.Col) {
				emit(a.pos, b.pos)
			}
		}
	}

	kept = append(kept, fresh...)
	slices.SortStableFunc(kept, func(a, b activeRed) int {
		return cmp.Compare(a.pos.Col, b.pos.Col)
	})
	t.active = kept
}

// ForEachRectangle decomposes the polygon into bands and calls body once
// for every pair of boundary vertices spanning a rectangle that lies
// entirely inside the polygon. Pairs sharing a row or column (lines, not
// rectangles) are included; callers wanting strictly two-dimensional
// rectangles can skip them.
func ForEachRectangle(p Polygon, body func(a, b Point)) error {
	d, err := NewDecomposer(p)
	if err != nil {
		return err
	}
	t := NewTracker()
	for {
		band, err := d.Next()
		if err != nil {
			return err
		}
		if band == nil {
			return nil
		}
		t.Observe(band, body)
	}
}

// MaxArea returns the area of the largest axis-aligned rectangle that
// has two boundary vertices as opposite corners and lies entirely inside
// the polygon.
func MaxArea(p Polygon) (int, error) {
	largest := 1 // there is at least one tile
	err := ForEachRectangle(p, func(a, b Point) {
		if area := Area(a, b); area > largest {
			largest = area
		}
	})
	if err != nil {
		return 0, err
	}
	return largest, nil
}
