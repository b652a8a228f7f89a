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
	"slices"
	"testing"
)

// TestRowScanner drives the per-row automaton directly, with edges
// already in scan order, so that each transition can be checked in
// isolation from the sweep.
func TestRowScanner(t *testing.T) {
	tests := []struct {
		name       string
		bandTop    int
		edges      []Edge
		runs       []Span
		bottomEdge bool
		wantErr    bool
	}{
		{
			// A row through the middle of a square: two verticals,
			// neither touching the row.
			name:    "interior_row",
			bandTop: 15,
			edges: []Edge{
				{Start: pt(22, 10), End: pt(12, 10)},
				{Start: pt(12, 20), End: pt(22, 20)},
			},
			runs: []Span{sp(10, 21)},
		},
		{
			// The top row of a square: the horizontal edge dangles
			// until the far vertical resolves it as an exit.
			name:    "top_row",
			bandTop: 12,
			edges: []Edge{
				{Start: pt(22, 10), End: pt(12, 10)},
				{Start: pt(12, 10), End: pt(12, 20)},
				{Start: pt(12, 20), End: pt(22, 20)},
			},
			runs: []Span{sp(10, 21)},
		},
		{
			// The bottom row of a square: the dangling edge equals the
			// entry edge and ends on the scan row, so the horizontal
			// edge has the outside below it.
			name:    "bottom_row",
			bandTop: 22,
			edges: []Edge{
				{Start: pt(22, 10), End: pt(12, 10)},
				{Start: pt(22, 20), End: pt(22, 10)},
				{Start: pt(12, 20), End: pt(22, 20)},
			},
			runs:       []Span{sp(10, 21)},
			bottomEdge: true,
		},
		{
			// The row holding the two inner corners of a U: the notch
			// floor joins the two prongs into a single run, and the
			// dangling edge is resolved as a continuation.
			name:    "inner_corner_row",
			bandTop: 20,
			edges: []Edge{
				{Start: pt(30, 10), End: pt(10, 10)},
				{Start: pt(10, 20), End: pt(20, 20)},
				{Start: pt(20, 20), End: pt(20, 30)},
				{Start: pt(20, 30), End: pt(10, 30)},
				{Start: pt(10, 40), End: pt(30, 40)},
			},
			runs: []Span{sp(10, 41)},
		},
		{
			// A degenerate loop, one column wide.
			name:    "vertical_line",
			bandTop: 12,
			edges: []Edge{
				{Start: pt(12, 10), End: pt(22, 10)},
				{Start: pt(22, 10), End: pt(12, 10)},
			},
			runs: []Span{sp(10, 11)},
		},
		{
			name:    "bare_horizontal_outside",
			bandTop: 0,
			edges: []Edge{
				{Start: pt(0, 0), End: pt(0, 5)},
			},
			wantErr: true,
		},
		{
			name:    "bare_horizontal_inside",
			bandTop: 5,
			edges: []Edge{
				{Start: pt(0, 0), End: pt(10, 0)},
				{Start: pt(5, 2), End: pt(5, 4)},
			},
			wantErr: true,
		},
		{
			name:    "ends_inside",
			bandTop: 5,
			edges: []Edge{
				{Start: pt(0, 0), End: pt(10, 0)},
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newRowScanner(tc.bandTop)
			var err error
			for _, e := range tc.edges {
				if err = s.edge(e); err != nil {
					break
				}
			}
			if err == nil {
				err = s.finish()
			}

			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(s.runs, tc.runs) {
				t.Errorf("runs: got %v, want %v", s.runs, tc.runs)
			}
			if s.bottomEdge != tc.bottomEdge {
				t.Errorf("bottomEdge: got %t, want %t", s.bottomEdge, tc.bottomEdge)
			}
		})
	}
}

func TestAppendRun(t *testing.T) {
	var runs []Span
	runs = appendRun(runs, sp(10, 21))
	runs = appendRun(runs, sp(20, 31)) // overlaps the previous run
	runs = appendRun(runs, sp(31, 35)) // touches the previous run
	runs = appendRun(runs, sp(40, 45))
	want := []Span{sp(10, 35), sp(40, 45)}
	if !slices.Equal(runs, want) {
		t.Errorf("got %v, want %v", runs, want)
	}
}
