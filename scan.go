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

// rowScanner reconstructs the interior column runs of a single sweep row
// from the boundary edges touching it. Edges must be presented from left
// to right, ordered so that of two edges sharing an endpoint the incoming
// one comes first.
//
// The scanner also notices "bottom edges": horizontal edges on the scan
// row below which the next tile row is outside the shape. A band whose
// top row carries a bottom edge cannot extend below that row.
type rowScanner struct {
	bandTop int
	state   scanState
	runs    []Span

	// bottomEdge is set if the row contains a horizontal edge whose
	// underside is outside the shape.
	bottomEdge bool
}

// scanState is the automaton state of a rowScanner.
// Exactly two implementations exist: outside and inside.
type scanState interface {
	isScanState()
}

// outside means the scan position is not within the shape.
type outside struct{}

// inside means the scan entered the shape at the vertical edge entry.
// If dangling is non-nil, it is the most recent edge touching the scan
// row whose role (continuing the boundary vs. exiting the shape) is not
// yet resolved; there can be at most one such edge at a time.
type inside struct {
	entry    Edge
	dangling *Edge
}

func (outside) isScanState() {}
func (inside) isScanState()  {}

func newRowScanner(bandTop int) *rowScanner {
	return &rowScanner{bandTop: bandTop, state: outside{}}
}

// edge feeds the next boundary edge to the automaton.
func (s *rowScanner) edge(e Edge) error {
	if e.Vertical() {
		return s.vertical(e)
	}
	return s.horizontal(e)
}

func (s *rowScanner) vertical(e Edge) error {
	switch st := s.state.(type) {
	case outside:
		var dangling *Edge
		if e.touches(s.bandTop) {
			dangling = &e
		}
		s.state = inside{entry: e, dangling: dangling}

	case inside:
		if st.dangling == nil {
			switch {
			case connected(e, st.entry):
				// continuation of the edge we entered at
			case e.touches(s.bandTop):
				// A dangling edge: we need to see more edges to tell
				// whether the shape ends here.
				s.state = inside{entry: st.entry, dangling: &e}
			default:
				s.closeRun(st.entry, e)
			}
			break
		}

		if !connected(e, *st.dangling) {
			return s.errorf(e, "vertical edge does not meet the dangling edge")
		}
		if e.goesDown() == st.entry.goesDown() {
			// e continues the boundary in the direction entry
			// established; the dangling edge is resolved.
			s.state = inside{entry: st.entry}
		} else {
			s.closeRun(st.entry, e)
		}
	}
	return nil
}

func (s *rowScanner) horizontal(e Edge) error {
	switch st := s.state.(type) {
	case outside:
		return s.errorf(e, "bare horizontal edge outside the shape")

	case inside:
		if st.dangling == nil {
			return s.errorf(e, "bare horizontal edge inside the shape")
		}
		if !connected(e, *st.dangling) {
			return s.errorf(e, "horizontal edge does not meet the dangling edge")
		}

		// Decide whether e is a bottom edge, by asking whether the
		// vertical edge it attaches to extends below the scan row.
		d := *st.dangling
		if d == st.entry {
			if d.Bottom() == s.bandTop {
				s.bottomEdge = true
			}
		} else if d.Vertical() {
			if d.Top() == s.bandTop {
				s.bottomEdge = true
			}
		}

		s.state = inside{entry: st.entry, dangling: &e}
	}
	return nil
}

// finish checks that the scan ended outside the shape.
func (s *rowScanner) finish() error {
	if st, ok := s.state.(inside); ok {
		return s.errorf(st.entry, "row scan ended inside the shape")
	}
	return nil
}

// closeRun records the run from the entry edge to the exiting edge and
// returns the automaton to the outside state.
func (s *rowScanner) closeRun(entry, exit Edge) {
	s.runs = appendRun(s.runs, Span{Start: entry.Start.Col, End: exit.Start.Col + 1})
	s.state = outside{}
}

func (s *rowScanner) errorf(e Edge, reason string) error {
	return &MalformedPolygonError{Edge: e, Row: s.bandTop, Reason: reason}
}

// appendRun appends a span to a left-to-right run list, merging it into
// the last run if the two touch or overlap.
func appendRun(runs []Span, r Span) []Span {
	if n := len(runs); n > 0 && runs[n-1].End >= r.Start {
		runs[n-1].End = max(runs[n-1].End, r.End)
		return runs
	}
	return append(runs, r)
}
