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

// edgeKey projects an edge onto the (row, column) pair by which a queue
// orders it. The decomposer uses two projections of the same edges: the
// topmost row for edges not yet reached by the sweep, and the bottommost
// row for edges currently active.
type edgeKey func(Edge) (row, col int)

func byTop(e Edge) (row, col int)    { return e.Top(), e.Left() }
func byBottom(e Edge) (row, col int) { return e.Bottom(), e.Left() }

// edgeQueue is a min-heap of edges ordered by an edgeKey.
// Each edge is pushed and popped at most once, so total queue work over a
// decomposition is O(E log E).
type edgeQueue struct {
	key   edgeKey
	edges []Edge
}

// newEdgeQueue heapifies the given edges in place.
func newEdgeQueue(key edgeKey, edges []Edge) *edgeQueue {
	q := &edgeQueue{key: key, edges: edges}
	n := len(q.edges)
	for i := n/2 - 1; i >= 0; i-- {
		q.down(i, n)
	}
	return q
}

func (q *edgeQueue) len() int { return len(q.edges) }

// peek returns the minimal edge without removing it.
// It must not be called on an empty queue.
func (q *edgeQueue) peek() Edge { return q.edges[0] }

func (q *edgeQueue) push(e Edge) {
	q.edges = append(q.edges, e)
	q.up(len(q.edges) - 1)
}

func (q *edgeQueue) pop() Edge {
	n := len(q.edges) - 1
	q.edges[0], q.edges[n] = q.edges[n], q.edges[0]
	q.down(0, n)
	e := q.edges[n]
	q.edges = q.edges[:n]
	return e
}

func (q *edgeQueue) less(i, j int) bool {
	ri, ci := q.key(q.edges[i])
	rj, cj := q.key(q.edges[j])
	if ri != rj {
		return ri < rj
	}
	return ci < cj
}

// up and down are the sift functions from container/heap, specialised to
// avoid interface boxing.

func (q *edgeQueue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(j, i) {
			break
		}
		q.edges[i], q.edges[j] = q.edges[j], q.edges[i]
		j = i
	}
}

func (q *edgeQueue) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.less(j, i) {
			break
		}
		q.edges[i], q.edges[j] = q.edges[j], q.edges[i]
		i = j
	}
}
