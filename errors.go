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

import "fmt"

// MalformedPolygonError reports that the input vertex list does not
// describe a simple rectilinear polygon. The computation is pure, so a
// malformed input fails the same way on every attempt; there is no
// partial result.
type MalformedPolygonError struct {
	// Edge is the boundary edge being examined when the problem was
	// detected, if any.
	Edge Edge

	// Row is the sweep row being scanned, for errors found during band
	// decomposition. Zero for errors found while building the edge loop.
	Row int

	// Reason describes the violated requirement.
	Reason string
}

func (e *MalformedPolygonError) Error() string {
	if e.Edge == (Edge{}) {
		return "malformed polygon: " + e.Reason
	}
	return fmt.Sprintf("malformed polygon: %s (edge %v-%v, row %d)",
		e.Reason, e.Edge.Start, e.Edge.End, e.Row)
}
