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

// Example is the small documented example shape: a zigzag with eight
// boundary vertices whose largest enclosed rectangle, spanned by the
// corners (3,2) and (5,9), has area 24.
var Example = Shape{
	Name: "example",
	Polygon: sweep.Polygon{
		pt(1, 7), pt(1, 11), pt(7, 11), pt(7, 9),
		pt(5, 9), pt(5, 2), pt(3, 2), pt(3, 7),
	},
	Bands: []sweep.Band{
		{Top: 1, Bottom: 2, Runs: []sweep.Span{span(7, 12)}, Reds: []int{7, 11}},
		{Top: 3, Bottom: 4, Runs: []sweep.Span{span(2, 12)}, Reds: []int{2, 7}},
		{Top: 5, Bottom: 5, Runs: []sweep.Span{span(2, 12)}, Reds: []int{2, 9}},
		{Top: 6, Bottom: 6, Runs: []sweep.Span{span(9, 12)}, Reds: []int{}},
		{Top: 7, Bottom: 7, Runs: []sweep.Span{span(9, 12)}, Reds: []int{9, 11}},
	},
	MaxArea: 24,
}

var exampleShapes = []Shape{Example}
