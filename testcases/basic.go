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

var basicShapes = []Shape{
	{
		Name:    "square",
		Polygon: sweep.Polygon{pt(12, 10), pt(12, 20), pt(22, 20), pt(22, 10)},
		Bands: []sweep.Band{
			{Top: 12, Bottom: 21, Runs: []sweep.Span{span(10, 21)}, Reds: []int{10, 20}},
			{Top: 22, Bottom: 22, Runs: []sweep.Span{span(10, 21)}, Reds: []int{10, 20}},
		},
		MaxArea: 121,
	},
	{
		// The same square, traversed in the opposite direction.
		Name:    "square_reversed",
		Polygon: sweep.Polygon{pt(22, 20), pt(12, 20), pt(12, 10), pt(22, 10)},
		Bands: []sweep.Band{
			{Top: 12, Bottom: 21, Runs: []sweep.Span{span(10, 21)}, Reds: []int{10, 20}},
			{Top: 22, Bottom: 22, Runs: []sweep.Span{span(10, 21)}, Reds: []int{10, 20}},
		},
		MaxArea: 121,
	},
	{
		// A degenerate loop: down one column and straight back up.
		Name:    "vertical_line",
		Polygon: sweep.Polygon{pt(12, 10), pt(22, 10)},
		Bands: []sweep.Band{
			{Top: 12, Bottom: 21, Runs: []sweep.Span{span(10, 11)}, Reds: []int{10}},
			{Top: 22, Bottom: 22, Runs: []sweep.Span{span(10, 11)}, Reds: []int{10}},
		},
		MaxArea: 11,
	},
	{
		// A square with a vertex in the middle of each side.
		Name: "square_with_midpoints",
		Polygon: sweep.Polygon{
			pt(10, 10), pt(10, 20), pt(10, 30), pt(20, 30),
			pt(30, 30), pt(30, 20), pt(30, 10), pt(20, 10),
		},
		Bands: []sweep.Band{
			{Top: 10, Bottom: 19, Runs: []sweep.Span{span(10, 31)}, Reds: []int{10, 20, 30}},
			{Top: 20, Bottom: 29, Runs: []sweep.Span{span(10, 31)}, Reds: []int{10, 30}},
			{Top: 30, Bottom: 30, Runs: []sweep.Span{span(10, 31)}, Reds: []int{10, 20, 30}},
		},
		MaxArea: 441,
	},
	{
		Name: "square_with_midpoints_reversed",
		Polygon: sweep.Polygon{
			pt(10, 10), pt(20, 10), pt(30, 10), pt(30, 20),
			pt(30, 30), pt(20, 30), pt(10, 30), pt(10, 20),
		},
		Bands: []sweep.Band{
			{Top: 10, Bottom: 19, Runs: []sweep.Span{span(10, 31)}, Reds: []int{10, 20, 30}},
			{Top: 20, Bottom: 29, Runs: []sweep.Span{span(10, 31)}, Reds: []int{10, 30}},
			{Top: 30, Bottom: 30, Runs: []sweep.Span{span(10, 31)}, Reds: []int{10, 20, 30}},
		},
		MaxArea: 441,
	},
}
