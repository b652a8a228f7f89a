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

var concaveShapes = []Shape{
	{
		Name: "u_shape",
		Polygon: sweep.Polygon{
			pt(10, 10), pt(10, 20), pt(20, 20), pt(20, 30),
			pt(10, 30), pt(10, 40), pt(30, 40), pt(30, 10),
		},
		Bands: []sweep.Band{
			{Top: 10, Bottom: 19, Runs: []sweep.Span{span(10, 21), span(30, 41)}, Reds: []int{10, 20, 30, 40}},
			{Top: 20, Bottom: 29, Runs: []sweep.Span{span(10, 41)}, Reds: []int{20, 30}},
			{Top: 30, Bottom: 30, Runs: []sweep.Span{span(10, 41)}, Reds: []int{10, 40}},
		},
		MaxArea: 231,
	},
	{
		Name: "j_shape",
		Polygon: sweep.Polygon{
			pt(10, 10), pt(10, 20), pt(30, 20), pt(30, 30),
			pt(20, 30), pt(20, 40), pt(40, 40), pt(40, 10),
		},
		Bands: []sweep.Band{
			{Top: 10, Bottom: 19, Runs: []sweep.Span{span(10, 21)}, Reds: []int{10, 20}},
			{Top: 20, Bottom: 29, Runs: []sweep.Span{span(10, 21), span(30, 41)}, Reds: []int{30, 40}},
			{Top: 30, Bottom: 39, Runs: []sweep.Span{span(10, 41)}, Reds: []int{20, 30}},
			{Top: 40, Bottom: 40, Runs: []sweep.Span{span(10, 41)}, Reds: []int{10, 40}},
		},
		MaxArea: 341,
	},
	{
		// A lowercase "r". The rows holding the inner corners and the
		// end of the r's right leg become single-row bands.
		Name: "lower_case_r",
		Polygon: sweep.Polygon{
			pt(10, 10), pt(10, 40), pt(30, 40), pt(30, 30),
			pt(20, 30), pt(20, 20), pt(40, 20), pt(40, 10),
		},
		Bands: []sweep.Band{
			{Top: 10, Bottom: 19, Runs: []sweep.Span{span(10, 41)}, Reds: []int{10, 40}},
			{Top: 20, Bottom: 20, Runs: []sweep.Span{span(10, 41)}, Reds: []int{20, 30}},
			{Top: 21, Bottom: 29, Runs: []sweep.Span{span(10, 21), span(30, 41)}, Reds: []int{}},
			{Top: 30, Bottom: 30, Runs: []sweep.Span{span(10, 21), span(30, 41)}, Reds: []int{30, 40}},
			{Top: 31, Bottom: 39, Runs: []sweep.Span{span(10, 21)}, Reds: []int{}},
			{Top: 40, Bottom: 40, Runs: []sweep.Span{span(10, 21)}, Reds: []int{10, 20}},
		},
		MaxArea: 341,
	},
}
