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

package sweep_test

import (
	"image/color"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/testcases"
)

// forEachShape runs the body as a subtest for every shape in the
// catalogue, in a stable order.
func forEachShape(t *testing.T, body func(t *testing.T, shape testcases.Shape)) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, shape := range testcases.All[category] {
			t.Run(category+"_"+shape.Name, func(t *testing.T) {
				body(t, shape)
			})
		}
	}
}

func decompose(t *testing.T, p sweep.Polygon) []sweep.Band {
	t.Helper()
	d, err := sweep.NewDecomposer(p)
	if err != nil {
		t.Fatalf("NewDecomposer: %v", err)
	}
	var bands []sweep.Band
	for {
		band, err := d.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if band == nil {
			return bands
		}
		bands = append(bands, *band)
	}
}

func TestCatalogueBands(t *testing.T) {
	forEachShape(t, func(t *testing.T, shape testcases.Shape) {
		bands := decompose(t, shape.Polygon)
		if len(bands) != len(shape.Bands) {
			t.Fatalf("got %d bands, want %d", len(bands), len(shape.Bands))
		}
		for i, want := range shape.Bands {
			got := bands[i]
			if got.Top != want.Top || got.Bottom != want.Bottom {
				t.Errorf("band %d: rows %d..%d, want %d..%d",
					i, got.Top, got.Bottom, want.Top, want.Bottom)
			}
			if !slices.Equal(got.Runs, want.Runs) {
				t.Errorf("band %d: runs %v, want %v", i, got.Runs, want.Runs)
			}
			if !slices.Equal(got.Reds, want.Reds) {
				t.Errorf("band %d: reds %v, want %v", i, got.Reds, want.Reds)
			}
		}
	})
}

// TestBandPartition checks that the bands of every catalogue shape tile
// the shape's row range without gaps or overlaps, and that the red tiles
// are exactly the boundary vertices, each in the top row of its band.
func TestBandPartition(t *testing.T) {
	forEachShape(t, func(t *testing.T, shape testcases.Shape) {
		p := shape.Polygon
		bands := decompose(t, p)
		if len(bands) == 0 {
			t.Fatal("no bands")
		}

		minRow, maxRow := p[0].Row, p[0].Row
		for _, v := range p {
			minRow, maxRow = min(minRow, v.Row), max(maxRow, v.Row)
		}
		if bands[0].Top != minRow {
			t.Errorf("first band starts at row %d, want %d", bands[0].Top, minRow)
		}
		if last := bands[len(bands)-1]; last.Bottom != maxRow {
			t.Errorf("last band ends at row %d, want %d", last.Bottom, maxRow)
		}
		for i, band := range bands {
			if band.Bottom < band.Top {
				t.Errorf("band %d: inverted rows %d..%d", i, band.Top, band.Bottom)
			}
			if i > 0 && band.Top != bands[i-1].Bottom+1 {
				t.Errorf("band %d starts at row %d, band %d ended at row %d",
					i, band.Top, i-1, bands[i-1].Bottom)
			}
		}

		// Match every vertex with a red tile and vice versa.
		vertices := make(map[sweep.Point]bool)
		for _, v := range p {
			vertices[v] = true
		}
		for i, band := range bands {
			for _, red := range band.Reds {
				v := sweep.Point{Row: band.Top, Col: red}
				if !vertices[v] {
					t.Errorf("band %d: red tile %v is not a vertex", i, v)
				}
				delete(vertices, v)
			}
		}
		for v := range vertices {
			t.Errorf("vertex %v missing from the red tiles", v)
		}
	})
}

// TestRunsAgainstGrid compares every band row with an independent
// flood-fill rasterization of the shape.
func TestRunsAgainstGrid(t *testing.T) {
	forEachShape(t, func(t *testing.T, shape testcases.Shape) {
		g := testcases.Fill(shape.Polygon)
		for i, band := range decompose(t, shape.Polygon) {
			for row := band.Top; row <= band.Bottom; row++ {
				if got := g.RowSpans(row); !slices.Equal(got, band.Runs) {
					t.Errorf("band %d, row %d: grid has %v, band has %v",
						i, row, got, band.Runs)
				}
			}
		}
	})
}

// TestRectanglesEnclosed checks that every emitted vertex pair really
// spans a box lying inside the shape, with both corners on vertices.
func TestRectanglesEnclosed(t *testing.T) {
	forEachShape(t, func(t *testing.T, shape testcases.Shape) {
		p := shape.Polygon
		vertices := make(map[sweep.Point]bool)
		for _, v := range p {
			vertices[v] = true
		}
		g := testcases.Fill(p)

		n := 0
		err := sweep.ForEachRectangle(p, func(a, b sweep.Point) {
			n++
			if !vertices[a] || !vertices[b] {
				t.Errorf("pair %v-%v: corner is not a vertex", a, b)
			}
			if !g.RectInside(a, b) {
				t.Errorf("pair %v-%v: box leaves the shape", a, b)
			}
		})
		if err != nil {
			t.Fatal(err)
		}
		if n == 0 {
			t.Error("no vertex pairs emitted")
		}
	})
}

// TestMaxAreaAgainstGrid checks the catalogue's expected areas and the
// brute-force grid search against the sweep.
func TestMaxAreaAgainstGrid(t *testing.T) {
	forEachShape(t, func(t *testing.T, shape testcases.Shape) {
		got, err := sweep.MaxArea(shape.Polygon)
		if err != nil {
			t.Fatal(err)
		}
		if got != shape.MaxArea {
			t.Errorf("got %d, want %d", got, shape.MaxArea)
		}
		if brute := testcases.MaxRectArea(shape.Polygon); got != brute {
			t.Errorf("sweep found %d, brute force found %d", got, brute)
		}
	})
}

// TestRenderAgainstGrid renders every catalogue shape at scale 1 and
// compares each pixel with the flood-fill grid: red on vertices, gray
// inside, black outside.
func TestRenderAgainstGrid(t *testing.T) {
	red := color.RGBA{R: 255, G: 20, B: 20, A: 255}
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	black := color.RGBA{A: 255}

	forEachShape(t, func(t *testing.T, shape testcases.Shape) {
		p := shape.Polygon
		vertices := make(map[sweep.Point]bool)
		minRow, maxRow := p[0].Row, p[0].Row
		minCol, maxCol := p[0].Col, p[0].Col
		for _, v := range p {
			vertices[v] = true
			minRow, maxRow = min(minRow, v.Row), max(maxRow, v.Row)
			minCol, maxCol = min(minCol, v.Col), max(maxCol, v.Col)
		}

		// one tile of margin on every side
		clip := rect.Rect{
			LLx: float64(minCol - 1),
			LLy: float64(minRow - 1),
			URx: float64(maxCol + 2),
			URy: float64(maxRow + 2),
		}
		img, err := sweep.RenderBands(p, clip, 1)
		if err != nil {
			t.Fatal(err)
		}

		g := testcases.Fill(p)
		for row := minRow - 1; row <= maxRow+1; row++ {
			for col := minCol - 1; col <= maxCol+1; col++ {
				tile := sweep.Point{Row: row, Col: col}
				want := black
				switch {
				case vertices[tile]:
					want = red
				case g.Inside(tile):
					want = gray
				}
				got := img.RGBAAt(col-minCol+1, row-minRow+1)
				if got != want {
					t.Errorf("tile (%d,%d): got %v, want %v", row, col, got, want)
				}
			}
		}
	})
}
