// Command export renders the band decomposition of every catalogue shape
// to a PNG image. Run from the go-sweep module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/testcases"
)

// scale is the number of tiles per output pixel.
const scale = 1

func main() {
	if err := os.MkdirAll(filepath.Join("testdata", "bands"), 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, shape := range testcases.All[category] {
			name := category + "_" + shape.Name
			if err := export(name, shape.Polygon); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func export(name string, p sweep.Polygon) error {
	clip := bounds(p)
	img, err := sweep.RenderBands(p, clip, scale)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join("testdata", "bands", name+".png"))
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// bounds returns a clip rectangle enclosing the polygon with one tile of
// margin on every side.
func bounds(p sweep.Polygon) rect.Rect {
	minRow, maxRow := p[0].Row, p[0].Row
	minCol, maxCol := p[0].Col, p[0].Col
	for _, v := range p {
		minRow, maxRow = min(minRow, v.Row), max(maxRow, v.Row)
		minCol, maxCol = min(minCol, v.Col), max(maxCol, v.Col)
	}
	return rect.Rect{
		LLx: float64(minCol - 1),
		LLy: float64(minRow - 1),
		URx: float64(maxCol + 2),
		URy: float64(maxRow + 2),
	}
}
