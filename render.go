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
	"image"

	"seehuhn.de/go/geom/rect"
)

// A Renderer accepts a series of bands and draws them to a colour
// bitmap. The background is drawn black, the polygon interior in gray
// levels proportional to the covered tile count, and red tiles, well,
// red.
//
// The clip rectangle selects the tile-space region to draw, with LLx/LLy
// the first column/row and URx/URy one past the last; all four must be
// multiples of scale. Every output pixel covers a square of scale×scale
// tiles, so the bitmap is (URx−LLx)/scale by (URy−LLy)/scale pixels.
//
// Bands must be presented from top to bottom.
type Renderer struct {
	minRow, minCol int // top-left corner of the clip, in tiles
	width, height  int // output size in pixels
	scale          int

	img *image.RGBA

	// nextRow is the output pixel row currently being accumulated.
	// Rows above it have been written to img.
	nextRow int

	// covered counts, for each pixel of nextRow, the tiles that fall
	// within the shape; red marks pixels containing a red tile.
	covered []int
	red     []bool
}

// NewRenderer creates a Renderer for the given tile-space clip rectangle
// and scale factor.
func NewRenderer(clip rect.Rect, scale int) *Renderer {
	minCol, minRow := int(clip.LLx), int(clip.LLy)
	width := (int(clip.URx) - minCol) / scale
	height := (int(clip.URy) - minRow) / scale
	return &Renderer{
		minRow:  minRow,
		minCol:  minCol,
		width:   width,
		height:  height,
		scale:   scale,
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		covered: make([]int, width),
		red:     make([]bool, width),
	}
}

// RenderBand draws one band. Bands must arrive in top-to-bottom order.
func (r *Renderer) RenderBand(band *Band) {
	scale := r.scale

	// The band's rows in clip-local tile coordinates, clamped to the
	// rendered region.
	rows := Span{Start: band.Top - r.minRow, End: band.Bottom + 1 - r.minRow}
	rows.Start = max(rows.Start, 0)
	rows.End = min(rows.End, r.height*scale)
	if rows.IsEmpty() {
		return
	}
	if rows.Start/scale < r.nextRow {
		panic("sweep: bands must be rendered top to bottom")
	}

	// Handle the band one pixel row at a time.
	divideRange(rows, scale, func(chunk Span) {
		pixelRow := chunk.Start / scale
		for r.nextRow < pixelRow {
			r.flushRow()
		}

		if top := band.Top - r.minRow; top >= 0 && top/scale == pixelRow {
			for _, red := range band.Reds {
				if col := red - r.minCol; col >= 0 && col < r.width*scale {
					r.red[col/scale] = true
				}
			}
		}

		r.renderRuns(chunk.End-chunk.Start, band.Runs)
	})
}

// Image completes the bitmap and returns it. The Renderer must not be
// used afterwards.
func (r *Renderer) Image() *image.RGBA {
	for r.nextRow < r.height {
		r.flushRow()
	}
	return r.img
}

// renderRuns adds a band's covered area to the current pixel row.
// height is the number of tile rows the band overlaps within that row.
func (r *Renderer) renderRuns(height int, runs []Span) {
	scale := r.scale
	for _, run := range runs {
		run = Span{Start: run.Start - r.minCol, End: run.End - r.minCol}
		run.Start = max(run.Start, 0)
		run.End = min(run.End, r.width*scale)
		if run.IsEmpty() {
			continue
		}
		divideRange(run, scale, func(chunk Span) {
			r.covered[chunk.Start/scale] += (chunk.End - chunk.Start) * height
		})
	}
}

// flushRow converts the covered and red buffers into pixels and prepares
// for the next pixel row.
func (r *Renderer) flushRow() {
	tilesPerPixel := r.scale * r.scale
	row := r.img.Pix[r.nextRow*r.img.Stride:]
	for x := range r.width {
		var cr, cg, cb uint8
		if r.red[x] {
			cr, cg, cb = 255, 20, 20
		} else {
			level := uint8(r.covered[x] * 128 / tilesPerPixel)
			cr, cg, cb = level, level, level
		}
		row[4*x+0] = cr
		row[4*x+1] = cg
		row[4*x+2] = cb
		row[4*x+3] = 255
	}
	r.nextRow++

	clear(r.covered)
	clear(r.red)
}

// RenderBands decomposes the polygon and renders all of its bands.
func RenderBands(p Polygon, clip rect.Rect, scale int) (*image.RGBA, error) {
	d, err := NewDecomposer(p)
	if err != nil {
		return nil, err
	}
	r := NewRenderer(clip, scale)
	for {
		band, err := d.Next()
		if err != nil {
			return nil, err
		}
		if band == nil {
			break
		}
		r.RenderBand(band)
	}
	return r.Image(), nil
}

// divideRange splits a half-open range at each multiple of scale and
// calls fn for every piece, in order. For example, with scale 10 the
// range [5,35) is split into [5,10), [10,20), [20,30) and [30,35).
func divideRange(r Span, scale int, fn func(Span)) {
	start := r.Start - r.Start%scale
	for start < r.End {
		chunk := Span{Start: max(start, r.Start), End: min(start+scale, r.End)}
		fn(chunk)
		start += scale
	}
}
