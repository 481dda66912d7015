/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"antdkit/internal/geometry"
	"antdkit/internal/palette"

	"golang.org/x/image/vector"
)

// flattenTolerance is the maximum chord step, in device pixels, used when
// arcs are turned into polylines for stroking.
const flattenTolerance = 0.25

// Raster draws into an RGBA image with anti-aliased coverage.
// Geometry coordinates are mapped to device pixels by a scale transform.
type Raster struct {
	img   *image.RGBA
	scale float64
	xf    geometry.Affine2D
}

// NewRaster returns a transparent w×h canvas. A scale <= 0 means 1.
func NewRaster(w, h int, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h)), scale: scale, xf: geometry.Scale(scale, scale)}
}

func (r *Raster) Image() *image.RGBA { return r.img }

// Clear fills the canvas with c.
func (r *Raster) Clear(c palette.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

func (r *Raster) rasterizer() *vector.Rasterizer {
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func (r *Raster) paint(z *vector.Rasterizer, c palette.Color) {
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

func (r *Raster) FillPath(p geometry.Path, c palette.Color) {
	z := r.rasterizer()
	open := false
	for _, cmd := range p.Transform(r.xf).Cmds {
		d := cmd.Data
		switch cmd.Op {
		case geometry.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(d[0]), float32(d[1]))
			open = true
		case geometry.LineTo:
			z.LineTo(float32(d[0]), float32(d[1]))
		case geometry.CubicTo:
			z.CubeTo(float32(d[0]), float32(d[1]), float32(d[2]), float32(d[3]), float32(d[4]), float32(d[5]))
		case geometry.Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	r.paint(z, c)
}

func (r *Raster) StrokeLine(l geometry.EdgeLine, c palette.Color, dashes []float64) {
	r.strokePolyline([]geometry.Pt{l.From, l.To}, l.Width, c, dashes)
}

func (r *Raster) StrokeArc(a geometry.CornerArc, c palette.Color, dashes []float64) {
	tol := flattenTolerance / r.scale
	r.strokePolyline(a.Arc.Flatten(tol), a.Width, c, dashes)
}

// strokePolyline covers each segment with a quad of the pen width. All quads
// share one winding so overlaps at joints never cancel.
func (r *Raster) strokePolyline(pts []geometry.Pt, width float64, c palette.Color, dashes []float64) {
	if width <= 0 {
		return
	}
	z := r.rasterizer()
	hw := width / 2
	to := func(x, y float64) (float32, float32) {
		q := r.xf.Apply(geometry.Pt{X: x, Y: y})
		return float32(q.X), float32(q.Y)
	}
	for _, run := range dashRuns(pts, dashes) {
		for i := 1; i < len(run); i++ {
			a, b := run[i-1], run[i]
			dx, dy := b.X-a.X, b.Y-a.Y
			n := math.Hypot(dx, dy)
			if n == 0 {
				continue
			}
			nx, ny := -dy/n*hw, dx/n*hw
			z.MoveTo(to(a.X+nx, a.Y+ny))
			z.LineTo(to(b.X+nx, b.Y+ny))
			z.LineTo(to(b.X-nx, b.Y-ny))
			z.LineTo(to(a.X-nx, a.Y-ny))
			z.ClosePath()
		}
	}
	r.paint(z, c)
}

// RenderBorder draws a geometry onto a canvas of the given logical size.
func RenderBorder(g geometry.Geometry, size geometry.Size, p Paint, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(size.W * scale))
	h := int(math.Ceil(size.H * scale))
	r := NewRaster(w, h, scale)
	Draw(r, g, p)
	return r.Image()
}

// WriteBorderPNG renders a geometry and encodes it as PNG.
func WriteBorderPNG(w io.Writer, g geometry.Geometry, size geometry.Size, p Paint, scale float64) error {
	if size.W <= 0 || size.H <= 0 {
		return fmt.Errorf("png size must be positive, got %gx%g", size.W, size.H)
	}
	if err := png.Encode(w, RenderBorder(g, size, p, scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePalettePNG draws the ladder as a row of square swatches labelled with
// their hex value. Light swatches get dark labels and dark swatches light ones.
func WritePalettePNG(w io.Writer, pal palette.Palette, swatch int) error {
	if swatch <= 0 {
		swatch = 64
	}
	r := NewRaster(swatch*palette.Size, swatch, 1)
	for i, c := range pal {
		rect := image.Rect(i*swatch, 0, (i+1)*swatch, swatch)
		draw.Draw(r.img, rect, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
		ink := palette.Color{A: 0xd9}
		if i >= palette.BaseIndex-1 {
			ink = palette.White
		}
		drawLabel(r.img, rect, c.Hex(), ink)
	}
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
