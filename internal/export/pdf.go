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
	"os"
	"path/filepath"

	"antdkit/internal/geometry"
	"antdkit/internal/palette"

	"github.com/jung-kurt/gofpdf"
)

// Swatch is one named ladder on a swatch sheet.
type Swatch struct {
	Name    string
	Palette palette.Palette
}

// BorderPreview is a border drawn below the swatches.
type BorderPreview struct {
	Caption  string
	Geometry geometry.Geometry
	Size     geometry.Size
	Paint    Paint
}

// SwatchOptions controls the swatch sheet. Units are points.
type SwatchOptions struct {
	Title    string
	Previews []BorderPreview
}

const (
	sheetMargin  = 40.0
	swatchW      = 50.0
	swatchH      = 36.0
	rowCaption   = 16.0
	rowGap       = 14.0
)

// pdfRenderer draws in page coordinates offset by (ox, oy).
type pdfRenderer struct {
	pdf    *gofpdf.Fpdf
	ox, oy float64
}

func (r pdfRenderer) at(p geometry.Pt) geometry.Pt {
	return geometry.Translate(r.ox, r.oy).Apply(p)
}

func (r pdfRenderer) withAlpha(c palette.Color, fn func()) {
	if c.A < 255 {
		r.pdf.SetAlpha(float64(c.A)/255, "Normal")
		defer r.pdf.SetAlpha(1, "Normal")
	}
	fn()
}

func (r pdfRenderer) trace(p geometry.Path) {
	for _, c := range p.Transform(geometry.Translate(r.ox, r.oy)).Cmds {
		d := c.Data
		switch c.Op {
		case geometry.MoveTo:
			r.pdf.MoveTo(d[0], d[1])
		case geometry.LineTo:
			r.pdf.LineTo(d[0], d[1])
		case geometry.CubicTo:
			r.pdf.CurveBezierCubicTo(d[0], d[1], d[2], d[3], d[4], d[5])
		case geometry.Close:
			r.pdf.ClosePath()
		}
	}
}

func (r pdfRenderer) FillPath(p geometry.Path, c palette.Color) {
	if len(p.Cmds) == 0 {
		return
	}
	r.withAlpha(c, func() {
		setFillColor(r.pdf, c)
		r.trace(p)
		r.pdf.DrawPath("f")
	})
}

func (r pdfRenderer) pen(c palette.Color, width float64, dashes []float64) {
	setDrawColor(r.pdf, c)
	r.pdf.SetLineWidth(width)
	r.pdf.SetDashPattern(dashes, 0)
}

func (r pdfRenderer) StrokeLine(l geometry.EdgeLine, c palette.Color, dashes []float64) {
	r.withAlpha(c, func() {
		r.pen(c, l.Width, dashes)
		a, b := r.at(l.From), r.at(l.To)
		r.pdf.Line(a.X, a.Y, b.X, b.Y)
	})
}

func (r pdfRenderer) StrokeArc(a geometry.CornerArc, c palette.Color, dashes []float64) {
	r.withAlpha(c, func() {
		r.pen(c, a.Width, dashes)
		c1, c2 := a.Arc.Cubic()
		from, to := r.at(a.Arc.From), r.at(a.Arc.To)
		c1, c2 = r.at(c1), r.at(c2)
		r.pdf.MoveTo(from.X, from.Y)
		r.pdf.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
		r.pdf.DrawPath("S")
	})
}

// WriteSwatchPDF writes an A4 sheet with one row per ladder, followed by the
// border previews. Rows that do not fit start a new page.
func WriteSwatchPDF(outPath string, swatches []Swatch, opt SwatchOptions) error {
	if len(swatches) == 0 && len(opt.Previews) == 0 {
		return fmt.Errorf("nothing to export")
	}
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, sheetMargin)
	title := opt.Title
	if title == "" {
		title = "Palette swatches"
	}
	pdf.SetTitle(title, false)
	pdf.SetAuthor("antdkit", false)
	_, pageH := pdf.GetPageSize()

	pdf.AddPage()
	y := sheetMargin
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(sheetMargin, y+14, title)
	y += 30

	ensure := func(h float64) {
		if y+h > pageH-sheetMargin {
			pdf.AddPage()
			y = sheetMargin
		}
	}

	for _, sw := range swatches {
		ensure(rowCaption + swatchH + rowGap)
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(sheetMargin, y+11, sw.Name)
		y += rowCaption
		for i, c := range sw.Palette {
			x := sheetMargin + float64(i)*swatchW
			setFillColor(pdf, c)
			pdf.Rect(x, y, swatchW, swatchH, "F")
			if i >= palette.BaseIndex-1 {
				pdf.SetTextColor(255, 255, 255)
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.SetFont("Courier", "", 7)
			pdf.Text(x+3, y+swatchH-4, c.Hex())
		}
		y += swatchH + rowGap
	}

	for _, p := range opt.Previews {
		ensure(rowCaption + p.Size.H + rowGap)
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(sheetMargin, y+11, p.Caption)
		y += rowCaption
		Draw(pdfRenderer{pdf: pdf, ox: sheetMargin, oy: y}, p.Geometry, p.Paint)
		pdf.SetDashPattern(nil, 0)
		y += p.Size.H + rowGap
	}

	if pdf.Err() {
		return fmt.Errorf("build pdf: %w", pdf.Error())
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func setDrawColor(pdf *gofpdf.Fpdf, c palette.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func setFillColor(pdf *gofpdf.Fpdf, c palette.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}
