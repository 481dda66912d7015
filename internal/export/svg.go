/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"antdkit/internal/geometry"
	"antdkit/internal/palette"
)

// SVG collects elements in user units. Simple geometries become <rect rx>
// elements; everything else becomes <path> and <line> elements.
type SVG struct {
	buf  bytes.Buffer
	werr error
}

func (s *SVG) wf(format string, args ...any) {
	if s.werr != nil {
		return
	}
	_, s.werr = fmt.Fprintf(&s.buf, format, args...)
}

func (s *SVG) FillPath(p geometry.Path, c palette.Color) {
	s.wf("  <path d=\"%s\" fill=\"%s\"%s/>\n", pathData(p), svgColor(c), opacity("fill-opacity", c))
}

func (s *SVG) StrokeLine(l geometry.EdgeLine, c palette.Color, dashes []float64) {
	s.wf("  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\"%s/>\n", l.From.X, l.From.Y, l.To.X, l.To.Y, strokeAttrs(c, l.Width, dashes))
}

func (s *SVG) StrokeArc(a geometry.CornerArc, c palette.Color, dashes []float64) {
	arc := a.Arc
	// clockwise in screen space is sweep-flag 1
	s.wf("  <path d=\"M%g %gA%g %g 0 0 1 %g %g\" fill=\"none\"%s/>\n",
		arc.From.X, arc.From.Y, arc.Radius.W, arc.Radius.H, arc.To.X, arc.To.Y, strokeAttrs(c, a.Width, dashes))
}

func (s *SVG) FillRoundedRect(r geometry.Rect, radius float64, c palette.Color) {
	s.wf("  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" rx=\"%g\" fill=\"%s\"%s/>\n",
		r.X, r.Y, r.W, r.H, radius, svgColor(c), opacity("fill-opacity", c))
}

func (s *SVG) StrokeRoundedRect(r geometry.Rect, radius, width float64, c palette.Color, dashes []float64) {
	s.wf("  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" rx=\"%g\" fill=\"none\"%s/>\n",
		r.X, r.Y, r.W, r.H, radius, strokeAttrs(c, width, dashes))
}

// Encode wraps the collected elements in an <svg> document of the given size.
func (s *SVG) Encode(w io.Writer, size geometry.Size) (int64, error) {
	if s.werr != nil {
		return 0, fmt.Errorf("build svg: %w", s.werr)
	}
	var doc bytes.Buffer
	fmt.Fprintf(&doc, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&doc, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n", size.W, size.H, size.W, size.H)
	doc.Write(s.buf.Bytes())
	doc.WriteString("</svg>\n")
	return doc.WriteTo(w)
}

// WriteBorderSVG draws a geometry as a standalone SVG document.
func WriteBorderSVG(w io.Writer, g geometry.Geometry, size geometry.Size, p Paint) error {
	var s SVG
	Draw(&s, g, p)
	if _, err := s.Encode(w, size); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// WritePaletteSVG draws the ladder as labelled swatches.
func WritePaletteSVG(w io.Writer, name string, pal palette.Palette) error {
	const sw, sh = 96.0, 48.0
	var s SVG
	if name != "" {
		s.wf("  <text x=\"4\" y=\"14\" font-family=\"Helvetica, Arial, sans-serif\" font-size=\"12\" fill=\"#000000\">%s</text>\n", escText(name))
	}
	top := 20.0
	for i, c := range pal {
		x := float64(i) * sw
		s.wf("  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"%s\"%s/>\n", x, top, sw, sh, svgColor(c), opacity("fill-opacity", c))
		ink := "#000000"
		if i >= palette.BaseIndex-1 {
			ink = "#ffffff"
		}
		s.wf("  <text x=\"%g\" y=\"%g\" font-family=\"Menlo, monospace\" font-size=\"11\" fill=\"%s\">%d %s</text>\n", x+6, top+sh-8, ink, i+1, c.Hex())
	}
	if _, err := s.Encode(w, geometry.Size{W: sw * palette.Size, H: top + sh}); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func pathData(p geometry.Path) string {
	var b strings.Builder
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, c := range p.Cmds {
		d := c.Data
		switch c.Op {
		case geometry.MoveTo:
			b.WriteString("M" + f(d[0]) + " " + f(d[1]))
		case geometry.LineTo:
			b.WriteString("L" + f(d[0]) + " " + f(d[1]))
		case geometry.CubicTo:
			b.WriteString("C" + f(d[0]) + " " + f(d[1]) + " " + f(d[2]) + " " + f(d[3]) + " " + f(d[4]) + " " + f(d[5]))
		case geometry.Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func strokeAttrs(c palette.Color, width float64, dashes []float64) string {
	a := fmt.Sprintf(" stroke=\"%s\" stroke-width=\"%g\"%s", svgColor(c), width, opacity("stroke-opacity", c))
	if len(dashes) > 0 {
		parts := make([]string, len(dashes))
		for i, d := range dashes {
			parts[i] = strconv.FormatFloat(d, 'g', -1, 64)
		}
		a += fmt.Sprintf(" stroke-dasharray=\"%s\"", strings.Join(parts, " "))
	}
	return a
}

func svgColor(c palette.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(attr string, c palette.Color) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(" %s=\"%s\"", attr, strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64))
}

func escText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")
	return r.Replace(s)
}
