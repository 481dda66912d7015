/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// Pass selects which outline the key points describe.
type Pass uint8

const (
	// StrokePass places points on the stroke centreline: the outer rect deflated
	// by half of each edge thickness, with the configured radii.
	StrokePass Pass = iota
	// FillPass places points on the background outline: the outer rect deflated
	// by the full thickness, with radii reduced by half the adjacent edge.
	FillPass
)

// EdgeLine is a straight border edge stroked with the edge's own thickness.
type EdgeLine struct {
	Edge     Edge
	From, To Pt
	Width    float64
}

// CornerArc is a corner stroked with the wider of its two adjacent edges.
type CornerArc struct {
	Corner Corner
	Arc    Segment
	Width  float64
}

// Geometry is the immutable result of Compute. Simple geometries can be drawn
// with a host rounded-rectangle primitive using the Stroke*/Fill* fields; every
// geometry also carries Lines, Arcs and Fill for backends without one.
type Geometry struct {
	Simple bool

	StrokeRect   Rect
	StrokeRadius float64
	StrokeWidth  float64
	FillRect     Rect
	FillRadius   float64

	Lines []EdgeLine
	Arcs  []CornerArc
	Fill  Figure
}

// Empty reports whether there is nothing to stroke or fill.
func (g Geometry) Empty() bool { return len(g.Lines) == 0 && len(g.Arcs) == 0 && g.Fill.Empty() }

// HasFill reports whether the background region has a positive area.
// Consumers must check it before rendering a background.
func (g Geometry) HasFill() bool {
	if g.Simple {
		return g.FillRect.W > 0 && g.FillRect.H > 0
	}
	return !g.Fill.Empty()
}

// KeyPoints are the eight construction points where straight edges meet corner
// arcs, after overlap resolution.
type KeyPoints struct {
	TopLeft, TopRight       Pt // on the top edge
	RightTop, RightBottom   Pt // on the right edge
	BottomRight, BottomLeft Pt // on the bottom edge
	LeftBottom, LeftTop     Pt // on the left edge
}

// keyRadii is the distance of each key point from its true corner, measured
// along the edge the point sits on.
type keyRadii struct {
	leftTop, topLeft         float64
	topRight, rightTop       float64
	rightBottom, bottomRight float64
	bottomLeft, leftBottom   float64
}

func newKeyRadii(radii CornerRadius, thickness Thickness, pass Pass) keyRadii {
	if pass == StrokePass {
		return keyRadii{
			leftTop: radii.TopLeft, topLeft: radii.TopLeft,
			topRight: radii.TopRight, rightTop: radii.TopRight,
			rightBottom: radii.BottomRight, bottomRight: radii.BottomRight,
			bottomLeft: radii.BottomLeft, leftBottom: radii.BottomLeft,
		}
	}
	h := thickness.Half()
	return keyRadii{
		leftTop:     math.Max(0, radii.TopLeft-h.Left),
		topLeft:     math.Max(0, radii.TopLeft-h.Top),
		topRight:    math.Max(0, radii.TopRight-h.Top),
		rightTop:    math.Max(0, radii.TopRight-h.Right),
		rightBottom: math.Max(0, radii.BottomRight-h.Right),
		bottomRight: math.Max(0, radii.BottomRight-h.Bottom),
		bottomLeft:  math.Max(0, radii.BottomLeft-h.Bottom),
		leftBottom:  math.Max(0, radii.BottomLeft-h.Left),
	}
}

func uniformKeyRadii(r float64) keyRadii {
	return keyRadii{r, r, r, r, r, r, r, r}
}

// passRect is the rectangle a pass traces.
func passRect(outer Rect, thickness Thickness, pass Pass) Rect {
	if pass == StrokePass {
		return outer.Deflate(thickness.Half())
	}
	return outer.Deflate(thickness)
}

// keyPoints lays out the eight points in rect and partitions any edge whose
// neighbouring corners overlap, in proportion to the two corner extents.
func keyPoints(rect Rect, k keyRadii) KeyPoints {
	w, h := rect.W, rect.H
	p := KeyPoints{
		TopLeft:     Pt{k.leftTop, 0},
		TopRight:    Pt{w - k.rightTop, 0},
		RightTop:    Pt{w, k.topRight},
		RightBottom: Pt{w, h - k.bottomRight},
		BottomRight: Pt{w - k.rightBottom, h},
		BottomLeft:  Pt{k.leftBottom, h},
		LeftBottom:  Pt{0, h - k.bottomLeft},
		LeftTop:     Pt{0, k.topLeft},
	}

	if p.TopLeft.X > p.TopRight.X {
		v := split(k.leftTop, k.rightTop, w)
		p.TopLeft.X, p.TopRight.X = v, v
	}
	if p.RightTop.Y > p.RightBottom.Y {
		v := split(k.topRight, k.bottomRight, h)
		p.RightTop.Y, p.RightBottom.Y = v, v
	}
	if p.BottomRight.X < p.BottomLeft.X {
		v := split(k.leftBottom, k.rightBottom, w)
		p.BottomRight.X, p.BottomLeft.X = v, v
	}
	if p.LeftBottom.Y < p.LeftTop.Y {
		v := split(k.topLeft, k.bottomLeft, h)
		p.LeftBottom.Y, p.LeftTop.Y = v, v
	}

	off := Translate(rect.X, rect.Y)
	p.TopLeft = off.Apply(p.TopLeft)
	p.TopRight = off.Apply(p.TopRight)
	p.RightTop = off.Apply(p.RightTop)
	p.RightBottom = off.Apply(p.RightBottom)
	p.BottomRight = off.Apply(p.BottomRight)
	p.BottomLeft = off.Apply(p.BottomLeft)
	p.LeftBottom = off.Apply(p.LeftBottom)
	p.LeftTop = off.Apply(p.LeftTop)
	return p
}

// split returns the share a/(a+b) of span without forming a+b, which
// overflows for radii near the float64 limit.
func split(a, b, span float64) float64 {
	if a == 0 {
		return 0
	}
	return span / (1 + b/a)
}

// figure walks the key points clockwise from the top edge.
func figure(rect Rect, p KeyPoints) Figure {
	f := Figure{Start: p.TopLeft, Closed: true}
	line := func(e Edge, from, to Pt) {
		if from.closeTo(to) {
			return
		}
		f.Segments = append(f.Segments, Segment{Kind: LineSegment, From: from, To: to, Edge: e})
	}
	arc := func(c Corner, from, to Pt, rx, ry float64) {
		if isZero(rx) && isZero(ry) {
			return
		}
		f.Segments = append(f.Segments, Segment{Kind: ArcSegment, From: from, To: to, Radius: Size{rx, ry}, Corner: c})
	}
	right, bottom := rect.X+rect.W, rect.Y+rect.H

	line(EdgeTop, p.TopLeft, p.TopRight)
	arc(CornerTopRight, p.TopRight, p.RightTop, right-p.TopRight.X, p.RightTop.Y-rect.Y)
	line(EdgeRight, p.RightTop, p.RightBottom)
	arc(CornerBottomRight, p.RightBottom, p.BottomRight, right-p.BottomRight.X, bottom-p.RightBottom.Y)
	line(EdgeBottom, p.BottomRight, p.BottomLeft)
	arc(CornerBottomLeft, p.BottomLeft, p.LeftBottom, p.BottomLeft.X-rect.X, bottom-p.LeftBottom.Y)
	line(EdgeLeft, p.LeftBottom, p.LeftTop)
	arc(CornerTopLeft, p.LeftTop, p.TopLeft, p.TopLeft.X-rect.X, p.LeftTop.Y-rect.Y)
	return f
}

// adjacent lists the two edges meeting at each corner.
var adjacent = [4][2]Edge{
	CornerTopLeft:     {EdgeLeft, EdgeTop},
	CornerTopRight:    {EdgeTop, EdgeRight},
	CornerBottomRight: {EdgeRight, EdgeBottom},
	CornerBottomLeft:  {EdgeBottom, EdgeLeft},
}

// cornerPen picks the pen width for a corner arc: the wider adjacent edge, or
// the only non-zero one. Zero means the arc is not stroked.
func cornerPen(t Thickness, c Corner) float64 {
	a, b := t.Edge(adjacent[c][0]), t.Edge(adjacent[c][1])
	switch {
	case isZero(a) && isZero(b):
		return 0
	case isZero(a):
		return b
	case isZero(b):
		return a
	}
	return math.Max(a, b)
}

// strokeElements splits a centreline figure into per-edge lines and per-corner arcs.
func strokeElements(f Figure, t Thickness) ([]EdgeLine, []CornerArc) {
	var lines []EdgeLine
	var arcs []CornerArc
	for _, s := range f.Segments {
		switch s.Kind {
		case LineSegment:
			w := t.Edge(s.Edge)
			if isZero(w) {
				continue
			}
			lines = append(lines, EdgeLine{Edge: s.Edge, From: s.From, To: s.To, Width: w})
		case ArcSegment:
			w := cornerPen(t, s.Corner)
			if w == 0 {
				continue
			}
			arcs = append(arcs, CornerArc{Corner: s.Corner, Arc: s, Width: w})
		}
	}
	return lines, arcs
}

func validate(outer Rect, radii CornerRadius, thickness Thickness) error {
	if err := validateRect(outer); err != nil {
		return err
	}
	if err := radii.Validate(Strict); err != nil {
		return err
	}
	return thickness.Validate(Strict)
}

// Compute builds the stroke and fill geometry of a border drawn inside outer.
// Uniform radii with a uniform thickness take the rounded-rectangle fast path;
// anything else is built from key points. Inputs are expected to be layout
// rounded already. A zero-area outer rect yields an empty geometry.
func Compute(outer Rect, radii CornerRadius, thickness Thickness) (Geometry, error) {
	if err := validate(outer, radii, thickness); err != nil {
		return Geometry{}, err
	}
	if outer.Empty() {
		return Geometry{}, nil
	}
	if thickness.IsUniform() && radii.IsUniform() {
		return simple(outer, radii.TopLeft, thickness.Top), nil
	}
	return complexGeometry(outer, radii, thickness), nil
}

// ComputeComplex always takes the key-point path, even for uniform input.
func ComputeComplex(outer Rect, radii CornerRadius, thickness Thickness) (Geometry, error) {
	if err := validate(outer, radii, thickness); err != nil {
		return Geometry{}, err
	}
	if outer.Empty() {
		return Geometry{}, nil
	}
	return complexGeometry(outer, radii, thickness), nil
}

func simple(outer Rect, radius, width float64) Geometry {
	g := Geometry{
		Simple:       true,
		StrokeRect:   outer.Inset(width/2, width/2),
		StrokeRadius: radius,
		StrokeWidth:  width,
		FillRect:     outer.Inset(width, width),
		FillRadius:   math.Max(0, radius-width/2),
	}
	if !isZero(width) {
		g.Lines, g.Arcs = strokeElements(RoundedRectFigure(g.StrokeRect, radius), UniformThickness(width))
	}
	if !g.FillRect.Empty() {
		g.Fill = RoundedRectFigure(g.FillRect, g.FillRadius)
	}
	return g
}

func complexGeometry(outer Rect, radii CornerRadius, thickness Thickness) Geometry {
	var g Geometry
	sr := passRect(outer, thickness, StrokePass)
	sf := figure(sr, keyPoints(sr, newKeyRadii(radii, thickness, StrokePass)))
	g.Lines, g.Arcs = strokeElements(sf, thickness)

	fr := passRect(outer, thickness, FillPass)
	if !fr.Empty() {
		g.Fill = figure(fr, keyPoints(fr, newKeyRadii(radii, thickness, FillPass)))
	}
	return g
}

// Points returns the key points of one pass after overlap resolution.
func Points(outer Rect, radii CornerRadius, thickness Thickness, pass Pass) (KeyPoints, error) {
	if err := validate(outer, radii, thickness); err != nil {
		return KeyPoints{}, err
	}
	r := passRect(outer, thickness, pass)
	return keyPoints(r, newKeyRadii(radii, thickness, pass)), nil
}

// RoundedRectFigure is the closed outline of rect with every corner rounded by
// radius. Radii larger than half the rect are split evenly between corners.
// A collapsed rect degenerates to a line or to nothing.
func RoundedRectFigure(rect Rect, radius float64) Figure {
	f := figure(rect, keyPoints(rect, uniformKeyRadii(math.Max(0, radius))))
	if f.Empty() {
		return Figure{}
	}
	return f
}
