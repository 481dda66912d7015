/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

type SegmentKind uint8

const (
	LineSegment SegmentKind = iota
	ArcSegment
)

// Segment is one element of a border figure: a straight edge or a clockwise
// quarter-ellipse corner arc (screen space, y pointing down).
type Segment struct {
	Kind     SegmentKind
	From, To Pt
	Radius   Size   // arcs only: (rx, ry)
	Edge     Edge   // lines only
	Corner   Corner // arcs only
}

// kappa places cubic control points for a quarter ellipse.
// https://pomax.github.io/bezierinfo/#circles_cubic.
const kappa = 4 * (math.Sqrt2 - 1) / 3

// arcFrame holds the unit direction at the start and end angle of each corner arc.
var arcFrame = [4]struct{ c0, s0, c1, s1, start float64 }{
	CornerTopLeft:     {-1, 0, 0, -1, math.Pi},
	CornerTopRight:    {0, -1, 1, 0, -math.Pi / 2},
	CornerBottomRight: {1, 0, 0, 1, 0},
	CornerBottomLeft:  {0, 1, -1, 0, math.Pi / 2},
}

// Center returns the centre of the ellipse an arc belongs to.
func (s Segment) Center() Pt {
	switch s.Corner {
	case CornerTopRight, CornerBottomLeft:
		return Pt{s.From.X, s.To.Y}
	default:
		return Pt{s.To.X, s.From.Y}
	}
}

// Cubic returns the two control points approximating an arc with a cubic bezier.
// For a line the control points sit on the endpoints.
func (s Segment) Cubic() (c1, c2 Pt) {
	if s.Kind == LineSegment {
		return s.From, s.To
	}
	f := arcFrame[s.Corner]
	rx, ry := s.Radius.W, s.Radius.H
	c1 = Pt{s.From.X - kappa*rx*f.s0, s.From.Y + kappa*ry*f.c0}
	c2 = Pt{s.To.X + kappa*rx*f.s1, s.To.Y - kappa*ry*f.c1}
	return c1, c2
}

// Flatten approximates the segment with a polyline whose chord steps do not
// exceed tol. The first point is From and the last is To.
func (s Segment) Flatten(tol float64) []Pt {
	if s.Kind == LineSegment {
		return []Pt{s.From, s.To}
	}
	if tol <= 0 {
		tol = 0.25
	}
	length := math.Max(s.Radius.W, s.Radius.H) * math.Pi / 2
	n := int(math.Ceil(length / tol))
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}
	c := s.Center()
	start := arcFrame[s.Corner].start
	pts := make([]Pt, 0, n+1)
	pts = append(pts, s.From)
	for i := 1; i < n; i++ {
		a := start + float64(i)/float64(n)*math.Pi/2
		pts = append(pts, Pt{c.X + s.Radius.W*math.Cos(a), c.Y + s.Radius.H*math.Sin(a)})
	}
	return append(pts, s.To)
}

// Figure is a closed outline made of lines and corner arcs.
type Figure struct {
	Start    Pt
	Segments []Segment
	Closed   bool
}

func (f Figure) Empty() bool { return len(f.Segments) == 0 }

// Path converts the figure to path commands, arcs becoming cubics.
func (f Figure) Path() Path {
	var p Path
	if f.Empty() {
		return p
	}
	p.MoveTo(f.Start.X, f.Start.Y)
	for _, s := range f.Segments {
		switch s.Kind {
		case LineSegment:
			p.LineTo(s.To.X, s.To.Y)
		case ArcSegment:
			c1, c2 := s.Cubic()
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, s.To.X, s.To.Y)
		}
	}
	if f.Closed {
		p.Close()
	}
	return p
}

func (f Figure) Bounds() Rect {
	p := f.Path()
	return p.Bounds()
}
