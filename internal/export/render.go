/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders border geometry and colour ladders to PNG, SVG and
// PDF. Each format is a Renderer; Draw walks a geometry in paint order.
package export

import (
	"math"

	"antdkit/internal/geometry"
	"antdkit/internal/palette"
)

// Paint holds the brushes for one border.
// A zero-alpha colour is not painted.
type Paint struct {
	Background palette.Color
	Border     palette.Color
	Style      geometry.BorderStyle
}

// Renderer is the set of primitives a backend needs to draw any border.
type Renderer interface {
	FillPath(p geometry.Path, c palette.Color)
	StrokeLine(l geometry.EdgeLine, c palette.Color, dashes []float64)
	StrokeArc(a geometry.CornerArc, c palette.Color, dashes []float64)
}

// RoundedRectRenderer is implemented by backends with a native rounded
// rectangle. Draw uses it for simple geometries.
type RoundedRectRenderer interface {
	FillRoundedRect(r geometry.Rect, radius float64, c palette.Color)
	StrokeRoundedRect(r geometry.Rect, radius, width float64, c palette.Color, dashes []float64)
}

// Draw paints the background first and the border on top of it.
// The background is skipped when the geometry has no fill region.
func Draw(r Renderer, g geometry.Geometry, p Paint) {
	if g.Simple {
		if rr, ok := r.(RoundedRectRenderer); ok {
			if p.Background.A > 0 && g.HasFill() {
				rr.FillRoundedRect(g.FillRect, g.FillRadius, p.Background)
			}
			if p.Border.A > 0 && g.StrokeWidth > 0 {
				rr.StrokeRoundedRect(g.StrokeRect, g.StrokeRadius, g.StrokeWidth, p.Border, p.Style.Dashes(g.StrokeWidth))
			}
			return
		}
	}
	if p.Background.A > 0 && g.HasFill() {
		r.FillPath(g.Fill.Path(), p.Background)
	}
	if p.Border.A == 0 {
		return
	}
	for _, l := range g.Lines {
		r.StrokeLine(l, p.Border, p.Style.Dashes(l.Width))
	}
	for _, a := range g.Arcs {
		r.StrokeArc(a, p.Border, p.Style.Dashes(a.Width))
	}
	for _, rect := range cornerPatches(g) {
		r.FillPath(geometry.RoundedRectFigure(rect, 0).Path(), p.Border)
	}
}

// squareCorners maps each corner to its vertical and horizontal edge and the
// direction, in x and y, pointing out of the border.
var squareCorners = []struct {
	corner     geometry.Corner
	v, h       geometry.Edge
	outX, outY float64
}{
	{geometry.CornerTopLeft, geometry.EdgeLeft, geometry.EdgeTop, -1, -1},
	{geometry.CornerTopRight, geometry.EdgeRight, geometry.EdgeTop, 1, -1},
	{geometry.CornerBottomRight, geometry.EdgeRight, geometry.EdgeBottom, 1, 1},
	{geometry.CornerBottomLeft, geometry.EdgeLeft, geometry.EdgeBottom, -1, 1},
}

// cornerPatches returns the outer quadrant of every corner without an arc.
// Edge lines end flat on the stroke centreline, so two of them meeting at a
// square corner leave that quadrant unpainted.
func cornerPatches(g geometry.Geometry) []geometry.Rect {
	var arcs [4]bool
	for _, a := range g.Arcs {
		arcs[a.Corner] = true
	}
	var lines [4]*geometry.EdgeLine
	for i := range g.Lines {
		lines[g.Lines[i].Edge] = &g.Lines[i]
	}
	var out []geometry.Rect
	for _, sc := range squareCorners {
		v, h := lines[sc.v], lines[sc.h]
		if arcs[sc.corner] || v == nil || h == nil {
			continue
		}
		w, hh := v.Width/2, h.Width/2
		x, y := v.From.X, h.From.Y
		if sc.outX < 0 {
			x -= w
		}
		if sc.outY < 0 {
			y -= hh
		}
		out = append(out, geometry.R(x, y, w, hh))
	}
	return out
}

// dashRuns splits a polyline into the visible runs of a dash pattern.
// A nil pattern returns the polyline unchanged.
func dashRuns(pts []geometry.Pt, dashes []float64) [][]geometry.Pt {
	if len(pts) < 2 {
		return nil
	}
	if len(dashes) == 0 {
		return [][]geometry.Pt{pts}
	}
	for _, d := range dashes {
		if d <= 0 {
			return [][]geometry.Pt{pts}
		}
	}
	var runs [][]geometry.Pt
	cur := []geometry.Pt{pts[0]}
	idx, left, on := 0, dashes[0], true
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for seg-pos > left {
			pos += left
			t := pos / seg
			q := geometry.Pt{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				runs = append(runs, append(cur, q))
				cur = nil
			} else {
				cur = []geometry.Pt{q}
			}
			on = !on
			idx = (idx + 1) % len(dashes)
			left = dashes[idx]
		}
		left -= seg - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		runs = append(runs, cur)
	}
	return runs
}
