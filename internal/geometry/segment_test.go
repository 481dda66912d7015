/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"math"
	"testing"
)

func TestArcCubicControlPoints(t *testing.T) {
	f := RoundedRectFigure(R(0, 0, 40, 40), 10)
	var tl Segment
	for _, s := range f.Segments {
		if s.Kind == ArcSegment && s.Corner == CornerTopLeft {
			tl = s
		}
	}
	if tl.From != (Pt{0, 10}) || tl.To != (Pt{10, 0}) {
		t.Fatalf("top-left arc endpoints: %+v -> %+v", tl.From, tl.To)
	}
	c1, c2 := tl.Cubic()
	k := kappa * 10
	if math.Abs(c1.X) > 1e-12 || math.Abs(c1.Y-(10-k)) > 1e-12 {
		t.Fatalf("c1: %+v", c1)
	}
	if math.Abs(c2.X-(10-k)) > 1e-12 || math.Abs(c2.Y) > 1e-12 {
		t.Fatalf("c2: %+v", c2)
	}
	if c := tl.Center(); c != (Pt{10, 10}) {
		t.Fatalf("center: %+v", c)
	}
}

func TestFlattenStaysOnEllipse(t *testing.T) {
	g, err := Compute(R(0, 0, 120, 60), CornerRadius{TopLeft: 20, TopRight: 8, BottomRight: 30, BottomLeft: 12}, UniformThickness(2))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(g.Arcs) != 4 {
		t.Fatalf("expected 4 arcs, got %d", len(g.Arcs))
	}
	for _, a := range g.Arcs {
		pts := a.Arc.Flatten(0.5)
		if pts[0] != a.Arc.From || pts[len(pts)-1] != a.Arc.To {
			t.Fatalf("%s: flatten must keep endpoints", a.Corner)
		}
		c := a.Arc.Center()
		rx, ry := a.Arc.Radius.W, a.Arc.Radius.H
		for _, p := range pts {
			dx, dy := (p.X-c.X)/rx, (p.Y-c.Y)/ry
			if d := dx*dx + dy*dy; math.Abs(d-1) > 1e-9 {
				t.Fatalf("%s: point %+v off the ellipse (%v)", a.Corner, p, d)
			}
		}
	}
}

func TestFlattenLine(t *testing.T) {
	s := Segment{Kind: LineSegment, From: Pt{1, 2}, To: Pt{3, 4}}
	if pts := s.Flatten(0.1); len(pts) != 2 {
		t.Fatalf("a line flattens to its endpoints, got %v", pts)
	}
}

func TestPathTransformAndBounds(t *testing.T) {
	p := RoundedRectFigure(R(0, 0, 10, 20), 2).Path()
	if p.Cmds[0].Op != MoveTo || p.Cmds[len(p.Cmds)-1].Op != Close {
		t.Fatalf("path must start with MoveTo and end with Close")
	}
	moved := p.Transform(Translate(5, -5))
	if b := moved.Bounds(); b != R(5, -5, 10, 20) {
		t.Fatalf("translated bounds: %+v", b)
	}
	var empty Path
	if b := empty.Bounds(); b != (Rect{}) {
		t.Fatalf("empty path bounds: %+v", b)
	}
}

func TestRoundedRectFigureDegenerates(t *testing.T) {
	if f := RoundedRectFigure(Rect{}, 4); !f.Empty() {
		t.Fatalf("collapsed rect should give an empty figure, got %+v", f)
	}
	f := RoundedRectFigure(R(0, 0, 10, 0), 0)
	if f.Empty() {
		t.Fatalf("zero-height rect still has a top and bottom run")
	}
}
