/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// Path commands handed to render backends. Corner arcs are emitted as cubics.

type PathOp uint8

const (
	MoveTo PathOp = iota
	LineTo
	CubicTo // cubic bezier (cx1, cy1, cx2, cy2, x, y)
	Close
)

type PathCmd struct {
	Op   PathOp
	Data [6]float64 // enough for cubic; unused slots are zero
}

type Path struct{ Cmds []PathCmd }

func (p *Path) MoveTo(x, y float64) {
	p.Cmds = append(p.Cmds, PathCmd{Op: MoveTo, Data: [6]float64{x, y}})
}
func (p *Path) LineTo(x, y float64) {
	p.Cmds = append(p.Cmds, PathCmd{Op: LineTo, Data: [6]float64{x, y}})
}
func (p *Path) CubicTo(cx1, cy1, cx2, cy2, x, y float64) {
	p.Cmds = append(p.Cmds, PathCmd{Op: CubicTo, Data: [6]float64{cx1, cy1, cx2, cy2, x, y}})
}
func (p *Path) Close() { p.Cmds = append(p.Cmds, PathCmd{Op: Close}) }

// Transform returns a copy of the path with every point mapped through m.
func (p Path) Transform(m Affine2D) Path {
	out := Path{Cmds: make([]PathCmd, len(p.Cmds))}
	for i, c := range p.Cmds {
		n := c
		switch c.Op {
		case MoveTo, LineTo:
			q := m.Apply(Pt{c.Data[0], c.Data[1]})
			n.Data[0], n.Data[1] = q.X, q.Y
		case CubicTo:
			for j := 0; j < 6; j += 2 {
				q := m.Apply(Pt{c.Data[j], c.Data[j+1]})
				n.Data[j], n.Data[j+1] = q.X, q.Y
			}
		}
		out.Cmds[i] = n
	}
	return out
}

// Bounds returns an axis-aligned bounding box of the path, taking control
// points into account. For quarter-ellipse cubics this is exact.
func (p *Path) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for _, c := range p.Cmds {
		switch c.Op {
		case MoveTo, LineTo:
			add(c.Data[0], c.Data[1])
		case CubicTo:
			add(c.Data[0], c.Data[1])
			add(c.Data[2], c.Data[3])
			add(c.Data[4], c.Data[5])
		}
	}
	if minX > maxX || minY > maxY {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
