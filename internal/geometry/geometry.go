/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

// Basic 2D geometry and transforms for border construction.
// Values are float64 so layout-rounded inputs survive the key-point arithmetic unchanged.

import "math"

// Pt is a 2D point.
type Pt struct{ X, Y float64 }

// Size is a width/height pair. Arcs use it as the (rx, ry) ellipse radius.
type Size struct{ W, H float64 }

// Rect is an axis-aligned rectangle defined by min corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Min() Pt { return Pt{r.X, r.Y} }
func (r Rect) Max() Pt { return Pt{r.X + r.W, r.Y + r.H} }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return isZero(r.W) || isZero(r.H) || r.W < 0 || r.H < 0 }

// Inset returns a rectangle inset by dx,dy on all sides (negative grows).
// The size never drops below zero.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: math.Max(0, r.W-2*dx), H: math.Max(0, r.H-2*dy)}
}

// Deflate shrinks the rect by a per-edge thickness, clamping the size at zero.
func (r Rect) Deflate(t Thickness) Rect {
	return Rect{
		X: r.X + t.Left,
		Y: r.Y + t.Top,
		W: math.Max(0, r.W-t.Left-t.Right),
		H: math.Max(0, r.H-t.Top-t.Bottom),
	}
}

// Affine2D represents a 2D affine transform as matrix:
// | a c e |
// | b d f |
// | 0 0 1 |
// stored as [a b c d e f].
type Affine2D struct{ A, B, C, D, E, F float64 }

func (m Affine2D) Apply(p Pt) Pt {
	return Pt{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

func Translate(tx, ty float64) Affine2D { return Affine2D{A: 1, D: 1, E: tx, F: ty} }
func Scale(sx, sy float64) Affine2D     { return Affine2D{A: sx, D: sy} }

// dblEpsilon is the spacing of float64 values around 1.
const dblEpsilon = 2.2204460492503131e-16

func isZero(v float64) bool { return math.Abs(v) < 10*dblEpsilon }

// areClose compares with a tolerance relative to the magnitude of the operands.
func areClose(a, b float64) bool {
	if a == b {
		return true
	}
	eps := (math.Abs(a) + math.Abs(b) + 10) * dblEpsilon
	d := a - b
	return -eps < d && d < eps
}

func (p Pt) closeTo(q Pt) bool { return areClose(p.X, q.X) && areClose(p.Y, q.Y) }
