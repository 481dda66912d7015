/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// RoundLayout snaps v to the device pixel grid of dpiScale. A scale of 1 (or an
// unusable scale) rounds to whole units. If the scaled result is not finite the
// unrounded value is returned.
func RoundLayout(v, dpiScale float64) float64 {
	if dpiScale <= 0 || math.IsNaN(dpiScale) || math.IsInf(dpiScale, 0) || areClose(dpiScale, 1) {
		return math.Round(v)
	}
	n := math.Round(v*dpiScale) / dpiScale
	if math.IsNaN(n) || math.IsInf(n, 0) || areClose(n, math.MaxFloat64) {
		return v
	}
	return n
}

func RoundThickness(t Thickness, dpiScale float64) Thickness {
	return Thickness{
		Left:   RoundLayout(t.Left, dpiScale),
		Top:    RoundLayout(t.Top, dpiScale),
		Right:  RoundLayout(t.Right, dpiScale),
		Bottom: RoundLayout(t.Bottom, dpiScale),
	}
}

func RoundCornerRadius(c CornerRadius, dpiScale float64) CornerRadius {
	return CornerRadius{
		TopLeft:     RoundLayout(c.TopLeft, dpiScale),
		TopRight:    RoundLayout(c.TopRight, dpiScale),
		BottomRight: RoundLayout(c.BottomRight, dpiScale),
		BottomLeft:  RoundLayout(c.BottomLeft, dpiScale),
	}
}

func RoundRect(r Rect, dpiScale float64) Rect {
	return Rect{
		X: RoundLayout(r.X, dpiScale),
		Y: RoundLayout(r.Y, dpiScale),
		W: RoundLayout(r.W, dpiScale),
		H: RoundLayout(r.H, dpiScale),
	}
}
