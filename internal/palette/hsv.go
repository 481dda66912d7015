/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package palette

import "math"

// HSV is hue in degrees [0,360) with saturation and value in [0,1].
type HSV struct{ H, S, V float64 }

// ToHSV uses the hexagonal max/min/delta formula.
func ToHSV(c Color) HSV {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	d := hi - lo

	out := HSV{V: hi}
	if hi != 0 {
		out.S = d / hi
	}
	if d == 0 {
		return out
	}
	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	out.H = h * 60
	return out
}

// Color converts back to RGB with the given alpha.
func (h HSV) Color(a uint8) Color { return FromHSV(h.H, h.S*100, h.V*100, a) }

// FromHSV converts hue in degrees and saturation/value in percent to RGB.
// Out-of-range inputs are bounded, never rejected.
func FromHSV(h, s, v float64, a uint8) Color {
	h = bound(h, 360) * 6
	s = bound(s, 100)
	v = bound(v, 100)

	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	mod := int(i) % 6

	r := [6]float64{v, q, p, p, t, v}[mod]
	g := [6]float64{t, v, v, q, p, p}[mod]
	b := [6]float64{p, p, t, v, v, q}[mod]
	return Color{R: channel(r), G: channel(g), B: channel(b), A: a}
}

// bound clamps n to [0,max] and normalises it to [0,1]. Values within 1e-6 of
// max map to exactly 1.
func bound(n, max float64) float64 {
	if math.IsNaN(n) {
		n = 0
	}
	n = math.Min(max, math.Max(0, n))
	if math.Abs(n-max) < 1e-6 {
		return 1
	}
	return math.Mod(n, max) / max
}

func channel(x float64) uint8 {
	return uint8(math.Min(255, math.Max(0, math.Round(x*255))))
}
