/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package palette

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPaletteIndex is returned for indices outside 1..10.
var ErrInvalidPaletteIndex = errors.New("invalid palette index")

// Ladder constants. Saturation and value steps are in percent.
const (
	hueStep         = 2
	saturationStep  = 16
	saturationStep2 = 5
	brightnessStep1 = 5
	brightnessStep2 = 15
	lightColorCount = 5
	darkColorCount  = 4

	// BaseIndex is the ladder position of the seed colour.
	BaseIndex = lightColorCount + 1
	// Size is the number of colours in a ladder.
	Size = lightColorCount + 1 + darkColorCount
)

// Tone returns the palette colour at index (1..10) derived from seed.
// Indices 1-5 are tints, lightest first; 7-10 are shades, darkest last; 6 is
// the seed re-quantised through HSV. Alpha is copied from seed.
// Rounding is math.Round (half away from zero).
func Tone(seed Color, index int) (Color, error) {
	if index < 1 || index > Size {
		return Color{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidPaletteIndex, index, Size)
	}
	light := index <= BaseIndex
	i := index - BaseIndex
	if light {
		i = BaseIndex - index
	}
	c := ToHSV(seed)
	return FromHSV(hue(c, i, light), saturation(c, i, light), value(c, i, light), seed.A), nil
}

// hue steps away from the seed hue; warm and cool hues move in opposite
// directions so tints drift toward the nearest primary.
func hue(c HSV, i int, light bool) float64 {
	h := math.Round(c.H)
	step := float64(hueStep * i)
	var out float64
	if h >= 60 && h <= 240 {
		if light {
			out = h - step
		} else {
			out = h + step
		}
	} else {
		if light {
			out = h + step
		} else {
			out = h - step
		}
	}
	if out < 0 {
		out += 360
	} else if out >= 360 {
		out -= 360
	}
	return out
}

func saturation(c HSV, i int, light bool) float64 {
	// achromatic seeds stay grey
	if c.H == 0 && c.S == 0 {
		return 0
	}
	s := math.Round(c.S * 100)
	var out float64
	switch {
	case light:
		out = s - float64(saturationStep*i)
	case i == darkColorCount:
		out = s + saturationStep
	default:
		out = s + float64(saturationStep2*i)
	}
	if out > 100 {
		out = 100
	}
	if light && i == lightColorCount && out > 10 {
		out = 10
	}
	if out < 6 {
		out = 6
	}
	return out
}

// value is left unclamped; FromHSV bounds it.
func value(c HSV, i int, light bool) float64 {
	v := math.Round(c.V * 100)
	if light {
		return v + float64(brightnessStep1*i)
	}
	return v - float64(brightnessStep2*i)
}
