/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package palette derives Ant Design style 10-step colour ladders from a seed
// colour by stepping hue, saturation and value in HSV space.
package palette

import (
	"fmt"
	"sort"
	"strings"
)

// Palette holds the ladder in index order; Palette[0] is index 1.
type Palette [Size]Color

// Generate returns the full ladder for seed. Entry 6 is seed unchanged.
func Generate(seed Color) Palette {
	var p Palette
	for i := 1; i <= Size; i++ {
		if i == BaseIndex {
			p[i-1] = seed
			continue
		}
		c, _ := Tone(seed, i)
		p[i-1] = c
	}
	return p
}

// At returns the colour at a 1-based index.
func (p Palette) At(index int) (Color, error) {
	if index < 1 || index > Size {
		return Color{}, fmt.Errorf("%w: %d", ErrInvalidPaletteIndex, index)
	}
	return p[index-1], nil
}

// Seed returns the base colour.
func (p Palette) Seed() Color { return p[BaseIndex-1] }

// Hex lists the ladder as hex strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// Presets are the named seed colours of the Ant Design system palette.
var Presets = map[string]Color{
	"red":      RGB(0xf5, 0x22, 0x2d),
	"volcano":  RGB(0xfa, 0x54, 0x1c),
	"orange":   RGB(0xfa, 0x8c, 0x16),
	"gold":     RGB(0xfa, 0xad, 0x14),
	"yellow":   RGB(0xfa, 0xdb, 0x14),
	"lime":     RGB(0xa0, 0xd9, 0x11),
	"green":    RGB(0x52, 0xc4, 0x1a),
	"cyan":     RGB(0x13, 0xc2, 0xc2),
	"blue":     RGB(0x18, 0x90, 0xff),
	"geekblue": RGB(0x2f, 0x54, 0xeb),
	"purple":   RGB(0x72, 0x2e, 0xd1),
	"magenta":  RGB(0xeb, 0x2f, 0x96),
	"grey":     RGB(0x66, 0x66, 0x66),
}

// Preset looks a seed up by case-insensitive name.
func Preset(name string) (Color, bool) {
	c, ok := Presets[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// PresetNames returns the preset names sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve accepts either a preset name or a hex colour.
func Resolve(s string) (Color, error) {
	if c, ok := Preset(s); ok {
		return c, nil
	}
	return ParseHex(s)
}
