/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package palette

import (
	"image/color"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	cases := map[string]Color{
		"#1890ff":   RGB(0x18, 0x90, 0xff),
		"1890FF":    RGB(0x18, 0x90, 0xff),
		"#18f":      RGB(0x11, 0x88, 0xff),
		"#1890ffcc": {0x18, 0x90, 0xff, 0xcc},
		" #000 ":    Black,
	}
	for in, want := range cases {
		got, err := ParseHex(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got %+v want %+v", in, got, want)
		}
	}
	for _, bad := range []string{"", "#12", "#12345", "#gggggg", "blue"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#1890ff", "#00000000", "#ffffff80"} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if c.Hex() != s {
			t.Fatalf("got %s want %s", c.Hex(), s)
		}
	}
}

func TestColorImplementsImageColor(t *testing.T) {
	var c color.Color = Color{255, 0, 0, 128}
	back := FromColor(c)
	if back != (Color{255, 0, 0, 128}) {
		t.Fatalf("round trip through image/color: %+v", back)
	}
	if FromColor(color.Gray{Y: 0x66}) != Presets["grey"] {
		t.Fatalf("gray conversion")
	}
}

func TestToHSV(t *testing.T) {
	h := ToHSV(RGB(24, 144, 255))
	if math.Abs(h.H-208.8311688311688) > 1e-9 || math.Abs(h.S-0.9058823529411765) > 1e-9 || h.V != 1 {
		t.Fatalf("got %+v", h)
	}
	if g := ToHSV(Presets["grey"]); g.H != 0 || g.S != 0 {
		t.Fatalf("grey should be achromatic: %+v", g)
	}
}

func TestFromHSVBoundsInputs(t *testing.T) {
	if c := FromHSV(0, 100, 150, 255); c != RGB(255, 0, 0) {
		t.Fatalf("value above 100 should clamp: %s", c)
	}
	if c := FromHSV(120, -5, -20, 255); c != Black {
		t.Fatalf("negative value should clamp: %s", c)
	}
	if c := FromHSV(360, 100, 100, 255); c != RGB(255, 0, 0) {
		t.Fatalf("hue 360 is red: %s", c)
	}
	if c := FromHSV(math.NaN(), 0, 100, 255); c != White {
		t.Fatalf("NaN hue with zero saturation is white: %s", c)
	}
}

func TestHSVRoundTripPresets(t *testing.T) {
	for name, seed := range Presets {
		if got := ToHSV(seed).Color(seed.A); got != seed {
			t.Fatalf("%s: got %s want %s", name, got, seed)
		}
	}
}
