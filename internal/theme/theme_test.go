/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package theme

import (
	"errors"
	"testing"

	"antdkit/internal/geometry"
	"antdkit/internal/palette"
)

func TestFromSeedUsesLadderIndices(t *testing.T) {
	seed := palette.Presets["blue"]
	sc := FromSeed(seed)
	p := palette.Generate(seed)
	checks := []struct {
		name string
		got  palette.Color
		idx  int
	}{
		{"Background", sc.Background, 1},
		{"BackgroundHover", sc.BackgroundHover, 2},
		{"Border", sc.Border, 3},
		{"BorderHover", sc.BorderHover, 4},
		{"Hover", sc.Hover, 5},
		{"Base", sc.Base, 6},
		{"Active", sc.Active, 7},
		{"TextHover", sc.TextHover, 5},
		{"Text", sc.Text, 6},
		{"TextActive", sc.TextActive, 7},
	}
	for _, c := range checks {
		want, _ := p.At(c.idx)
		if c.got != want {
			t.Fatalf("%s: got %s want index %d (%s)", c.name, c.got, c.idx, want)
		}
	}
	if sc.Hover.Hex() != "#40a9ff" || sc.Active.Hex() != "#096dd9" {
		t.Fatalf("unexpected hover/active: %s %s", sc.Hover, sc.Active)
	}
}

func TestControlBrushes(t *testing.T) {
	th := Default()
	n, err := th.Control(Primary, Normal)
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	if n.Background.Hex() != "#1890ff" || n.Text != palette.White {
		t.Fatalf("normal: %+v", n)
	}
	h, _ := th.Control(Primary, Hover)
	f, _ := th.Control(Primary, Focused)
	if h != f || h.Background.Hex() != "#40a9ff" {
		t.Fatalf("hover/focus: %+v %+v", h, f)
	}
	p, _ := th.Control(Error, Pressed)
	if p.Background.Hex() != "#d9363e" {
		t.Fatalf("pressed error: %s", p.Background)
	}
	d, _ := th.Control(Success, Disabled)
	if d.Background != DisabledBackground || d.Text != DisabledText {
		t.Fatalf("disabled: %+v", d)
	}
	if _, err := th.Control(Intent(42), Normal); err == nil {
		t.Fatalf("expected error for unknown intent")
	}
	if _, err := th.Control(Primary, State(9)); err == nil {
		t.Fatalf("expected error for unknown state")
	}
}

func TestSubtleBrushes(t *testing.T) {
	th := Default()
	b, err := th.Subtle(Warning, Normal)
	if err != nil {
		t.Fatalf("subtle: %v", err)
	}
	if b.Background.Hex() != "#fffbe6" || b.Border.Hex() != "#ffe58f" || b.Text.Hex() != "#faad14" {
		t.Fatalf("warning tag: %+v", b)
	}
}

func TestIntentNames(t *testing.T) {
	for _, i := range Intents() {
		got, err := ParseIntent(i.String())
		if err != nil || got != i {
			t.Fatalf("%s: %v %v", i, got, err)
		}
	}
	if _, err := ParseIntent("danger"); err == nil {
		t.Fatalf("expected error for unknown intent")
	}
}

func TestDefaultBorders(t *testing.T) {
	th := Default()
	b := th.Border(Button)
	if b.Radius.TopLeft != 6 || b.Thickness.Top != 1 {
		t.Fatalf("button border: %+v", b)
	}
	g, err := b.Geometry(geometryRect(0, 0, 88, 32))
	if err != nil || !g.Simple {
		t.Fatalf("button geometry: simple=%v err=%v", g.Simple, err)
	}
	if th.Border(Switch).Thickness.Left != 0 {
		t.Fatalf("switch has no outline")
	}
	if _, err := ParseControlKind("Tag"); err != nil {
		t.Fatalf("parse kind: %v", err)
	}
}

func TestSeedsOverride(t *testing.T) {
	s, err := DefaultSeeds().Override(map[string]string{"primary": "purple", "Error": "#f5222d"})
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	if s.Primary != palette.Presets["purple"] {
		t.Fatalf("primary = %s", s.Primary)
	}
	if s.Error.Hex() != "#f5222d" {
		t.Fatalf("error = %s", s.Error)
	}
	if s.Success != DefaultSeeds().Success {
		t.Fatalf("untouched intent changed")
	}
	if _, err := DefaultSeeds().Override(map[string]string{"accent": "#fff"}); err == nil {
		t.Fatalf("expected unknown intent error")
	}
	if _, err := DefaultSeeds().Override(map[string]string{"info": "nope"}); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}

func TestWithSeedsKeepsBorders(t *testing.T) {
	base := Default()
	base.Borders[Button] = BorderSpec{Radius: geometry.UniformRadius(2), Thickness: geometry.UniformThickness(3)}
	seeds := DefaultSeeds()
	seeds.Primary = palette.Presets["green"]
	th, err := base.WithSeeds(seeds)
	if err != nil {
		t.Fatalf("WithSeeds: %v", err)
	}
	if th.Border(Button).Radius != geometry.UniformRadius(2) {
		t.Fatalf("border lost: %+v", th.Border(Button))
	}
	sc, _ := th.For(Primary)
	if sc.Base != palette.Presets["green"] {
		t.Fatalf("base = %s", sc.Base)
	}
	th.Borders[Tag] = BorderSpec{}
	if base.Border(Tag).Radius != geometry.UniformRadius(4) {
		t.Fatalf("borders map shared with source theme")
	}
}
