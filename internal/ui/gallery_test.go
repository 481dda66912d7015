/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"errors"
	"io"
	"testing"
	"time"

	"antdkit/internal/geometry"
	applog "antdkit/internal/log"
	"antdkit/internal/palette"
	"antdkit/internal/theme"
)

func init() { applog.Init(applog.Options{Level: "error", Writer: io.Discard}) }

func newGallery(t *testing.T) *Gallery {
	t.Helper()
	g, err := NewGallery(theme.Default(), 0)
	if err != nil {
		t.Fatalf("NewGallery: %v", err)
	}
	return g
}

func TestGalleryDefaults(t *testing.T) {
	g := newGallery(t)
	if g.Intent() != theme.Primary || g.Kind() != theme.Button {
		t.Fatalf("unexpected start: %s %s", g.Intent(), g.Kind())
	}
	if g.Seed().Hex() != "#1890ff" {
		t.Fatalf("seed = %s", g.Seed())
	}
	if g.Palette()[0].Hex() != "#e6f7ff" {
		t.Fatalf("palette[0] = %s", g.Palette()[0])
	}
	cards, err := g.Cards()
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	if len(cards) != len(States) {
		t.Fatalf("cards = %d", len(cards))
	}
	if !cards[0].Geometry.Simple || cards[0].Geometry.FillRadius != 5.5 {
		t.Fatalf("button geometry: %+v", cards[0].Geometry)
	}
	if cards[2].State != theme.Pressed || cards[2].Paint.Background.Hex() != "#096dd9" {
		t.Fatalf("pressed card = %+v", cards[2])
	}
}

func TestGallerySetSeedKeepsBorders(t *testing.T) {
	g := newGallery(t)
	if err := g.SetRadius(2); err != nil {
		t.Fatalf("SetRadius: %v", err)
	}
	g.SetIntent(theme.Error)
	if err := g.SetSeed("magenta"); err != nil {
		t.Fatalf("SetSeed: %v", err)
	}
	if g.Seed() != palette.Presets["magenta"] {
		t.Fatalf("seed = %s", g.Seed())
	}
	if g.Theme().Seeds.Primary.Hex() != "#1890ff" {
		t.Fatalf("other intents changed")
	}
	if g.Theme().Border(theme.Button).Radius != geometry.UniformRadius(2) {
		t.Fatalf("border edit lost on seed change")
	}
	if err := g.SetSeed("#zzz"); err == nil {
		t.Fatalf("expected error for bad seed")
	}
}

func TestGalleryBorderEdits(t *testing.T) {
	g := newGallery(t)
	before := g.Theme()
	if err := g.SetThickness(2); err != nil {
		t.Fatalf("SetThickness: %v", err)
	}
	g.SetStyle(geometry.Dashed)
	spec := g.BorderSpec()
	if spec.Thickness != geometry.UniformThickness(2) || spec.Style != geometry.Dashed {
		t.Fatalf("spec = %+v", spec)
	}
	if before.Border(theme.Button).Thickness != geometry.UniformThickness(1) {
		t.Fatalf("earlier theme value was mutated")
	}
	cards, err := g.Cards()
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	if cards[0].Paint.Style != geometry.Dashed {
		t.Fatalf("card style = %v", cards[0].Paint.Style)
	}
	if err := g.SetRadius(-1); !errors.Is(err, geometry.ErrInvalidGeometryInput) {
		t.Fatalf("expected ErrInvalidGeometryInput, got %v", err)
	}
	if g.BorderSpec().Radius != geometry.UniformRadius(6) {
		t.Fatalf("rejected radius leaked into theme")
	}
}

func TestGallerySetKind(t *testing.T) {
	g := newGallery(t)
	if err := g.SetKind(theme.Tag); err != nil {
		t.Fatalf("SetKind: %v", err)
	}
	cards, err := g.Cards()
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	// tags are tinted
	if cards[0].Paint.Background.Hex() != "#e6f7ff" || cards[0].Paint.Border.Hex() != "#91d5ff" {
		t.Fatalf("tag normal paint = %+v", cards[0].Paint)
	}
	if cards[0].Size.W != 48 || cards[0].Size.H != 22 {
		t.Fatalf("tag size = %+v", cards[0].Size)
	}
	if err := g.SetKind("slider"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if g.Kind() != theme.Tag {
		t.Fatalf("kind changed on error")
	}
}

func TestGalleryLayoutRounding(t *testing.T) {
	th := theme.Default()
	th.Borders[theme.Button] = theme.BorderSpec{Radius: geometry.UniformRadius(5.4), Thickness: geometry.UniformThickness(1.2)}
	g, err := NewGallery(th, 1)
	if err != nil {
		t.Fatalf("NewGallery: %v", err)
	}
	cards, err := g.Cards()
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	if cards[0].Geometry.StrokeWidth != 1 {
		t.Fatalf("stroke width not snapped: %v", cards[0].Geometry.StrokeWidth)
	}
}

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(1_700_000_000, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestGalleryUndoRedo(t *testing.T) {
	g := newGallery(t)
	g.now = fakeClock(time.Second)
	if ok, err := g.Undo(); ok || err != nil {
		t.Fatalf("undo on fresh gallery = %v %v", ok, err)
	}
	if err := g.SetRadius(2); err != nil {
		t.Fatalf("SetRadius: %v", err)
	}
	if err := g.SetKind(theme.Tag); err != nil {
		t.Fatalf("SetKind: %v", err)
	}
	if err := g.SetSeed("green"); err != nil {
		t.Fatalf("SetSeed: %v", err)
	}

	if ok, err := g.Undo(); !ok || err != nil {
		t.Fatalf("Undo = %v %v", ok, err)
	}
	if g.Seed().Hex() != "#1890ff" || g.Kind() != theme.Tag {
		t.Fatalf("after first undo: seed %s kind %s", g.Seed(), g.Kind())
	}
	if ok, err := g.Undo(); !ok || err != nil {
		t.Fatalf("Undo = %v %v", ok, err)
	}
	// the radius edit happened on the button
	if g.Kind() != theme.Button || g.BorderSpec().Radius != geometry.UniformRadius(6) {
		t.Fatalf("after second undo: kind %s spec %+v", g.Kind(), g.BorderSpec())
	}
	cards, err := g.Cards()
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	if cards[0].Geometry.FillRadius != 5.5 {
		t.Fatalf("live border not restored: %+v", cards[0].Geometry)
	}
	if g.CanUndo() || !g.CanRedo() {
		t.Fatalf("history flags wrong after undoing everything")
	}

	if ok, err := g.Redo(); !ok || err != nil {
		t.Fatalf("Redo = %v %v", ok, err)
	}
	if g.Kind() != theme.Tag || g.Theme().Border(theme.Button).Radius != geometry.UniformRadius(2) {
		t.Fatalf("redo lost radius: kind %s %+v", g.Kind(), g.Theme().Border(theme.Button))
	}
	if ok, _ := g.Redo(); !ok {
		t.Fatalf("second redo failed")
	}
	if g.Seed() != palette.Presets["green"] || g.Kind() != theme.Tag {
		t.Fatalf("after redo: seed %s kind %s", g.Seed(), g.Kind())
	}
	if g.Theme().Border(theme.Button).Radius != geometry.UniformRadius(2) {
		t.Fatalf("redo dropped the button radius")
	}
}

func TestGalleryDragIsOneStep(t *testing.T) {
	g := newGallery(t)
	g.now = fakeClock(EditWindow / 10)
	for _, r := range []float64{7, 8, 9, 10} {
		if err := g.SetRadius(r); err != nil {
			t.Fatalf("SetRadius(%v): %v", r, err)
		}
	}
	if _, err := g.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if g.BorderSpec().Radius != geometry.UniformRadius(6) || g.CanUndo() {
		t.Fatalf("drag not undone in one step: %+v", g.BorderSpec())
	}
}

func TestGalleryNoopEditsRecordNothing(t *testing.T) {
	g := newGallery(t)
	if err := g.SetRadius(6); err != nil {
		t.Fatalf("SetRadius: %v", err)
	}
	if err := g.SetStyle(geometry.Solid); err != nil {
		t.Fatalf("SetStyle: %v", err)
	}
	if err := g.SetRadius(-3); err == nil {
		t.Fatalf("expected error")
	}
	if g.CanUndo() {
		t.Fatalf("no-op or rejected edit was recorded")
	}
}
