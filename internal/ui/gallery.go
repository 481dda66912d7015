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
	"encoding/json"
	"fmt"
	"time"

	"antdkit/internal/export"
	"antdkit/internal/geometry"
	"antdkit/internal/palette"
	"antdkit/internal/theme"
	"antdkit/internal/undo"
)

// EditWindow merges edits closer together than this into one undo step, so a
// slider drag undoes at once.
const EditWindow = 300 * time.Millisecond

// Card is one control preview: a shared border shape painted for a state.
type Card struct {
	State    theme.State
	Brushes  theme.Brushes
	Geometry geometry.Geometry
	Size     geometry.Size
	Paint    export.Paint
}

// Gallery holds what the demo window edits: a theme, the intent and control
// kind on display, and the live border of that control. It is not safe for
// concurrent use; the UI calls it from the event goroutine.
type Gallery struct {
	th     theme.Theme
	intent theme.Intent
	kind   theme.ControlKind
	border *geometry.Border
	hist   *undo.History
	now    func() time.Time
}

// galleryState is what one undo step restores.
type galleryState struct {
	Theme  json.RawMessage   `json:"theme"`
	Intent string            `json:"intent"`
	Kind   theme.ControlKind `json:"kind"`
}

// States are the interaction states shown side by side.
var States = []theme.State{theme.Normal, theme.Hover, theme.Pressed, theme.Focused, theme.Disabled}

// NewGallery shows the primary button of th. dpiScale > 0 snaps borders to
// that device pixel grid.
func NewGallery(th theme.Theme, dpiScale float64) (*Gallery, error) {
	g := &Gallery{
		th:     th,
		intent: theme.Primary,
		kind:   theme.Button,
		hist:   undo.New(undo.Config{MaxDepth: 100, MinInterval: EditWindow}),
		now:    time.Now,
	}
	spec := th.Border(g.kind)
	size := export.PreviewSizes[g.kind]
	b, err := geometry.NewBorder(geometry.R(0, 0, size.W, size.H), spec.Radius, spec.Thickness)
	if err != nil {
		return nil, err
	}
	b.SetStyle(spec.Style)
	b.SetLayoutRounding(dpiScale)
	g.border = b
	return g, nil
}

func (g *Gallery) Theme() theme.Theme           { return g.th }
func (g *Gallery) Intent() theme.Intent         { return g.intent }
func (g *Gallery) Kind() theme.ControlKind      { return g.kind }
func (g *Gallery) Seed() palette.Color          { return g.th.Seeds.Seed(g.intent) }
func (g *Gallery) Palette() palette.Palette     { return palette.Generate(g.Seed()) }
func (g *Gallery) BorderSpec() theme.BorderSpec { return g.th.Border(g.kind) }

func (g *Gallery) SetIntent(i theme.Intent) { g.intent = i }

// SetSeed replaces the seed of the current intent with a hex colour or preset
// name. Control borders are kept.
func (g *Gallery) SetSeed(s string) error {
	seeds, err := g.th.Seeds.Override(map[string]string{g.intent.String(): s})
	if err != nil {
		return err
	}
	th, err := g.th.WithSeeds(seeds)
	if err != nil {
		return err
	}
	if err := g.record(); err != nil {
		return err
	}
	g.th = th
	return nil
}

// SetKind switches the previewed control and loads its border.
func (g *Gallery) SetKind(k theme.ControlKind) error {
	size, ok := export.PreviewSizes[k]
	if !ok {
		return fmt.Errorf("unknown control %q", k)
	}
	spec := g.th.Border(k)
	if err := g.border.SetBounds(geometry.R(0, 0, size.W, size.H)); err != nil {
		return err
	}
	if err := g.border.SetCornerRadius(spec.Radius); err != nil {
		return err
	}
	if err := g.border.SetThickness(spec.Thickness); err != nil {
		return err
	}
	g.border.SetStyle(spec.Style)
	g.kind = k
	return nil
}

// SetRadius applies a uniform corner radius to the current control. Setting
// the current value is a no-op and records no undo step.
func (g *Gallery) SetRadius(r float64) error {
	c := geometry.UniformRadius(r)
	if err := c.Validate(geometry.Strict); err != nil {
		return err
	}
	if g.BorderSpec().Radius == c {
		return nil
	}
	if err := g.record(); err != nil {
		return err
	}
	if err := g.border.SetCornerRadius(c); err != nil {
		return err
	}
	g.update(func(b *theme.BorderSpec) { b.Radius = c })
	return nil
}

// SetThickness applies a uniform edge thickness to the current control.
func (g *Gallery) SetThickness(w float64) error {
	t := geometry.UniformThickness(w)
	if err := t.Validate(geometry.Strict); err != nil {
		return err
	}
	if g.BorderSpec().Thickness == t {
		return nil
	}
	if err := g.record(); err != nil {
		return err
	}
	if err := g.border.SetThickness(t); err != nil {
		return err
	}
	g.update(func(b *theme.BorderSpec) { b.Thickness = t })
	return nil
}

func (g *Gallery) SetStyle(s geometry.BorderStyle) error {
	if g.BorderSpec().Style == s {
		return nil
	}
	if err := g.record(); err != nil {
		return err
	}
	g.border.SetStyle(s)
	g.update(func(b *theme.BorderSpec) { b.Style = s })
	return nil
}

func (g *Gallery) CanUndo() bool { return g.hist.CanUndo() }
func (g *Gallery) CanRedo() bool { return g.hist.CanRedo() }

// Undo reverts the last edit. It reports false when there is nothing to undo.
func (g *Gallery) Undo() (bool, error) {
	return g.step(g.hist.Undo)
}

// Redo re-applies the last undone edit.
func (g *Gallery) Redo() (bool, error) {
	return g.step(g.hist.Redo)
}

func (g *Gallery) step(swap func([]byte) ([]byte, bool)) (bool, error) {
	cur, err := g.snapshot()
	if err != nil {
		return false, err
	}
	blob, ok := swap(cur)
	if !ok {
		return false, nil
	}
	return true, g.restore(blob)
}

// record pushes the current state before an edit.
func (g *Gallery) record() error {
	blob, err := g.snapshot()
	if err != nil {
		return err
	}
	g.hist.Push(undo.Snapshot{Blob: blob, TS: g.now()})
	return nil
}

func (g *Gallery) snapshot() ([]byte, error) {
	th, err := theme.Encode(g.th)
	if err != nil {
		return nil, fmt.Errorf("snapshot theme: %w", err)
	}
	return json.Marshal(galleryState{Theme: th, Intent: g.intent.String(), Kind: g.kind})
}

func (g *Gallery) restore(blob []byte) error {
	var st galleryState
	if err := json.Unmarshal(blob, &st); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	th, err := theme.Decode(st.Theme)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	i, err := theme.ParseIntent(st.Intent)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	g.th, g.intent = th, i
	return g.SetKind(st.Kind)
}

// update copies the border map so themes handed out earlier stay unchanged.
func (g *Gallery) update(fn func(*theme.BorderSpec)) {
	borders := make(map[theme.ControlKind]theme.BorderSpec, len(g.th.Borders)+1)
	for k, b := range g.th.Borders {
		borders[k] = b
	}
	spec := g.th.Border(g.kind)
	fn(&spec)
	borders[g.kind] = spec
	g.th.Borders = borders
}

// Cards returns one preview per state. Tinted kinds (tag, alert) use the
// subtle brushes; the rest are solid.
func (g *Gallery) Cards() ([]Card, error) {
	geom, err := g.border.Geometry()
	if err != nil {
		return nil, err
	}
	size := export.PreviewSizes[g.kind]
	out := make([]Card, 0, len(States))
	for _, s := range States {
		var br theme.Brushes
		if g.kind == theme.Tag || g.kind == theme.Alert {
			br, err = g.th.Subtle(g.intent, s)
		} else {
			br, err = g.th.Control(g.intent, s)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Card{
			State:    s,
			Brushes:  br,
			Geometry: geom,
			Size:     size,
			Paint:    export.Paint{Background: br.Background, Border: br.Border, Style: g.border.Style()},
		})
	}
	return out, nil
}
