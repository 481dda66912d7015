//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// These tests validate the Fyne-based UI components. They are gated behind the
// "fyne" build tag so CI (which is headless) does not need Fyne or a display.
// To run locally:
//
//	go test -tags fyne ./internal/ui
package ui

import (
	"testing"

	"fyne.io/fyne/v2"

	"antdkit/internal/export"
	"antdkit/internal/geometry"
	"antdkit/internal/palette"
)

func TestBorderPreview_MinSizeAndRender(t *testing.T) {
	g, err := geometry.Compute(geometry.R(0, 0, 88, 32), geometry.UniformRadius(6), geometry.UniformThickness(1))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	p := NewBorderPreview(g, geometry.Size{W: 88, H: 32}, export.Paint{Background: palette.White, Border: palette.Black})
	r, ok := p.CreateRenderer().(*borderPreviewRenderer)
	if !ok {
		t.Fatalf("expected borderPreviewRenderer, got %T", p.CreateRenderer())
	}
	if got := r.MinSize(); got != fyne.NewSize(88, 32) {
		t.Fatalf("MinSize = %v", got)
	}
	b := r.img.Image.Bounds()
	if b.Dx() != 88*previewScale || b.Dy() != 32*previewScale {
		t.Fatalf("raster size = %v", b)
	}
	r.Layout(fyne.NewSize(176, 64))
	if r.img.Size() != fyne.NewSize(176, 64) {
		t.Fatalf("image not resized: %v", r.img.Size())
	}
}

func TestPaletteObjects(t *testing.T) {
	objs := paletteObjects(palette.Generate(palette.Presets["blue"]))
	if len(objs) != palette.Size {
		t.Fatalf("expected %d swatches, got %d", palette.Size, len(objs))
	}
}
