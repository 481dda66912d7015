/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"antdkit/internal/geometry"
	"antdkit/internal/palette"
	"antdkit/internal/theme"
)

func TestWriteSwatchPDF(t *testing.T) {
	var sw []Swatch
	for _, n := range palette.PresetNames() {
		sw = append(sw, Swatch{Name: n, Palette: palette.Generate(palette.Presets[n])})
	}
	g := mustGeometry(t, geometry.R(0, 0, 120, 40), geometry.CornerRadius{TopLeft: 10, TopRight: 2, BottomRight: 10, BottomLeft: 2}, geometry.Thickness{Left: 1, Top: 2, Right: 1, Bottom: 2})
	out := filepath.Join(t.TempDir(), "nested", "swatches.pdf")
	err := WriteSwatchPDF(out, sw, SwatchOptions{Previews: []BorderPreview{{
		Caption:  "mixed",
		Geometry: g,
		Size:     geometry.Size{W: 120, H: 40},
		Paint:    Paint{Background: palette.Color{R: 0xe6, G: 0xf7, B: 0xff, A: 0x80}, Border: blue, Style: geometry.Dashed},
	}}})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("not a pdf")
	}
	if err := WriteSwatchPDF(out, nil, SwatchOptions{}); err == nil {
		t.Fatalf("expected error for empty sheet")
	}
}

func TestBatchExport(t *testing.T) {
	dir := t.TempDir()
	files, err := BatchExport(theme.Default(), BatchOptions{Preset: PresetWeb, OutDir: dir})
	if err != nil {
		t.Fatalf("web: %v", err)
	}
	want := 2 * (len(theme.Intents()) + len(theme.ControlKinds()))
	if len(files) != want {
		t.Fatalf("web files: got %d want %d", len(files), want)
	}
	for _, name := range []string{"palette-primary.png", "palette-error.svg", "border-button.svg", "border-avatar.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
	files, err = BatchExport(theme.Default(), BatchOptions{Preset: PresetPrint, OutDir: dir})
	if err != nil || len(files) != 1 || filepath.Base(files[0]) != "swatches.pdf" {
		t.Fatalf("print: %v %v", files, err)
	}
	if _, err := BatchExport(theme.Default(), BatchOptions{Formats: []string{"gif"}, OutDir: dir}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := BatchExport(theme.Default(), BatchOptions{}); err == nil {
		t.Fatalf("expected error for missing out dir")
	}
}
