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
	"strings"
	"testing"

	"antdkit/internal/geometry"
	"antdkit/internal/palette"
)

func TestWriteBorderSVGSimple(t *testing.T) {
	g := mustGeometry(t, geometry.R(0, 0, 88, 32), geometry.UniformRadius(6), geometry.UniformThickness(1))
	var buf bytes.Buffer
	if err := WriteBorderSVG(&buf, g, geometry.Size{W: 88, H: 32}, Paint{Background: palette.White, Border: blue, Style: geometry.Dashed}); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := buf.String()
	for _, want := range []string{
		"viewBox=\"0 0 88 32\"",
		"<rect x=\"1\" y=\"1\" width=\"86\" height=\"30\" rx=\"5.5\" fill=\"#ffffff\"/>",
		"rx=\"6\" fill=\"none\" stroke=\"#1890ff\" stroke-width=\"1\" stroke-dasharray=\"3 1\"",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in\n%s", want, s)
		}
	}
}

func TestWriteBorderSVGComplex(t *testing.T) {
	g := mustGeometry(t, geometry.R(0, 0, 60, 30), geometry.CornerRadius{TopLeft: 8, BottomRight: 8}, geometry.UniformThickness(2))
	var buf bytes.Buffer
	if err := WriteBorderSVG(&buf, g, geometry.Size{W: 60, H: 30}, Paint{Background: palette.Color{R: 255, A: 128}, Border: blue}); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := buf.String()
	if strings.Count(s, "<line ") != 4 || strings.Count(s, "fill=\"none\"") != 2 {
		t.Fatalf("expected 4 lines and 2 arcs:\n%s", s)
	}
	if !strings.Contains(s, "fill-opacity=\"0.502\"") {
		t.Fatalf("translucent fill should carry an opacity:\n%s", s)
	}
	if !strings.Contains(s, "<path d=\"M") || !strings.Contains(s, "Z\"") {
		t.Fatalf("fill should be a closed path:\n%s", s)
	}
}

func TestWritePaletteSVG(t *testing.T) {
	pal := palette.Generate(palette.Presets["purple"])
	var buf bytes.Buffer
	if err := WritePaletteSVG(&buf, "purple <brand>", pal); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := buf.String()
	for _, h := range pal.Hex() {
		if !strings.Contains(s, h) {
			t.Fatalf("missing %s", h)
		}
	}
	if !strings.Contains(s, "purple &lt;brand&gt;") {
		t.Fatalf("name must be escaped")
	}
}
