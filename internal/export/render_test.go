/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"io"
	"reflect"
	"testing"

	"antdkit/internal/geometry"
	applog "antdkit/internal/log"
	"antdkit/internal/palette"
)

func init() { applog.Init(applog.Options{Level: "error", Writer: io.Discard}) }

type recorder struct {
	fills  int
	inks   []palette.Color
	lines  []geometry.EdgeLine
	arcs   []geometry.CornerArc
	dashes [][]float64
}

func (r *recorder) FillPath(_ geometry.Path, c palette.Color) {
	r.fills++
	r.inks = append(r.inks, c)
}
func (r *recorder) StrokeLine(l geometry.EdgeLine, _ palette.Color, d []float64) {
	r.lines = append(r.lines, l)
	r.dashes = append(r.dashes, d)
}
func (r *recorder) StrokeArc(a geometry.CornerArc, _ palette.Color, d []float64) {
	r.arcs = append(r.arcs, a)
	r.dashes = append(r.dashes, d)
}

type rounded struct {
	recorder
	rrFills, rrStrokes int
}

func (r *rounded) FillRoundedRect(geometry.Rect, float64, palette.Color) { r.rrFills++ }
func (r *rounded) StrokeRoundedRect(geometry.Rect, float64, float64, palette.Color, []float64) {
	r.rrStrokes++
}

var blue = palette.RGB(0x18, 0x90, 0xff)

func mustGeometry(t *testing.T, r geometry.Rect, c geometry.CornerRadius, th geometry.Thickness) geometry.Geometry {
	t.Helper()
	g, err := geometry.Compute(r, c, th)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return g
}

func TestDrawWalksGeometry(t *testing.T) {
	g := mustGeometry(t, geometry.R(0, 0, 88, 32), geometry.UniformRadius(6), geometry.UniformThickness(1))
	var r recorder
	Draw(&r, g, Paint{Background: palette.White, Border: blue, Style: geometry.Dashed})
	if r.fills != 1 || len(r.lines) != 4 || len(r.arcs) != 4 {
		t.Fatalf("fills=%d lines=%d arcs=%d", r.fills, len(r.lines), len(r.arcs))
	}
	for _, d := range r.dashes {
		if !reflect.DeepEqual(d, []float64{3, 1}) {
			t.Fatalf("dashes: %v", d)
		}
	}
}

func TestDrawSkipsMissingFillAndTransparentBorder(t *testing.T) {
	g := mustGeometry(t, geometry.R(0, 0, 10, 10), geometry.CornerRadius{TopLeft: 2}, geometry.UniformThickness(6))
	var r recorder
	Draw(&r, g, Paint{Background: palette.White, Border: blue})
	// three square corners get a border patch, nothing gets the background
	if r.fills != 3 {
		t.Fatalf("fills = %d, want 3 corner patches", r.fills)
	}
	for _, c := range r.inks {
		if c != blue {
			t.Fatalf("background must be skipped without a fill region, got fill %v", c)
		}
	}
	var q recorder
	Draw(&q, g, Paint{Background: palette.White})
	if len(q.lines)+len(q.arcs) != 0 {
		t.Fatalf("transparent border must not be stroked")
	}
}

func TestDrawPrefersNativeRoundedRect(t *testing.T) {
	g := mustGeometry(t, geometry.R(0, 0, 88, 32), geometry.UniformRadius(6), geometry.UniformThickness(1))
	var r rounded
	Draw(&r, g, Paint{Background: palette.White, Border: blue})
	if r.rrFills != 1 || r.rrStrokes != 1 || r.fills != 0 || len(r.lines) != 0 {
		t.Fatalf("simple geometry should use the rounded rect primitive: %+v", r)
	}
	c := mustGeometry(t, geometry.R(0, 0, 88, 32), geometry.UniformRadius(6), geometry.Thickness{Left: 2, Top: 1, Right: 1, Bottom: 1})
	var s rounded
	Draw(&s, c, Paint{Background: palette.White, Border: blue})
	if s.rrFills != 0 || s.fills != 1 || len(s.lines) != 4 {
		t.Fatalf("complex geometry must use paths: %+v", s)
	}
}

func TestDashRuns(t *testing.T) {
	pts := []geometry.Pt{{X: 0, Y: 0}, {X: 10, Y: 0}}
	runs := dashRuns(pts, []float64{3, 1})
	want := [][]geometry.Pt{
		{{X: 0, Y: 0}, {X: 3, Y: 0}},
		{{X: 4, Y: 0}, {X: 7, Y: 0}},
		{{X: 8, Y: 0}, {X: 10, Y: 0}},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Fatalf("runs: %v", runs)
	}
	if r := dashRuns(pts, nil); len(r) != 1 || len(r[0]) != 2 {
		t.Fatalf("solid runs: %v", r)
	}
	if r := dashRuns(pts, []float64{0, 1}); len(r) != 1 {
		t.Fatalf("degenerate pattern should fall back to solid: %v", r)
	}
	if r := dashRuns(pts[:1], []float64{1, 1}); r != nil {
		t.Fatalf("single point: %v", r)
	}
}

func TestDashRunsAcrossVertices(t *testing.T) {
	pts := []geometry.Pt{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}}
	runs := dashRuns(pts, []float64{3, 1})
	if len(runs) != 1 || len(runs[0]) != 3 {
		t.Fatalf("first dash should turn the corner: %v", runs)
	}
	if end := runs[0][2]; end != (geometry.Pt{X: 2, Y: 1}) {
		t.Fatalf("dash end: %+v", end)
	}
}

func TestCornerPatchesCoverSquareCorners(t *testing.T) {
	g := mustGeometry(t, geometry.R(0, 0, 20, 20), geometry.CornerRadius{}, geometry.Thickness{Left: 4, Top: 2, Right: 4, Bottom: 2})
	got := cornerPatches(g)
	want := []geometry.Rect{
		geometry.R(0, 0, 2, 1),
		geometry.R(18, 0, 2, 1),
		geometry.R(18, 19, 2, 1),
		geometry.R(0, 19, 2, 1),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("patches = %+v, want %+v", got, want)
	}
	rounded := mustGeometry(t, geometry.R(0, 0, 20, 20), geometry.CornerRadius{TopLeft: 4, TopRight: 4, BottomRight: 4, BottomLeft: 4}, geometry.Thickness{Left: 4, Top: 2, Right: 4, Bottom: 2})
	if p := cornerPatches(rounded); len(p) != 0 {
		t.Fatalf("rounded corners need no patch, got %+v", p)
	}
}
