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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"antdkit/internal/geometry"
	applog "antdkit/internal/log"
	"antdkit/internal/palette"
	"antdkit/internal/theme"
)

// PresetName represents a named export preset.
type PresetName string

const (
	PresetWeb   PresetName = "web"
	PresetPrint PresetName = "print"
)

// BatchOptions controls exporting a whole theme at once.
//
// Layout under OutDir:
//   - palette-<intent>.(png|svg) for every intent
//   - border-<control>.(png|svg) for every control kind, drawn with normal brushes
//   - swatches.pdf with every ladder and border preview
//   - contact-sheet.png with every border preview ("sheet" format, never a default)
type BatchOptions struct {
	Preset  PresetName
	Formats []string // allowed: pdf, png, svg, sheet; empty means preset defaults
	Scale   float64  // PNG device scale; 0 means the preset default
	OutDir  string
	Cache   *geometry.Cache // optional; shared across exports
}

// PreviewSizes are the logical sizes control borders are previewed at.
var PreviewSizes = map[theme.ControlKind]geometry.Size{
	theme.Button: {W: 88, H: 32},
	theme.Tag:    {W: 48, H: 22},
	theme.Alert:  {W: 240, H: 40},
	theme.Switch: {W: 44, H: 22},
	theme.Badge:  {W: 20, H: 20},
	theme.Avatar: {W: 32, H: 32},
}

// BatchExport writes the preset's formats for every intent and control of th.
// It returns the paths written.
func BatchExport(th theme.Theme, opt BatchOptions) ([]string, error) {
	l := applog.WithOperation(applog.WithComponent("export"), "batch").With(slog.String("preset", string(opt.Preset)))
	if strings.TrimSpace(opt.OutDir) == "" {
		return nil, fmt.Errorf("out dir is required")
	}
	formats := opt.Formats
	if len(formats) == 0 {
		formats = presetDefaultFormats(opt.Preset)
	}
	scale := opt.Scale
	if scale <= 0 {
		scale = presetScale(opt.Preset)
	}
	cache := opt.Cache
	if cache == nil {
		cache = geometry.NewCache(0)
	}
	if err := os.MkdirAll(opt.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure out dir: %w", err)
	}

	var written []string
	write := func(name string, data []byte) error {
		p := filepath.Join(opt.OutDir, name)
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, p)
		return nil
	}

	previews, err := controlPreviews(th, cache)
	if err != nil {
		return nil, err
	}

	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		switch f {
		case "png", "svg":
			for _, i := range theme.Intents() {
				var buf bytes.Buffer
				pal := palette.Generate(th.Seeds.Seed(i))
				if f == "png" {
					err = WritePalettePNG(&buf, pal, int(64*scale))
				} else {
					err = WritePaletteSVG(&buf, i.String(), pal)
				}
				if err != nil {
					return written, fmt.Errorf("%s palette %s: %w", f, i, err)
				}
				if err := write(fmt.Sprintf("palette-%s.%s", i, f), buf.Bytes()); err != nil {
					return written, err
				}
			}
			for _, p := range previews {
				var buf bytes.Buffer
				if f == "png" {
					err = WriteBorderPNG(&buf, p.Geometry, p.Size, p.Paint, scale)
				} else {
					err = WriteBorderSVG(&buf, p.Geometry, p.Size, p.Paint)
				}
				if err != nil {
					return written, fmt.Errorf("%s border %s: %w", f, p.Caption, err)
				}
				if err := write(fmt.Sprintf("border-%s.%s", p.Caption, f), buf.Bytes()); err != nil {
					return written, err
				}
			}
		case "pdf":
			var sw []Swatch
			for _, i := range theme.Intents() {
				sw = append(sw, Swatch{Name: i.String(), Palette: palette.Generate(th.Seeds.Seed(i))})
			}
			out := filepath.Join(opt.OutDir, "swatches.pdf")
			if err := WriteSwatchPDF(out, sw, SwatchOptions{Title: "Theme swatches", Previews: previews}); err != nil {
				return written, fmt.Errorf("pdf: %w", err)
			}
			written = append(written, out)
		case "sheet":
			out := filepath.Join(opt.OutDir, "contact-sheet.png")
			if err := WriteContactSheet(out, previews, scale); err != nil {
				return written, fmt.Errorf("sheet: %w", err)
			}
			written = append(written, out)
		default:
			return written, fmt.Errorf("unknown format: %s", f)
		}
	}
	hits, misses := cache.Stats()
	l.Info("batch exported", slog.Int("files", len(written)), slog.Int("geometry_hits", hits), slog.Int("geometry_misses", misses))
	return written, nil
}

// controlPreviews builds one preview per control kind with primary brushes.
func controlPreviews(th theme.Theme, cache *geometry.Cache) ([]BorderPreview, error) {
	brush, err := th.Control(theme.Primary, theme.Normal)
	if err != nil {
		return nil, err
	}
	var out []BorderPreview
	for _, k := range theme.ControlKinds() {
		spec := th.Border(k)
		size := PreviewSizes[k]
		g, err := cache.Get(geometry.R(0, 0, size.W, size.H), spec.Radius, spec.Thickness)
		if err != nil {
			return nil, fmt.Errorf("%s border: %w", k, err)
		}
		border := brush.Border
		if spec.Thickness.IsZero() {
			border = palette.Transparent
		}
		out = append(out, BorderPreview{
			Caption:  string(k),
			Geometry: g,
			Size:     size,
			Paint:    Paint{Background: brush.Background, Border: border, Style: spec.Style},
		})
	}
	return out, nil
}

func presetDefaultFormats(p PresetName) []string {
	switch p {
	case PresetWeb:
		return []string{"png", "svg"}
	case PresetPrint:
		return []string{"pdf"}
	default:
		return []string{"svg"}
	}
}

func presetScale(p PresetName) float64 {
	if p == PresetWeb {
		return 2
	}
	return 1
}
