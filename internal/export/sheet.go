/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"antdkit/internal/palette"

	"github.com/disintegration/imaging"
)

const sheetPad = 8

// ContactSheet stacks the border previews on a white canvas, one row each,
// with the caption to the left. scale is the device scale of every preview.
func ContactSheet(previews []BorderPreview, scale float64) (*image.NRGBA, error) {
	if len(previews) == 0 {
		return nil, fmt.Errorf("nothing to export")
	}
	if scale <= 0 {
		scale = 1
	}
	captionW := 0
	imgs := make([]image.Image, len(previews))
	w, h := 0, sheetPad
	for i, p := range previews {
		imgs[i] = RenderBorder(p.Geometry, p.Size, p.Paint, scale)
		if cw := measure(p.Caption) + 2*sheetPad; cw > captionW {
			captionW = cw
		}
		b := imgs[i].Bounds()
		if b.Dx() > w {
			w = b.Dx()
		}
		h += b.Dy() + sheetPad
	}
	sheet := imaging.New(captionW+w+sheetPad, h, color.White)
	y := sheetPad
	for i, p := range previews {
		b := imgs[i].Bounds()
		drawLabel(sheet, image.Rect(0, y, captionW, y+b.Dy()), p.Caption, palette.Color{A: 0xd9})
		sheet = imaging.Overlay(sheet, imgs[i], image.Pt(captionW, y), 1)
		y += b.Dy() + sheetPad
	}
	return sheet, nil
}

// WriteContactSheet renders ContactSheet and saves it; the format follows the
// file extension (png, jpg, gif, tif, bmp).
func WriteContactSheet(outPath string, previews []BorderPreview, scale float64) error {
	sheet, err := ContactSheet(previews, scale)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := imaging.Save(sheet, outPath, imaging.JPEGQuality(90)); err != nil {
		return fmt.Errorf("save sheet: %w", err)
	}
	return nil
}
