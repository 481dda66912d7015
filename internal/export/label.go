/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"image"
	"image/draw"

	"antdkit/internal/palette"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFace is a fixed bitmap face so raster output is identical on every host.
var labelFace = basicfont.Face7x13

// measure returns the advance width of s in pixels.
func measure(s string) int {
	d := &font.Drawer{Face: labelFace}
	return d.MeasureString(s).Round()
}

// drawLabel centres s horizontally near the bottom of box. Text wider than
// the box is drawn left aligned and clipped.
func drawLabel(dst draw.Image, box image.Rectangle, s string, c palette.Color) {
	m := labelFace.Metrics()
	x := box.Min.X + (box.Dx()-measure(s))/2
	if x < box.Min.X {
		x = box.Min.X
	}
	y := box.Max.Y - m.Descent.Ceil() - 4
	d := &font.Drawer{
		Dst:  clipped{dst, box},
		Src:  image.NewUniform(c.NRGBA()),
		Face: labelFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// clipped restricts drawing to a rectangle.
type clipped struct {
	draw.Image
	r image.Rectangle
}

func (c clipped) Bounds() image.Rectangle { return c.r.Intersect(c.Image.Bounds()) }
