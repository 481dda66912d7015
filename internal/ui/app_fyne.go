//go:build fyne && cgo

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
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"antdkit/internal/crash"
	"antdkit/internal/export"
	"antdkit/internal/geometry"
	applog "antdkit/internal/log"
	"antdkit/internal/palette"
	"antdkit/internal/stylepack"
	"antdkit/internal/theme"
	"antdkit/internal/version"
)

// previewScale is the raster scale of border previews; 2 stays sharp on HiDPI.
const previewScale = 2

// Run starts the Fyne gallery. themeFile is optional; it is loaded at start
// and is the default target of "Save theme".
func Run(themeFile string) error {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("theme", themeFile))

	th := theme.Default()
	if strings.TrimSpace(themeFile) != "" {
		loaded, err := theme.LoadFile(themeFile)
		if err != nil {
			return err
		}
		th = loaded
	}
	info := &crash.Info{Command: "ui", Args: []string{themeFile}, Theme: &th}
	defer crash.Recover(info)

	gal, err := NewGallery(th, 0)
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID("antdkit")
	w := fyneApp.NewWindow("antdkit " + version.Version)
	// Restore window size from preferences (with sane minimums)
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 900)
	winH := prefs.IntWithFallback("window.height", 480)
	if winW < 640 {
		winW = 640
	}
	if winH < 360 {
		winH = 360
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Ready")
	paletteRow := container.NewGridWithColumns(palette.Size)
	cardsRow := container.NewHBox()

	var undoBtn, redoBtn *widget.Button
	syncHistory := func() {
		if gal.CanUndo() {
			undoBtn.Enable()
		} else {
			undoBtn.Disable()
		}
		if gal.CanRedo() {
			redoBtn.Enable()
		} else {
			redoBtn.Disable()
		}
	}
	refresh := func() {
		th = gal.Theme() // crash snapshot follows edits
		paletteRow.Objects = paletteObjects(gal.Palette())
		paletteRow.Refresh()
		cards, err := gal.Cards()
		if err != nil {
			status.SetText(err.Error())
			return
		}
		objs := make([]fyne.CanvasObject, 0, len(cards))
		for _, c := range cards {
			objs = append(objs, container.NewVBox(
				container.NewCenter(NewBorderPreview(c.Geometry, c.Size, c.Paint)),
				widget.NewLabelWithStyle(c.State.String(), fyne.TextAlignCenter, fyne.TextStyle{}),
			))
		}
		cardsRow.Objects = objs
		cardsRow.Refresh()
		if undoBtn != nil {
			syncHistory()
		}
	}

	seedEntry := widget.NewEntry()
	seedEntry.SetText(gal.Seed().Hex())
	seedEntry.OnSubmitted = func(s string) {
		if err := gal.SetSeed(s); err != nil {
			status.SetText(err.Error())
			return
		}
		seedEntry.SetText(gal.Seed().Hex())
		status.SetText("Seed " + gal.Seed().Hex())
		refresh()
	}

	var intentNames []string
	for _, i := range theme.Intents() {
		intentNames = append(intentNames, i.String())
	}
	intentSelect := widget.NewSelect(intentNames, func(s string) {
		i, err := theme.ParseIntent(s)
		if err != nil {
			status.SetText(err.Error())
			return
		}
		gal.SetIntent(i)
		seedEntry.SetText(gal.Seed().Hex())
		refresh()
	})

	radius := widget.NewSlider(0, 24)
	radius.Step = 1
	thickness := widget.NewSlider(0, 8)
	thickness.Step = 0.5
	styleSelect := widget.NewSelect([]string{"solid", "dashed", "dotted"}, nil)

	syncBorderControls := func() {
		spec := gal.BorderSpec()
		radius.SetValue(spec.Radius.TopLeft)
		thickness.SetValue(spec.Thickness.Left)
		styleSelect.SetSelected(spec.Style.String())
	}

	var kindNames []string
	for _, k := range theme.ControlKinds() {
		kindNames = append(kindNames, string(k))
	}
	kindSelect := widget.NewSelect(kindNames, func(s string) {
		k, err := theme.ParseControlKind(s)
		if err == nil {
			err = gal.SetKind(k)
		}
		if err != nil {
			status.SetText(err.Error())
			return
		}
		syncBorderControls()
		refresh()
	})

	radius.OnChanged = func(v float64) {
		if err := gal.SetRadius(v); err != nil {
			status.SetText(err.Error())
			return
		}
		refresh()
	}
	thickness.OnChanged = func(v float64) {
		if err := gal.SetThickness(v); err != nil {
			status.SetText(err.Error())
			return
		}
		refresh()
	}
	styleSelect.OnChanged = func(s string) {
		st, err := geometry.ParseBorderStyle(s)
		if err != nil {
			status.SetText(err.Error())
			return
		}
		if err := gal.SetStyle(st); err != nil {
			status.SetText(err.Error())
			return
		}
		refresh()
	}

	saveBtn := widget.NewButton("Save theme", func() {
		if strings.TrimSpace(themeFile) != "" {
			if err := theme.SaveFile(themeFile, gal.Theme()); err != nil {
				dialog.ShowError(err, w)
				return
			}
			status.SetText("Saved " + themeFile)
			return
		}
		dialog.ShowFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			defer func() { _ = uc.Close() }()
			data, err := theme.Encode(gal.Theme())
			if err == nil {
				_, err = uc.Write(data)
			}
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			status.SetText("Saved " + uc.URI().Path())
		}, w)
	})
	packBtn := widget.NewButton("Export pack", func() {
		dialog.ShowFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			p := uc.URI().Path()
			_ = uc.Close()
			if err := stylepack.Export(gal.Theme(), p); err != nil {
				l.Error("pack export failed", slog.Any("err", err))
				dialog.ShowError(err, w)
				return
			}
			status.SetText("Pack written to " + p)
		}, w)
	})

	// step applies an undo or redo and pulls every control back in line.
	step := func(fn func() (bool, error)) {
		ok, err := fn()
		if err != nil {
			l.Error("history step failed", slog.Any("err", err))
			status.SetText(err.Error())
			return
		}
		if !ok {
			return
		}
		intentSelect.SetSelected(gal.Intent().String())
		kindSelect.SetSelected(string(gal.Kind()))
		seedEntry.SetText(gal.Seed().Hex())
		syncBorderControls()
		refresh()
	}
	undoBtn = widget.NewButton("Undo", func() { step(gal.Undo) })
	redoBtn = widget.NewButton("Redo", func() { step(gal.Redo) })

	form := widget.NewForm(
		widget.NewFormItem("Intent", intentSelect),
		widget.NewFormItem("Seed", seedEntry),
		widget.NewFormItem("Control", kindSelect),
		widget.NewFormItem("Radius", radius),
		widget.NewFormItem("Thickness", thickness),
		widget.NewFormItem("Style", styleSelect),
	)
	top := container.NewVBox(form, container.NewHBox(undoBtn, redoBtn, saveBtn, packBtn))
	body := container.NewVBox(widget.NewLabel("Palette"), paletteRow, widget.NewSeparator(), widget.NewLabel("States"), cardsRow)
	w.SetContent(container.NewBorder(top, status, nil, nil, container.NewVScroll(body)))

	intentSelect.SetSelected(gal.Intent().String())
	kindSelect.SetSelected(string(gal.Kind()))
	syncBorderControls()
	refresh()

	w.SetOnClosed(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
	})
	w.ShowAndRun()
	return nil
}

// paletteObjects draws the ladder as labelled swatches.
func paletteObjects(p palette.Palette) []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(p))
	for i, c := range p {
		rect := canvas.NewRectangle(c.NRGBA())
		rect.SetMinSize(fyne.NewSize(64, 40))
		ink := color.Color(color.White)
		if i < palette.BaseIndex-1 {
			ink = color.NRGBA{R: 0, G: 0, B: 0, A: 0xd9}
		}
		label := canvas.NewText(fmt.Sprintf("%d %s", i+1, c.Hex()), ink)
		label.TextSize = 10
		objs = append(objs, container.NewStack(rect, container.NewCenter(label)))
	}
	return objs
}

// BorderPreview shows a border geometry rasterised by the export package.
type BorderPreview struct {
	widget.BaseWidget
	geom  geometry.Geometry
	size  geometry.Size
	paint export.Paint
}

func NewBorderPreview(g geometry.Geometry, size geometry.Size, p export.Paint) *BorderPreview {
	b := &BorderPreview{geom: g, size: size, paint: p}
	b.ExtendBaseWidget(b)
	return b
}

// Set replaces what is drawn and repaints.
func (b *BorderPreview) Set(g geometry.Geometry, p export.Paint) {
	b.geom, b.paint = g, p
	b.Refresh()
}

func (b *BorderPreview) render() image.Image {
	return export.RenderBorder(b.geom, b.size, b.paint, previewScale)
}

func (b *BorderPreview) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(b.render())
	img.FillMode = canvas.ImageFillStretch
	return &borderPreviewRenderer{b: b, img: img, objects: []fyne.CanvasObject{img}}
}

type borderPreviewRenderer struct {
	b       *BorderPreview
	img     *canvas.Image
	objects []fyne.CanvasObject
}

func (r *borderPreviewRenderer) Destroy()                     {}
func (r *borderPreviewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *borderPreviewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.b.size.W), float32(r.b.size.H))
}
func (r *borderPreviewRenderer) Layout(size fyne.Size) {
	r.img.Resize(size)
	r.img.Move(fyne.NewPos(0, 0))
}
func (r *borderPreviewRenderer) Refresh() {
	r.img.Image = r.b.render()
	r.img.Refresh()
}
