/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"antdkit/internal/config"
	"antdkit/internal/export"
	"antdkit/internal/geometry"
	applog "antdkit/internal/log"
	"antdkit/internal/palette"
	"antdkit/internal/store"
	"antdkit/internal/stylepack"
	"antdkit/internal/theme"
	"antdkit/internal/ui"
	"antdkit/internal/version"
)

const storeTimeout = 10 * time.Second

// usageError marks bad invocations; they exit 2 instead of 1.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error { return usageError{fmt.Sprintf(format, a...)} }

type cli struct {
	cfg  config.AppConfig
	out  io.Writer
	errw io.Writer
	log  *slog.Logger
}

// run executes one command and returns the process exit code.
func run(cfg config.AppConfig, args []string, stdout, stderr io.Writer) int {
	c := &cli{cfg: cfg, out: stdout, errw: stderr, log: applog.WithComponent("cli")}
	if len(args) == 0 {
		usage(stdout)
		return 0
	}
	var err error
	switch args[0] {
	case "version", "--version", "-v":
		_, _ = fmt.Fprintln(stdout, version.String())
		return 0
	case "help", "--help", "-h":
		usage(stdout)
		return 0
	case "palette":
		err = c.palette(args[1:])
	case "tone":
		err = c.tone(args[1:])
	case "presets":
		for _, n := range palette.PresetNames() {
			_, _ = fmt.Fprintf(stdout, "%-10s %s\n", n, palette.Presets[n].Hex())
		}
	case "border":
		err = c.border(args[1:])
	case "swatches":
		err = c.swatches(args[1:])
	case "save":
		err = c.save(args[1:])
	case "list":
		err = c.list()
	case "delete":
		err = c.delete(args[1:])
	case "lookup":
		err = c.lookup(args[1:])
	case "theme":
		err = c.themeCmd(args[1:])
	case "export":
		err = c.export(args[1:])
	case "pack":
		err = c.pack(args[1:])
	case "config":
		err = c.config(args[1:])
	case "ui":
		path := c.cfg.Theme.File
		if len(args) > 1 {
			path = args[1]
		}
		err = ui.Run(path)
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
	if err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		c.log.Error(args[0]+" failed", slog.Any("err", err))
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// parseArgs allows flags before, between and after positional arguments.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, usageError{err.Error()}
		}
		args = fs.Args()
		if len(args) == 0 {
			return pos, nil
		}
		pos = append(pos, args[0])
		args = args[1:]
	}
}

func (c *cli) openStore() (*store.Store, error) {
	return store.Open(c.cfg.Store.Path)
}

// loadTheme is the configured theme: the theme file (or the defaults) with
// the seeds of the config applied on top.
func (c *cli) loadTheme(path string) (theme.Theme, error) {
	th := theme.Default()
	if strings.TrimSpace(path) != "" {
		loaded, err := theme.LoadFile(path)
		if err != nil {
			return theme.Theme{}, err
		}
		th = loaded
	}
	if len(c.cfg.Theme.Seeds) == 0 {
		return th, nil
	}
	seeds, err := th.Seeds.Override(c.cfg.Theme.Seeds)
	if err != nil {
		return theme.Theme{}, err
	}
	return th.WithSeeds(seeds)
}

type paletteJSON struct {
	Name  string   `json:"name,omitempty"`
	Seed  string   `json:"seed"`
	Tones []string `json:"tones"`
}

func (c *cli) palette(args []string) error {
	fs := newFlagSet("palette", c.errw)
	asJSON := fs.Bool("json", false, "print JSON")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) != 1 {
		return usagef("palette requires <hex|preset>")
	}
	seed, err := palette.Resolve(pos[0])
	if err != nil {
		return err
	}
	pal := palette.Generate(seed)
	if *asJSON {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(paletteJSON{Seed: seed.Hex(), Tones: pal.Hex()})
	}
	for i, h := range pal.Hex() {
		_, _ = fmt.Fprintf(c.out, "%2d %s\n", i+1, h)
	}
	return nil
}

func (c *cli) tone(args []string) error {
	if len(args) != 2 {
		return usagef("tone requires <hex|preset> <index>")
	}
	seed, err := palette.Resolve(args[0])
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return usagef("tone index %q is not a number", args[1])
	}
	col, err := palette.Tone(seed, idx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(c.out, col.Hex())
	return nil
}

// parseSize reads WxH.
func parseSize(s string) (geometry.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return geometry.Size{}, usagef("size %q: want WxH", s)
	}
	fw, err1 := strconv.ParseFloat(w, 64)
	fh, err2 := strconv.ParseFloat(h, 64)
	if err1 != nil || err2 != nil || fw <= 0 || fh <= 0 {
		return geometry.Size{}, usagef("size %q: want positive WxH", s)
	}
	return geometry.Size{W: fw, H: fh}, nil
}

// parseQuad reads one value or four comma separated values.
func parseQuad(name, s string) ([4]float64, error) {
	var q [4]float64
	parts := strings.Split(s, ",")
	if len(parts) != 1 && len(parts) != 4 {
		return q, usagef("%s %q: want one value or four comma separated values", name, s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return q, usagef("%s %q: %v", name, s, err)
		}
		q[i] = v
	}
	if len(parts) == 1 {
		q = [4]float64{q[0], q[0], q[0], q[0]}
	}
	return q, nil
}

func fmtNum(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func (c *cli) border(args []string) error {
	fs := newFlagSet("border", c.errw)
	sizeS := fs.String("size", "", "control size WxH")
	radiusS := fs.String("radius", fmtNum(c.cfg.Border.Radius), "corner radius: r or tl,tr,br,bl")
	thickS := fs.String("thickness", fmtNum(c.cfg.Border.Thickness), "edge thickness: t or l,t,r,b")
	styleS := fs.String("style", c.cfg.Border.Style, "solid, dashed or dotted")
	colorS := fs.String("color", "#d9d9d9", "border colour (hex or preset)")
	fillS := fs.String("fill", "#ffffff", "background colour (hex or preset)")
	scale := fs.Float64("scale", 2, "PNG device scale")
	dpi := fs.Float64("dpi", c.cfg.Border.EffectiveDPIScale(), "layout rounding scale; 0 disables")
	out := fs.String("o", "", "output file (.png or .svg); empty prints the geometry")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}
	if *sizeS == "" {
		return usagef("border requires --size WxH")
	}
	size, err := parseSize(*sizeS)
	if err != nil {
		return err
	}
	rq, err := parseQuad("radius", *radiusS)
	if err != nil {
		return err
	}
	tq, err := parseQuad("thickness", *thickS)
	if err != nil {
		return err
	}
	style, err := geometry.ParseBorderStyle(*styleS)
	if err != nil {
		return usagef("%v", err)
	}
	stroke, err := palette.Resolve(*colorS)
	if err != nil {
		return err
	}
	fill, err := palette.Resolve(*fillS)
	if err != nil {
		return err
	}

	b, err := geometry.NewBorder(geometry.R(0, 0, size.W, size.H),
		geometry.CornerRadius{TopLeft: rq[0], TopRight: rq[1], BottomRight: rq[2], BottomLeft: rq[3]},
		geometry.Thickness{Left: tq[0], Top: tq[1], Right: tq[2], Bottom: tq[3]})
	if err != nil {
		return err
	}
	b.SetStyle(style)
	b.SetLayoutRounding(*dpi)
	g, err := b.Geometry()
	if err != nil {
		return err
	}
	if *out == "" {
		describe(c.out, g)
		return nil
	}
	p := export.Paint{Background: fill, Border: stroke, Style: style}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(*out)) {
	case ".png":
		err = export.WriteBorderPNG(f, g, size, p, *scale)
	case ".svg":
		err = export.WriteBorderSVG(f, g, size, p)
	default:
		err = usagef("output %q: want .png or .svg", *out)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(*out)
		return err
	}
	_, _ = fmt.Fprintln(c.out, "Wrote", *out)
	return nil
}

func fmtRect(r geometry.Rect) string {
	return fmt.Sprintf("%s,%s %sx%s", fmtNum(r.X), fmtNum(r.Y), fmtNum(r.W), fmtNum(r.H))
}

// describe prints a geometry summary.
func describe(w io.Writer, g geometry.Geometry) {
	if g.Simple {
		_, _ = fmt.Fprintln(w, "path: simple")
		_, _ = fmt.Fprintf(w, "stroke: rect %s radius %s width %s\n", fmtRect(g.StrokeRect), fmtNum(g.StrokeRadius), fmtNum(g.StrokeWidth))
		_, _ = fmt.Fprintf(w, "fill: rect %s radius %s\n", fmtRect(g.FillRect), fmtNum(g.FillRadius))
		return
	}
	_, _ = fmt.Fprintln(w, "path: complex")
	for _, l := range g.Lines {
		_, _ = fmt.Fprintf(w, "line %s: %s,%s -> %s,%s width %s\n", l.Edge, fmtNum(l.From.X), fmtNum(l.From.Y), fmtNum(l.To.X), fmtNum(l.To.Y), fmtNum(l.Width))
	}
	for _, a := range g.Arcs {
		_, _ = fmt.Fprintf(w, "arc %s: width %s\n", a.Corner, fmtNum(a.Width))
	}
	if g.HasFill() {
		_, _ = fmt.Fprintf(w, "fill: bounds %s\n", fmtRect(g.Fill.Bounds()))
	} else {
		_, _ = fmt.Fprintln(w, "fill: none")
	}
}

func (c *cli) swatches(args []string) error {
	fs := newFlagSet("swatches", c.errw)
	out := fs.String("o", filepath.Join(c.cfg.Export.OutDir, "swatches.pdf"), "output PDF")
	title := fs.String("title", "antdkit swatches", "sheet title")
	names, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = palette.PresetNames()
	}
	var st *store.Store
	defer func() {
		if st != nil {
			_ = st.Close()
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	sw := make([]export.Swatch, 0, len(names))
	for _, n := range names {
		if seed, err := palette.Resolve(n); err == nil {
			sw = append(sw, export.Swatch{Name: n, Palette: palette.Generate(seed)})
			continue
		}
		if st == nil {
			if st, err = c.openStore(); err != nil {
				return err
			}
		}
		e, err := st.Get(ctx, n)
		if err != nil {
			return err
		}
		sw = append(sw, export.Swatch{Name: e.Name, Palette: e.Palette})
	}
	if err := export.WriteSwatchPDF(*out, sw, export.SwatchOptions{Title: *title}); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(c.out, "Wrote", *out)
	return nil
}

func (c *cli) save(args []string) error {
	if len(args) != 2 {
		return usagef("save requires <name> <hex|preset>")
	}
	seed, err := palette.Resolve(args[1])
	if err != nil {
		return err
	}
	st, err := c.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	e, err := st.Save(ctx, args[0], seed)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.out, "Saved %s %s\n", e.Name, strings.Join(e.Palette.Hex(), " "))
	return nil
}

func (c *cli) list() error {
	st, err := c.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	entries, err := st.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		_, _ = fmt.Fprintf(c.out, "%-16s %s  %s\n", e.Name, e.Seed.Hex(), strings.Join(e.Palette.Hex(), " "))
	}
	return nil
}

func (c *cli) delete(args []string) error {
	if len(args) != 1 {
		return usagef("delete requires <name>")
	}
	st, err := c.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := st.Delete(ctx, args[0]); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(c.out, "Deleted", args[0])
	return nil
}

func (c *cli) lookup(args []string) error {
	if len(args) != 1 {
		return usagef("lookup requires <hex>")
	}
	col, err := palette.ParseHex(args[0])
	if err != nil {
		return err
	}
	st, err := c.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	matches, err := st.Lookup(ctx, col)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		_, _ = fmt.Fprintln(c.out, "no stored palette contains", col.Hex())
		return nil
	}
	for _, m := range matches {
		_, _ = fmt.Fprintf(c.out, "%s[%d]\n", m.Name, m.Index)
	}
	return nil
}

func (c *cli) themeCmd(args []string) error {
	if len(args) != 2 {
		return usagef("theme requires init|check <file>")
	}
	switch args[0] {
	case "init":
		th, err := c.loadTheme("")
		if err != nil {
			return err
		}
		if err := theme.SaveFile(args[1], th); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(c.out, "Wrote", args[1])
	case "check":
		th, err := theme.LoadFile(args[1])
		if err != nil {
			return err
		}
		for _, i := range theme.Intents() {
			_, _ = fmt.Fprintf(c.out, "%-8s %s\n", i, th.Seeds.Seed(i).Hex())
		}
	default:
		return usagef("unknown theme command %q", args[0])
	}
	return nil
}

func (c *cli) export(args []string) error {
	fs := newFlagSet("export", c.errw)
	preset := fs.String("preset", c.cfg.Export.Preset, "web or print")
	out := fs.String("o", c.cfg.Export.OutDir, "output directory")
	scale := fs.Float64("scale", c.cfg.Export.Scale, "PNG scale; 0 uses the preset default")
	formats := fs.String("formats", strings.Join(c.cfg.Export.Formats, ","), "comma separated: png, svg, pdf, sheet")
	themePath := fs.String("theme", c.cfg.Theme.File, "theme file")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}
	th, err := c.loadTheme(*themePath)
	if err != nil {
		return err
	}
	var fl []string
	for _, f := range strings.Split(*formats, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fl = append(fl, f)
		}
	}
	paths, err := export.BatchExport(th, export.BatchOptions{
		Preset:  export.PresetName(*preset),
		Formats: fl,
		Scale:   *scale,
		OutDir:  *out,
		Cache:   geometry.NewCache(c.cfg.Border.CacheLimit),
	})
	if err != nil {
		return err
	}
	for _, p := range paths {
		_, _ = fmt.Fprintln(c.out, p)
	}
	return nil
}

func (c *cli) pack(args []string) error {
	if len(args) == 0 {
		return usagef("pack requires export|install")
	}
	switch args[0] {
	case "export":
		fs := newFlagSet("pack export", c.errw)
		out := fs.String("o", "", "output zip")
		themePath := fs.String("theme", c.cfg.Theme.File, "theme file")
		if _, err := parseArgs(fs, args[1:]); err != nil {
			return err
		}
		if *out == "" {
			return usagef("pack export requires -o <zip>")
		}
		th, err := c.loadTheme(*themePath)
		if err != nil {
			return err
		}
		if err := stylepack.Export(th, *out); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(c.out, "Wrote", *out)
	case "install":
		fs := newFlagSet("pack install", c.errw)
		dir := fs.String("dir", ".", "target directory")
		pos, err := parseArgs(fs, args[1:])
		if err != nil {
			return err
		}
		if len(pos) != 1 {
			return usagef("pack install requires <zip>")
		}
		n, err := stylepack.Install(pos[0], *dir)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(c.out, "Installed %d files into %s\n", n, *dir)
	default:
		return usagef("unknown pack command %q", args[0])
	}
	return nil
}

var overridableKeys = []string{
	"theme.file", "store.path", "export.out_dir", "export.preset",
	"border.layout_rounding", "border.dpi_scale",
	"logging.level", "logging.format", "logging.source", "logging.file",
}

func (c *cli) config(args []string) error {
	if len(args) != 1 {
		return usagef("config requires path|show")
	}
	switch args[0] {
	case "path":
		p, err := config.ConfigPath()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(c.out, p)
	case "show":
		data, err := yaml.Marshal(c.cfg)
		if err != nil {
			return err
		}
		_, _ = c.out.Write(data)
		for _, k := range overridableKeys {
			if env, ok := config.EnvOverrideFor(k); ok {
				_, _ = fmt.Fprintf(c.out, "# %s overridden by %s\n", k, env)
			}
		}
	default:
		return usagef("unknown config command %q", args[0])
	}
	return nil
}
