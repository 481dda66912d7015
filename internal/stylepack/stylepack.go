/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0.
 */

// Package stylepack bundles a theme into a shareable zip: the theme file,
// palette and border previews as SVG, and a small manifest.
package stylepack

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"antdkit/internal/export"
	"antdkit/internal/geometry"
	applog "antdkit/internal/log"
	"antdkit/internal/palette"
	"antdkit/internal/theme"
	"antdkit/internal/version"
)

const (
	ManifestName = "stylepack.manifest.txt"
	ThemeName    = "theme.json"
)

// ErrNoTheme is returned for packs without a valid theme.json.
var ErrNoTheme = errors.New("pack has no theme.json")

// Export writes th as a pack to destZipPath. The archive contains:
//   - stylepack.manifest.txt
//   - theme.json
//   - palettes/<intent>.svg
//   - borders/<control>.svg, drawn with the primary normal brushes
func Export(th theme.Theme, destZipPath string) error {
	l := applog.WithOperation(applog.WithComponent("stylepack"), "export").With(slog.String("zip", destZipPath))
	if strings.TrimSpace(destZipPath) == "" {
		return errors.New("destZipPath is required")
	}
	data, err := theme.Encode(th)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}

	// Ensure target directory exists
	if err := os.MkdirAll(filepath.Dir(destZipPath), 0o755); err != nil {
		return fmt.Errorf("ensure zip dir: %w", err)
	}
	// On Windows, remove destination if present before create
	_ = os.Remove(destZipPath)

	zf, err := os.Create(destZipPath)
	if err != nil {
		return fmt.Errorf("create zip: %w", err)
	}
	defer func() { _ = zf.Close() }()
	zw := zip.NewWriter(zf)

	add := func(name string, b []byte) error {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("add %s: %w", name, err)
		}
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		return nil
	}

	manifest := fmt.Sprintf("antdkit Style Pack\nCreated: %s\nVersion: %s\nPrimary: %s\n\ntheme.json is the source of truth; the SVG files are previews.\n",
		time.Now().Format(time.RFC3339), version.String(), th.Seeds.Primary.Hex())
	if err := add(ManifestName, []byte(manifest)); err != nil {
		return err
	}
	if err := add(ThemeName, data); err != nil {
		return err
	}

	added := 2
	for _, i := range theme.Intents() {
		var buf bytes.Buffer
		if err := export.WritePaletteSVG(&buf, i.String(), palette.Generate(th.Seeds.Seed(i))); err != nil {
			return fmt.Errorf("palette %s: %w", i, err)
		}
		if err := add(path.Join("palettes", i.String()+".svg"), buf.Bytes()); err != nil {
			return err
		}
		added++
	}
	brushes, err := th.Control(theme.Primary, theme.Normal)
	if err != nil {
		return err
	}
	for _, k := range theme.ControlKinds() {
		size := export.PreviewSizes[k]
		g, err := th.Border(k).Geometry(geometry.R(0, 0, size.W, size.H))
		if err != nil {
			l.Error("border geometry failed", slog.String("control", string(k)), slog.Any("err", err))
			return fmt.Errorf("border %s: %w", k, err)
		}
		var buf bytes.Buffer
		p := export.Paint{Background: brushes.Background, Border: brushes.Border, Style: th.Border(k).Style}
		if err := export.WriteBorderSVG(&buf, g, size, p); err != nil {
			return fmt.Errorf("border %s: %w", k, err)
		}
		if err := add(path.Join("borders", string(k)+".svg"), buf.Bytes()); err != nil {
			return err
		}
		added++
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish zip: %w", err)
	}
	l.Info("style pack exported", slog.Int("files", added))
	return nil
}

// Load reads and validates the theme of a pack without extracting it.
func Load(packZipPath string) (theme.Theme, error) {
	r, err := zip.OpenReader(packZipPath)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("open pack: %w", err)
	}
	defer func() { _ = r.Close() }()
	return readTheme(&r.Reader)
}

func readTheme(r *zip.Reader) (theme.Theme, error) {
	for _, f := range r.File {
		if f.Name != ThemeName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return theme.Theme{}, fmt.Errorf("open %s: %w", ThemeName, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return theme.Theme{}, fmt.Errorf("read %s: %w", ThemeName, err)
		}
		return theme.Decode(data)
	}
	return theme.Theme{}, ErrNoTheme
}

// Install validates the pack theme and extracts the pack into dir.
// Existing files are not overwritten; if a file already exists, it is skipped.
// Entries escaping dir are ignored.
// Returns the count of files installed (skipped files are not counted).
func Install(packZipPath string, dir string) (int, error) {
	l := applog.WithOperation(applog.WithComponent("stylepack"), "install").With(slog.String("dir", dir))
	if strings.TrimSpace(dir) == "" {
		return 0, errors.New("dir is required")
	}
	if strings.TrimSpace(packZipPath) == "" {
		return 0, errors.New("packZipPath is required")
	}
	r, err := zip.OpenReader(packZipPath)
	if err != nil {
		return 0, fmt.Errorf("open pack: %w", err)
	}
	defer func() { _ = r.Close() }()

	if _, err := readTheme(&r.Reader); err != nil {
		l.Error("pack rejected", slog.Any("err", err))
		return 0, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("ensure dir: %w", err)
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return 0, err
	}

	installed := 0
	for _, f := range r.File {
		if f.Name == ManifestName {
			continue
		}
		targetPath := filepath.Join(root, filepath.FromSlash(f.Name))
		if !strings.HasPrefix(targetPath, root+string(os.PathSeparator)) {
			l.Warn("skip entry outside target", slog.String("entry", f.Name))
			continue
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(targetPath, 0o755); err != nil {
				return installed, err
			}
			continue
		}
		if _, err := os.Stat(targetPath); err == nil {
			l.Warn("skip existing file", slog.String("path", targetPath))
			continue
		}
		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return installed, err
		}
		if err := extract(f, targetPath); err != nil {
			return installed, err
		}
		installed++
	}
	l.Info("style pack installed", slog.Int("files", installed))
	return installed, nil
}

func extract(f *zip.File, targetPath string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	out, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
