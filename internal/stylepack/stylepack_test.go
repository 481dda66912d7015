/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0.
 */

package stylepack

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	applog "antdkit/internal/log"
	"antdkit/internal/palette"
	"antdkit/internal/theme"
)

func init() { applog.Init(applog.Options{Level: "error", Writer: io.Discard}) }

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	zw := zip.NewWriter(f)
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close zip file: %v", err)
	}
}

func validTheme(t *testing.T) string {
	t.Helper()
	b, err := theme.Encode(theme.Default())
	if err != nil {
		t.Fatalf("encode theme: %v", err)
	}
	return string(b)
}

func TestExportAndInstallPack(t *testing.T) {
	seeds := theme.DefaultSeeds()
	seeds.Primary = palette.Presets["purple"]
	th, err := theme.Build(seeds)
	if err != nil {
		t.Fatalf("build theme: %v", err)
	}
	zipPath := filepath.Join(t.TempDir(), "nested", "out.zip")
	if err := Export(th, zipPath); err != nil {
		t.Fatalf("export pack: %v", err)
	}
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	names := map[string]bool{}
	for _, f := range r.File {
		names[f.Name] = true
	}
	_ = r.Close()
	for _, want := range []string{ManifestName, ThemeName, "palettes/primary.svg", "palettes/info.svg", "borders/button.svg", "borders/avatar.svg"} {
		if !names[want] {
			t.Fatalf("missing %s in pack: %v", want, names)
		}
	}
	if len(names) != 2+len(theme.Intents())+len(theme.ControlKinds()) {
		t.Fatalf("unexpected entry count %d", len(names))
	}

	loaded, err := Load(zipPath)
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	if loaded.Seeds.Primary != palette.Presets["purple"] {
		t.Fatalf("primary seed = %s", loaded.Seeds.Primary)
	}

	dir := t.TempDir()
	installed, err := Install(zipPath, dir)
	if err != nil {
		t.Fatalf("install pack: %v", err)
	}
	if installed != len(names)-1 {
		t.Fatalf("installed = %d, want %d", installed, len(names)-1)
	}
	if _, err := theme.LoadFile(filepath.Join(dir, ThemeName)); err != nil {
		t.Fatalf("installed theme does not load: %v", err)
	}
	svg, err := os.ReadFile(filepath.Join(dir, "borders", "button.svg"))
	if err != nil {
		t.Fatalf("read border preview: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Fatalf("border preview is not svg")
	}

	// second install skips everything
	again, err := Install(zipPath, dir)
	if err != nil || again != 0 {
		t.Fatalf("reinstall = %d, %v", again, err)
	}
}

func TestExportRequiresPath(t *testing.T) {
	if err := Export(theme.Default(), " "); err == nil {
		t.Fatalf("expected error on empty path")
	}
}

func TestInstallPack_ZipSlipAndSkipExisting(t *testing.T) {
	proj := t.TempDir()
	zpath := filepath.Join(proj, "pack.zip")
	writeZip(t, zpath, map[string]string{
		ThemeName:      validTheme(t),
		"../evil.txt":  "nope",
		"extra/ok.txt": "ok",
	})

	dir := filepath.Join(proj, "target")
	target := filepath.Join(dir, "extra", "ok.txt")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(target, []byte("existing"), 0o644); err != nil {
		t.Fatalf("precreate file: %v", err)
	}

	installed, err := Install(zpath, dir)
	if err != nil {
		t.Fatalf("install pack: %v", err)
	}
	// only theme.json is new
	if installed != 1 {
		t.Fatalf("expected 1 installed, got %d", installed)
	}
	if _, err := os.Stat(filepath.Join(proj, "evil.txt")); err == nil {
		t.Fatalf("evil.txt should not exist")
	}
	b, _ := os.ReadFile(target)
	if string(b) != "existing" {
		t.Fatalf("existing file was overwritten")
	}
}

func TestInstallRejectsPackWithoutTheme(t *testing.T) {
	proj := t.TempDir()
	zpath := filepath.Join(proj, "pack.zip")
	writeZip(t, zpath, map[string]string{"palettes/primary.svg": "<svg/>"})
	dir := filepath.Join(proj, "target")
	if _, err := Install(zpath, dir); !errors.Is(err, ErrNoTheme) {
		t.Fatalf("expected ErrNoTheme, got %v", err)
	}
	if _, err := os.Stat(dir); err == nil {
		t.Fatalf("nothing should be written for a rejected pack")
	}
}

func TestInstallRejectsInvalidTheme(t *testing.T) {
	zpath := filepath.Join(t.TempDir(), "pack.zip")
	writeZip(t, zpath, map[string]string{ThemeName: `{"version": 1, "seeds": {"primary": "blue-ish"}}`})
	if _, err := Install(zpath, t.TempDir()); !errors.Is(err, theme.ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
	if _, err := Install("", t.TempDir()); err == nil {
		t.Fatalf("expected error on empty pack path")
	}
}
