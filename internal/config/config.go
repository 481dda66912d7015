/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	applog "antdkit/internal/log"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal.

type ThemeConfig struct {
	File  string            `yaml:"file"`  // optional theme.json; empty means built-in defaults
	Seeds map[string]string `yaml:"seeds"` // intent name -> hex or preset name
}

type BorderConfig struct {
	Radius         float64 `yaml:"radius"`
	Thickness      float64 `yaml:"thickness"`
	Style          string  `yaml:"style"` // solid | dashed | dotted
	LayoutRounding bool    `yaml:"layout_rounding"`
	DPIScale       float64 `yaml:"dpi_scale"`
	CacheLimit     int     `yaml:"cache_limit"`
}

type StoreConfig struct {
	Path string `yaml:"path"` // SQLite file; empty means next to the config file
}

type ExportConfig struct {
	OutDir  string   `yaml:"out_dir"`
	Preset  string   `yaml:"preset"` // web | print
	Formats []string `yaml:"formats"`
	Scale   float64  `yaml:"scale"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Theme         ThemeConfig   `yaml:"theme"`
	Border        BorderConfig  `yaml:"border"`
	Store         StoreConfig   `yaml:"store"`
	Export        ExportConfig  `yaml:"export"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Theme:         ThemeConfig{},
		Border:        BorderConfig{Radius: 6, Thickness: 1, Style: "solid", LayoutRounding: false, DPIScale: 1, CacheLimit: 256},
		Store:         StoreConfig{},
		Export:        ExportConfig{OutDir: "antdkit-export", Preset: "web", Scale: 0},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath     = "ANTD_CONFIG"
	EnvThemeFile      = "ANTD_THEME_FILE"
	EnvStorePath      = "ANTD_STORE_PATH"
	EnvExportDir      = "ANTD_EXPORT_DIR"
	EnvExportPreset   = "ANTD_EXPORT_PRESET"
	EnvLayoutRounding = "ANTD_LAYOUT_ROUNDING"
	EnvDPIScale       = "ANTD_DPI_SCALE"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "ANTD_LOG_LEVEL"
	EnvLogFormat = "ANTD_LOG_FORMAT"
	EnvLogSource = "ANTD_LOG_SOURCE"
	EnvLogFile   = "ANTD_LOG_FILE"
)

// ConfigPath returns the per-user config file path. ANTD_CONFIG overrides it.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "antdkit")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "antdkit")
	default: // linux and others
		if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
			base = filepath.Join(x, "antdkit")
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".config", "antdkit")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges environment overrides.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return Defaults(), err
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit file path. A missing file is not an error;
// a malformed one is.
func LoadFrom(path string) (AppConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	case !errors.Is(err, os.ErrNotExist):
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	applyEnvOverrides(&cfg)
	if cfg.Store.Path == "" {
		cfg.Store.Path = filepath.Join(filepath.Dir(path), "palettes.db")
	}
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes cfg as YAML to path, creating parent directories.
func SaveTo(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// theme
	if strings.TrimSpace(src.Theme.File) != "" {
		dst.Theme.File = strings.TrimSpace(src.Theme.File)
	}
	for k, v := range src.Theme.Seeds {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if dst.Theme.Seeds == nil {
			dst.Theme.Seeds = map[string]string{}
		}
		dst.Theme.Seeds[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	// border
	if src.Border.Radius > 0 {
		dst.Border.Radius = src.Border.Radius
	}
	if src.Border.Thickness > 0 {
		dst.Border.Thickness = src.Border.Thickness
	}
	if strings.TrimSpace(src.Border.Style) != "" {
		dst.Border.Style = strings.ToLower(strings.TrimSpace(src.Border.Style))
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.Border.LayoutRounding = src.Border.LayoutRounding
	if src.Border.DPIScale > 0 {
		dst.Border.DPIScale = src.Border.DPIScale
	}
	if src.Border.CacheLimit > 0 {
		dst.Border.CacheLimit = src.Border.CacheLimit
	}
	// store/export
	if strings.TrimSpace(src.Store.Path) != "" {
		dst.Store.Path = strings.TrimSpace(src.Store.Path)
	}
	if strings.TrimSpace(src.Export.OutDir) != "" {
		dst.Export.OutDir = strings.TrimSpace(src.Export.OutDir)
	}
	if strings.TrimSpace(src.Export.Preset) != "" {
		dst.Export.Preset = strings.ToLower(strings.TrimSpace(src.Export.Preset))
	}
	if len(src.Export.Formats) > 0 {
		dst.Export.Formats = append([]string(nil), src.Export.Formats...)
	}
	if src.Export.Scale > 0 {
		dst.Export.Scale = src.Export.Scale
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func truthy(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvThemeFile)); v != "" {
		cfg.Theme.File = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStorePath)); v != "" {
		cfg.Store.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportDir)); v != "" {
		cfg.Export.OutDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportPreset)); v != "" {
		cfg.Export.Preset = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLayoutRounding)); v != "" {
		cfg.Border.LayoutRounding = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDPIScale)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Border.DPIScale = f
		}
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

var envKeys = map[string]string{
	"theme.file":             EnvThemeFile,
	"store.path":             EnvStorePath,
	"export.out_dir":         EnvExportDir,
	"export.preset":          EnvExportPreset,
	"border.layout_rounding": EnvLayoutRounding,
	"border.dpi_scale":       EnvDPIScale,
	"logging.level":          EnvLogLevel,
	"logging.format":         EnvLogFormat,
	"logging.source":         EnvLogSource,
	"logging.file":           EnvLogFile,
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	if env, ok := envKeys[key]; ok && os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}

// LogOptions converts the logging section for log.Init.
func (c AppConfig) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
	}
}

// EffectiveDPIScale returns the layout rounding scale, or 0 when rounding is off.
func (b BorderConfig) EffectiveDPIScale() float64 {
	if !b.LayoutRounding {
		return 0
	}
	if b.DPIScale <= 0 {
		return Defaults().Border.DPIScale
	}
	return b.DPIScale
}
