/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package theme

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"antdkit/internal/geometry"
	applog "antdkit/internal/log"
	"antdkit/internal/palette"

	gojsonschema "github.com/xeipuuv/gojsonschema"
)

// FileVersion is the theme file format version.
const FileVersion = 1

//go:embed theme.schema.json
var schemaJSON []byte

// Schema returns the JSON schema theme files are validated against.
func Schema() []byte { return append([]byte(nil), schemaJSON...) }

// file is the on-disk shape of a theme.
type file struct {
	Version int                   `json:"version"`
	Name    string                `json:"name,omitempty"`
	Seeds   map[string]string     `json:"seeds,omitempty"`
	Borders map[string]fileBorder `json:"borders,omitempty"`
}

type fileBorder struct {
	Radius    *quad  `json:"radius,omitempty"`
	Thickness *quad  `json:"thickness,omitempty"`
	Style     string `json:"style,omitempty"`
}

// quad is four values that encode as a single number when they are equal.
type quad [4]float64

func (q quad) MarshalJSON() ([]byte, error) {
	if q[0] == q[1] && q[0] == q[2] && q[0] == q[3] {
		return json.Marshal(q[0])
	}
	return json.Marshal([4]float64(q))
}

func (q *quad) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*q = quad{v, v, v, v}
		return nil
	}
	var a [4]float64
	if err := json.Unmarshal(b, &a); err != nil {
		return fmt.Errorf("want a number or four numbers: %w", err)
	}
	*q = quad(a)
	return nil
}

// validate checks raw theme JSON against the embedded schema.
func validate(data []byte) error {
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		sort.Strings(msgs)
		return fmt.Errorf("%w: %s", ErrInvalidTheme, strings.Join(msgs, "; "))
	}
	return nil
}

// Decode validates and decodes a theme file. Seeds and borders missing from
// the file keep their defaults.
func Decode(data []byte) (Theme, error) {
	if err := validate(data); err != nil {
		return Theme{}, err
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	seeds := DefaultSeeds()
	for name, hex := range f.Seeds {
		i, err := ParseIntent(name)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
		}
		c, err := palette.ParseHex(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: seed %s: %v", ErrInvalidTheme, name, err)
		}
		seeds.set(i, c)
	}
	t, err := Build(seeds)
	if err != nil {
		return Theme{}, err
	}
	for name, fb := range f.Borders {
		k, err := ParseControlKind(name)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
		}
		b := t.Borders[k]
		if fb.Radius != nil {
			r := fb.Radius
			b.Radius = geometry.CornerRadius{TopLeft: r[0], TopRight: r[1], BottomRight: r[2], BottomLeft: r[3]}
		}
		if fb.Thickness != nil {
			th := fb.Thickness
			b.Thickness = geometry.Thickness{Left: th[0], Top: th[1], Right: th[2], Bottom: th[3]}
		}
		if fb.Style != "" {
			if b.Style, err = geometry.ParseBorderStyle(fb.Style); err != nil {
				return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
			}
		}
		t.Borders[k] = b
	}
	return t, t.validate()
}

// Encode writes the theme in file form. The output always passes Decode.
func Encode(t Theme) ([]byte, error) {
	f := file{Version: FileVersion, Seeds: map[string]string{}, Borders: map[string]fileBorder{}}
	for _, i := range Intents() {
		f.Seeds[i.String()] = t.Seeds.Seed(i).Hex()
	}
	for _, k := range ControlKinds() {
		b := t.Border(k)
		r := quad{b.Radius.TopLeft, b.Radius.TopRight, b.Radius.BottomRight, b.Radius.BottomLeft}
		th := quad{b.Thickness.Left, b.Thickness.Top, b.Thickness.Right, b.Thickness.Bottom}
		f.Borders[string(k)] = fileBorder{Radius: &r, Thickness: &th, Style: b.Style.String()}
	}
	return json.MarshalIndent(f, "", "  ")
}

// LoadFile reads, validates and decodes a theme file.
func LoadFile(path string) (Theme, error) {
	l := applog.WithOperation(applog.WithComponent("theme"), "load").With(slog.String("path", path))
	if strings.TrimSpace(path) == "" {
		return Theme{}, errors.New("theme path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	t, err := Decode(data)
	if err != nil {
		l.Error("theme rejected", slog.Any("err", err))
		return Theme{}, err
	}
	l.Info("theme loaded", slog.String("primary", t.Seeds.Primary.Hex()))
	return t, nil
}

// SaveFile writes the theme to path, creating parent directories.
func SaveFile(path string, t Theme) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure theme dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	applog.WithComponent("theme").Info("theme saved", slog.String("path", path))
	return nil
}
