/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package theme turns seed colours into per-state brushes for interactive
// controls and carries the default border shape of each control kind.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"antdkit/internal/palette"
)

// ErrInvalidTheme is returned for theme files that fail validation.
var ErrInvalidTheme = errors.New("invalid theme")

// Intent is the semantic role a control colour plays.
type Intent uint8

const (
	Primary Intent = iota
	Success
	Warning
	Error
	Info
	intentCount
)

var intentNames = [intentCount]string{"primary", "success", "warning", "error", "info"}

func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return fmt.Sprintf("intent(%d)", uint8(i))
}

// Intents lists every intent in declaration order.
func Intents() []Intent { return []Intent{Primary, Success, Warning, Error, Info} }

// ParseIntent maps a lower-case intent name back to its value.
func ParseIntent(s string) (Intent, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range intentNames {
		if n == s {
			return Intent(i), nil
		}
	}
	return 0, fmt.Errorf("unknown intent %q", s)
}

// State is the interaction state of a control.
type State uint8

const (
	Normal State = iota
	Hover
	Pressed
	Focused
	Disabled
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Hover:
		return "hover"
	case Pressed:
		return "pressed"
	case Focused:
		return "focused"
	case Disabled:
		return "disabled"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Seeds holds one seed colour per intent.
type Seeds struct {
	Primary, Success, Warning, Error, Info palette.Color
}

// DefaultSeeds are the stock Ant Design brand colours.
func DefaultSeeds() Seeds {
	return Seeds{
		Primary: palette.RGB(0x18, 0x90, 0xff),
		Success: palette.RGB(0x52, 0xc4, 0x1a),
		Warning: palette.RGB(0xfa, 0xad, 0x14),
		Error:   palette.RGB(0xff, 0x4d, 0x4f),
		Info:    palette.RGB(0x18, 0x90, 0xff),
	}
}

// Seed returns the seed for an intent.
func (s Seeds) Seed(i Intent) palette.Color {
	switch i {
	case Success:
		return s.Success
	case Warning:
		return s.Warning
	case Error:
		return s.Error
	case Info:
		return s.Info
	}
	return s.Primary
}

func (s *Seeds) set(i Intent, c palette.Color) {
	switch i {
	case Primary:
		s.Primary = c
	case Success:
		s.Success = c
	case Warning:
		s.Warning = c
	case Error:
		s.Error = c
	case Info:
		s.Info = c
	}
}

// Override returns a copy of s with the intents named in m replaced. Values
// are hex colours or preset names.
func (s Seeds) Override(m map[string]string) (Seeds, error) {
	for name, v := range m {
		i, err := ParseIntent(name)
		if err != nil {
			return s, err
		}
		c, err := palette.Resolve(v)
		if err != nil {
			return s, fmt.Errorf("%w: %s seed: %v", ErrInvalidTheme, i, err)
		}
		s.set(i, c)
	}
	return s, nil
}

// StateColors are the brushes derived from one seed.
type StateColors struct {
	Background      palette.Color // 1
	BackgroundHover palette.Color // 2
	Border          palette.Color // 3
	BorderHover     palette.Color // 4
	Hover           palette.Color // 5
	Base            palette.Color // 6, the seed
	Active          palette.Color // 7
	TextHover       palette.Color // 5
	Text            palette.Color // 6
	TextActive      palette.Color // 7
}

var tones palette.Memo

// FromSeed derives the state colours of one seed.
func FromSeed(seed palette.Color) StateColors {
	at := func(i int) palette.Color {
		if i == palette.BaseIndex {
			return seed
		}
		c, _ := tones.Tone(seed, i)
		return c
	}
	return StateColors{
		Background:      at(1),
		BackgroundHover: at(2),
		Border:          at(3),
		BorderHover:     at(4),
		Hover:           at(5),
		Base:            at(6),
		Active:          at(7),
		TextHover:       at(5),
		Text:            at(6),
		TextActive:      at(7),
	}
}

// Brushes are the three colours a control paints in one state.
type Brushes struct {
	Background, Border, Text palette.Color
}

// Disabled brushes are shared by every intent.
var (
	DisabledBackground = palette.RGB(0xf5, 0xf5, 0xf5)
	DisabledBorder     = palette.RGB(0xd9, 0xd9, 0xd9)
	DisabledText       = palette.Color{A: 0x40}
)

func disabled() Brushes {
	return Brushes{Background: DisabledBackground, Border: DisabledBorder, Text: DisabledText}
}

// Theme is an immutable set of state colours and control borders.
type Theme struct {
	Seeds   Seeds
	Borders map[ControlKind]BorderSpec
	states  [intentCount]StateColors
}

// Build derives a theme from seeds with the default control borders.
func Build(seeds Seeds) (Theme, error) {
	t := Theme{Seeds: seeds, Borders: DefaultBorders()}
	for _, i := range Intents() {
		t.states[i] = FromSeed(seeds.Seed(i))
	}
	return t, t.validate()
}

// WithSeeds rebuilds the state colours from seeds and keeps the borders of t.
func (t Theme) WithSeeds(seeds Seeds) (Theme, error) {
	out, err := Build(seeds)
	if err != nil {
		return Theme{}, err
	}
	for k, b := range t.Borders {
		out.Borders[k] = b
	}
	return out, out.validate()
}

// Default is Build(DefaultSeeds()).
func Default() Theme {
	t, _ := Build(DefaultSeeds())
	return t
}

func (t Theme) validate() error {
	for k, b := range t.Borders {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: %s border: %v", ErrInvalidTheme, k, err)
		}
	}
	return nil
}

// For returns the state colours of an intent.
func (t Theme) For(i Intent) (StateColors, bool) {
	if i >= intentCount {
		return StateColors{}, false
	}
	return t.states[i], true
}

// Control returns the brushes of a solid control, like a primary button.
func (t Theme) Control(i Intent, s State) (Brushes, error) {
	sc, ok := t.For(i)
	if !ok {
		return Brushes{}, fmt.Errorf("unknown intent %s", i)
	}
	switch s {
	case Normal:
		return Brushes{Background: sc.Base, Border: sc.Base, Text: palette.White}, nil
	case Hover, Focused:
		return Brushes{Background: sc.Hover, Border: sc.Hover, Text: palette.White}, nil
	case Pressed:
		return Brushes{Background: sc.Active, Border: sc.Active, Text: palette.White}, nil
	case Disabled:
		return disabled(), nil
	}
	return Brushes{}, fmt.Errorf("unknown state %s", s)
}

// Subtle returns the brushes of a tinted control, like a tag or an alert.
func (t Theme) Subtle(i Intent, s State) (Brushes, error) {
	sc, ok := t.For(i)
	if !ok {
		return Brushes{}, fmt.Errorf("unknown intent %s", i)
	}
	switch s {
	case Normal:
		return Brushes{Background: sc.Background, Border: sc.Border, Text: sc.Text}, nil
	case Hover, Focused:
		return Brushes{Background: sc.BackgroundHover, Border: sc.BorderHover, Text: sc.TextHover}, nil
	case Pressed:
		return Brushes{Background: sc.BackgroundHover, Border: sc.Active, Text: sc.TextActive}, nil
	case Disabled:
		return disabled(), nil
	}
	return Brushes{}, fmt.Errorf("unknown state %s", s)
}

// Border returns the border of a control kind, falling back to the default.
func (t Theme) Border(k ControlKind) BorderSpec {
	if b, ok := t.Borders[k]; ok {
		return b
	}
	return DefaultBorders()[k]
}
