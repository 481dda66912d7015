/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"fmt"
	"strings"
)

// BorderStyle selects the dash pattern of a stroke. It never changes the geometry.
type BorderStyle uint8

const (
	Solid BorderStyle = iota
	Dotted
	Dashed
)

func (s BorderStyle) String() string {
	switch s {
	case Solid:
		return "solid"
	case Dotted:
		return "dotted"
	case Dashed:
		return "dashed"
	}
	return fmt.Sprintf("BorderStyle(%d)", uint8(s))
}

// ParseBorderStyle accepts the lower-case names produced by String.
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "solid":
		return Solid, nil
	case "dotted":
		return Dotted, nil
	case "dashed":
		return Dashed, nil
	}
	return Solid, fmt.Errorf("unknown border style %q", s)
}

func (s BorderStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *BorderStyle) UnmarshalText(b []byte) error {
	v, err := ParseBorderStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Dashes returns the on/off dash array in absolute units for a pen of the given width.
// Solid strokes return nil.
func (s BorderStyle) Dashes(width float64) []float64 {
	if width <= 0 {
		return nil
	}
	switch s {
	case Dotted:
		return []float64{width, width}
	case Dashed:
		return []float64{3 * width, width}
	}
	return nil
}
