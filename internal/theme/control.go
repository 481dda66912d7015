/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package theme

import (
	"fmt"
	"strings"

	"antdkit/internal/geometry"
)

// ControlKind names a control whose border the theme describes.
type ControlKind string

const (
	Button ControlKind = "button"
	Tag    ControlKind = "tag"
	Alert  ControlKind = "alert"
	Switch ControlKind = "switch"
	Badge  ControlKind = "badge"
	Avatar ControlKind = "avatar"
)

// ControlKinds lists the kinds in a stable order.
func ControlKinds() []ControlKind { return []ControlKind{Button, Tag, Alert, Switch, Badge, Avatar} }

func ParseControlKind(s string) (ControlKind, error) {
	k := ControlKind(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range ControlKinds() {
		if c == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown control %q", s)
}

// BorderSpec is the border shape handed to the geometry builder.
type BorderSpec struct {
	Radius    geometry.CornerRadius
	Thickness geometry.Thickness
	Style     geometry.BorderStyle
}

func (b BorderSpec) Validate() error {
	if err := b.Radius.Validate(geometry.Strict); err != nil {
		return err
	}
	return b.Thickness.Validate(geometry.Strict)
}

// Geometry computes the border for a control of the given size.
func (b BorderSpec) Geometry(bounds geometry.Rect) (geometry.Geometry, error) {
	return geometry.Compute(bounds, b.Radius, b.Thickness)
}

// DefaultBorders are the stock control borders.
func DefaultBorders() map[ControlKind]BorderSpec {
	one := geometry.UniformThickness(1)
	return map[ControlKind]BorderSpec{
		Button: {Radius: geometry.UniformRadius(6), Thickness: one},
		Tag:    {Radius: geometry.UniformRadius(4), Thickness: one},
		Alert:  {Radius: geometry.UniformRadius(8), Thickness: one},
		Switch: {Radius: geometry.UniformRadius(11)},
		Badge:  {Radius: geometry.UniformRadius(10), Thickness: one},
		Avatar: {Radius: geometry.UniformRadius(16)},
	}
}
