/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometryInput is returned for negative, NaN or infinite border parameters.
// A consumer receiving it must keep its previous value.
var ErrInvalidGeometryInput = errors.New("invalid geometry input")

// Policy relaxes validation for callers that tolerate NaN or +Inf values.
// The zero Policy is strict and is what the builder uses.
type Policy struct {
	AllowNaN      bool
	AllowInfinity bool
}

// Strict rejects negative, NaN and infinite values.
var Strict = Policy{}

func checkValue(what string, v float64, p Policy) error {
	switch {
	case math.IsNaN(v):
		if p.AllowNaN {
			return nil
		}
		return fmt.Errorf("%w: %s is NaN", ErrInvalidGeometryInput, what)
	case math.IsInf(v, 1):
		if p.AllowInfinity {
			return nil
		}
		return fmt.Errorf("%w: %s is infinite", ErrInvalidGeometryInput, what)
	case v < 0:
		return fmt.Errorf("%w: %s is negative (%g)", ErrInvalidGeometryInput, what, v)
	}
	return nil
}

// Edge names one side of a border.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	}
	return fmt.Sprintf("edge(%d)", uint8(e))
}

// Corner names one rounded corner of a border.
type Corner uint8

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top-left"
	case CornerTopRight:
		return "top-right"
	case CornerBottomRight:
		return "bottom-right"
	case CornerBottomLeft:
		return "bottom-left"
	}
	return fmt.Sprintf("corner(%d)", uint8(c))
}

// Thickness is the stroke width of each border edge.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// UniformThickness returns a thickness with all four edges set to v.
func UniformThickness(v float64) Thickness { return Thickness{v, v, v, v} }

func (t Thickness) IsZero() bool {
	return isZero(t.Left) && isZero(t.Top) && isZero(t.Right) && isZero(t.Bottom)
}

func (t Thickness) IsUniform() bool {
	return areClose(t.Left, t.Top) && areClose(t.Left, t.Right) && areClose(t.Left, t.Bottom)
}

// Half returns the thickness scaled by 0.5; used to locate the stroke centreline.
func (t Thickness) Half() Thickness {
	return Thickness{0.5 * t.Left, 0.5 * t.Top, 0.5 * t.Right, 0.5 * t.Bottom}
}

// Edge returns the thickness of one side.
func (t Thickness) Edge(e Edge) float64 {
	switch e {
	case EdgeLeft:
		return t.Left
	case EdgeTop:
		return t.Top
	case EdgeRight:
		return t.Right
	default:
		return t.Bottom
	}
}

func (t Thickness) Validate(p Policy) error {
	for _, e := range []Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom} {
		if err := checkValue("thickness."+e.String(), t.Edge(e), p); err != nil {
			return err
		}
	}
	return nil
}

// CornerRadius holds the radius of each rounded corner.
type CornerRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// UniformRadius returns a radius set with all four corners set to v.
func UniformRadius(v float64) CornerRadius { return CornerRadius{v, v, v, v} }

func (c CornerRadius) IsZero() bool {
	return isZero(c.TopLeft) && isZero(c.TopRight) && isZero(c.BottomRight) && isZero(c.BottomLeft)
}

func (c CornerRadius) IsUniform() bool {
	return areClose(c.TopLeft, c.TopRight) && areClose(c.TopLeft, c.BottomRight) && areClose(c.TopLeft, c.BottomLeft)
}

// Corner returns the radius of one corner.
func (c CornerRadius) Corner(k Corner) float64 {
	switch k {
	case CornerTopLeft:
		return c.TopLeft
	case CornerTopRight:
		return c.TopRight
	case CornerBottomRight:
		return c.BottomRight
	default:
		return c.BottomLeft
	}
}

func (c CornerRadius) Validate(p Policy) error {
	for _, k := range []Corner{CornerTopLeft, CornerTopRight, CornerBottomRight, CornerBottomLeft} {
		if err := checkValue("radius."+k.String(), c.Corner(k), p); err != nil {
			return err
		}
	}
	return nil
}

// validateRect rejects rectangles whose size is negative or not finite.
func validateRect(r Rect) error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"rect.x", r.X}, {"rect.y", r.Y}} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidGeometryInput, v.name)
		}
	}
	if err := checkValue("rect.width", r.W, Strict); err != nil {
		return err
	}
	return checkValue("rect.height", r.H, Strict)
}
