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
	"math"
	"testing"
)

func TestRectInset(t *testing.T) {
	r := R(10, 20, 100, 50)
	in := r.Inset(5, 5)
	if in.X != 15 || in.Y != 25 || in.W != 90 || in.H != 40 {
		t.Fatalf("unexpected inset: %+v", in)
	}
	if c := r.Inset(30, 30); c.W != 40 || c.H != 0 || !c.Empty() {
		t.Fatalf("inset should clamp height at zero: %+v", c)
	}
}

func TestRectDeflate(t *testing.T) {
	d := R(0, 0, 100, 50).Deflate(Thickness{1, 2, 3, 4})
	if d.X != 1 || d.Y != 2 || d.W != 96 || d.H != 44 {
		t.Fatalf("unexpected deflate: %+v", d)
	}
	if d := R(0, 0, 4, 4).Deflate(UniformThickness(3)); d.W != 0 || d.H != 0 {
		t.Fatalf("deflate should clamp at zero: %+v", d)
	}
}

func TestAffineBasic(t *testing.T) {
	p := Scale(2, 3).Apply(Pt{1, 1})
	if p.X != 2 || p.Y != 3 {
		t.Fatalf("unexpected scale result: %+v", p)
	}
	if q := Translate(10, 5).Apply(p); q != (Pt{12, 8}) {
		t.Fatalf("unexpected translate result: %+v", q)
	}
}

func TestUniformityTolerance(t *testing.T) {
	if !UniformThickness(1).IsUniform() {
		t.Fatalf("uniform thickness reported non-uniform")
	}
	if !(Thickness{1, 1 + 1e-17, 1, 1}).IsUniform() {
		t.Fatalf("values within epsilon should compare equal")
	}
	if (CornerRadius{4, 4, 4, 5}).IsUniform() {
		t.Fatalf("distinct radii reported uniform")
	}
	if !(CornerRadius{}).IsZero() || (Thickness{0, 0, 0, 1}).IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}

func TestValidatePolicy(t *testing.T) {
	nan := Thickness{Left: math.NaN()}
	if err := nan.Validate(Strict); !errors.Is(err, ErrInvalidGeometryInput) {
		t.Fatalf("strict should reject NaN, got %v", err)
	}
	if err := nan.Validate(Policy{AllowNaN: true}); err != nil {
		t.Fatalf("AllowNaN should accept NaN, got %v", err)
	}
	inf := CornerRadius{BottomLeft: math.Inf(1)}
	if err := inf.Validate(Policy{AllowInfinity: true}); err != nil {
		t.Fatalf("AllowInfinity should accept +Inf, got %v", err)
	}
	if err := (CornerRadius{TopRight: -1}).Validate(Policy{AllowNaN: true, AllowInfinity: true}); err == nil {
		t.Fatalf("negative values are never allowed")
	}
}

func TestEdgeAndCornerNames(t *testing.T) {
	if EdgeBottom.String() != "bottom" || CornerTopRight.String() != "top-right" {
		t.Fatalf("unexpected names %s %s", EdgeBottom, CornerTopRight)
	}
	if Edge(9).String() != "edge(9)" {
		t.Fatalf("unexpected fallback name %s", Edge(9))
	}
}
