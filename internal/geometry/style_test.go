/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"reflect"
	"testing"
)

func TestParseBorderStyle(t *testing.T) {
	for in, want := range map[string]BorderStyle{"": Solid, "solid": Solid, " Dashed ": Dashed, "DOTTED": Dotted} {
		got, err := ParseBorderStyle(in)
		if err != nil || got != want {
			t.Fatalf("%q: got %v, %v", in, got, err)
		}
	}
	if _, err := ParseBorderStyle("groove"); err == nil {
		t.Fatalf("expected error for unsupported style")
	}
}

func TestBorderStyleText(t *testing.T) {
	b, _ := Dashed.MarshalText()
	var s BorderStyle
	if err := s.UnmarshalText(b); err != nil || s != Dashed {
		t.Fatalf("text round trip: %v %v", s, err)
	}
	if err := s.UnmarshalText([]byte("wavy")); err == nil || s != Dashed {
		t.Fatalf("bad text must leave value untouched")
	}
}

func TestDashes(t *testing.T) {
	if d := Solid.Dashes(2); d != nil {
		t.Fatalf("solid: %v", d)
	}
	if d := Dotted.Dashes(2); !reflect.DeepEqual(d, []float64{2, 2}) {
		t.Fatalf("dotted: %v", d)
	}
	if d := Dashed.Dashes(2); !reflect.DeepEqual(d, []float64{6, 2}) {
		t.Fatalf("dashed: %v", d)
	}
	if d := Dashed.Dashes(0); d != nil {
		t.Fatalf("zero width: %v", d)
	}
}
