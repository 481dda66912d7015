/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"log/slog"
	"sync"

	applog "antdkit/internal/log"
)

type cacheKey struct {
	rect      Rect
	radii     CornerRadius
	thickness Thickness
}

// Cache memoises Compute for borders that share sizes (list rows, button groups).
// It is safe for concurrent use. Cached geometries must not be mutated.
type Cache struct {
	mu      sync.Mutex
	limit   int
	entries map[cacheKey]Geometry
	hits    int
	misses  int
}

// NewCache returns a cache holding at most limit entries; limit <= 0 means 256.
// A full cache is cleared before the next insert.
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = 256
	}
	return &Cache{limit: limit, entries: make(map[cacheKey]Geometry)}
}

// Get returns the cached geometry for the inputs, computing it on a miss.
// Invalid inputs are never cached.
func (c *Cache) Get(outer Rect, radii CornerRadius, thickness Thickness) (Geometry, error) {
	k := cacheKey{outer, radii, thickness}
	c.mu.Lock()
	if g, ok := c.entries[k]; ok {
		c.hits++
		c.mu.Unlock()
		return g, nil
	}
	c.misses++
	c.mu.Unlock()

	g, err := Compute(outer, radii, thickness)
	if err != nil {
		return Geometry{}, err
	}
	c.mu.Lock()
	if len(c.entries) >= c.limit {
		c.entries = make(map[cacheKey]Geometry)
	}
	c.entries[k] = g
	c.mu.Unlock()
	return g, nil
}

// Invalidate drops every entry.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]Geometry)
	c.mu.Unlock()
}

// Stats returns hit and miss counters.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Border is the stateful owner of one border's parameters. Setters validate
// and reject bad values, keeping the previous one; any accepted change drops
// the cached geometry, which Geometry rebuilds on the next call.
type Border struct {
	mu        sync.Mutex
	bounds    Rect
	radius    CornerRadius
	thickness Thickness
	style     BorderStyle
	dpiScale  float64 // 0 disables layout rounding
	cached    *Geometry
	log       *slog.Logger
}

// NewBorder validates the initial parameters.
func NewBorder(bounds Rect, radius CornerRadius, thickness Thickness) (*Border, error) {
	if err := validate(bounds, radius, thickness); err != nil {
		return nil, err
	}
	return &Border{
		bounds:    bounds,
		radius:    radius,
		thickness: thickness,
		log:       applog.WithComponent("border"),
	}, nil
}

func (b *Border) reject(what string, err error) error {
	l := b.log
	if l == nil {
		l = applog.WithComponent("border")
	}
	l.Debug("reject "+what, slog.Any("err", err))
	return err
}

func (b *Border) SetBounds(r Rect) error {
	if err := validateRect(r); err != nil {
		return b.reject("bounds", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if r != b.bounds {
		b.bounds = r
		b.cached = nil
	}
	return nil
}

func (b *Border) SetCornerRadius(c CornerRadius) error {
	if err := c.Validate(Strict); err != nil {
		return b.reject("corner radius", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if c != b.radius {
		b.radius = c
		b.cached = nil
	}
	return nil
}

func (b *Border) SetThickness(t Thickness) error {
	if err := t.Validate(Strict); err != nil {
		return b.reject("thickness", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if t != b.thickness {
		b.thickness = t
		b.cached = nil
	}
	return nil
}

// SetStyle changes the dash style. Geometry does not depend on it, so the cache survives.
func (b *Border) SetStyle(s BorderStyle) {
	b.mu.Lock()
	b.style = s
	b.mu.Unlock()
}

// SetLayoutRounding enables pixel snapping at the given DPI scale; 0 disables it.
func (b *Border) SetLayoutRounding(dpiScale float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if dpiScale != b.dpiScale {
		b.dpiScale = dpiScale
		b.cached = nil
	}
}

func (b *Border) Style() BorderStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.style
}

func (b *Border) Thickness() Thickness {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.thickness
}

func (b *Border) CornerRadius() CornerRadius {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.radius
}

func (b *Border) Bounds() Rect {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bounds
}

// Geometry returns the current geometry, rebuilding it after an invalidation.
func (b *Border) Geometry() (Geometry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cached != nil {
		return *b.cached, nil
	}
	bounds, radius, thickness := b.bounds, b.radius, b.thickness
	if b.dpiScale > 0 {
		bounds = RoundRect(bounds, b.dpiScale)
		radius = RoundCornerRadius(radius, b.dpiScale)
		thickness = RoundThickness(thickness, b.dpiScale)
	}
	g, err := Compute(bounds, radius, thickness)
	if err != nil {
		return Geometry{}, err
	}
	b.cached = &g
	b.log.Debug("geometry rebuilt", slog.Bool("simple", g.Simple), slog.Int("lines", len(g.Lines)), slog.Int("arcs", len(g.Arcs)))
	return g, nil
}
