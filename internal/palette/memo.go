/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package palette

import "sync"

type memoKey struct {
	seed  Color
	index int
}

// Memo caches Tone results. The zero value is ready to use and safe for
// concurrent use.
type Memo struct {
	mu      sync.RWMutex
	entries map[memoKey]Color
}

// Tone is Tone with memoisation. Errors are not cached.
func (m *Memo) Tone(seed Color, index int) (Color, error) {
	k := memoKey{seed, index}
	m.mu.RLock()
	c, ok := m.entries[k]
	m.mu.RUnlock()
	if ok {
		return c, nil
	}
	c, err := Tone(seed, index)
	if err != nil {
		return Color{}, err
	}
	m.mu.Lock()
	if m.entries == nil {
		m.entries = make(map[memoKey]Color)
	}
	m.entries[k] = c
	m.mu.Unlock()
	return c, nil
}

// Len reports the number of cached entries.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
