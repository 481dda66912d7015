/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package undo keeps a bounded linear undo/redo history of opaque state blobs.
package undo

import (
	"sync"
	"time"
)

// Snapshot is a state blob; the history only looks at its size and time.
type Snapshot struct {
	Blob []byte
	TS   time.Time
}

// Config controls memory and depth caps and coalescing behavior.
type Config struct {
	// MaxBytes is a soft cap; the oldest undo entries are pruned when exceeded.
	MaxBytes int
	// MaxDepth limits the number of undo steps (0 means unlimited).
	MaxDepth int
	// MinInterval coalesces pushes closer together than the interval: the
	// older snapshot is kept so one drag undoes in one step. 0 disables it.
	MinInterval time.Duration
}

// History is an undo/redo stack. Push records the state before a change;
// Undo and Redo swap the caller's current state with the stored one.
// It is safe for concurrent use.
type History struct {
	cfg        Config
	mu         sync.Mutex
	undo       []Snapshot
	redo       []Snapshot
	totalBytes int
}

func New(cfg Config) *History {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 16 * 1024 * 1024 // 16 MiB
	}
	return &History{cfg: cfg}
}

// Push records s as the state to return to. Any new change clears redo.
func (h *History) Push(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clearRedoLocked()
	if n := len(h.undo); n > 0 && h.cfg.MinInterval > 0 {
		last := &h.undo[n-1]
		if s.TS.Sub(last.TS) < h.cfg.MinInterval {
			// keep the older state, extend the window
			last.TS = s.TS
			return
		}
	}
	h.undo = append(h.undo, s)
	h.totalBytes += len(s.Blob)
	h.enforceCapsLocked()
}

// Undo returns the previous state and keeps current for Redo.
func (h *History) Undo(current []byte) ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.undo)
	if n == 0 {
		return nil, false
	}
	s := h.undo[n-1]
	h.undo = h.undo[:n-1]
	h.totalBytes -= len(s.Blob)
	h.redo = append(h.redo, Snapshot{Blob: current, TS: time.Now()})
	h.totalBytes += len(current)
	return s.Blob, true
}

// Redo returns the state undone last and keeps current for Undo.
func (h *History) Redo(current []byte) ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.redo)
	if n == 0 {
		return nil, false
	}
	s := h.redo[n-1]
	h.redo = h.redo[:n-1]
	h.totalBytes -= len(s.Blob)
	// a redone state never coalesces with the next push
	h.undo = append(h.undo, Snapshot{Blob: current})
	h.totalBytes += len(current)
	h.enforceCapsLocked()
	return s.Blob, true
}

func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

// Clear drops all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo, h.redo, h.totalBytes = nil, nil, 0
}

// Stats returns current sizes for diagnostics.
func (h *History) Stats() (totalBytes, undoSteps, redoSteps int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.totalBytes, len(h.undo), len(h.redo)
}

func (h *History) clearRedoLocked() {
	for _, s := range h.redo {
		h.totalBytes -= len(s.Blob)
	}
	h.redo = nil
}

func (h *History) enforceCapsLocked() {
	drop := 0
	if h.cfg.MaxDepth > 0 && len(h.undo) > h.cfg.MaxDepth {
		drop = len(h.undo) - h.cfg.MaxDepth
	}
	// Global memory cap: prune oldest, but never the newest step
	bytes := h.totalBytes
	for i := 0; i < drop; i++ {
		bytes -= len(h.undo[i].Blob)
	}
	for bytes > h.cfg.MaxBytes && drop < len(h.undo)-1 {
		bytes -= len(h.undo[drop].Blob)
		drop++
	}
	if drop == 0 {
		return
	}
	h.totalBytes = bytes
	h.undo = append([]Snapshot(nil), h.undo[drop:]...)
}
