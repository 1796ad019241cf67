// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tasks collects human-readable descriptions of generated build
// tasks for display.
package tasks

import "sync"

// Description describes one build task of a platform.
type Description struct {
	Platform string
	Task     string
	Text     string
}

// Aggregator is an append-only list of task descriptions. Insertion order
// is preserved per platform and duplicate task names are kept.
// It is safe for concurrent use.
type Aggregator struct {
	mu        sync.Mutex
	byID      map[string][]Description
	platforms []string
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{byID: make(map[string][]Description)}
}

// Add appends a description of task for platformID.
func (a *Aggregator) Add(platformID, task, text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.byID[platformID]; !ok {
		a.platforms = append(a.platforms, platformID)
	}
	a.byID[platformID] = append(a.byID[platformID], Description{
		Platform: platformID,
		Task:     task,
		Text:     text,
	})
}

// AllFor returns the descriptions of platformID in the order added.
func (a *Aggregator) AllFor(platformID string) []Description {
	a.mu.Lock()
	defer a.mu.Unlock()
	descs := a.byID[platformID]
	out := make([]Description, len(descs))
	copy(out, descs)
	return out
}

// Platforms returns the platform ids in the order they were first added.
func (a *Aggregator) Platforms() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.platforms))
	copy(out, a.platforms)
	return out
}
