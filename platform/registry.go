// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import (
	"fmt"
	"sort"
)

// DuplicateIDError reports a second registration of a platform id.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("platform %q already registered", e.ID)
}

// Registry is the ordered, deduplicated set of platforms of a run.
type Registry struct {
	descriptors []Descriptor
	index       map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds d. It fails with *DuplicateIDError if d.ID is taken.
func (r *Registry) Register(d Descriptor) error {
	if d.ID == "" {
		return fmt.Errorf("platform id is empty")
	}
	if _, ok := r.index[d.ID]; ok {
		return &DuplicateIDError{ID: d.ID}
	}
	r.index[d.ID] = len(r.descriptors)
	r.descriptors = append(r.descriptors, d)
	return nil
}

// Get returns the descriptor registered under id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	i, ok := r.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// Len returns the number of registered platforms.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// AllOrdered returns all descriptors sorted by Order; ties keep
// registration order.
func (r *Registry) AllOrdered() []Descriptor {
	all := make([]Descriptor, len(r.descriptors))
	copy(all, r.descriptors)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Order < all[j].Order
	})
	return all
}

// OrderAfter returns an order directly after the platform id, so a new
// platform can declare itself as following an existing one.
func (r *Registry) OrderAfter(id string) (int, error) {
	d, ok := r.Get(id)
	if !ok {
		return 0, fmt.Errorf("unknown platform %q", id)
	}
	return d.Order + 1, nil
}

// Select returns the descriptors for ids in registry order.
// Repeated ids are returned once; unknown ids are an error.
func (r *Registry) Select(ids ...string) ([]Descriptor, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := r.index[id]; !ok {
			return nil, fmt.Errorf("unknown platform %q", id)
		}
		want[id] = true
	}
	var selected []Descriptor
	for _, d := range r.AllOrdered() {
		if want[d.ID] {
			selected = append(selected, d)
		}
	}
	return selected, nil
}
