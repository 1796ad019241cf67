// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradle

import (
	"fmt"
	"sort"
	"strings"
)

// DuplicatePropertyError reports a version variable that was set twice.
type DuplicatePropertyError struct {
	Key string
}

func (e *DuplicatePropertyError) Error() string {
	return fmt.Sprintf("version property %q set twice", e.Key)
}

// Properties maps property names to values. Iteration is always in key
// order so rendering is deterministic.
type Properties struct {
	values   map[string]string
	versions map[string]bool
}

// NewProperties creates an empty property map.
func NewProperties() *Properties {
	return &Properties{
		values:   make(map[string]string),
		versions: make(map[string]bool),
	}
}

// Set sets key to value. The last write wins.
func (p *Properties) Set(key, value string) {
	p.values[key] = value
}

// SetVersion sets a resolved version variable. A version variable may be
// set once; a second call fails with *DuplicatePropertyError.
func (p *Properties) SetVersion(key, value string) error {
	if _, ok := p.values[key]; ok {
		return &DuplicatePropertyError{Key: key}
	}
	p.values[key] = value
	p.versions[key] = true
	return nil
}

// Get returns the value of key.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// IsVersion reports whether key was set by SetVersion.
func (p *Properties) IsVersion(key string) bool {
	return p.versions[key]
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.values)
}

// Keys returns the property names in sorted order.
func (p *Properties) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge copies every property of other into p. A key present in both with
// different values is an error.
func (p *Properties) Merge(other *Properties) error {
	for _, k := range other.Keys() {
		v := other.values[k]
		if old, ok := p.values[k]; ok && old != v {
			return fmt.Errorf("conflicting values for property %q: %q and %q", k, old, v)
		}
		p.values[k] = v
		if other.versions[k] {
			p.versions[k] = true
		}
	}
	return nil
}

// Render returns one "key=value" line per property.
func (p *Properties) Render() string {
	var b strings.Builder
	for _, k := range p.Keys() {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(p.values[k])
		b.WriteByte('\n')
	}
	return b.String()
}

// replaceMap returns the properties as {key} placeholders.
func (p *Properties) replaceMap() map[string]string {
	m := make(map[string]string, len(p.values))
	for k, v := range p.values {
		m["{"+k+"}"] = v
	}
	return m
}
