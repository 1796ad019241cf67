// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package versions provides functionality for reading and writing the
// versions.json snapshot of a generation run's resolved versions.
package versions

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/goplus/liftoff/mod/module"
)

// Entry is a single resolved coordinate as stored in versions.json.
type Entry struct {
	Coordinate string `json:"coordinate"` // group:artifact
	Version    string `json:"version"`
}

// Snapshot represents the set of versions a run resolved.
type Snapshot struct {
	Versions []Entry `json:"versions"`
}

// FromMap builds a snapshot sorted by coordinate.
func FromMap(m map[module.Coordinate]string) *Snapshot {
	s := &Snapshot{Versions: make([]Entry, 0, len(m))}
	for c, v := range m {
		s.Versions = append(s.Versions, Entry{Coordinate: c.String(), Version: v})
	}
	sort.Slice(s.Versions, func(i, j int) bool {
		return s.Versions[i].Coordinate < s.Versions[j].Coordinate
	})
	return s
}

// Map returns the snapshot keyed by coordinate.
// It fails if an entry has a malformed coordinate or an empty version.
func (s *Snapshot) Map() (map[module.Coordinate]string, error) {
	m := make(map[module.Coordinate]string, len(s.Versions))
	for _, e := range s.Versions {
		c, err := module.ParseCoordinate(e.Coordinate)
		if err != nil {
			return nil, err
		}
		if e.Version == "" {
			return nil, fmt.Errorf("empty version for %s", e.Coordinate)
		}
		m[c] = e.Version
	}
	return m, nil
}

// Marshal encodes the snapshot as indented JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	return json.MarshalIndent(s, "", "\t")
}

// Parse decodes a snapshot. file names the source in errors.
func Parse(file string, data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		if file == "" {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return &s, nil
}

// ReadFile reads and decodes the snapshot stored at file.
func ReadFile(file string) (*Snapshot, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(file, data)
}
