// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package module defines the Coordinate and Version types that identify
// libraries in a remote package repository.
package module

import (
	"fmt"
	"strings"

	"golang.org/x/mod/module"
)

// A Coordinate identifies a library in a package repository independent of
// its version. Coordinates are comparable and serve as cache keys.
type Coordinate struct {
	Group    string // e.g. "com.badlogicgames.gdx"
	Artifact string // e.g. "gdx"
}

// String returns the coordinate in the form "group:artifact".
func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact
}

// ParseCoordinate parses a coordinate in the form "group:artifact".
func ParseCoordinate(s string) (Coordinate, error) {
	group, artifact, ok := strings.Cut(s, ":")
	if !ok || group == "" || artifact == "" || strings.Contains(artifact, ":") {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q, expected group:artifact", s)
	}
	return Coordinate{Group: group, Artifact: artifact}, nil
}

// A Version is a coordinate pinned to a concrete version string.
// The version string is opaque: it is whatever the repository reports.
type Version struct {
	Coordinate
	Version string
}

// String returns the version in the form "group:artifact:version".
func (v Version) String() string {
	return v.Coordinate.String() + ":" + v.Version
}

// CheckPath reports whether path is a valid slash-separated relative output
// path: not empty, not absolute, and without "." or ".." elements.
func CheckPath(path string) error {
	if err := module.CheckFilePath(path); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	return nil
}
