// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generate

import (
	"path/filepath"
	"strings"
)

// Project holds the user's answers that every platform draws from.
type Project struct {
	Name        string   // application name
	Package     string   // root Java package, e.g. "com.example.demo"
	Destination string   // output directory chosen by the user
	Reflective  []string // classes the Switch transpiler must keep reflective
}

// DestName returns the last element of Destination, or Name when unset.
func (p Project) DestName() string {
	if p.Destination == "" {
		return p.Name
	}
	return filepath.Base(filepath.Clean(p.Destination))
}

// vars returns the project variables used to expand file paths, replace
// map values and task texts of platform id.
func (p Project) vars(id string) map[string]string {
	var reflective strings.Builder
	for _, class := range p.Reflective {
		reflective.WriteString("\t\t\"")
		reflective.WriteString(class)
		reflective.WriteString("\",\n")
	}
	return map[string]string{
		"{NAME}":         p.Name,
		"{PACKAGE}":      p.Package,
		"{PACKAGE_PATH}": strings.ReplaceAll(p.Package, ".", "/"),
		"{DEST_NAME}":    p.DestName(),
		"{ID}":           id,
		"{REFLECTIVE}":   reflective.String(),
	}
}
