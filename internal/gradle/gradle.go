// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradle renders the build scripts of generated platforms.
package gradle

import (
	"fmt"
	"strings"

	"github.com/goplus/liftoff/internal/template"
	"github.com/goplus/liftoff/platform"
)

// Render returns the build script for a platform: the preamble, a
// dependencies block with one line per entry in declaration order, and the
// body. Preamble and body placeholders of the form {key} are replaced with
// properties; a {key} without a property, or a dependency on an unset
// version variable, fails with *template.UnresolvedPlaceholderError.
//
// The result depends only on the arguments.
func Render(tmpl platform.BuildTemplate, deps []platform.Dependency, props *Properties) (string, error) {
	replace := props.replaceMap()

	preamble, err := template.Substitute(tmpl.Preamble, replace)
	if err != nil {
		return "", fmt.Errorf("preamble: %w", err)
	}
	block, err := renderDependencies(deps, props)
	if err != nil {
		return "", err
	}
	body, err := template.Substitute(tmpl.Body, replace)
	if err != nil {
		return "", fmt.Errorf("body: %w", err)
	}
	return preamble + block + body, nil
}

func renderDependencies(deps []platform.Dependency, props *Properties) (string, error) {
	var b strings.Builder
	b.WriteString("dependencies {\n")
	for _, dep := range deps {
		line, err := DependencyLine(dep, props)
		if err != nil {
			return "", err
		}
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String(), nil
}

// DependencyLine formats a single dependency declaration.
func DependencyLine(dep platform.Dependency, props *Properties) (string, error) {
	configuration := dep.Configuration
	if configuration == "" {
		configuration = "implementation"
	}
	if dep.Project != "" {
		return fmt.Sprintf("%s project(':%s')", configuration, dep.Project), nil
	}

	version := dep.Version
	if name, ok := dep.VarName(); ok {
		v, ok := props.Get(name)
		if !ok {
			return "", fmt.Errorf("dependency %s: %w", dep.Coordinate, &template.UnresolvedPlaceholderError{Token: "{" + name + "}"})
		}
		version = v
	}
	if version == "" {
		return "", fmt.Errorf("dependency %s: no version", dep.Coordinate)
	}

	ref := dep.Coordinate.String() + ":" + version
	if dep.Classifier != "" {
		ref += ":" + dep.Classifier
	}
	return fmt.Sprintf("%s \"%s\"", configuration, ref), nil
}
