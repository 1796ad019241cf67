// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform defines the data records describing each target backend
// and the registry that orders them for a generation run.
package platform

import (
	"fmt"
	"strings"

	"github.com/goplus/liftoff/mod/module"
)

// -----------------------------------------------------------------------------

// Descriptor describes one target backend. A descriptor is plain data; the
// generator interprets it, so adding a platform never requires new code paths.
type Descriptor struct {
	ID          string // unique, stable; also the Gradle subproject name
	Order       int    // generation and display order
	Description string
	Standard    bool // false for optional or experimental backends

	Versions     []VersionVar
	Dependencies []Dependency
	Build        BuildTemplate
	Files        []FileSpec
	Tasks        []Task
}

// VersionVar declares a property whose value is the latest version of
// Coordinate in the named repository.
type VersionVar struct {
	Property   string
	Coordinate module.Coordinate
	Repository string // "maven" or "jitpack"
}

// Dependency is a single declaration in the generated dependencies block.
// Exactly one of Project, Var or Version selects what is declared.
type Dependency struct {
	Configuration string // e.g. "implementation", "api", "switchgdx"
	Coordinate    module.Coordinate
	Version       string // literal version, or "${name}" for a variable
	Var           string // version variable name in the property map
	Classifier    string // optional, e.g. "natives-desktop"
	Project       string // project dependency, e.g. "core"
}

// Dep returns a dependency on a literal version.
func Dep(configuration, group, artifact, version string) Dependency {
	return Dependency{
		Configuration: configuration,
		Coordinate:    module.Coordinate{Group: group, Artifact: artifact},
		Version:       version,
	}
}

// VarDep returns a dependency whose version is the value of a property.
func VarDep(configuration, group, artifact, property string) Dependency {
	return Dependency{
		Configuration: configuration,
		Coordinate:    module.Coordinate{Group: group, Artifact: artifact},
		Var:           property,
	}
}

// ProjectDep returns a dependency on another generated subproject.
func ProjectDep(configuration, id string) Dependency {
	return Dependency{Configuration: configuration, Project: id}
}

// VarName returns the version variable the dependency refers to, if any.
// Both Var and a Version of the form "${name}" count as references.
func (d Dependency) VarName() (string, bool) {
	if d.Var != "" {
		return d.Var, true
	}
	if strings.HasPrefix(d.Version, "${") && strings.HasSuffix(d.Version, "}") && len(d.Version) > 3 {
		return d.Version[2 : len(d.Version)-1], true
	}
	return "", false
}

// BuildTemplate is the platform-specific text of a build script. The
// dependencies block is emitted between Preamble and Body.
type BuildTemplate struct {
	Preamble string
	Body     string
}

// FileKind selects how a templated file is produced.
type FileKind int

const (
	// Copy copies the source bytes unchanged.
	Copy FileKind = iota
	// Replace substitutes tokens in the source text.
	Replace
)

func (k FileKind) String() string {
	switch k {
	case Copy:
		return "copy"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("FileKind(%d)", int(k))
}

// FileSpec declares an auxiliary file of a platform.
//
// Path and the values of Replace may reference project variables
// ({NAME}, {PACKAGE}, {PACKAGE_PATH}, {DEST_NAME}, {ID}, {REFLECTIVE}),
// which are expanded before the file is emitted.
type FileSpec struct {
	Kind    FileKind
	Path    string // destination, relative to the platform directory
	Source  string // path inside Assets()
	Replace map[string]string
}

// Task describes a generated build-automation entry point.
// Text may reference project variables.
type Task struct {
	Name string
	Text string
}
