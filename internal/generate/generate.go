// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generate runs the generation of platform build descriptors.
package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/goplus/liftoff/internal/files"
	"github.com/goplus/liftoff/internal/gradle"
	"github.com/goplus/liftoff/internal/remote"
	"github.com/goplus/liftoff/internal/resolver"
	"github.com/goplus/liftoff/internal/tasks"
	"github.com/goplus/liftoff/internal/template"
	"github.com/goplus/liftoff/mod/module"
	"github.com/goplus/liftoff/platform"
	"github.com/qiniu/x/log"
	"golang.org/x/sync/errgroup"
)

const (
	buildFile      = "build.gradle"
	propertiesFile = "gradle.properties"
	settingsFile   = "settings.gradle"
)

// PlatformError reports the platform whose generation failed.
type PlatformError struct {
	ID  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform %s: %v", e.ID, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// Context carries everything a run needs. Nothing in a run reads global
// state; two runs with different contexts never share versions.
type Context struct {
	Project   Project
	Resolvers map[string]*resolver.Resolver // by repository name
	Tasks     *tasks.Aggregator
	Emitter   *files.Emitter

	// Parallelism bounds the number of platforms generated at once.
	// Values below 1 mean sequential generation.
	Parallelism int
	// DryRun renders everything but writes nothing.
	DryRun bool
}

// Output is the generated result of one platform.
type Output struct {
	ID         string
	BuildFile  string
	Properties *gradle.Properties
	Files      []string // targets, in declaration order
}

// Result is the outcome of a run.
type Result struct {
	Platforms  []Output           // in descriptor order
	Properties *gradle.Properties // merged properties of all platforms
	Settings   string             // settings.gradle content
}

// NewResolvers creates one resolver per repository kind. endpoints
// overrides the default endpoint of a kind; seed pre-populates every
// resolver.
func NewResolvers(endpoints map[string]string, seed map[module.Coordinate]string) (map[string]*resolver.Resolver, error) {
	resolvers := make(map[string]*resolver.Resolver)
	for _, kind := range []string{remote.Maven, remote.JitPack} {
		idx, err := remote.NewIndex(kind, endpoints[kind])
		if err != nil {
			return nil, err
		}
		resolvers[kind] = resolver.New(idx, resolver.WithName(kind), resolver.WithSeed(seed))
	}
	return resolvers, nil
}

// Run generates descriptors, which must be in generation order. The first
// failure aborts the run; files already written stay on disk.
func Run(ctx context.Context, c *Context, descriptors []platform.Descriptor) (*Result, error) {
	if err := checkProjectDeps(descriptors); err != nil {
		return nil, err
	}
	outputs := make([]Output, len(descriptors))

	g, gctx := errgroup.WithContext(ctx)
	limit := c.Parallelism
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	for i, d := range descriptors {
		i, d := i, d // per-iteration copies (go 1.21 loop semantics)
		g.Go(func() error {
			out, err := c.generate(gctx, d)
			if err != nil {
				return &PlatformError{ID: d.ID, Err: err}
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Platforms:  outputs,
		Properties: gradle.NewProperties(),
		Settings:   settings(descriptors),
	}
	for _, out := range outputs {
		if err := result.Properties.Merge(out.Properties); err != nil {
			return nil, &PlatformError{ID: out.ID, Err: err}
		}
	}

	if !c.DryRun {
		if _, err := c.Emitter.Write("", propertiesFile, []byte(result.Properties.Render())); err != nil {
			return nil, err
		}
		if _, err := c.Emitter.Write("", settingsFile, []byte(result.Settings)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Versions returns the versions resolved by every resolver of c.
func (c *Context) Versions() map[module.Coordinate]string {
	all := make(map[module.Coordinate]string)
	for _, r := range c.Resolvers {
		for coord, v := range r.Snapshot() {
			all[coord] = v
		}
	}
	return all
}

func (c *Context) generate(ctx context.Context, d platform.Descriptor) (Output, error) {
	out := Output{ID: d.ID}
	vars := c.Project.vars(d.ID)

	props := gradle.NewProperties()
	props.Set("projectName", c.Project.Name)
	props.Set("rootPackage", c.Project.Package)
	if err := c.resolveVersions(ctx, d.Versions, props); err != nil {
		return out, err
	}
	out.Properties = props

	build, err := gradle.Render(d.Build, d.Dependencies, props)
	if err != nil {
		return out, fmt.Errorf("%s: %w", buildFile, err)
	}
	out.BuildFile = build
	if !c.DryRun {
		if _, err := c.Emitter.Write(d.ID, buildFile, []byte(build)); err != nil {
			return out, err
		}
	}

	for _, fspec := range d.Files {
		f, err := expandFile(d.ID, fspec, vars)
		if err != nil {
			return out, err
		}
		var target string
		if c.DryRun {
			if _, err = c.Emitter.Render(f); err == nil {
				target, err = c.Emitter.Target(f.Platform, f.Path)
			}
		} else {
			target, err = c.Emitter.Emit(f)
		}
		if err != nil {
			return out, fmt.Errorf("%s: %w", f.Path, err)
		}
		out.Files = append(out.Files, target)
	}

	for _, task := range d.Tasks {
		text, err := template.Substitute(task.Text, vars)
		if err != nil {
			return out, fmt.Errorf("task %s: %w", task.Name, err)
		}
		c.Tasks.Add(d.ID, task.Name, text)
	}

	log.Infof("generated %s (%d dependencies, %d files)", d.ID, len(d.Dependencies), len(out.Files))
	return out, nil
}

// resolveVersions resolves the version variables of a platform
// concurrently and stores them in declaration order.
func (c *Context) resolveVersions(ctx context.Context, vars []platform.VersionVar, props *gradle.Properties) error {
	resolvers := make([]*resolver.Resolver, len(vars))
	for i, v := range vars {
		r, ok := c.Resolvers[v.Repository]
		if !ok {
			return fmt.Errorf("version %s: unknown repository %q", v.Property, v.Repository)
		}
		resolvers[i] = r
	}

	versions := make([]string, len(vars))
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range vars {
		i, v := i, v // per-iteration copies (go 1.21 loop semantics)
		r := resolvers[i]
		g.Go(func() error {
			version, err := r.Resolve(gctx, v.Coordinate)
			if err != nil {
				return err
			}
			versions[i] = version
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, v := range vars {
		if err := props.SetVersion(v.Property, versions[i]); err != nil {
			return err
		}
	}
	return nil
}

func expandFile(id string, fspec platform.FileSpec, vars map[string]string) (files.File, error) {
	path, err := template.Substitute(fspec.Path, vars)
	if err != nil {
		return files.File{}, fmt.Errorf("path %s: %w", fspec.Path, err)
	}
	f := files.File{
		Kind:     fspec.Kind,
		Platform: id,
		Path:     path,
		Source:   fspec.Source,
	}
	if fspec.Kind == platform.Replace {
		f.Replace = make(map[string]string, len(fspec.Replace))
		for token, value := range fspec.Replace {
			expanded, err := template.Substitute(value, vars)
			if err != nil {
				return files.File{}, fmt.Errorf("%s: replacement %s: %w", fspec.Path, token, err)
			}
			f.Replace[token] = expanded
		}
	}
	return f, nil
}

// checkProjectDeps reports a project dependency on a platform that is not
// part of the run.
func checkProjectDeps(descriptors []platform.Descriptor) error {
	selected := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		selected[d.ID] = true
	}
	for _, d := range descriptors {
		for _, dep := range d.Dependencies {
			if dep.Project != "" && !selected[dep.Project] {
				return &PlatformError{ID: d.ID, Err: fmt.Errorf("depends on platform %q which is not selected", dep.Project)}
			}
		}
	}
	return nil
}

func settings(descriptors []platform.Descriptor) string {
	ids := make([]string, len(descriptors))
	for i, d := range descriptors {
		ids[i] = "'" + d.ID + "'"
	}
	return "include " + strings.Join(ids, ", ") + "\n"
}
