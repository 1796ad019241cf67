// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package files emits the auxiliary files of generated platforms.
package files

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/goplus/liftoff/internal/template"
	"github.com/goplus/liftoff/mod/module"
	"github.com/goplus/liftoff/platform"
	"github.com/qiniu/x/log"
)

// File is a single templated file operation.
type File struct {
	Kind     platform.FileKind
	Platform string // platform id; empty for project root files
	Path     string // destination, slash-separated, relative to the platform directory
	Source   string // path in the asset filesystem
	Replace  map[string]string
}

// Emitter writes files below an output directory, reading sources from an
// asset filesystem. Files already written are never rolled back.
type Emitter struct {
	assets fs.FS
	dir    string
}

// NewEmitter creates an Emitter rooted at dir.
func NewEmitter(assets fs.FS, dir string) *Emitter {
	return &Emitter{assets: assets, dir: dir}
}

// Target returns the OS path that rel inside the platform directory maps to.
func (e *Emitter) Target(platformID, rel string) (string, error) {
	full := rel
	if platformID != "" {
		full = path.Join(platformID, rel)
	}
	if err := module.CheckPath(full); err != nil {
		return "", err
	}
	return filepath.Join(e.dir, filepath.FromSlash(full)), nil
}

// Render returns the content of f without writing it.
// Copy files are returned byte for byte; Replace is ignored for them.
func (e *Emitter) Render(f File) ([]byte, error) {
	data, err := fs.ReadFile(e.assets, f.Source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Source, err)
	}
	switch f.Kind {
	case platform.Copy:
		return data, nil
	case platform.Replace:
		out, err := template.Substitute(string(data), f.Replace)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Source, err)
		}
		if unused := template.Unused(string(data), f.Replace); len(unused) > 0 {
			log.Debugf("%s: unused replacements %s", f.Source, strings.Join(unused, ", "))
		}
		return []byte(out), nil
	}
	return nil, fmt.Errorf("unknown file kind %v", f.Kind)
}

// Emit writes f and returns the path written.
func (e *Emitter) Emit(f File) (string, error) {
	target, err := e.Target(f.Platform, f.Path)
	if err != nil {
		return "", err
	}
	if f.Kind == platform.Copy {
		return target, e.copyFile(f.Source, target)
	}
	data, err := e.Render(f)
	if err != nil {
		return "", err
	}
	return target, writeFile(target, data)
}

// Write writes data to rel inside the platform directory.
func (e *Emitter) Write(platformID, rel string, data []byte) (string, error) {
	target, err := e.Target(platformID, rel)
	if err != nil {
		return "", err
	}
	return target, writeFile(target, data)
}

func (e *Emitter) copyFile(source, target string) error {
	src, err := e.assets.Open(source)
	if err != nil {
		return fmt.Errorf("open %s: %w", source, err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("copy %s: %w", source, err)
	}
	return dst.Close()
}

func writeFile(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0644)
}
