// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import (
	"io/fs"
	"reflect"
	"testing"
)

func TestBuiltin(t *testing.T) {
	r := Builtin()

	want := []string{Core, LWJGL3, Headless, IOSMOE, Switch}
	if got := ids(r.AllOrdered()); !reflect.DeepEqual(got, want) {
		t.Errorf("AllOrdered() = %v, want %v", got, want)
	}

	moe, _ := r.Get(IOSMOE)
	sw, ok := r.Get(Switch)
	if !ok {
		t.Fatal("switch not registered")
	}
	if sw.Order != moe.Order+1 {
		t.Errorf("switch order = %d, want %d", sw.Order, moe.Order+1)
	}
	if sw.Standard {
		t.Error("switch should not be a standard platform")
	}
	if sw.Description != "Nintendo Switch Homebrew backend using SwitchGDX" {
		t.Errorf("switch description = %q", sw.Description)
	}

	var tasks []string
	for _, task := range sw.Tasks {
		tasks = append(tasks, task.Name)
	}
	if want := []string{"transpile", "run", "nro", "deploy", "ryujinx", "uwp"}; !reflect.DeepEqual(tasks, want) {
		t.Errorf("switch tasks = %v, want %v", tasks, want)
	}
}

func TestBuiltin_AssetsExist(t *testing.T) {
	assets := Assets()
	for _, d := range Builtin().AllOrdered() {
		for _, f := range d.Files {
			if _, err := fs.Stat(assets, f.Source); err != nil {
				t.Errorf("%s: asset %s: %v", d.ID, f.Source, err)
			}
		}
	}
}

func TestBuiltin_VersionVarsCoverDependencies(t *testing.T) {
	for _, d := range Builtin().AllOrdered() {
		declared := make(map[string]bool)
		for _, v := range d.Versions {
			declared[v.Property] = true
		}
		for _, dep := range d.Dependencies {
			if name, ok := dep.VarName(); ok && !declared[name] {
				t.Errorf("%s: dependency %s uses undeclared version variable %s", d.ID, dep.Coordinate, name)
			}
		}
	}
}
