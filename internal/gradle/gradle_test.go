// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradle

import (
	"errors"
	"testing"

	"github.com/goplus/liftoff/internal/template"
	"github.com/goplus/liftoff/mod/module"
	"github.com/goplus/liftoff/platform"
)

func TestRender_DependencyOrder(t *testing.T) {
	props := NewProperties()
	if err := props.SetVersion("ver", "2.0.0"); err != nil {
		t.Fatal(err)
	}
	deps := []platform.Dependency{
		platform.Dep("implementation", "com.foo", "bar", "1.2.0"),
		platform.Dep("implementation", "com.foo", "baz", "${ver}"),
	}

	got, err := Render(platform.BuildTemplate{}, deps, props)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "dependencies {\n" +
		"    implementation \"com.foo:bar:1.2.0\"\n" +
		"    implementation \"com.foo:baz:2.0.0\"\n" +
		"}\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_Layout(t *testing.T) {
	props := NewProperties()
	props.Set("projectName", "Demo")
	if err := props.SetVersion("gdxVersion", "1.12.1"); err != nil {
		t.Fatal(err)
	}
	tmpl := platform.BuildTemplate{
		Preamble: "// {projectName}\n",
		Body:     "\ntask run {\n    println \"${rootProject.name} {gdxVersion}\"\n}\n",
	}
	deps := []platform.Dependency{
		platform.ProjectDep("", "core"),
		{
			Configuration: "natives",
			Coordinate:    module.Coordinate{Group: "com.badlogicgames.gdx", Artifact: "gdx-platform"},
			Var:           "gdxVersion",
			Classifier:    "natives-ios",
		},
	}

	got, err := Render(tmpl, deps, props)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "// Demo\n" +
		"dependencies {\n" +
		"    implementation project(':core')\n" +
		"    natives \"com.badlogicgames.gdx:gdx-platform:1.12.1:natives-ios\"\n" +
		"}\n" +
		"\ntask run {\n    println \"${rootProject.name} 1.12.1\"\n}\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_Pure(t *testing.T) {
	props := NewProperties()
	for _, k := range []string{"c", "a", "b"} {
		props.Set(k, k+"-value")
	}
	tmpl := platform.BuildTemplate{Preamble: "{a}{b}{c}\n", Body: "{c}{b}{a}\n"}
	deps := []platform.Dependency{
		platform.Dep("api", "g", "z", "1"),
		platform.Dep("api", "g", "a", "1"),
	}

	first, err := Render(tmpl, deps, props)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Render(tmpl, deps, props)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("Render() differs on run %d:\n%s\nvs\n%s", i, again, first)
		}
	}
}

func TestRender_MissingProperty(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    platform.BuildTemplate
		deps    []platform.Dependency
		wantTok string
	}{
		{
			name:    "body placeholder",
			tmpl:    platform.BuildTemplate{Body: "title = '{appTitle}'"},
			wantTok: "{appTitle}",
		},
		{
			name:    "preamble placeholder",
			tmpl:    platform.BuildTemplate{Preamble: "{missing}"},
			wantTok: "{missing}",
		},
		{
			name:    "dependency variable",
			deps:    []platform.Dependency{platform.VarDep("implementation", "com.foo", "baz", "ver")},
			wantTok: "{ver}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.tmpl, tt.deps, NewProperties())
			var perr *template.UnresolvedPlaceholderError
			if !errors.As(err, &perr) {
				t.Fatalf("Render() error = %v, want *UnresolvedPlaceholderError", err)
			}
			if perr.Token != tt.wantTok {
				t.Errorf("Token = %q, want %q", perr.Token, tt.wantTok)
			}
		})
	}
}

func TestDependencyLine_NoVersion(t *testing.T) {
	_, err := DependencyLine(platform.Dep("implementation", "com.foo", "bar", ""), NewProperties())
	if err == nil {
		t.Error("DependencyLine() without version should fail")
	}
}
