// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "liftoff.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liftoff.yaml")
	content := `version: 1
project:
  name: Space Game
  package: io.github.space
  destination: /tmp/space
  reflective:
    - io.github.space.Ship
platforms: [core, lwjgl3, switch]
repositories:
  jitpack: http://localhost:8080
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Project.Name != "Space Game" || cfg.Project.Package != "io.github.space" {
		t.Errorf("Project = %+v", cfg.Project)
	}
	if want := []string{"core", "lwjgl3", "switch"}; !reflect.DeepEqual(cfg.Platforms, want) {
		t.Errorf("Platforms = %v, want %v", cfg.Platforms, want)
	}
	if cfg.Generation.Parallelism != 4 {
		t.Errorf("Parallelism = %d, want default 4", cfg.Generation.Parallelism)
	}
	if got := cfg.Endpoints()["jitpack"]; got != "http://localhost:8080" {
		t.Errorf("jitpack endpoint = %q", got)
	}
	if got := cfg.Endpoints()["maven"]; got != "" {
		t.Errorf("maven endpoint = %q, want default", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liftoff.yaml")
	if err := os.WriteFile(path, []byte("platforms: [core\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad version", func(c *Config) { c.Version = 2 }, true},
		{"no name", func(c *Config) { c.Project.Name = " " }, true},
		{"no package", func(c *Config) { c.Project.Package = "" }, true},
		{"empty package segment", func(c *Config) { c.Project.Package = "com..demo" }, true},
		{"digit start", func(c *Config) { c.Project.Package = "com.1demo" }, true},
		{"dash", func(c *Config) { c.Project.Package = "com.my-demo" }, true},
		{"no platforms", func(c *Config) { c.Platforms = nil }, true},
		{"duplicate platform", func(c *Config) { c.Platforms = []string{"core", "core"} }, true},
		{"zero parallelism", func(c *Config) { c.Generation.Parallelism = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Project.Reflective = []string{"a.B"}
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "liftoff.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("Load(Marshal()) = %+v, want %+v", got, cfg)
	}
}
