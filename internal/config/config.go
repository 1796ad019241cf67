// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the liftoff.yaml file describing a generation run.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up by default.
const DefaultFile = "liftoff.yaml"

// Config captures the project answers and run settings.
type Config struct {
	Version      int                `yaml:"version"`
	Project      ProjectConfig      `yaml:"project"`
	Platforms    []string           `yaml:"platforms"`
	Repositories RepositoriesConfig `yaml:"repositories,omitempty"`
	Generation   GenerationConfig   `yaml:"generation"`
}

// ProjectConfig contains the user's project answers.
type ProjectConfig struct {
	Name        string   `yaml:"name"`
	Package     string   `yaml:"package"`
	Destination string   `yaml:"destination,omitempty"`
	Reflective  []string `yaml:"reflective,omitempty"`
}

// RepositoriesConfig overrides repository index endpoints.
// Empty values select the default endpoints.
type RepositoriesConfig struct {
	Maven   string `yaml:"maven,omitempty"`
	JitPack string `yaml:"jitpack,omitempty"`
}

// GenerationConfig tunes the generation run.
type GenerationConfig struct {
	Parallelism int `yaml:"parallelism"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Project: ProjectConfig{
			Name:    "Demo",
			Package: "com.example.demo",
		},
		Platforms: []string{"core", "lwjgl3"},
		Generation: GenerationConfig{
			Parallelism: 4,
		},
	}
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Generation.Parallelism == 0 {
		c.Generation.Parallelism = Default().Generation.Parallelism
	}
}

// Endpoints returns the repository overrides keyed by repository kind.
func (c Config) Endpoints() map[string]string {
	return map[string]string{
		"maven":   c.Repositories.Maven,
		"jitpack": c.Repositories.JitPack,
	}
}

// Validate reports the first problem that prevents a run.
func (c Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	if strings.TrimSpace(c.Project.Name) == "" {
		return fmt.Errorf("project.name is required")
	}
	if err := validatePackage(c.Project.Package); err != nil {
		return err
	}
	if len(c.Platforms) == 0 {
		return fmt.Errorf("at least one platform is required")
	}
	seen := make(map[string]bool, len(c.Platforms))
	for _, p := range c.Platforms {
		if seen[p] {
			return fmt.Errorf("platform %q listed twice", p)
		}
		seen[p] = true
	}
	if c.Generation.Parallelism < 1 {
		return fmt.Errorf("generation.parallelism must be at least 1, got %d", c.Generation.Parallelism)
	}
	return nil
}

// validatePackage checks that pkg is a dotted Java package name.
func validatePackage(pkg string) error {
	if pkg == "" {
		return fmt.Errorf("project.package is required")
	}
	for _, part := range strings.Split(pkg, ".") {
		if part == "" {
			return fmt.Errorf("invalid package %q: empty segment", pkg)
		}
		for i, r := range part {
			letter := r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			digit := r >= '0' && r <= '9'
			if !letter && !(digit && i > 0) {
				return fmt.Errorf("invalid package %q: bad character %q", pkg, r)
			}
		}
	}
	return nil
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}
