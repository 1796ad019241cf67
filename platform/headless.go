// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

// Headless is the backend without graphics, for servers and tests.
const Headless = "headless"

func headless() Descriptor {
	return Descriptor{
		ID:          Headless,
		Order:       2,
		Description: "Desktop backend without graphical output, useful for servers",
		Standard:    false,
		Versions:    []VersionVar{gdxVersion},
		Dependencies: []Dependency{
			ProjectDep("implementation", Core),
			VarDep("implementation", gdxGroup, "gdx-backend-headless", "gdxVersion"),
			natives(VarDep("implementation", gdxGroup, "gdx-platform", "gdxVersion"), "natives-desktop"),
		},
		Build: BuildTemplate{
			Preamble: `apply plugin: 'application'

mainClassName = '{rootPackage}.headless.HeadlessLauncher'
eclipse.project.name = '{projectName}' + '-headless'

`,
		},
		Files: []FileSpec{
			{
				Kind:   Replace,
				Path:   "src/main/java/{PACKAGE_PATH}/headless/HeadlessLauncher.java",
				Source: "headless/HeadlessLauncher.java",
				Replace: map[string]string{
					"{PACKAGE}": "{PACKAGE}",
				},
			},
		},
		Tasks: []Task{
			{Name: "run", Text: "starts the headless application."},
		},
	}
}
