// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import "github.com/goplus/liftoff/mod/module"

// Core is the shared application code every backend depends on.
const Core = "core"

func coord(group, artifact string) module.Coordinate {
	return module.Coordinate{Group: group, Artifact: artifact}
}

func natives(d Dependency, classifier string) Dependency {
	d.Classifier = classifier
	return d
}

func core() Descriptor {
	return Descriptor{
		ID:          Core,
		Order:       0,
		Description: "Main module with the application logic shared by all platforms",
		Standard:    true,
		Versions:    []VersionVar{gdxVersion},
		Dependencies: []Dependency{
			VarDep("api", gdxGroup, "gdx", "gdxVersion"),
		},
		Build: BuildTemplate{
			Preamble: `[compileJava, compileTestJava]*.options*.encoding = 'UTF-8'
eclipse.project.name = '{projectName}' + '-core'

`,
			Body: `
jar {
    archiveBaseName.set('{projectName}-core')
}
`,
		},
		Files: []FileSpec{
			{
				Kind:   Replace,
				Path:   "src/main/java/{PACKAGE_PATH}/Main.java",
				Source: "core/Main.java",
				Replace: map[string]string{
					"{PACKAGE}": "{PACKAGE}",
				},
			},
		},
	}
}
