// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

// LWJGL3 is the primary desktop backend.
const LWJGL3 = "lwjgl3"

func lwjgl3() Descriptor {
	return Descriptor{
		ID:          LWJGL3,
		Order:       1,
		Description: "Primary desktop platform using LWJGL3",
		Standard:    true,
		Versions:    []VersionVar{gdxVersion},
		Dependencies: []Dependency{
			ProjectDep("implementation", Core),
			VarDep("implementation", gdxGroup, "gdx-backend-lwjgl3", "gdxVersion"),
			natives(VarDep("implementation", gdxGroup, "gdx-platform", "gdxVersion"), "natives-desktop"),
		},
		Build: BuildTemplate{
			Preamble: `plugins {
    id 'application'
}

mainClassName = '{rootPackage}.lwjgl3.Lwjgl3Launcher'
eclipse.project.name = '{projectName}' + '-lwjgl3'
sourceCompatibility = 8.0

`,
			Body: `
jar {
    archiveFileName.set("{projectName}-${projectVersion}.jar")
    duplicatesStrategy(DuplicatesStrategy.EXCLUDE)
    dependsOn configurations.runtimeClasspath
    from { configurations.runtimeClasspath.collect { it.isDirectory() ? it : zipTree(it) } }
    manifest {
        attributes 'Main-Class': project.mainClassName
    }
}
`,
		},
		Files: []FileSpec{
			{
				Kind:   Replace,
				Path:   "src/main/java/{PACKAGE_PATH}/lwjgl3/Lwjgl3Launcher.java",
				Source: "lwjgl3/Lwjgl3Launcher.java",
				Replace: map[string]string{
					"{PACKAGE}": "{PACKAGE}",
					"{TITLE}":   "{NAME}",
				},
			},
		},
		Tasks: []Task{
			{Name: "run", Text: "starts the application."},
			{Name: "jar", Text: "builds application's runnable jar, which can be found at `{ID}/build/libs`."},
		},
	}
}
