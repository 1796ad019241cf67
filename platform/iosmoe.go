// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

// IOSMOE is the iOS backend built on Multi-OS Engine.
const IOSMOE = "ios-moe"

func iosMOE() Descriptor {
	return Descriptor{
		ID:          IOSMOE,
		Order:       3,
		Description: "iOS backend using Multi-OS Engine",
		Standard:    false,
		Versions: []VersionVar{
			gdxVersion,
			{Property: "moeVersion", Coordinate: coord("org.multi-os-engine", "moe-gradle"), Repository: "maven"},
		},
		Dependencies: []Dependency{
			ProjectDep("implementation", Core),
			VarDep("implementation", gdxGroup, "gdx-backend-moe", "gdxVersion"),
			natives(VarDep("natives", gdxGroup, "gdx-platform", "gdxVersion"), "natives-ios"),
		},
		Build: BuildTemplate{
			Preamble: `buildscript {
    dependencies {
        classpath "org.multi-os-engine:moe-gradle:{moeVersion}"
    }
}
apply plugin: 'moe'

configurations { natives }

`,
			Body: `
moe {
    xcode {
        mainTarget '{projectName}'
        bundleID '{rootPackage}'
    }
}
`,
		},
		Tasks: []Task{
			{Name: "moeLaunch", Text: "launches the application on a simulator or a connected device."},
			{Name: "moeMainReleaseIphoneosXcodeBuild", Text: "builds the release IPA in `{ID}/build`."},
		},
	}
}
