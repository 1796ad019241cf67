// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

// Switch is the Nintendo Switch homebrew backend.
const Switch = "switch"

func nintendoSwitch(order int) Descriptor {
	return Descriptor{
		ID:          Switch,
		Order:       order,
		Description: "Nintendo Switch Homebrew backend using SwitchGDX",
		Standard:    false,
		Versions: []VersionVar{
			{Property: "switchGdxVersion", Coordinate: coord("com.thelogicmaster", "switch-gdx"), Repository: "jitpack"},
			{Property: "clearwingVersion", Coordinate: coord("com.thelogicmaster", "clearwing-vm"), Repository: "jitpack"},
		},
		Dependencies: []Dependency{
			VarDep("switchgdx", "com.thelogicmaster", "switch-gdx", "switchGdxVersion"),
			VarDep("transpiler", "com.thelogicmaster.clearwing-vm", "transpiler", "clearwingVersion"),
			ProjectDep("implementation", Core),
			VarDep("implementation", "com.thelogicmaster", "switch-gdx", "switchGdxVersion"),
		},
		Build: BuildTemplate{
			Preamble: switchPreamble,
			Body:     switchBody,
		},
		Files: []FileSpec{
			{
				Kind:   Replace,
				Path:   "switch.json",
				Source: "switch/switch.json",
				Replace: map[string]string{
					"{MAIN_CLASS}": "{PACKAGE}.switchgdx.SwitchLauncher",
					"{REFLECTIVE}": "{REFLECTIVE}",
				},
			},
			{
				Kind:   Copy,
				Path:   "icon.jpg",
				Source: "switch/icon.jpg",
			},
			{
				Kind:   Replace,
				Path:   "src/main/java/{PACKAGE_PATH}/switchgdx/SwitchLauncher.java",
				Source: "switch/SwitchLauncher.java",
				Replace: map[string]string{
					"{PACKAGE}": "{PACKAGE}",
				},
			},
		},
		Tasks: []Task{
			{Name: "transpile", Text: "transpiles the project into `{ID}/build/{DEST_NAME}`."},
			{Name: "run", Text: "runs the transpiled application as a desktop program."},
			{Name: "nro", Text: "packages the project into a homebrew NRO located at `{ID}/build/{DEST_NAME}/{DEST_NAME}.nro`"},
			{Name: "deploy", Text: "deploys the NRO to a switch via NxLink."},
			{Name: "ryujinx", Text: "runs the NRO in the Ryujinx emulator."},
			{Name: "uwp", Text: "Generate the UWP project and open Visual Studio"},
		},
	}
}

const switchPreamble = `import org.gradle.nativeplatform.platform.internal.DefaultNativePlatform

plugins {
    id 'java'
}

def appTitle = '{projectName}'
def appAuthor = ''

configurations {
    transpiler {
        transitive = false
    }
    switchgdx {
        transitive = false
    }
}

`

const switchBody = `
task transpile(dependsOn: 'build') {
    doLast {
        delete "$buildDir/dist"

        List libs = []
        configurations.runtimeClasspath.asList().stream()
                .filter({ file -> !file.isDirectory() })
                .forEach({ file -> libs.add(file.absolutePath)} )

        javaexec {
            main = "-jar"
            args = ["$configurations.transpiler.singleFile.absolutePath", "--input"] + libs + [
                    "$configurations.switchgdx.singleFile.absolutePath",
                    "$buildDir/classes",
                    "$rootDir/core/build/classes",
                    "--output", "$buildDir/dist",
                    "--config", "$projectDir/switch.json"
            ]
        }

        copy {
            from { configurations.runtimeClasspath.collect { it.isDirectory() ? it : zipTree(it) } }
            include "*.cpp", "**/*.cpp"
            include "*.hpp", "**/*.hpp"
            include "*.h", "**/*.h"
            include "*.c", "**/*.c"
            into "$buildDir/dist/src"
            includeEmptyDirs = false
        }

        copy {
            from "$rootDir/assets"
            into "$buildDir/dist/romfs"
        }

        copy {
            from "$projectDir/icon.jpg"
            into "$buildDir/dist"
        }

        exec {
            if (DefaultNativePlatform.currentOperatingSystem.isWindows())
                commandLine 'cmd', '/c', "C:\\devkitPro\\msys2\\usr\\bin\\rsync -crh --delete --checksum --exclude '/cmake-build-*' --exclude '/build' dist/ ${rootProject.name}"
            else
                commandLine 'bash', '-c', "rsync -crh --delete --checksum --exclude '/cmake-build-*' --exclude '/build' dist/ ${rootProject.name}"
            workingDir "$buildDir"
        }
    }
}
configure(transpile) {
    group "SwitchGDX"
    description = "Run the transpiler to generate the C++ project code"
}

task run(dependsOn: transpile) {
    doLast {
        exec {
            commandLine 'bash', '-c', 'cmake -DCMAKE_BUILD_TYPE=Debug -S . -B cmake-build-run -G Ninja && cmake --build cmake-build-run && ./cmake-build-run/SwitchGDX'
            workingDir "$buildDir${File.separator}${rootProject.name}"
        }
    }
}
configure(run) {
    group "SwitchGDX"
    description = "Run with the SwitchGDX backend on desktop"
}

task nro(dependsOn: transpile) {
    doLast {
        exec {
            commandLine 'bash', '-c', 'cmake --toolchain DevkitA64Libnx.cmake -B cmake-build-switch . && cmake --build cmake-build-switch -j8'
            workingDir "$buildDir${File.separator}${rootProject.name}"
            environment 'APP_TITLE', appTitle
            environment 'APP_AUTHOR', appAuthor
            environment 'APP_VERSION', version
        }
    }
}
configure(nro) {
    group "SwitchGDX"
    description = "Build a homebrew NRO"
}

task deploy(dependsOn: nro) {
    doLast {
        exec {
            commandLine 'bash', '-c', "\$DEVKITPRO/tools/bin/nxlink --server ./cmake-build-switch/${rootProject.name}.nro"
            workingDir "$buildDir${File.separator}${rootProject.name}"
        }
    }
}
configure(deploy) {
    group "SwitchGDX"
    description = "Run with the SwitchGDX backend on Switch via NxLink"
}

task ryujinx(dependsOn: nro) {
    doLast {
        Properties properties = new Properties()
        try {
            properties.load(project.rootProject.file('local.properties').newDataInputStream())
        } catch (FileNotFoundException ignored) {
            throw new Exception('The path to the Ryujinx emulator executable is unset. Set "ryujinxPath" in local.properties file.')
        }
        exec {
            commandLine 'bash', '-c', "${properties.getProperty("ryujinxPath")} ./cmake-build-switch/${rootProject.name}.nro"
            workingDir "$buildDir${File.separator}${rootProject.name}"
        }
    }
}
configure(ryujinx) {
    group "SwitchGDX"
    description = "Run the NRO in the Ryujinx emulator"
}

task uwp(dependsOn: transpile) {
    doLast {
        exec {
            commandLine 'cmd', '/c', "call uwp.cmd"
            workingDir "$buildDir${File.separator}${rootProject.name}"
        }
    }
}
configure(uwp) {
    group "SwitchGDX"
    description = "Generate the UWP project and open Visual Studio"
}
`
