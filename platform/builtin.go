// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// Assets returns the file sources referenced by built-in FileSpecs.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

const gdxGroup = "com.badlogicgames.gdx"

// gdxVersion is shared by every platform built on libGDX.
var gdxVersion = VersionVar{
	Property:   "gdxVersion",
	Coordinate: coord(gdxGroup, "gdx"),
	Repository: "maven",
}

// Builtin returns a registry holding every supported platform.
func Builtin() *Registry {
	r := NewRegistry()
	for _, d := range []Descriptor{core(), lwjgl3(), headless(), iosMOE()} {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	order, err := r.OrderAfter(IOSMOE)
	if err != nil {
		panic(err)
	}
	if err := r.Register(nintendoSwitch(order)); err != nil {
		panic(err)
	}
	return r
}
