/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

package generator

import (
	_ "embed"
)

//go:embed templates/cmakelists.tmpl
var cmakeTemplate string

//go:embed templates/conanfile.py.tmpl
var conanfileTemplate string

//go:embed templates/setup.py.tmpl
var setupTemplate string

//go:embed templates/init.py.tmpl
var initTemplate string

// Generated file paths, relative to the output directory.
const (
	// FileCMakeLists is the CMake build definition.
	FileCMakeLists = "CMakeLists.txt"
	// FileConanfile is the conan 2 recipe.
	FileConanfile = "conanfile.py"
	// FileSetup is the python package setup script.
	FileSetup = "_package/setup.py"
	// FileInit is the python package version module.
	FileInit = "_package/__init__.py"
)

// templateRegistry maps output paths to their template bodies.
var templateRegistry = map[string]string{
	FileCMakeLists: cmakeTemplate,
	FileConanfile:  conanfileTemplate,
	FileSetup:      setupTemplate,
	FileInit:       initTemplate,
}

// OutputFiles lists every generated file path in render order. The order
// is fixed so repeated runs write and report files identically.
func OutputFiles() []string {
	return []string{FileCMakeLists, FileConanfile, FileSetup, FileInit}
}

// GetTemplate returns the template body for the given output path.
// Returns the template and true if found, empty string and false otherwise.
func GetTemplate(name string) (string, bool) {
	tmpl, ok := templateRegistry[name]
	return tmpl, ok
}
