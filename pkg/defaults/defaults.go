/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

package defaults

// Generation defaults for build file generation.
const (
	// Version is the placeholder library version used when no explicit
	// version is supplied. Real versions are injected by CI.
	Version = "99.99.99"

	// PackageDirName is the subdirectory holding generated Python package
	// metadata files.
	PackageDirName = "_package"
)

// Build defaults for conan install and cmake configure invocations.
const (
	// CMakeDir is the default source directory containing CMakeLists.txt.
	CMakeDir = "."

	// BuildDir is the default out-of-source build directory.
	BuildDir = "./builds"

	// PythonTargetVersion is the python version requested for pybind builds
	// when none is given on the command line.
	PythonTargetVersion = "3.13"

	// TestFilesDir is the default location of test data files passed to
	// testing builds.
	TestFilesDir = "./test_files"
)

// Packaging defaults for binary package creation and upload.
const (
	// PackagerPythonTargetVersion is the python version pinned in packaging
	// build environments when PYTHON_TARGET_VERSION is not set.
	PackagerPythonTargetVersion = "3.12"

	// ConanRemote is the conan remote binary packages are uploaded to.
	ConanRemote = "aquaveo"
)
