// Package cli implements the command-line interface for the xmsconan build tooling.
//
// # Overview
//
// The xmsconan CLI generates conan and cmake build files for Aquaveo XMS C++ libraries,
// configures local builds, and produces the binary package matrix for releases. It replaces
// the per-library copies of the python build scripts with a single binary driven by one
// TOML description per library.
//
// # Commands
//
// generate - Render build files from a library description:
//
//	xmsconan generate [--version VERSION] [--output DIR] [--check] [--dry-run] CONFIG
//
// Renders CMakeLists.txt, conanfile.py, _package/setup.py, and _package/__init__.py from
// the TOML description. Everything is rendered in memory before the first write, so a bad
// description never leaves a partial tree behind. With --check the rendering is compared
// against the files on disk and the command exits non-zero on drift.
//
// build - Configure a local build:
//
//	xmsconan build --profile PROFILE [--cmake_dir DIR] [--build_dir DIR] [--generator NAME]
//
// Runs conan install followed by cmake configure. The build options handed to cmake are
// derived from the [options] section of the conan profile, so the profile is the single
// switch for testing, python, and wide-character configurations.
//
// package - Build the binary package matrix:
//
//	xmsconan package --name LIBRARY [--platform P] [--upload] [--dry-run]
//
// Builds every configuration in the platform's package matrix with conan create,
// continuing through individual failures, and optionally uploads the results to the
// Aquaveo remote.
//
// describe - Print the resolved library description:
//
//	xmsconan describe [--output FILE] [--format yaml|json|table] CONFIG
//
// Loads and validates the TOML description exactly as generate does and prints it with
// defaults applied. A fast validity check for config edits.
//
// # Global Flags
//
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default):
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// JSON:
//   - Machine-parseable, compact
//   - Suitable for programmatic consumption
//
// Table:
//   - Flattened key/value representation
//   - Suitable for terminal viewing
//
// # Usage Examples
//
// Generate build files next to the config:
//
//	xmsconan generate xmscore.toml
//
// Verify committed build files in CI:
//
//	xmsconan generate --check xmscore.toml
//
// Configure a python build from a profile:
//
//	xmsconan build -p profiles/linux_pybind -b ./builds
//
// Build and upload the release matrix:
//
//	xmsconan package --name xmscore --upload
//
// # Environment Variables
//
//	LOG_LEVEL              Set logging verbosity (debug, info, warn, error)
//	XMS_VERSION            Package version for matrix builds and upload
//	PYTHON_TARGET_VERSION  Python version pinned into package build environments
//	CI_COMMIT_TAG          Set on tagged release builds; forces RELEASE_PYTHON=True
//	AQUAPI_USERNAME        Aquaveo package index credentials for package builds
//	AQUAPI_PASSWORD
//	AQUAPI_URL
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, config or generation failure)
//	2  Context canceled or timeout
//	N  Exit code of the failing external tool (conan, cmake)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/library - TOML description loading and validation
//   - pkg/generator - Build file rendering and drift checks
//   - pkg/builder - conan install and cmake configure
//   - pkg/packager - Binary package matrix and upload
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/aquaveo/xmsconan/pkg/cli.version=1.0.0'"
package cli
