// Package defaults provides centralized configuration constants for xmsconan.
//
// This package defines version placeholders, directory conventions, and other
// configuration defaults used across the codebase. Centralizing these values
// ensures consistency and makes tuning easier.
//
// # Categories
//
// Defaults are organized by concern:
//
//   - Generation defaults: For build file generation
//   - Build defaults: For conan install and cmake configure invocations
//   - Packaging defaults: For binary package creation and upload
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/aquaveo/xmsconan/pkg/defaults"
//
//	version := defaults.Version
//	buildDir := defaults.BuildDir
package defaults
