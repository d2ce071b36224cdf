/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

package library

import "fmt"

// TestingFramework selects the C++ test harness wired into generated builds.
type TestingFramework string

const (
	// TestingCxxTest is the legacy cxxtest harness, the default.
	TestingCxxTest TestingFramework = "cxxtest"
	// TestingGTest is the googletest harness.
	TestingGTest TestingFramework = "gtest"
)

// IsValid reports whether f is a supported testing framework.
func (f TestingFramework) IsValid() bool {
	return f == TestingCxxTest || f == TestingGTest
}

// SupportedTestingFrameworks lists the accepted testing_framework values.
func SupportedTestingFrameworks() []string {
	return []string{string(TestingCxxTest), string(TestingGTest)}
}

// BindingType selects how Python bindings are produced.
type BindingType string

const (
	// BindingPybind11 produces pybind11 extension modules, the default.
	BindingPybind11 BindingType = "pybind11"
	// BindingVTKWrap produces VTK-wrapped Python modules.
	BindingVTKWrap BindingType = "vtk_wrap"
)

// IsValid reports whether b is a supported binding type.
func (b BindingType) IsValid() bool {
	return b == BindingPybind11 || b == BindingVTKWrap
}

// SupportedBindingTypes lists the accepted python_binding_type values.
func SupportedBindingTypes() []string {
	return []string{string(BindingPybind11), string(BindingVTKWrap)}
}

// Dependency is one xms library requirement pinned to an exact version.
// NoPython excludes the dependency from Python package metadata without
// affecting the native build.
type Dependency struct {
	Name     string `toml:"name" json:"name" yaml:"name"`
	Version  string `toml:"version" json:"version" yaml:"version"`
	NoPython bool   `toml:"no_python" json:"no_python,omitempty" yaml:"no_python,omitempty"`
}

// Ref returns the conan reference for the dependency, "name/version".
func (d Dependency) Ref() string {
	return fmt.Sprintf("%s/%s", d.Name, d.Version)
}

// LibraryDescription is the validated model of one library's build
// configuration. Instances are produced by Load or Parse and must be
// treated as read-only afterwards; all list fields preserve the order
// they appear in the configuration file.
type LibraryDescription struct {
	LibraryName string `toml:"library_name" json:"library_name" yaml:"library_name"`
	Description string `toml:"description" json:"description" yaml:"description"`

	LibrarySources       []string `toml:"library_sources" json:"library_sources,omitempty" yaml:"library_sources,omitempty"`
	LibraryHeaders       []string `toml:"library_headers" json:"library_headers,omitempty" yaml:"library_headers,omitempty"`
	TestingSources       []string `toml:"testing_sources" json:"testing_sources,omitempty" yaml:"testing_sources,omitempty"`
	TestingHeaders       []string `toml:"testing_headers" json:"testing_headers,omitempty" yaml:"testing_headers,omitempty"`
	PythonLibrarySources []string `toml:"python_library_sources" json:"python_library_sources,omitempty" yaml:"python_library_sources,omitempty"`
	PythonLibraryHeaders []string `toml:"python_library_headers" json:"python_library_headers,omitempty" yaml:"python_library_headers,omitempty"`
	PybindSources        []string `toml:"pybind_sources" json:"pybind_sources,omitempty" yaml:"pybind_sources,omitempty"`
	PybindHeaders        []string `toml:"pybind_headers" json:"pybind_headers,omitempty" yaml:"pybind_headers,omitempty"`

	XmsDependencies      []Dependency                 `toml:"xms_dependencies" json:"xms_dependencies,omitempty" yaml:"xms_dependencies,omitempty"`
	ExtraDependencies    []string                     `toml:"extra_dependencies" json:"extra_dependencies,omitempty" yaml:"extra_dependencies,omitempty"`
	XmsDependencyOptions map[string]map[string]string `toml:"xms_dependency_options" json:"xms_dependency_options,omitempty" yaml:"xms_dependency_options,omitempty"`

	TestingFramework  TestingFramework `toml:"testing_framework" json:"testing_framework" yaml:"testing_framework"`
	PythonBindingType BindingType      `toml:"python_binding_type" json:"python_binding_type" yaml:"python_binding_type"`

	PythonNamespacedDir string `toml:"python_namespaced_dir" json:"python_namespaced_dir,omitempty" yaml:"python_namespaced_dir,omitempty"`
	PybindRoot          bool   `toml:"pybind_root" json:"pybind_root,omitempty" yaml:"pybind_root,omitempty"`

	ExtraCMakeText       string `toml:"extra_cmake_text" json:"extra_cmake_text,omitempty" yaml:"extra_cmake_text,omitempty"`
	PostLibraryCMakeText string `toml:"post_library_cmake_text" json:"post_library_cmake_text,omitempty" yaml:"post_library_cmake_text,omitempty"`

	ExtraExportSources []string `toml:"extra_export_sources" json:"extra_export_sources,omitempty" yaml:"extra_export_sources,omitempty"`
}

// PythonDependencies returns the xms dependencies that participate in
// Python packaging, preserving configuration order. Dependencies marked
// no_python are excluded here and nowhere else.
func (d *LibraryDescription) PythonDependencies() []Dependency {
	var deps []Dependency
	for _, dep := range d.XmsDependencies {
		if !dep.NoPython {
			deps = append(deps, dep)
		}
	}
	return deps
}

// HasPythonBindings reports whether the library produces a Python module.
// The pybind source list is the switch; an empty list disables every
// Python-related section of the generated output.
func (d *LibraryDescription) HasPythonBindings() bool {
	return len(d.PybindSources) > 0
}

// HasTests reports whether the library carries a test harness.
func (d *LibraryDescription) HasTests() bool {
	return len(d.TestingSources) > 0
}
