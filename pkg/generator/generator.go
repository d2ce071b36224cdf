/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aquaveo/xmsconan/pkg/defaults"
	"github.com/aquaveo/xmsconan/pkg/errors"
	"github.com/aquaveo/xmsconan/pkg/library"
	"github.com/aquaveo/xmsconan/pkg/result"
)

// GeneratorInput contains all data needed to generate build files.
type GeneratorInput struct {
	// Description is the validated library description.
	Description *library.LibraryDescription

	// Version is written verbatim into the generated files. Empty means
	// the placeholder version.
	Version string
}

// Generator renders build files from library descriptions.
type Generator struct{}

// NewGenerator creates a new build file generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Render produces the full set of generated files in memory, keyed by
// output path. Rendering is a pure function of the input: identical
// inputs yield byte-identical content.
func (g *Generator) Render(ctx context.Context, input *GeneratorInput) (map[string][]byte, error) {
	if input == nil || input.Description == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "input and library description are required")
	}

	data := buildTemplateData(input)

	rendered := make(map[string][]byte, len(templateRegistry))
	for _, name := range OutputFiles() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, ok := GetTemplate(name)
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeInternal,
				"no template registered for output file",
				map[string]any{"file": name})
		}

		content, err := renderTemplate(name, body, data)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInternal,
				"rendering template failed", err,
				map[string]any{"file": name})
		}
		rendered[name] = content
	}

	return rendered, nil
}

// Generate renders the build files and writes them under outputDir,
// creating the directory and the _package subdirectory as needed. The
// whole set is rendered before the first write so a template failure
// never leaves a partial output tree behind.
func (g *Generator) Generate(ctx context.Context, input *GeneratorInput, outputDir string) (*result.Output, error) {
	start := time.Now()

	rendered, err := g.Render(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Join(outputDir, defaults.PackageDirName), 0o755); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeGenerationIO,
			"creating output directory", err,
			map[string]any{"dir": outputDir})
	}

	res := result.New(result.KindGenerate, input.Description.LibraryName)
	for _, name := range OutputFiles() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content := rendered[name]
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeGenerationIO,
				"writing generated file", err,
				map[string]any{"file": path})
		}
		res.AddFile(name, int64(len(content)))
	}
	res.Duration = time.Since(start)
	res.MarkSuccess()

	output := &result.Output{OutputDir: outputDir}
	output.Add(res)

	slog.Debug("build files generated",
		"library", input.Description.LibraryName,
		"files", output.TotalFiles,
		"total_size", output.TotalSize,
		"duration", output.TotalDuration,
	)

	return output, nil
}

func renderTemplate(name, body string, data *templateData) ([]byte, error) {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", name, err)
	}
	return []byte(buf.String()), nil
}

// optionOverride is one per-dependency option assignment from
// xms_dependency_options.
type optionOverride struct {
	Dependency string
	Option     string
	Value      string
}

// templateData is the resolved view of a library description handed to
// the templates. Everything derivable is computed here so the templates
// stay pure substitution.
type templateData struct {
	Name        string
	ClassName   string
	Description string
	Version     string

	LibrarySources       []string
	LibraryHeaders       []string
	TestingSources       []string
	TestingHeaders       []string
	PythonLibrarySources []string
	PythonLibraryHeaders []string
	PybindSources        []string
	PybindHeaders        []string

	XmsDependencies    []library.Dependency
	PythonDependencies []library.Dependency
	ExtraDependencies  []string
	OptionOverrides    []optionOverride
	ExtraExportSources []string

	TestingRequirement string
	UseGTest           bool
	UsePybind          bool
	UseVTKWrap         bool
	HasTests           bool
	HasPython          bool

	PythonModule     string
	PythonInstallDir string
	PythonPackages   []string

	ExtraCMakeText       string
	PostLibraryCMakeText string
}

func buildTemplateData(input *GeneratorInput) *templateData {
	desc := input.Description

	version := input.Version
	if version == "" {
		version = defaults.Version
	}

	data := &templateData{
		Name:        desc.LibraryName,
		ClassName:   className(desc.LibraryName),
		Description: desc.Description,
		Version:     version,

		LibrarySources:       desc.LibrarySources,
		LibraryHeaders:       desc.LibraryHeaders,
		TestingSources:       desc.TestingSources,
		TestingHeaders:       desc.TestingHeaders,
		PythonLibrarySources: desc.PythonLibrarySources,
		PythonLibraryHeaders: desc.PythonLibraryHeaders,
		PybindSources:        desc.PybindSources,
		PybindHeaders:        desc.PybindHeaders,

		XmsDependencies:    desc.XmsDependencies,
		PythonDependencies: desc.PythonDependencies(),
		ExtraDependencies:  desc.ExtraDependencies,
		OptionOverrides:    sortedOptionOverrides(desc.XmsDependencyOptions),
		ExtraExportSources: desc.ExtraExportSources,

		UseGTest:   desc.TestingFramework == library.TestingGTest,
		UsePybind:  desc.PythonBindingType == library.BindingPybind11,
		UseVTKWrap: desc.PythonBindingType == library.BindingVTKWrap,
		HasTests:   desc.HasTests(),
		HasPython:  desc.HasPythonBindings(),

		PythonModule: "_" + desc.LibraryName,

		ExtraCMakeText:       desc.ExtraCMakeText,
		PostLibraryCMakeText: desc.PostLibraryCMakeText,
	}

	switch desc.TestingFramework {
	case library.TestingGTest:
		data.TestingRequirement = "gtest/1.14.0"
	default:
		data.TestingRequirement = "cxxtest/4.4"
	}

	switch {
	case desc.PybindRoot:
		data.PythonInstallDir = defaults.PackageDirName
		data.PythonPackages = []string{desc.LibraryName}
	case desc.PythonNamespacedDir != "":
		data.PythonInstallDir = defaults.PackageDirName + "/xms/" + desc.PythonNamespacedDir
		data.PythonPackages = []string{"xms", "xms." + desc.PythonNamespacedDir}
	default:
		data.PythonInstallDir = defaults.PackageDirName + "/" + desc.LibraryName
		data.PythonPackages = []string{desc.LibraryName}
	}

	return data
}

// className derives the python recipe class name from the library name,
// "xmscore" becoming "Xmscore".
func className(name string) string {
	return cases.Title(language.English).String(name)
}

// sortedOptionOverrides flattens the dependency option map into a list
// ordered by dependency then option name, so rendering stays stable
// across runs.
func sortedOptionOverrides(options map[string]map[string]string) []optionOverride {
	if len(options) == 0 {
		return nil
	}

	depNames := make([]string, 0, len(options))
	for name := range options {
		depNames = append(depNames, name)
	}
	sort.Strings(depNames)

	var overrides []optionOverride
	for _, dep := range depNames {
		optNames := make([]string, 0, len(options[dep]))
		for opt := range options[dep] {
			optNames = append(optNames, opt)
		}
		sort.Strings(optNames)

		for _, opt := range optNames {
			overrides = append(overrides, optionOverride{
				Dependency: dep,
				Option:     opt,
				Value:      options[dep][opt],
			})
		}
	}
	return overrides
}
