/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

package builder

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/aquaveo/xmsconan/pkg/defaults"
	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
)

// Generators maps supported generator names to the value passed to
// cmake -G. An empty value means cmake picks the platform default.
var Generators = map[string]string{
	"make":   "",
	"ninja":  "Ninja",
	"vs2019": "Visual Studio 16 2019",
	"vs2022": "Visual Studio 17 2022",
	"xcode":  "Xcode",
}

// SupportedGenerators returns the generator names in sorted order.
func SupportedGenerators() []string {
	names := make([]string, 0, len(Generators))
	for name := range Generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultGenerator returns the generator used when none is requested.
func DefaultGenerator() string {
	if runtime.GOOS == "windows" {
		return "vs2022"
	}
	return "ninja"
}

// Config provides immutable configuration for a build.
// All fields are read-only after creation.
type Config struct {
	// cmakeDir is the directory holding the top-level CMakeLists.txt.
	cmakeDir string

	// buildDir receives conan and cmake output.
	buildDir string

	// profile is the path to the conan profile driving the build.
	profile string

	// generator names the cmake generator (see Generators).
	generator string

	// pythonVersion overrides PYTHON_TARGET_VERSION for python builds.
	pythonVersion string

	// xmsVersion overrides XMS_VERSION.
	xmsVersion string

	// testFiles is the test data directory. "NONE" disables XMS_TEST_PATH.
	testFiles string

	// allowMissingTestFiles downgrades a missing test directory to a warning.
	allowMissingTestFiles bool

	// dryRun prints the tool commands instead of executing them.
	dryRun bool
}

// Getter methods for read-only access

// CMakeDir returns the CMakeLists.txt directory.
func (c *Config) CMakeDir() string {
	return c.cmakeDir
}

// BuildDir returns the build output directory.
func (c *Config) BuildDir() string {
	return c.buildDir
}

// Profile returns the conan profile path.
func (c *Config) Profile() string {
	return c.profile
}

// Generator returns the cmake generator name.
func (c *Config) Generator() string {
	return c.generator
}

// PythonVersion returns the python version override.
func (c *Config) PythonVersion() string {
	return c.pythonVersion
}

// XmsVersion returns the library version override.
func (c *Config) XmsVersion() string {
	return c.xmsVersion
}

// TestFiles returns the test data directory setting.
func (c *Config) TestFiles() string {
	return c.testFiles
}

// AllowMissingTestFiles returns whether a missing test directory is tolerated.
func (c *Config) AllowMissingTestFiles() bool {
	return c.allowMissingTestFiles
}

// DryRun returns the dry-run setting.
func (c *Config) DryRun() bool {
	return c.dryRun
}

// Validate checks that the Config names a usable profile and generator.
func (c *Config) Validate() error {
	if c.profile == "" {
		return xerrors.New(xerrors.ErrCodeMissingField, "a conan profile is required")
	}

	info, err := os.Stat(c.profile)
	if err != nil {
		return xerrors.WrapWithContext(xerrors.ErrCodeNotFound,
			fmt.Sprintf("conan profile %s does not exist", c.profile), err, map[string]any{
				"profile": c.profile,
			})
	}
	if info.IsDir() {
		return xerrors.NewWithContext(xerrors.ErrCodeInvalidValue,
			fmt.Sprintf("%s is not a file", c.profile), map[string]any{
				"profile": c.profile,
			})
	}

	if _, ok := Generators[c.generator]; !ok {
		return xerrors.NewWithContext(xerrors.ErrCodeInvalidValue,
			fmt.Sprintf("generator %q is not supported, must be one of [%s]",
				c.generator, strings.Join(SupportedGenerators(), ", ")), map[string]any{
				"generator": c.generator,
				"supported": SupportedGenerators(),
			})
	}

	return nil
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithCMakeDir sets the directory holding the top-level CMakeLists.txt.
func WithCMakeDir(dir string) Option {
	return func(c *Config) {
		c.cmakeDir = dir
	}
}

// WithBuildDir sets the build output directory.
func WithBuildDir(dir string) Option {
	return func(c *Config) {
		c.buildDir = dir
	}
}

// WithProfile sets the conan profile path.
func WithProfile(path string) Option {
	return func(c *Config) {
		c.profile = path
	}
}

// WithGenerator sets the cmake generator name.
func WithGenerator(name string) Option {
	return func(c *Config) {
		c.generator = name
	}
}

// WithPythonVersion sets the python version for python builds.
func WithPythonVersion(version string) Option {
	return func(c *Config) {
		c.pythonVersion = version
	}
}

// WithXmsVersion sets the library version stamped into the build.
func WithXmsVersion(version string) Option {
	return func(c *Config) {
		c.xmsVersion = version
	}
}

// WithTestFiles sets the test data directory. Pass "NONE" to disable.
func WithTestFiles(path string) Option {
	return func(c *Config) {
		c.testFiles = path
	}
}

// WithAllowMissingTestFiles tolerates a missing test data directory.
func WithAllowMissingTestFiles(allow bool) Option {
	return func(c *Config) {
		c.allowMissingTestFiles = allow
	}
}

// WithDryRun prints the tool commands instead of executing them.
func WithDryRun(dryRun bool) Option {
	return func(c *Config) {
		c.dryRun = dryRun
	}
}

// NewConfig returns a Config with default values.
func NewConfig(options ...Option) *Config {
	c := &Config{
		cmakeDir:  defaults.CMakeDir,
		buildDir:  defaults.BuildDir,
		generator: DefaultGenerator(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}
