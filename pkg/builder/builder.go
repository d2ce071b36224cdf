/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

// Package builder drives the conan install and cmake configure steps for a
// library checkout. The build options handed to cmake are derived from the
// conan profile so a single --profile flag selects the whole configuration.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aquaveo/xmsconan/pkg/defaults"
	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
	"github.com/aquaveo/xmsconan/pkg/executor"
)

// Builder runs the conan and cmake steps described by its Config.
type Builder struct {
	config *Config
	exec   *executor.Executor
}

// New creates a Builder after validating the configuration.
func New(cfg *Config) (*Builder, error) {
	return NewWithExecutor(cfg, executor.New(executor.WithDryRun(cfg != nil && cfg.DryRun())))
}

// NewWithExecutor creates a Builder using the provided executor.
func NewWithExecutor(cfg *Config, exe *executor.Executor) (*Builder, error) {
	if cfg == nil {
		return nil, xerrors.New(xerrors.ErrCodeInvalidRequest, "config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{config: cfg, exec: exe}, nil
}

// ConanArgs returns the argument list for the conan install step.
func (b *Builder) ConanArgs() []string {
	return []string{
		"install",
		"-of", b.config.BuildDir(),
		"-pr", b.config.Profile(),
		b.config.CMakeDir(),
		"--build=missing",
	}
}

// CMakeArgs returns the argument list for the cmake configure step. The
// flag set depends on the profile options, so this can fail when the
// profile requests testing but the test data directory is missing.
func (b *Builder) CMakeArgs() ([]string, error) {
	options, err := b.cmakeOptions()
	if err != nil {
		return nil, err
	}

	var args []string
	if gen := Generators[b.config.Generator()]; gen != "" {
		args = append(args, "-G", gen)
	}
	args = append(args, options...)
	args = append(args, "-S", b.config.CMakeDir(), "-B", b.config.BuildDir())
	return args, nil
}

// Run executes conan install followed by cmake configure. In dry-run mode
// both command lines are printed without executing anything.
func (b *Builder) Run(ctx context.Context) error {
	conanArgs := b.ConanArgs()
	cmakeArgs, err := b.CMakeArgs()
	if err != nil {
		return err
	}

	if !b.config.DryRun() {
		if _, err := os.Stat(b.config.BuildDir()); os.IsNotExist(err) {
			slog.Info("creating build directory", "dir", b.config.BuildDir())
			if err := os.MkdirAll(b.config.BuildDir(), 0o755); err != nil {
				return xerrors.WrapWithContext(xerrors.ErrCodeGenerationIO,
					"creating build directory", err, map[string]any{
						"dir": b.config.BuildDir(),
					})
			}
		}
	}

	slog.Info("installing conan dependencies", "profile", b.config.Profile())
	if _, err := b.exec.Run(ctx, "conan", conanArgs...); err != nil {
		return err
	}

	slog.Info("configuring cmake", "generator", b.config.Generator())
	if _, err := b.exec.Run(ctx, "cmake", cmakeArgs...); err != nil {
		return err
	}

	return nil
}

// cmakeOptions assembles the -D flags from the profile options and config
// overrides. Flag order is stable.
func (b *Builder) cmakeOptions() ([]string, error) {
	profileOptions, err := ParseProfileOptions(b.config.Profile())
	if err != nil {
		return nil, err
	}

	testing := parseBoolOption(profileOptions["testing"], true)
	pybind := parseBoolOption(profileOptions["pybind"], true)
	wcharT := parseBoolOption(profileOptions["wchar_t"], false)

	buildType := "Release"
	if strings.HasSuffix(strings.ToLower(b.config.Profile()), "_d") {
		buildType = "Debug"
	}

	options := []string{
		"-DBUILD_TESTING=" + testing,
		"-DIS_PYTHON_BUILD=" + pybind,
		"-DXMS_BUILD=" + wcharT,
		"-DCMAKE_INSTALL_PREFIX=" + filepath.Join(b.config.BuildDir(), "install"),
		"-DCMAKE_BUILD_TYPE=" + buildType,
	}

	switch {
	case pybind != "False":
		version := b.config.PythonVersion()
		if version == "" {
			version = defaults.PythonTargetVersion
		}
		options = append(options, "-DPYTHON_TARGET_VERSION="+version)
	case testing != "False":
		testPath, ok, err := b.testPath()
		if err != nil {
			return nil, err
		}
		if ok {
			options = append(options, "-DXMS_TEST_PATH="+testPath)
		}
	}

	version := b.config.XmsVersion()
	if version == "" {
		version = defaults.Version
	}
	options = append(options, "-DXMS_VERSION="+version)

	options = append(options, fmt.Sprintf("-DCMAKE_TOOLCHAIN_FILE=%s/build/generators/conan_toolchain.cmake",
		b.config.BuildDir()))

	return options, nil
}

// testPath resolves the test data directory for testing builds. The second
// return is false when XMS_TEST_PATH should be omitted.
func (b *Builder) testPath() (string, bool, error) {
	testFiles := b.config.TestFiles()
	if testFiles == "" {
		testFiles = defaults.TestFilesDir
	}
	if testFiles == "NONE" {
		return "", false, nil
	}

	info, err := os.Stat(testFiles)
	if err != nil || !info.IsDir() {
		if !b.config.AllowMissingTestFiles() {
			return "", false, xerrors.NewWithContext(xerrors.ErrCodeInvalidValue,
				fmt.Sprintf("test files path does not exist: %s "+
					"(create the directory, pass --test_files, or set --allow-missing-test-files)",
					testFiles), map[string]any{
					"path": testFiles,
				})
		}
		slog.Warn("test files not found, skipping XMS_TEST_PATH", "path", testFiles)
		return "", false, nil
	}

	abs, err := filepath.Abs(testFiles)
	if err != nil {
		return "", false, xerrors.WrapWithContext(xerrors.ErrCodeGenerationIO,
			"resolving test files path", err, map[string]any{"path": testFiles})
	}
	return abs, true, nil
}
