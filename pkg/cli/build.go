/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aquaveo/xmsconan/pkg/builder"
	"github.com/aquaveo/xmsconan/pkg/defaults"
)

type buildCmdOptions struct {
	cmakeDir             string
	buildDir             string
	profile              string
	generator            string
	pythonVersion        string
	xmsVersion           string
	testFiles            string
	allowMissingTestDirs bool
	dryRun               bool
}

func parseBuildCmdOptions(cmd *cli.Command) *buildCmdOptions {
	return &buildCmdOptions{
		cmakeDir:             cmd.String("cmake_dir"),
		buildDir:             cmd.String("build_dir"),
		profile:              cmd.String("profile"),
		generator:            cmd.String("generator"),
		pythonVersion:        cmd.String("python_version"),
		xmsVersion:           cmd.String("xms_version"),
		testFiles:            cmd.String("test_files"),
		allowMissingTestDirs: cmd.Bool("allow-missing-test-files"),
		dryRun:               cmd.Bool("dry-run"),
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:                  "build",
		EnableShellCompletion: true,
		Usage:                 "Run conan install and cmake configure for a conan profile",
		Description: `Run a local development build of an XMS library.

Installs dependencies with conan, then configures the build with cmake.
The conan profile drives the whole build: compiler, architecture, build
type, and the xms option set all come from the profile file. Profile
settings are forwarded to cmake as -D definitions so the cmake cache
agrees with the conan package graph.

The test files directory is resolved to an absolute path and passed to
cmake so test executables find their fixtures regardless of the build
directory layout.

# Examples

Configure a ninja build:
  xmsconan build -p ./dev/profiles/linux-gcc-release

Build into a custom directory with Visual Studio:
  xmsconan build -p .\profiles\vs2022 -b .\out -g vs2022

Print the conan and cmake command lines without running them:
  xmsconan build -p ./dev/profiles/linux-gcc-release --dry-run`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "cmake_dir",
				Aliases: []string{"c"},
				Usage:   "Directory containing the top level CMakeLists.txt",
				Value:   defaults.CMakeDir,
			},
			&cli.StringFlag{
				Name:    "build_dir",
				Aliases: []string{"b"},
				Usage:   "Directory to build into, created if missing",
				Value:   defaults.BuildDir,
			},
			&cli.StringFlag{
				Name:     "profile",
				Aliases:  []string{"p"},
				Usage:    "Path to the conan profile file for this build",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "generator",
				Aliases: []string{"g"},
				Usage:   fmt.Sprintf("CMake generator (supported values: %s)", builder.SupportedGenerators()),
				Value:   builder.DefaultGenerator(),
			},
			&cli.StringFlag{
				Name:  "python_version",
				Usage: "Python version to build bindings against",
				Value: defaults.PythonTargetVersion,
			},
			&cli.StringFlag{
				Name:  "xms_version",
				Usage: "Version reported by the built library",
				Value: defaults.Version,
			},
			&cli.StringFlag{
				Name:  "test_files",
				Usage: "Directory with test fixture files, NONE disables it",
				Value: defaults.TestFilesDir,
			},
			&cli.BoolFlag{
				Name:  "allow-missing-test-files",
				Usage: "Warn instead of failing when the test files directory is missing",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the tool invocations without running them",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := parseBuildCmdOptions(cmd)

			cfg := builder.NewConfig(
				builder.WithCMakeDir(opts.cmakeDir),
				builder.WithBuildDir(opts.buildDir),
				builder.WithProfile(opts.profile),
				builder.WithGenerator(opts.generator),
				builder.WithPythonVersion(opts.pythonVersion),
				builder.WithXmsVersion(opts.xmsVersion),
				builder.WithTestFiles(opts.testFiles),
				builder.WithAllowMissingTestFiles(opts.allowMissingTestDirs),
				builder.WithDryRun(opts.dryRun),
			)

			b, err := builder.New(cfg)
			if err != nil {
				return err
			}
			return b.Run(ctx)
		},
	}
}
