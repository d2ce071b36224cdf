/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/aquaveo/xmsconan/pkg/defaults"
	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
	"github.com/aquaveo/xmsconan/pkg/generator"
	"github.com/aquaveo/xmsconan/pkg/library"
)

type generateCmdOptions struct {
	configPath string
	outputDir  string
	version    string
	check      bool
	dryRun     bool
}

// parseGenerateCmdOptions extracts and validates generate command options.
// The output directory defaults to the config file's directory so the
// common layout, config next to CMakeLists.txt, needs no flags.
func parseGenerateCmdOptions(cmd *cli.Command) (*generateCmdOptions, error) {
	if cmd.Args().Len() != 1 {
		return nil, xerrors.New(xerrors.ErrCodeInvalidRequest,
			"exactly one library config path is required")
	}

	opts := &generateCmdOptions{
		configPath: cmd.Args().First(),
		outputDir:  cmd.String("output"),
		version:    cmd.String("version"),
		check:      cmd.Bool("check"),
		dryRun:     cmd.Bool("dry-run"),
	}
	if opts.outputDir == "" {
		opts.outputDir = filepath.Dir(opts.configPath)
	}
	return opts, nil
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate conan and cmake build files from a library description",
		ArgsUsage:             "CONFIG",
		Description: `Generate conan and cmake build files from a TOML library description.

Renders four files into the output directory:
  - CMakeLists.txt
  - conanfile.py
  - _package/setup.py
  - _package/__init__.py

Rendering is deterministic and happens entirely in memory before the
first write, so a bad description never leaves a partial tree behind.
The --version value is written verbatim into the python metadata; CI
passes the real release number and local builds keep the placeholder.

# Check Mode

Compares the rendering against the files on disk without writing:

  xmsconan generate --check xmscore.toml

Prints a unified diff for every drifted file and exits non-zero when any
generated file differs or is missing. Use it as a CI gate against hand
edits to generated files.

# Examples

Generate next to the config file:
  xmsconan generate xmscore.toml

Generate into a library checkout with a release version:
  xmsconan generate --version 5.0.1 -o ./xmscore xmscore.toml

Preview the write set:
  xmsconan generate --dry-run xmscore.toml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "version",
				Usage: "Library version written into the generated files",
				Value: defaults.Version,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory (default: the config file's directory)",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Compare existing files against the rendering instead of writing",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print target paths and sizes without writing",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseGenerateCmdOptions(cmd)
			if err != nil {
				return err
			}

			desc, err := library.Load(opts.configPath)
			if err != nil {
				return err
			}

			gen := generator.NewGenerator()
			input := &generator.GeneratorInput{
				Description: desc,
				Version:     opts.version,
			}

			switch {
			case opts.check:
				return runGenerateCheck(ctx, gen, input, opts.outputDir)
			case opts.dryRun:
				return runGenerateDryRun(ctx, gen, input, opts.outputDir)
			}

			slog.Info("generating build files",
				"library", desc.LibraryName,
				"config", opts.configPath,
				"output", opts.outputDir,
				"version", opts.version)

			out, err := gen.Generate(ctx, input, opts.outputDir)
			if err != nil {
				return err
			}

			fmt.Println(out.Summary())
			return nil
		},
	}
}

// runGenerateCheck diffs the rendering against the output directory and
// fails when anything drifted. Nothing is written.
func runGenerateCheck(ctx context.Context, gen *generator.Generator, input *generator.GeneratorInput, outputDir string) error {
	report, err := gen.Check(ctx, input, outputDir)
	if err != nil {
		return err
	}
	if report.Clean() {
		fmt.Printf("Build files in %s are up to date.\n", outputDir)
		return nil
	}

	for _, name := range report.Missing {
		fmt.Printf("missing: %s\n", filepath.Join(outputDir, name))
	}
	for _, drift := range report.Changed {
		fmt.Printf("changed: %s\n%s", filepath.Join(outputDir, drift.Path), drift.Diff)
	}
	return fmt.Errorf("%d of %d generated files are out of date in %s",
		len(report.Missing)+len(report.Changed), len(generator.OutputFiles()), outputDir)
}

// runGenerateDryRun renders in memory and prints what would be written.
func runGenerateDryRun(ctx context.Context, gen *generator.Generator, input *generator.GeneratorInput, outputDir string) error {
	rendered, err := gen.Render(ctx, input)
	if err != nil {
		return err
	}

	var total int
	for _, name := range generator.OutputFiles() {
		content := rendered[name]
		fmt.Printf("would write %s (%d bytes)\n", filepath.Join(outputDir, name), len(content))
		total += len(content)
	}
	fmt.Printf("Dry run: %d files, %d bytes total. Nothing written.\n", len(rendered), total)
	return nil
}
