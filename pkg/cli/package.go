/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/aquaveo/xmsconan/pkg/defaults"
	"github.com/aquaveo/xmsconan/pkg/packager"
)

type packageCmdOptions struct {
	name         string
	conanfileDir string
	platform     string
	version      string
	upload       bool
	remote       string
	dryRun       bool
}

func parsePackageCmdOptions(cmd *cli.Command) *packageCmdOptions {
	return &packageCmdOptions{
		name:         cmd.String("name"),
		conanfileDir: cmd.String("conanfile"),
		platform:     cmd.String("platform"),
		version:      cmd.String("version"),
		upload:       cmd.Bool("upload"),
		remote:       cmd.String("remote"),
		dryRun:       cmd.Bool("dry-run"),
	}
}

func packageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "package",
		EnableShellCompletion: true,
		Usage:                 "Build the binary package matrix for a library",
		Description: `Build every conan configuration for a library on the current platform.

Each configuration is a compiler, architecture, build type, and xms
option combination from the platform's release matrix. A temporary
profile is written per configuration and every one is attempted even
after failures, so one broken configuration does not hide the rest.
The command exits non-zero when any configuration fails.

# Uploading

With --upload, packages are pushed to the conan remote after a fully
successful matrix run. The release version comes from the XMS_VERSION
environment variable, which CI sets from the tag. Passing --version
explicitly skips the matrix and only uploads already built packages:

  xmsconan package -n xmscore --upload --version 5.0.1

# Examples

Build the release matrix for the host platform:
  xmsconan package -n xmscore

Inspect the windows matrix without building:
  xmsconan package -n xmscore --platform windows --dry-run`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "Library name to package",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "conanfile",
				Usage: "Directory containing the conanfile.py",
				Value: ".",
			},
			&cli.StringFlag{
				Name: "platform",
				Usage: fmt.Sprintf("Platform matrix to build (default: host platform, supported values: %s)",
					packager.SupportedPlatforms()),
			},
			&cli.StringFlag{
				Name:  "version",
				Usage: "Version to upload, skips the build matrix",
			},
			&cli.BoolFlag{
				Name:  "upload",
				Usage: "Upload packages to the conan remote after a successful run",
			},
			&cli.StringFlag{
				Name:  "remote",
				Usage: "Conan remote to upload to",
				Value: defaults.ConanRemote,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the conan invocations without running them",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := parsePackageCmdOptions(cmd)

			popts := []packager.Option{
				packager.WithConanfileDir(opts.conanfileDir),
				packager.WithRemote(opts.remote),
				packager.WithDryRun(opts.dryRun),
			}
			if opts.platform != "" {
				popts = append(popts, packager.WithPlatform(opts.platform))
			}

			p, err := packager.New(opts.name, popts...)
			if err != nil {
				return err
			}

			// An explicit version means the packages are already built,
			// push them without rerunning the matrix.
			if opts.upload && opts.version != "" {
				return p.Upload(ctx, opts.version)
			}

			slog.Info("building package matrix",
				"library", opts.name,
				"platform", opts.platform,
				"upload", opts.upload,
				"dryRun", opts.dryRun)

			out, err := p.Run(ctx)
			if err != nil {
				return err
			}
			if out.HasErrors() {
				return fmt.Errorf("%d of %d configurations failed to build",
					out.FailureCount(), len(out.Results))
			}
			fmt.Println(out.Summary())

			if opts.upload && !opts.dryRun {
				return p.Upload(ctx, os.Getenv("XMS_VERSION"))
			}
			return nil
		},
	}
}
