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
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
	"github.com/aquaveo/xmsconan/pkg/logging"
)

const (
	name           = "xmsconan"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd assembles the base command with all subcommands attached.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Build tooling for Aquaveo XMS libraries",
		Version: version,
		Description: fmt.Sprintf(`xmsconan - conan and cmake build tooling for XMS libraries

Version: %s
Commit:  %s
Built:   %s

generate - renders CMakeLists.txt, conanfile.py, and the python package
           metadata files from a TOML library description.
build    - runs conan install and cmake configure for a conan profile.
package  - builds the binary package matrix and uploads releases.
describe - prints the resolved library description.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
			buildCmd(),
			packageCmd(),
			describeCmd(),
		},
	}
}

// Execute runs the CLI with signal-aware cancellation. It is called by
// main.main() and owns the process exit code: external tool failures exit
// with the tool's own code, cancellation exits 2, other errors exit 1.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(xerrors.ExitCode(err))
	}
}

// initLogger configures slog before any command action runs so --log-level
// and LOG_LEVEL take effect for the whole invocation.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}
