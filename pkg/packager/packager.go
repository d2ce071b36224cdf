/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

// Package packager builds the binary package matrix for a library. It
// expands the per-platform configuration table, writes a temporary conan
// profile for each configuration, and drives conan create and conan
// upload, continuing through individual configuration failures.
package packager

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aquaveo/xmsconan/pkg/defaults"
	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
	"github.com/aquaveo/xmsconan/pkg/executor"
	"github.com/aquaveo/xmsconan/pkg/result"
)

// Packager runs the package matrix for one library.
type Packager struct {
	libraryName  string
	conanfileDir string
	platform     string
	remote       string
	dryRun       bool
	exec         *executor.Executor
	out          io.Writer
}

// Option mutates a Packager during construction.
type Option func(*Packager)

// WithConanfileDir sets the directory holding the generated conanfile.py.
func WithConanfileDir(dir string) Option {
	return func(p *Packager) {
		p.conanfileDir = dir
	}
}

// WithPlatform overrides the host platform (windows, linux, darwin).
func WithPlatform(platform string) Option {
	return func(p *Packager) {
		p.platform = platform
	}
}

// WithRemote sets the conan remote packages are uploaded to.
func WithRemote(remote string) Option {
	return func(p *Packager) {
		p.remote = remote
	}
}

// WithDryRun prints the matrix and profiles without invoking conan.
func WithDryRun(dryRun bool) Option {
	return func(p *Packager) {
		p.dryRun = dryRun
	}
}

// WithExecutor sets the executor used for conan invocations.
func WithExecutor(exe *executor.Executor) Option {
	return func(p *Packager) {
		p.exec = exe
	}
}

// WithOutput sets the writer for the table and progress output.
func WithOutput(w io.Writer) Option {
	return func(p *Packager) {
		p.out = w
	}
}

// New creates a Packager for the named library. The platform defaults to
// the host platform.
func New(libraryName string, opts ...Option) (*Packager, error) {
	if strings.TrimSpace(libraryName) == "" {
		return nil, xerrors.New(xerrors.ErrCodeMissingField, "a library name is required")
	}

	p := &Packager{
		libraryName:  libraryName,
		conanfileDir: ".",
		platform:     runtime.GOOS,
		remote:       defaults.ConanRemote,
		out:          os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.exec == nil {
		p.exec = executor.New(executor.WithDryRun(p.dryRun))
	}

	if _, ok := platformAxes[p.platform]; !ok {
		return nil, xerrors.NewWithContext(xerrors.ErrCodeInvalidValue,
			fmt.Sprintf("platform %q is not supported, must be one of [%s]",
				p.platform, strings.Join(SupportedPlatforms(), ", ")), map[string]any{
				"platform":  p.platform,
				"supported": SupportedPlatforms(),
			})
	}

	return p, nil
}

// Run builds every configuration in the platform matrix, continuing
// through failures. The returned output carries one result per
// configuration; the error is non-nil only for setup failures and
// cancellation, not for individual configuration failures.
func (p *Packager) Run(ctx context.Context) (*result.Output, error) {
	configurations, err := Matrix(p.platform)
	if err != nil {
		return nil, err
	}
	env := buildenv()

	fmt.Fprintf(p.out, "\n%s package matrix for %s (%d configurations)\n\n",
		cases.Title(language.English).String(p.platform), p.libraryName, len(configurations))
	p.printTable(configurations)

	output := &result.Output{}

	if p.dryRun {
		for i, cfg := range configurations {
			fmt.Fprintf(p.out, "\nconfiguration %d of %d:\n%s",
				i+1, len(configurations), ProfileText(cfg, env))
			r := result.New(result.KindPackage, configurationName(i, len(configurations)))
			r.MarkSuccess()
			output.Add(r)
		}
		return output, nil
	}

	tempDir, err := os.MkdirTemp("", "xmsconan-package-")
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrCodeGenerationIO,
			"creating temporary profile directory", err)
	}
	defer os.RemoveAll(tempDir)
	profilePath := filepath.Join(tempDir, "temp_profile")

	for i, cfg := range configurations {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		name := configurationName(i, len(configurations))
		r := result.New(result.KindPackage, name)

		if err := os.WriteFile(profilePath, []byte(ProfileText(cfg, env)), 0o644); err != nil {
			return output, xerrors.WrapWithContext(xerrors.ErrCodeGenerationIO,
				"writing temporary profile", err, map[string]any{"path": profilePath})
		}

		slog.Info("building configuration", "index", i+1, "total", len(configurations))
		runResult, err := p.exec.Run(ctx, "conan", "create", p.conanfileDir, "--profile", profilePath)
		r.Duration = runResult.Duration
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				output.Add(r)
				return output, ctxErr
			}
			slog.Error("configuration failed", "name", name, "error", err)
			r.AddError(err)
			output.Add(r)
			output.RecordError(name, err)
			continue
		}

		r.MarkSuccess()
		output.Add(r)
	}

	if output.HasErrors() {
		fmt.Fprintf(p.out, "\nOne or more configurations failed to build. (%s)\n",
			strings.Join(output.FailedSteps(), ", "))
	} else {
		fmt.Fprintf(p.out, "\nAll configurations built successfully.\n")
	}

	return output, nil
}

// Upload pushes every package revision of the given version to the
// configured remote.
func (p *Packager) Upload(ctx context.Context, version string) error {
	if strings.TrimSpace(version) == "" {
		return xerrors.New(xerrors.ErrCodeMissingField, "a version is required for upload")
	}

	ref := fmt.Sprintf("%s/%s*", p.libraryName, version)
	slog.Info("uploading packages", "ref", ref, "remote", p.remote)
	if _, err := p.exec.Run(ctx, "conan", "upload", ref, "-r", p.remote, "--confirm"); err != nil {
		return err
	}

	fmt.Fprintf(p.out, "All packages uploaded successfully.\n")
	return nil
}

// printTable writes the configuration table in matrix order.
func (p *Packager) printTable(configurations []Configuration) {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "#\tcppstd\truntime\tbuild_type\tcompiler\tcompiler.version\tarch\t%[1]s:wchar_t\t%[1]s:pybind\t%[1]s:testing\n",
		p.libraryName)
	for i, cfg := range configurations {
		cppstd := cfg.Value("compiler.cppstd")
		if cppstd == "" {
			cppstd = cfg.Value("cppstd")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			cppstd,
			cfg.Value("compiler.runtime"),
			cfg.Value("build_type"),
			cfg.Value("compiler"),
			cfg.Value("compiler.version"),
			cfg.Value("arch"),
			cfg.WcharT,
			profileBool(cfg.Pybind),
			profileBool(cfg.Testing),
		)
	}
	_ = w.Flush()
}

// ProfileText renders the temporary conan profile for one configuration.
// Options carry the &: prefix so they bind to the consuming recipe only.
func ProfileText(cfg Configuration, env []Setting) string {
	var b strings.Builder
	b.WriteString("[settings]\n")
	for _, s := range cfg.Settings {
		fmt.Fprintf(&b, "%s=%s\n", s.Key, s.Value)
	}
	b.WriteString("\n[options]\n")
	fmt.Fprintf(&b, "&:wchar_t=%s\n", cfg.WcharT)
	fmt.Fprintf(&b, "&:pybind=%s\n", profileBool(cfg.Pybind))
	fmt.Fprintf(&b, "&:testing=%s\n", profileBool(cfg.Testing))
	b.WriteString("\n[buildenv]\n")
	for _, s := range env {
		fmt.Fprintf(&b, "%s=%s\n", s.Key, s.Value)
	}
	return b.String()
}

// buildenv collects the [buildenv] profile entries from the environment.
// Unset variables are omitted rather than written empty. A CI_COMMIT_TAG
// forces RELEASE_PYTHON=True so tagged pipelines publish python packages.
func buildenv() []Setting {
	var entries []Setting

	if v := os.Getenv("XMS_VERSION"); v != "" {
		entries = append(entries, Setting{Key: "XMS_VERSION", Value: v})
	}

	python := os.Getenv("PYTHON_TARGET_VERSION")
	if python == "" {
		python = defaults.PackagerPythonTargetVersion
	}
	entries = append(entries, Setting{Key: "PYTHON_TARGET_VERSION", Value: python})

	release := os.Getenv("RELEASE_PYTHON")
	if release == "" {
		release = "False"
	}
	if tag := os.Getenv("CI_COMMIT_TAG"); tag != "" {
		entries = append(entries, Setting{Key: "CI_COMMIT_TAG", Value: tag})
		release = "True"
	}
	entries = append(entries, Setting{Key: "RELEASE_PYTHON", Value: release})

	for _, key := range []string{"AQUAPI_USERNAME", "AQUAPI_PASSWORD", "AQUAPI_URL"} {
		if v := os.Getenv(key); v != "" {
			entries = append(entries, Setting{Key: key, Value: v})
		}
	}

	return entries
}

func profileBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func configurationName(index, total int) string {
	return fmt.Sprintf("configuration %d/%d", index+1, total)
}
