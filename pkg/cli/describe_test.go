package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
)

func TestDescribeCmd(t *testing.T) {
	cmd := describeCmd()

	if cmd.Name != "describe" {
		t.Errorf("expected command name 'describe', got %q", cmd.Name)
	}

	flagNames := make(map[string]bool)
	for _, flag := range cmd.Flags {
		for _, n := range flag.Names() {
			flagNames[n] = true
		}
	}
	for _, flag := range []string{"output", "o", "format", "t"} {
		if !flagNames[flag] {
			t.Errorf("expected flag %q to be defined", flag)
		}
	}
}

func TestDescribeWritesYAML(t *testing.T) {
	dir := t.TempDir()
	cfg := writeLibraryConfig(t, dir)
	outPath := filepath.Join(dir, "resolved.yaml")

	err := describeCmd().Run(context.Background(), []string{"describe", "-o", outPath, cfg})
	if err != nil {
		t.Fatalf("describe failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "library_name: xmscore") {
		t.Errorf("expected resolved description in output, got:\n%s", data)
	}
}

func TestDescribeUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := writeLibraryConfig(t, dir)

	err := describeCmd().Run(context.Background(), []string{"describe", "-t", "xml", cfg})
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDescribeMissingConfigArg(t *testing.T) {
	err := describeCmd().Run(context.Background(), []string{"describe"})
	if err == nil {
		t.Fatal("expected an error without a config argument")
	}
	if !xerrors.HasCode(err, xerrors.ErrCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got: %v", err)
	}
}

func TestDescribeInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("library_name = \"xmscore\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	err := describeCmd().Run(context.Background(), []string{"describe", path})
	if err == nil {
		t.Fatal("expected a validation error for an incomplete description")
	}
	if !xerrors.HasCode(err, xerrors.ErrCodeMissingField) {
		t.Errorf("expected MISSING_FIELD, got: %v", err)
	}
}
