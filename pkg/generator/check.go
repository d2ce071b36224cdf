/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/aquaveo/xmsconan/pkg/errors"
)

// FileDrift describes one on-disk file that differs from the rendered
// content, with a unified diff from disk to rendered.
type FileDrift struct {
	Path string
	Diff string
}

// DriftReport describes how the files under a directory differ from a
// fresh rendering. A clean report means regeneration would be a no-op.
type DriftReport struct {
	// Missing lists generated files absent from the output directory.
	Missing []string

	// Changed lists files whose on-disk bytes differ from the rendering.
	Changed []FileDrift
}

// Clean reports whether the output directory matches the rendering.
func (r *DriftReport) Clean() bool {
	return len(r.Missing) == 0 && len(r.Changed) == 0
}

// Check renders the build files in memory and compares them against the
// files under outputDir without writing anything. Unreadable files other
// than missing ones fail the check.
func (g *Generator) Check(ctx context.Context, input *GeneratorInput, outputDir string) (*DriftReport, error) {
	rendered, err := g.Render(ctx, input)
	if err != nil {
		return nil, err
	}

	report := &DriftReport{}
	for _, name := range OutputFiles() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(outputDir, name)
		onDisk, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				report.Missing = append(report.Missing, name)
				continue
			}
			return nil, errors.WrapWithContext(errors.ErrCodeGenerationIO,
				"reading existing file", err,
				map[string]any{"file": path})
		}

		want := rendered[name]
		if bytes.Equal(onDisk, want) {
			continue
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(onDisk)),
			B:        difflib.SplitLines(string(want)),
			FromFile: name + " (on disk)",
			ToFile:   name + " (rendered)",
			Context:  3,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "computing diff", err)
		}
		report.Changed = append(report.Changed, FileDrift{Path: name, Diff: diff})
	}

	return report, nil
}
