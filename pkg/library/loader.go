/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

package library

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aquaveo/xmsconan/pkg/errors"
)

// Load reads a TOML library description from path and validates it.
func Load(path string) (*LibraryDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeGenerationIO,
			"reading library config", err,
			map[string]any{"path": path})
	}
	return Parse(data)
}

// Parse decodes and validates a TOML library description. Validation is
// terminal: any missing required field, malformed dependency record, or
// out-of-set enum value fails the whole load.
func Parse(data []byte) (*LibraryDescription, error) {
	var desc LibraryDescription
	meta, err := toml.Decode(string(data), &desc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidValue,
			"config is not valid TOML", err)
	}

	if keys := meta.Undecoded(); len(keys) > 0 {
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, k.String())
		}
		slog.Warn("ignoring unknown configuration keys",
			"keys", strings.Join(names, ", "))
	}

	if err := validate(&desc, meta); err != nil {
		return nil, err
	}
	return &desc, nil
}

func validate(desc *LibraryDescription, meta toml.MetaData) error {
	for _, field := range []struct {
		key   string
		value string
	}{
		{"library_name", desc.LibraryName},
		{"description", desc.Description},
	} {
		if !meta.IsDefined(field.key) || field.value == "" {
			return errors.NewWithContext(errors.ErrCodeMissingField,
				fmt.Sprintf("%s is required", field.key),
				map[string]any{"field": field.key})
		}
	}

	if !meta.IsDefined("testing_framework") {
		desc.TestingFramework = TestingCxxTest
	} else if !desc.TestingFramework.IsValid() {
		return errors.NewWithContext(errors.ErrCodeInvalidValue,
			fmt.Sprintf("unsupported testing_framework %q", desc.TestingFramework),
			map[string]any{
				"field":     "testing_framework",
				"value":     string(desc.TestingFramework),
				"supported": SupportedTestingFrameworks(),
			})
	}

	if !meta.IsDefined("python_binding_type") {
		desc.PythonBindingType = BindingPybind11
	} else if !desc.PythonBindingType.IsValid() {
		return errors.NewWithContext(errors.ErrCodeInvalidValue,
			fmt.Sprintf("unsupported python_binding_type %q", desc.PythonBindingType),
			map[string]any{
				"field":     "python_binding_type",
				"value":     string(desc.PythonBindingType),
				"supported": SupportedBindingTypes(),
			})
	}

	for i, dep := range desc.XmsDependencies {
		if dep.Name == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidValue,
				fmt.Sprintf("xms_dependencies[%d] is missing a name", i),
				map[string]any{"index": i})
		}
		if dep.Version == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidValue,
				fmt.Sprintf("xms_dependencies[%d] (%s) is missing a version", i, dep.Name),
				map[string]any{"index": i, "name": dep.Name})
		}
	}

	return nil
}
