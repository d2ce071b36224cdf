package builder

import (
	"os"
	"path/filepath"
	"strings"

	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
)

// ParseProfileOptions extracts the root-level [options] section from a conan
// profile, following include() directives the way conan resolves them
// (relative to the including profile). Package-scoped keys such as
// "boost/*:shared" apply to dependencies, not this build, and are skipped.
// Missing include targets are ignored.
func ParseProfileOptions(path string) (map[string]string, error) {
	options := make(map[string]string)
	if err := parseProfileInto(path, options, make(map[string]bool)); err != nil {
		return nil, err
	}
	return options, nil
}

func parseProfileInto(path string, options map[string]string, visited map[string]bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return xerrors.WrapWithContext(xerrors.ErrCodeGenerationIO,
			"resolving profile path", err, map[string]any{"path": path})
	}
	if visited[abs] {
		return nil
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return nil
	}
	visited[abs] = true

	data, err := os.ReadFile(abs)
	if err != nil {
		return xerrors.WrapWithContext(xerrors.ErrCodeGenerationIO,
			"reading profile", err, map[string]any{"path": abs})
	}

	section := ""
	for _, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(strings.ToLower(line), "include(") && strings.HasSuffix(line, ")") {
			target := strings.TrimSpace(line[len("include(") : len(line)-1])
			if !filepath.IsAbs(target) {
				target = filepath.Join(filepath.Dir(abs), target)
			}
			if err := parseProfileInto(target, options, visited); err != nil {
				return err
			}
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}

		if section != "options" || !strings.Contains(line, "=") {
			continue
		}

		key, value, _ := strings.Cut(line, "=")
		key = strings.TrimPrefix(strings.TrimSpace(key), "&:")
		if strings.ContainsAny(key, "/:") {
			continue
		}
		options[key] = strings.TrimSpace(value)
	}

	return nil
}

// parseBoolOption normalizes a profile option value to the True/False
// literal handed to cmake. The "builtin" alias counts as true for option
// values that use it as their enabled state, but never for wchar_t where
// builtin is the default rather than an opt-in.
func parseBoolOption(value string, allowBuiltinAlias bool) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return "True"
	case "builtin":
		if allowBuiltinAlias {
			return "True"
		}
	}
	return "False"
}
