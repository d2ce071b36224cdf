package packager

import (
	"fmt"
	"sort"
	"strings"

	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
)

// Setting is a single key=value profile entry.
type Setting struct {
	Key   string
	Value string
}

// Configuration is one conan create run: its profile settings in write
// order plus the three package options.
type Configuration struct {
	Settings []Setting
	WcharT   string
	Pybind   bool
	Testing  bool
}

// Value returns the value of a settings key, or "" when the platform
// matrix does not carry it.
func (c Configuration) Value(key string) string {
	for _, s := range c.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

func (c Configuration) clone() Configuration {
	settings := make([]Setting, len(c.Settings))
	copy(settings, c.Settings)
	c.Settings = settings
	return c
}

// axis is one settings dimension of a platform matrix.
type axis struct {
	key    string
	values []string
}

// platformAxes defines the conan settings matrix per platform, in profile
// write order.
var platformAxes = map[string][]axis{
	"windows": {
		{key: "os", values: []string{"Windows"}},
		{key: "build_type", values: []string{"Release", "Debug"}},
		{key: "arch", values: []string{"x86_64"}},
		{key: "compiler", values: []string{"msvc"}},
		{key: "compiler.cppstd", values: []string{"17"}},
		{key: "compiler.version", values: []string{"192"}},
		{key: "compiler.runtime", values: []string{"dynamic", "static"}},
	},
	"linux": {
		{key: "os", values: []string{"Linux"}},
		{key: "cppstd", values: []string{"17"}},
		{key: "build_type", values: []string{"Release", "Debug"}},
		{key: "arch", values: []string{"x86_64"}},
		{key: "compiler", values: []string{"gcc"}},
		{key: "compiler.version", values: []string{"12"}},
	},
	"darwin": {
		{key: "os", values: []string{"Macos"}},
		{key: "build_type", values: []string{"Release", "Debug"}},
		{key: "arch", values: []string{"armv8"}},
		{key: "compiler", values: []string{"apple-clang"}},
		{key: "compiler.version", values: []string{"16"}},
		{key: "compiler.cppstd", values: []string{"gnu17"}},
		{key: "compiler.libcxx", values: []string{"libc++"}},
	},
}

// SupportedPlatforms returns the platform names in sorted order.
func SupportedPlatforms() []string {
	names := make([]string, 0, len(platformAxes))
	for name := range platformAxes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Matrix expands a platform's settings into the ordered configuration
// list: the base cartesian product first, then wchar_t=typedef variants of
// the msvc configurations, then pybind=True variants of the non-Debug
// dynamic-runtime configurations, then testing=True variants of every base
// configuration.
func Matrix(platform string) ([]Configuration, error) {
	axes, ok := platformAxes[platform]
	if !ok {
		return nil, xerrors.NewWithContext(xerrors.ErrCodeInvalidValue,
			fmt.Sprintf("platform %q is not supported, must be one of [%s]",
				platform, strings.Join(SupportedPlatforms(), ", ")), map[string]any{
				"platform":  platform,
				"supported": SupportedPlatforms(),
			})
	}

	base := expand(axes)

	var wcharVariants []Configuration
	for _, cfg := range base {
		if cfg.Value("compiler") == "msvc" {
			v := cfg.clone()
			v.WcharT = "typedef"
			wcharVariants = append(wcharVariants, v)
		}
	}

	var pybindVariants []Configuration
	for _, cfg := range base {
		runtime := cfg.Value("compiler.runtime")
		if cfg.Value("build_type") != "Debug" && (runtime == "" || runtime == "dynamic") {
			v := cfg.clone()
			v.Pybind = true
			pybindVariants = append(pybindVariants, v)
		}
	}

	var testingVariants []Configuration
	for _, cfg := range base {
		v := cfg.clone()
		v.Testing = true
		testingVariants = append(testingVariants, v)
	}

	all := make([]Configuration, 0, len(base)+len(wcharVariants)+len(pybindVariants)+len(testingVariants))
	all = append(all, base...)
	all = append(all, wcharVariants...)
	all = append(all, pybindVariants...)
	all = append(all, testingVariants...)
	return all, nil
}

// expand builds the cartesian product of the axes with the last axis
// varying fastest, so configuration order matches the matrix declaration.
func expand(axes []axis) []Configuration {
	combos := [][]Setting{nil}
	for _, ax := range axes {
		next := make([][]Setting, 0, len(combos)*len(ax.values))
		for _, combo := range combos {
			for _, value := range ax.values {
				extended := make([]Setting, len(combo), len(combo)+1)
				copy(extended, combo)
				extended = append(extended, Setting{Key: ax.key, Value: value})
				next = append(next, extended)
			}
		}
		combos = next
	}

	configurations := make([]Configuration, 0, len(combos))
	for _, settings := range combos {
		configurations = append(configurations, Configuration{
			Settings: settings,
			WcharT:   "builtin",
		})
	}
	return configurations
}
