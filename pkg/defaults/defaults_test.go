package defaults

import "testing"

func TestDefaultConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"Version", Version, "99.99.99"},
		{"PackageDirName", PackageDirName, "_package"},
		{"CMakeDir", CMakeDir, "."},
		{"BuildDir", BuildDir, "./builds"},
		{"PythonTargetVersion", PythonTargetVersion, "3.13"},
		{"TestFilesDir", TestFilesDir, "./test_files"},
		{"PackagerPythonTargetVersion", PackagerPythonTargetVersion, "3.12"},
		{"ConanRemote", ConanRemote, "aquaveo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.value, tt.expected)
			}
		})
	}
}
