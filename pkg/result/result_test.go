package result

import (
	"errors"
	"testing"
	"time"
)

// TestResult_New tests result creation
func TestResult_New(t *testing.T) {
	r := New(KindGenerate, "xmscore.toml")

	if r == nil {
		t.Fatal("New() returned nil")
		return
	}

	if r.Kind != KindGenerate {
		t.Errorf("Kind = %s, want %s", r.Kind, KindGenerate)
	}

	if r.Name != "xmscore.toml" {
		t.Errorf("Name = %s, want xmscore.toml", r.Name)
	}

	if r.Files == nil {
		t.Error("Files slice is nil")
	}

	if len(r.Files) != 0 {
		t.Errorf("New result should have 0 files, got %d", len(r.Files))
	}

	if r.Errors == nil {
		t.Error("Errors slice is nil")
	}

	if r.Success {
		t.Error("New result should not be marked as success")
	}

	if r.Size != 0 {
		t.Errorf("New result should have 0 size, got %d", r.Size)
	}
}

// TestResult_AddFile tests adding files to result
func TestResult_AddFile(t *testing.T) {
	r := New(KindGenerate, "xmscore.toml")

	r.AddFile("CMakeLists.txt", 100)
	r.AddFile("conanfile.py", 200)
	r.AddFile("_package/setup.py", 300)

	if len(r.Files) != 3 {
		t.Errorf("Expected 3 files, got %d", len(r.Files))
	}

	expectedFiles := []string{"CMakeLists.txt", "conanfile.py", "_package/setup.py"}
	for i, expected := range expectedFiles {
		if r.Files[i] != expected {
			t.Errorf("Files[%d] = %s, want %s", i, r.Files[i], expected)
		}
	}

	if r.Size != 600 {
		t.Errorf("Size = %d, want 600", r.Size)
	}
}

// TestResult_AddError tests adding errors to result
func TestResult_AddError(t *testing.T) {
	r := New(KindBuild, "conan")

	r.AddError(errors.New("first error"))
	r.AddError(nil)
	r.AddError(errors.New("second error"))

	if len(r.Errors) != 2 {
		t.Errorf("Expected 2 errors (nil ignored), got %d", len(r.Errors))
	}

	if r.Errors[0] != "first error" {
		t.Errorf("Errors[0] = %s, want 'first error'", r.Errors[0])
	}
}

// TestResult_MarkSuccess tests marking result as successful
func TestResult_MarkSuccess(t *testing.T) {
	r := New(KindPackage, "windows Release pybind")

	if r.Success {
		t.Error("New result should not be successful")
	}

	r.MarkSuccess()
	r.MarkSuccess()

	if !r.Success {
		t.Error("Result should be marked as successful")
	}
}

// TestResult_CompleteWorkflow tests a complete result workflow
func TestResult_CompleteWorkflow(t *testing.T) {
	r := New(KindGenerate, "xmsgrid.toml")

	r.AddFile("CMakeLists.txt", 1024)
	r.AddFile("conanfile.py", 2048)
	r.AddFile("_package/setup.py", 512)
	r.Duration = 3 * time.Millisecond
	r.MarkSuccess()

	if len(r.Files) != 3 {
		t.Errorf("Expected 3 files, got %d", len(r.Files))
	}

	if r.Size != 3584 {
		t.Errorf("Size = %d, want 3584", r.Size)
	}

	if !r.Success {
		t.Error("Result should be marked as successful")
	}
}
