package result

import "time"

// Kind identifies which pipeline stage produced a result.
type Kind string

const (
	// KindGenerate covers build file generation runs.
	KindGenerate Kind = "generate"
	// KindBuild covers conan install and cmake configure steps.
	KindBuild Kind = "build"
	// KindPackage covers binary package creation and upload steps.
	KindPackage Kind = "package"
)

// Result captures the outcome of a single pipeline step: one generation
// run, one tool invocation, or one package variant.
type Result struct {
	// Kind is the pipeline stage the step belongs to.
	Kind Kind `json:"kind" yaml:"kind"`

	// Name labels the step, such as a config path, a command name, or a
	// package variant.
	Name string `json:"name" yaml:"name"`

	// Files contains paths written by the step, in the order written.
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`

	// Size is the total size in bytes of the step's files.
	Size int64 `json:"size_bytes" yaml:"size_bytes"`

	// Duration is the time the step took.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Errors contains error messages recorded against the step.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	// Success reports whether the step completed.
	Success bool `json:"success" yaml:"success"`
}

// New creates an empty result for the given stage and step name.
func New(kind Kind, name string) *Result {
	return &Result{
		Kind:   kind,
		Name:   name,
		Files:  []string{},
		Errors: []string{},
	}
}

// AddFile records a written file and accumulates its size.
func (r *Result) AddFile(path string, size int64) {
	r.Files = append(r.Files, path)
	r.Size += size
}

// AddError records an error message. Nil errors are ignored.
func (r *Result) AddError(err error) {
	if err == nil {
		return
	}
	r.Errors = append(r.Errors, err.Error())
}

// MarkSuccess marks the step as completed.
func (r *Result) MarkSuccess() {
	r.Success = true
}
