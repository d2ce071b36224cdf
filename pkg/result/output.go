package result

import (
	"fmt"
	"time"
)

// Output contains the aggregated results of a command run.
type Output struct {
	// Results contains individual step results in execution order.
	Results []*Result `json:"results" yaml:"results"`

	// TotalSize is the total size in bytes of all generated files.
	TotalSize int64 `json:"total_size_bytes" yaml:"total_size_bytes"`

	// TotalFiles is the total count of generated files.
	TotalFiles int `json:"total_files" yaml:"total_files"`

	// TotalDuration is the total time taken for all steps.
	TotalDuration time.Duration `json:"total_duration" yaml:"total_duration"`

	// Errors contains errors from failed steps.
	Errors []StepError `json:"errors,omitempty" yaml:"errors,omitempty"`

	// OutputDir is the directory files were generated into, when the
	// command writes files.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
}

// StepError represents an error from a specific step.
type StepError struct {
	Step  string `json:"step" yaml:"step"`
	Error string `json:"error" yaml:"error"`
}

// Add appends a step result and folds its files, size, and duration into
// the output totals.
func (o *Output) Add(r *Result) {
	o.Results = append(o.Results, r)
	o.TotalSize += r.Size
	o.TotalFiles += len(r.Files)
	o.TotalDuration += r.Duration
}

// RecordError registers a step failure. Nil errors are ignored.
func (o *Output) RecordError(step string, err error) {
	if err == nil {
		return
	}
	o.Errors = append(o.Errors, StepError{Step: step, Error: err.Error()})
}

// HasErrors returns true if any step failed.
func (o *Output) HasErrors() bool {
	return len(o.Errors) > 0
}

// SuccessCount returns the number of successful steps.
func (o *Output) SuccessCount() int {
	count := 0
	for _, r := range o.Results {
		if r.Success {
			count++
		}
	}
	return count
}

// FailureCount returns the number of failed steps.
func (o *Output) FailureCount() int {
	return len(o.Results) - o.SuccessCount()
}

// FailedSteps returns the names of steps that failed, in order.
func (o *Output) FailedSteps() []string {
	failed := make([]string, 0, len(o.Errors))
	for _, e := range o.Errors {
		failed = append(failed, e.Step)
	}
	return failed
}

// Summary returns a human-readable summary of the run. Runs that wrote no
// files (build and package steps) report step counts only.
func (o *Output) Summary() string {
	if o.TotalFiles == 0 {
		return fmt.Sprintf(
			"Completed %d/%d steps in %v.",
			o.SuccessCount(),
			len(o.Results),
			o.TotalDuration.Round(time.Millisecond),
		)
	}
	return fmt.Sprintf(
		"Generated %d files (%s) in %v. Success: %d/%d steps.",
		o.TotalFiles,
		formatBytes(o.TotalSize),
		o.TotalDuration.Round(time.Millisecond),
		o.SuccessCount(),
		len(o.Results),
	)
}

// formatBytes formats bytes into human-readable format.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
