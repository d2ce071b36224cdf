// Package result provides types for tracking command execution results.
//
// This package defines structures for capturing individual step results and
// aggregating them into a final run report. A step is one unit of pipeline
// work: a generation run over one config, a single conan or cmake invocation,
// or one binary package variant.
//
// # Usage
//
// Steps record what they produced:
//
//	r := result.New(result.KindGenerate, "xmscore.toml")
//	r.AddFile("CMakeLists.txt", 2048)
//	r.AddFile("conanfile.py", 4096)
//	r.Duration = time.Since(start)
//	r.MarkSuccess()
//
// Outputs aggregate steps with running totals:
//
//	out := &result.Output{OutputDir: dir}
//	out.Add(r)
//	fmt.Println(out.Summary())
//	// Generated 2 files (6.0 KB) in 12ms. Success: 1/1 steps.
//
// Outputs serialize cleanly to JSON and YAML for machine-readable reports.
package result
