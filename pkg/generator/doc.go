// Package generator renders conan and cmake build files from library
// descriptions.
//
// # Overview
//
// One generation run takes a validated library description plus a version
// string and produces four files under the output directory:
//
//   - CMakeLists.txt: the cmake build definition
//   - conanfile.py: the conan 2 recipe
//   - _package/setup.py: python package metadata
//   - _package/__init__.py: python package version module
//
// Rendering is deterministic. The same description and version always
// produce byte-identical files, so generated output diffs cleanly and a
// regeneration over unchanged input is a no-op. Source and header lists
// come out in config order; dependency option overrides are emitted in
// sorted order because their TOML table carries no reliable ordering.
//
// # Usage
//
// Generate files to disk:
//
//	gen := generator.NewGenerator()
//	out, err := gen.Generate(ctx, &generator.GeneratorInput{
//	    Description: desc,
//	    Version:     "9.0.3",
//	}, outputDir)
//
// Verify a directory is current without writing:
//
//	report, err := gen.Check(ctx, input, outputDir)
//	if err == nil && !report.Clean() {
//	    // report.Missing and report.Changed describe the drift
//	}
//
// Write failures surface as GENERATION_IO structured errors; template
// failures as INTERNAL. The full file set is rendered in memory before
// the first byte is written, so a failed run never leaves a partially
// generated tree.
package generator
