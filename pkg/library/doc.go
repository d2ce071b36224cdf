// Package library defines the library description schema and its TOML loader.
//
// A library description is the single input to build file generation: it
// names the library, lists its source and header files in build order, pins
// its xms dependencies, and selects the testing framework and Python binding
// style. Descriptions are loaded from TOML files kept next to each library's
// sources.
//
// Loading is strict where it matters and permissive where it does not:
// required fields and enum values are validated terminally, while unknown
// keys are warned about and ignored so older tools can read newer configs.
// File paths inside the description are never checked for existence; the
// build itself is the authority on whether they resolve.
//
// Example:
//
//	desc, err := library.Load("xmscore.toml")
//	if err != nil {
//	    return err
//	}
//	for _, dep := range desc.PythonDependencies() {
//	    fmt.Println(dep.Ref())
//	}
package library
