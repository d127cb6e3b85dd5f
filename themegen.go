// Package themegen builds themed utility stylesheets from a declarative
// build configuration descriptor.
//
// A project describes its build in a themegen.yaml descriptor: glob patterns
// for the markup files to scan, theme token extensions, an ordered plugin
// list, and a theme list layered over the built-in presets.
//
// # Building
//
// Resolve a descriptor and emit a stylesheet:
//
//	config := themegen.Config{
//		DescriptorPath: "themegen.yaml",
//		OutputPath:     "assets/app.css",
//		Prune:          true,
//	}
//	result, err := themegen.Build(config)
//
// # Checking
//
// Validate a descriptor without emitting anything:
//
//	desc, err := themegen.LoadDescriptor("themegen.yaml")
//	result, err := themegen.Check(desc, themegen.CheckConfig{})
//
// # CLI Tool
//
// themegen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/themegen/cmd/themegen@latest
package themegen
