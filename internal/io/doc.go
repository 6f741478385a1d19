// Package ioutils provides file system utilities for writing rendered
// fragments and content documents.
//
// # File Operations
//
//	// Write data to file, creating parent directories
//	err := ioutils.WriteFile(ctx, "/out/2017/arm.html", []byte("..."))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Fragment Names
//
// FragmentPath maps an article slug to a file below an output directory,
// sanitizing every path segment:
//
//	ioutils.FragmentPath("/out", "2017/arm: part 1", ".html") // "/out/2017/arm_ part 1.html"
package ioutils
