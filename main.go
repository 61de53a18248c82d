// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command clwrap stands in for cl.exe and records clang++ compilation
// database entries instead of compiling.
//
// Usage is that of cl.exe. Response files (@file) are expanded, the sources
// are the trailing arguments naming existing files and the /Fo and /Fd
// switches select where the dummy object and PDB files and the compilation
// database fragments go. Additionally
//
//	-clwrap-clang <path>	use path as the clang++ executable
//	-clwrap-full-path	record absolute source file paths
//	-clwrap-verbose		trace what is read and written
//	-clwrap-version		print the version and exit
//
// The environment variables CLWRAP_CLANG and CLWRAP_VERBOSE have the same
// effect as the corresponding options. Without CLWRAP_CLANG the LLVM
// installation is looked up in the registry.
package main // import "modernc.org/clwrap"

import (
	"fmt"
	"os"

	clwrap "modernc.org/clwrap/lib"
)

func main() {
	if err := clwrap.NewTask(os.Args, os.Stdout, os.Stderr, nil).Main(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
