// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwrap // import "modernc.org/clwrap/lib"

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	extendedErrors bool // true: Errors will include origin info.

	// ErrMultipleSwitches is returned when an output switch occurs more than
	// once in one invocation.
	ErrMultipleSwitches = errors.New("cannot handle multiple switches")

	// ErrSingleOutput is returned when a single output file is given for
	// multiple input files.
	ErrSingleOutput = errors.New("single output file given for multiple input files")
)

// origin returns caller's short position, skipping skip frames.
func origin(skip int) string {
	pc, fn, fl, _ := runtime.Caller(skip)
	f := runtime.FuncForPC(pc)
	var fns string
	if f != nil {
		fns = f.Name()
		if x := strings.LastIndex(fns, "."); x > 0 {
			fns = fns[x+1:]
		}
		if strings.HasPrefix(fns, "func") {
			num := true
			for _, c := range fns[len("func"):] {
				if c < '0' || c > '9' {
					num = false
					break
				}
			}
			if num {
				return origin(skip + 2)
			}
		}
	}
	return fmt.Sprintf("%s:%d:%s", filepath.Base(fn), fl, fns)
}

// errorf constructs an error value. If extendedErrors is true, the error will
// contain its origin. Verbs are interpreted by fmt.Errorf, so %w works.
func errorf(s string, args ...interface{}) error {
	switch {
	case extendedErrors:
		return fmt.Errorf(s+" (%v:)", append(args, origin(2))...)
	default:
		return fmt.Errorf(s, args...)
	}
}

func env(name, deflt string) (r string) {
	r = deflt
	if s := os.Getenv(name); s != "" {
		r = s
	}
	return r
}

// toSlash rewrites every backslash in s to a forward slash. Unlike
// filepath.ToSlash it does so on every platform.
func toSlash(s string) string { return strings.ReplaceAll(s, `\`, "/") }

// trimArg removes surrounding quotes, spaces and tabs.
func trimArg(s string) string { return strings.Trim(s, "\" \t") }
