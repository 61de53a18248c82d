// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwrap // import "modernc.org/clwrap/lib"

import (
	"path/filepath"
	"sort"
	"strings"
)

// CompileCommand is one entry of a compilation database. Command is escaped
// for use inside a JSON string.
type CompileCommand struct {
	Directory string
	Command   string
	File      string
}

// SplitSources removes the trailing arguments naming existing files from
// args. It returns the remaining arguments and the files, slash separated and
// sorted.
//
// The scan runs from the end of args and stops at the first argument that is
// not an existing file. Earlier files are left in place.
func (c *Config) SplitSources(args []string) (rest, files []string, err error) {
	rest = args
	for len(rest) != 0 {
		fn := trimArg(rest[len(rest)-1])
		if !isFile(filepath.FromSlash(toSlash(fn))) {
			break
		}

		if c.FullPath {
			if fn, err = filepath.Abs(filepath.FromSlash(toSlash(fn))); err != nil {
				return nil, nil, err
			}
		}

		files = append(files, toSlash(fn))
		rest = rest[:len(rest)-1]
	}
	sort.Strings(files)
	return rest, files, nil
}

// CompileCommands returns one CompileCommand per source file found at the end
// of args, in file order. exe is the target compiler and wd the working
// directory.
func (c *Config) CompileCommands(args []string, exe, wd string) ([]CompileCommand, error) {
	rest, files, err := c.SplitSources(args)
	if err != nil {
		return nil, err
	}

	cmd := commandText(exe, rest)
	wd = toSlash(wd)
	r := make([]CompileCommand, 0, len(files))
	for _, v := range files {
		r = append(r, CompileCommand{
			Directory: wd,
			Command:   cmd + ` \"` + v + `\"`,
			File:      v,
		})
	}
	return r, nil
}

// commandText returns the command line of exe with args, slash separated and
// with double quotes escaped.
func commandText(exe string, args []string) string {
	s := strings.Join(args, " ")
	s = strings.ReplaceAll(s, `\\`, "/")
	s = toSlash(s)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `\"` + toSlash(exe) + `\" ` + s
}
