// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwrap // import "modernc.org/clwrap/lib"

import (
	"path"
	"path/filepath"
	"strings"
)

// Output holds the artifact paths of a CompileCommand.
type Output struct {
	Command  CompileCommand
	Database string
	Object   string
}

// Plan holds the artifacts of an invocation.
type Plan struct {
	Outputs []Output
	Debug   string // Debug file to touch, if any.
}

// PlanOutputs resolves the object, database and debug files of cmds from the
// output switches in args. The directory of every switch value is created
// using mkdir.
//
// An object switch value that is empty or ends in a path separator names a
// directory receiving one object and one database file per command, named
// after the source file. Otherwise it names the object file itself and is
// valid only for a single command.
func (c *Config) PlanOutputs(args []string, cmds []CompileCommand, mkdir func(dir string) error) (*Plan, error) {
	r := &Plan{}
	if len(cmds) == 0 {
		return r, nil
	}

	obj, err := c.outputSwitch(args, c.ObjectSwitch, mkdir)
	if err != nil {
		return nil, err
	}

	isDir := isDirValue(obj)
	if len(cmds) > 1 && !isDir {
		return nil, errorf("%w: %s%s", ErrSingleOutput, c.ObjectSwitch, obj)
	}

	dbg, err := c.outputSwitch(args, c.DebugSwitch, mkdir)
	if err != nil {
		return nil, err
	}

	if !isDirValue(dbg) {
		r.Debug = filepath.FromSlash(dbg)
	}
	for _, v := range cmds {
		out := Output{Command: v}
		switch {
		case isDir:
			out.Database = outputFile(obj, v.File, c.DatabaseExt)
			out.Object = outputFile(obj, v.File, c.ObjectExt)
		default:
			out.Database = filepath.FromSlash(changeExt(obj, c.DatabaseExt))
			out.Object = filepath.FromSlash(obj)
		}
		r.Outputs = append(r.Outputs, out)
	}
	return r, nil
}

func (c *Config) outputSwitch(args []string, prefix string, mkdir func(dir string) error) (string, error) {
	s, _, err := SwitchValue(args, prefix)
	if err != nil {
		return "", err
	}

	if dir := dirOf(s); dir != "" {
		if err := mkdir(filepath.FromSlash(dir)); err != nil {
			return "", err
		}
	}
	return s, nil
}

func isDirValue(s string) bool { return s == "" || strings.HasSuffix(s, "/") }

// outputFile returns the file named after src with extension ext in dir.
func outputFile(dir, src, ext string) string {
	fn := changeExt(path.Base(src), ext)
	if dir == "" {
		return fn
	}

	return filepath.Join(filepath.FromSlash(dir), fn)
}

// changeExt replaces the extension of the slash separated s by ext.
func changeExt(s, ext string) string {
	return strings.TrimSuffix(s, path.Ext(s)) + ext
}
