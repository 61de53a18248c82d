// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cdbmerge merges compilation database fragments written by clwrap
// into one compile_commands.json.
//
//	cdbmerge [-o file] [-arguments] [-v] (fragment.json | dir)...
//
// Directories are searched recursively for .json files. Entries are sorted by
// file and only the first entry of a file is kept. The output goes to stdout
// unless -o is given. With -arguments every entry also carries the command
// split into arguments.
package main // import "modernc.org/clwrap/cdbmerge"

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	clwrap "modernc.org/clwrap/lib"
	"modernc.org/opt"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	var (
		arguments bool
		inputs    []string
		o         string
		verbose   bool
	)
	set := opt.NewSet()
	set.Arg("o", false, func(opt, arg string) error { o = arg; return nil })
	set.Opt("arguments", func(opt string) error { arguments = true; return nil })
	set.Opt("v", func(opt string) error { verbose = true; return nil })
	if err := set.Parse(args[1:], func(arg string) error {
		if strings.HasPrefix(arg, "-") {
			return fmt.Errorf("unexpected option: %s", arg)
		}

		inputs = append(inputs, arg)
		return nil
	}); err != nil {
		return err
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no input files specified")
	}

	log := clwrap.NewLogger(stderr, verbose)
	files, err := clwrap.CompileDBFiles(inputs, ".json")
	if err != nil {
		return err
	}

	if o != "" {
		files = exclude(files, o)
	}
	db, err := clwrap.MergeCompileDB(files)
	if err != nil {
		return err
	}

	w := stdout
	if o != "" {
		f, err := os.Create(o)
		if err != nil {
			return err
		}

		defer func() {
			if e := f.Close(); e != nil && err == nil {
				err = e
			}
		}()

		w = f
	}
	if err := clwrap.WriteCompileDB(w, db, arguments); err != nil {
		return err
	}

	log.Info().
		Str("fragments", humanize.Comma(int64(len(files)))).
		Str("entries", humanize.Comma(int64(len(db)))).
		Msg("merged compilation database")
	return nil
}

// exclude removes fn from files.
func exclude(files []string, fn string) (r []string) {
	abs, err := filepath.Abs(fn)
	if err != nil {
		return files
	}

	for _, v := range files {
		if a, err := filepath.Abs(v); err == nil && a == abs {
			continue
		}

		r = append(r, v)
	}
	return r
}
