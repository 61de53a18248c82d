// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwrap // import "modernc.org/clwrap/lib"

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

// JSON returns the lines of the compilation database entry of c. Values are
// written as they are, they must already be escaped.
func (c CompileCommand) JSON() []string {
	return []string{
		"{",
		`"directory" : "` + c.Directory + `",`,
		`"command" : "` + c.Command + `",`,
		`"file" : "` + c.File + `"`,
		"}",
	}
}

// CompileCommands is a compilation database.
type CompileCommands []CompileCommand

// JSON returns the lines of the compilation database as a JSON array.
func (a CompileCommands) JSON() []string {
	r := []string{"["}
	for i, v := range a {
		if i != 0 {
			r = append(r, ",")
		}
		r = append(r, v.JSON()...)
	}
	return append(r, "]")
}

func writeLines(fn string, lines []string) error {
	return os.WriteFile(fn, []byte(strings.Join(lines, "\n")+"\n"), 0o666)
}

// write produces the artifacts of plan. All inputs are read before anything
// is written.
func (t *Task) write(plan *Plan) error {
	for _, v := range plan.Outputs {
		if err := t.readInput(v.Command.File); err != nil {
			return err
		}
	}

	for _, v := range plan.Outputs {
		t.log.Debug().Str("file", v.Database).Msg("writing file")
		if err := writeLines(v.Database, v.Command.JSON()); err != nil {
			return err
		}

		if err := t.touch(v.Object); err != nil {
			return err
		}

		if err := t.touch(plan.Debug); err != nil {
			return err
		}
	}
	return nil
}

// readInput opens fn for reading and closes it. The file tracker records the
// access as a dependency of the compile step.
func (t *Task) readInput(fn string) error {
	if fn == "" {
		return nil
	}

	t.log.Debug().Str("file", fn).Msg("reading file")
	f, err := os.Open(filepath.FromSlash(fn))
	if err != nil {
		return err
	}

	return f.Close()
}

// touch creates fn if it does not exist and sets its access time to now.
// Existing content is kept.
func (t *Task) touch(fn string) error {
	if fn == "" {
		return nil
	}

	t.log.Debug().Str("file", fn).Msg("touching file")
	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE, 0o666)
	if err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Chtimes(fn, time.Now(), time.Time{})
}

type cdbItem struct {
	Arguments []string `json:"arguments,omitempty"`
	Command   string   `json:"command,omitempty"`
	Directory string   `json:"directory"`
	File      string   `json:"file"`
}

// ReadCompileDB reads a compilation database file holding either a single
// entry or an array of entries. All fields are returned escaped, as produced
// by CompileCommands.
func ReadCompileDB(fn string) (CompileCommands, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	var items []cdbItem
	switch b = bytes.TrimSpace(b); {
	case len(b) == 0:
		return nil, nil
	case b[0] == '[':
		err = json.Unmarshal(b, &items)
	default:
		items = make([]cdbItem, 1)
		err = json.Unmarshal(b, &items[0])
	}
	if err != nil {
		return nil, errorf("%s: %v", fn, err)
	}

	var r CompileCommands
	for _, v := range items {
		cmd := v.Command
		if cmd == "" && len(v.Arguments) != 0 {
			cmd = shellquote.Join(v.Arguments...)
		}
		r = append(r, CompileCommand{
			Directory: jsonEscape(v.Directory),
			Command:   jsonEscape(cmd),
			File:      jsonEscape(v.File),
		})
	}
	return r, nil
}

// jsonEscape returns s escaped for use inside a JSON string.
func jsonEscape(s string) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return s
	}

	r := strings.TrimSuffix(b.String(), "\n")
	return r[1 : len(r)-1]
}

// jsonUnescape reverses jsonEscape.
func jsonUnescape(s string) (r string, err error) {
	err = json.Unmarshal([]byte(`"`+s+`"`), &r)
	return r, err
}

// unit returns the slash separated path of the source file of c, resolved
// against its directory when relative.
func (c CompileCommand) unit() string {
	dir, err := jsonUnescape(c.Directory)
	if err != nil {
		dir = c.Directory
	}
	file, err := jsonUnescape(c.File)
	if err != nil {
		file = c.File
	}

	switch dir, file = toSlash(dir), toSlash(file); {
	case path.IsAbs(file), len(file) > 1 && file[1] == ':':
		return path.Clean(file)
	default:
		return path.Join(dir, file)
	}
}

// CompileDBFiles returns the files named by paths. Directories are walked for
// files with extension ext.
func CompileDBFiles(paths []string, ext string) (r []string, err error) {
	for _, v := range paths {
		fi, err := os.Stat(v)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			r = append(r, v)
			continue
		}

		if err := filepath.WalkDir(v, func(pth string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && filepath.Ext(pth) == ext {
				r = append(r, pth)
			}
			return nil
		}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MergeCompileDB reads the compilation database files and returns their
// entries sorted by file and directory. Only the first entry of every source
// file, resolved against its directory, is kept.
func MergeCompileDB(files []string) (CompileCommands, error) {
	var r CompileCommands
	seen := map[string]struct{}{}
	for _, fn := range files {
		a, err := ReadCompileDB(fn)
		if err != nil {
			return nil, err
		}

		for _, v := range a {
			k := v.unit()
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}
			r = append(r, v)
		}
	}
	sort.SliceStable(r, func(i, j int) bool {
		if r[i].File != r[j].File {
			return r[i].File < r[j].File
		}

		return r[i].Directory < r[j].Directory
	})
	return r, nil
}

// WriteCompileDB writes db to w. With arguments set the entries are written
// as indented JSON with the command also split into arguments. Otherwise the
// format of CompileCommands.JSON is used.
func WriteCompileDB(w io.Writer, db CompileCommands, arguments bool) error {
	if !arguments {
		_, err := io.WriteString(w, strings.Join(db.JSON(), "\n")+"\n")
		return err
	}

	wr := newCDBWriter(w)
	for _, v := range db {
		var it cdbItem
		for _, f := range []struct {
			dst *string
			src string
		}{
			{&it.Command, v.Command},
			{&it.Directory, v.Directory},
			{&it.File, v.File},
		} {
			s, err := jsonUnescape(f.src)
			if err != nil {
				return errorf("%s: %v", v.File, err)
			}

			*f.dst = s
		}

		args, err := shellquote.Split(it.Command)
		if err != nil {
			return errorf("%s: %v", v.File, err)
		}

		it.Arguments = args
		wr.add(it)
	}
	return wr.finish()
}

type cdbWriter struct {
	items []cdbItem
	w     *bufio.Writer
}

func newCDBWriter(w io.Writer) *cdbWriter {
	return &cdbWriter{
		items: []cdbItem{},
		w:     bufio.NewWriter(w),
	}
}

func (w *cdbWriter) add(it cdbItem) { w.items = append(w.items, it) }

func (w *cdbWriter) finish() error {
	enc := json.NewEncoder(w.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w.items); err != nil {
		return err
	}

	return w.w.Flush()
}
