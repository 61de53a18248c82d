// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwrap // import "modernc.org/clwrap/lib"

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitSources(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, map[string]string{
		"a.cpp":     "",
		"b.cpp":     "",
		"c.cpp":     "",
		"B.cpp":     "",
		"sub/d.cpp": "",
	})
	if err := os.Mkdir(filepath.Join(dir, "adir"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	for i, test := range []struct {
		args  []string
		rest  []string
		files []string
	}{
		{nil, nil, nil},
		{[]string{"/c"}, []string{"/c"}, nil},
		{[]string{"/c", "/Ifoo", "c.cpp", "a.cpp", "b.cpp"}, []string{"/c", "/Ifoo"}, []string{"a.cpp", "b.cpp", "c.cpp"}},
		{[]string{"a.cpp", "/c"}, []string{"a.cpp", "/c"}, nil},
		{[]string{"a.cpp", "/c", "b.cpp"}, []string{"a.cpp", "/c"}, []string{"b.cpp"}},
		{[]string{`"c.cpp"`, ` a.cpp`, "\tb.cpp"}, []string{}, []string{"a.cpp", "b.cpp", "c.cpp"}},
		{[]string{`/W4`, `sub\d.cpp`}, []string{"/W4"}, []string{"sub/d.cpp"}},
		{[]string{"/c", "adir"}, []string{"/c", "adir"}, nil},
		{[]string{"/c", "missing.cpp"}, []string{"/c", "missing.cpp"}, nil},
		{[]string{"a.cpp", "B.cpp"}, []string{}, []string{"B.cpp", "a.cpp"}},
	} {
		var rest, files []string
		if err := inDir(dir, func() (err error) {
			rest, files, err = cfg.SplitSources(test.args)
			return err
		}); err != nil {
			t.Fatal(err)
		}

		if len(rest) == 0 && len(test.rest) == 0 {
			rest, test.rest = nil, nil
		}
		if !reflect.DeepEqual(rest, test.rest) || !reflect.DeepEqual(files, test.files) {
			t.Errorf("%v: %q: got %q %q, expected %q %q", i, test.args, rest, files, test.rest, test.files)
		}
	}
}

func TestSplitSourcesFullPath(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, map[string]string{"a.cpp": ""})
	cfg := DefaultConfig()
	cfg.FullPath = true
	var files []string
	var abs string
	if err := inDir(dir, func() (err error) {
		if abs, err = filepath.Abs("a.cpp"); err != nil {
			return err
		}

		_, files, err = cfg.SplitSources([]string{"a.cpp"})
		return err
	}); err != nil {
		t.Fatal(err)
	}

	if g, e := files, []string{toSlash(abs)}; !reflect.DeepEqual(g, e) {
		t.Fatalf("got %q, expected %q", g, e)
	}
}

func TestCompileCommands(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, map[string]string{"a.cpp": "", "b.cpp": ""})
	cfg := DefaultConfig()
	var cmds []CompileCommand
	if err := inDir(dir, func() (err error) {
		cmds, err = cfg.CompileCommands(
			[]string{"--driver-mode=cl", `/I"C:\\x y"`, `/DFOO="bar"`, `/Fo.\out\`, "b.cpp", "a.cpp"},
			`C:\LLVM\bin\clang++.exe`,
			`C:\work`,
		)
		return err
	}); err != nil {
		t.Fatal(err)
	}

	cmd := `\"C:/LLVM/bin/clang++.exe\" --driver-mode=cl /I\"C:/x y\" /DFOO=\"bar\" /Fo./out/`
	exp := []CompileCommand{
		{Directory: "C:/work", Command: cmd + ` \"a.cpp\"`, File: "a.cpp"},
		{Directory: "C:/work", Command: cmd + ` \"b.cpp\"`, File: "b.cpp"},
	}
	if !reflect.DeepEqual(cmds, exp) {
		t.Fatalf("got\n%q\nexpected\n%q", cmds, exp)
	}
}

func TestCompileCommandsNoFiles(t *testing.T) {
	cmds, err := DefaultConfig().CompileCommands([]string{"/c"}, "clang++.exe", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if len(cmds) != 0 {
		t.Fatalf("got %v commands", len(cmds))
	}
}

func TestCommandText(t *testing.T) {
	for i, test := range []struct {
		exe  string
		args []string
		exp  string
	}{
		{"clang++.exe", nil, `\"clang++.exe\" `},
		{`C:\LLVM\clang++.exe`, []string{"/c"}, `\"C:/LLVM/clang++.exe\" /c`},
		{"x", []string{`\\server\share\a`, `"q"`}, `\"x\" /server/share/a \"q\"`},
	} {
		if g, e := commandText(test.exe, test.args), test.exp; g != e {
			t.Errorf("%v: got %s, expected %s", i, g, e)
		}
	}
}
