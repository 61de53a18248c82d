// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clwrap implements the clwrap command.
//
// clwrap stands in for cl.exe in an MSBuild project. It translates the cl.exe
// command line into the equivalent clang++ command line, writes one
// compilation database fragment per source file and touches the object and
// PDB files MSBuild expects, so the file tracker sees an ordinary compile step.
// Nothing is compiled.
package clwrap // import "modernc.org/clwrap/lib"

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"modernc.org/opt"
)

// Version is the clwrap version printed by -clwrap-version.
const Version = "1.0.0"

// Config holds the fixed switch names, file names and flags of a translation.
type Config struct {
	DatabaseExt         string   // ".json"
	DebugSwitch         string   // "/Fd"
	DriverMode          string   // "--driver-mode=cl"
	Executable          string   // "clang++.exe"
	ExtraArgs           []string // passed to the target compiler after the version flag
	IncludeSwitch       string   // "/I"
	ObjectExt           string   // ".obj"
	ObjectSwitch        string   // "/Fo"
	PassThrough         string   // "-Xclang"
	RegistryKey         string   // LLVM install location
	SystemFile          string   // "_system.txt"
	SystemIncludeSwitch string   // "/imsvc"
	SystemMarkers       []string // include paths containing any of these are system headers
	SystemPrefixFlag    string   // "--system-header-prefix="
	VersionFile         string   // "_version.txt"
	VersionFlag         string   // "-fms-compatibility-version="

	FullPath bool // Source files are recorded with absolute paths.
}

// DefaultConfig returns the configuration for translating cl.exe invocations
// to clang++.
func DefaultConfig() *Config {
	return &Config{
		DatabaseExt: ".json",
		DebugSwitch: "/Fd",
		DriverMode:  "--driver-mode=cl",
		Executable:  "clang++.exe",
		ExtraArgs: []string{
			"-fdiagnostics-absolute-paths",
			"-Qunused-arguments",
			"-m64",
			"-Wno-nonportable-include-path",
		},
		IncludeSwitch:       "/I",
		ObjectExt:           ".obj",
		ObjectSwitch:        "/Fo",
		PassThrough:         "-Xclang",
		RegistryKey:         `HKEY_LOCAL_MACHINE\SOFTWARE\Wow6432Node\LLVM\LLVM`,
		SystemFile:          "_system.txt",
		SystemIncludeSwitch: "/imsvc",
		SystemMarkers:       []string{`\Windows Kits\`, `\VC\`},
		SystemPrefixFlag:    "--system-header-prefix=",
		VersionFile:         "_version.txt",
		VersionFlag:         "-fms-compatibility-version=",
	}
}

// NewLogger returns the logger used by the clwrap commands. Only warnings are
// written unless verbose is set.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	lvl := zerolog.WarnLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}).Level(lvl)
}

// Task represents a translation job.
type Task struct {
	args      []string // command name in args[0]
	cfg       *Config
	clang     string // -clwrap-clang, $CLWRAP_CLANG
	log       zerolog.Logger
	resolvers []Resolver
	stderr    io.Writer
	stdout    io.Writer

	verbose bool // -clwrap-verbose, $CLWRAP_VERBOSE
	version bool // -clwrap-version
}

// NewTask returns a newly created Task. args[0] is the command name. A nil
// cfg selects DefaultConfig.
func NewTask(args []string, stdout, stderr io.Writer, cfg *Config) *Task {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	return &Task{
		args:    args,
		cfg:     &c,
		clang:   env("CLWRAP_CLANG", ""),
		stderr:  stderr,
		stdout:  stdout,
		verbose: env("CLWRAP_VERBOSE", "") != "",
	}
}

// Main executes task.
func (t *Task) Main() (err error) {
	if len(t.args) == 0 {
		return errorf("invalid arguments %v", t.args)
	}

	args, err := ExpandArgs(t.args[1:])
	if err != nil {
		return err
	}

	if args, err = t.options(args); err != nil {
		return err
	}

	if t.version {
		fmt.Fprintf(t.stdout, "%s\n", Version)
		return nil
	}

	t.log = NewLogger(t.stderr, t.verbose)
	if args, err = t.cfg.ClangArgs(args); err != nil {
		return err
	}

	t.log.Debug().Strs("args", args).Msg("command line arguments")
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	cmds, err := t.cfg.CompileCommands(args, t.executable(), wd)
	if err != nil {
		return err
	}

	if len(cmds) == 0 {
		return nil
	}

	plan, err := t.cfg.PlanOutputs(args, cmds, t.mkdir)
	if err != nil {
		return err
	}

	return t.write(plan)
}

// options extracts the clwrap options from args. All other arguments are
// returned in order.
func (t *Task) options(args []string) (r []string, err error) {
	set := opt.NewSet()
	set.Arg("clwrap-clang", false, func(opt, arg string) error { t.clang = arg; return nil })
	set.Opt("clwrap-full-path", func(opt string) error { t.cfg.FullPath = true; return nil })
	set.Opt("clwrap-verbose", func(opt string) error { t.verbose = true; return nil })
	set.Opt("clwrap-version", func(opt string) error { t.version = true; return nil })
	if err := set.Parse(args, func(arg string) error { r = append(r, arg); return nil }); err != nil {
		return nil, errorf("parsing %v: %v", args, err)
	}

	return r, nil
}

func (t *Task) mkdir(dir string) error {
	t.log.Debug().Str("dir", dir).Msg("creating directory")
	return os.MkdirAll(dir, 0o755)
}
