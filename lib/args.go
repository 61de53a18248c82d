// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwrap // import "modernc.org/clwrap/lib"

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const maxLine = 1 << 24

// ExpandArgs returns args with comments removed and every @file argument
// replaced by the arguments found on the lines of file, recursively.
func ExpandArgs(args []string) (r []string, err error) {
	for _, v := range args {
		switch {
		case v == "":
			// nop
		case v[0] == '#':
			// comment
		case v[0] == '@':
			lines, err := readLines(v[1:])
			if err != nil {
				return nil, err
			}

			var a []string
			for _, line := range lines {
				a = append(a, SplitLine(line)...)
			}
			if a, err = ExpandArgs(a); err != nil {
				return nil, err
			}

			r = append(r, a...)
		default:
			r = append(r, v)
		}
	}
	return r, nil
}

// SplitLine splits a response file line at spaces outside of double quotes.
// The quotes are kept.
func SplitLine(line string) (r []string) {
	var b strings.Builder
	inQuote := false
	for _, c := range line {
		switch {
		case c == ' ' && !inQuote:
			if b.Len() != 0 {
				r = append(r, b.String())
				b.Reset()
			}
		default:
			if c == '"' {
				inQuote = !inQuote
			}
			b.WriteRune(c)
		}
	}
	if b.Len() != 0 {
		r = append(r, b.String())
	}
	return r
}

// readLines returns the lines of a UTF-16LE text file. A byte order mark, if
// present, selects the encoding instead.
func readLines(fn string) (r []string, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(f, dec))
	sc.Buffer(make([]byte, 1<<16), maxLine)
	for sc.Scan() {
		r = append(r, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errorf("%s: %v", fn, err)
	}

	return r, nil
}

// RewriteIncludes replaces the include switch by the system include switch
// for every include path containing one of the system markers.
func (c *Config) RewriteIncludes(args []string) []string {
	r := make([]string, 0, len(args))
	for _, v := range args {
		if strings.HasPrefix(v, c.IncludeSwitch) && c.isSystem(v) {
			v = c.SystemIncludeSwitch + v[len(c.IncludeSwitch):]
		}
		r = append(r, v)
	}
	return r
}

func (c *Config) isSystem(s string) bool {
	for _, v := range c.SystemMarkers {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}

// SwitchValue returns the value of the only argument starting with prefix,
// with surrounding quotes and blanks removed and backslashes rewritten to
// slashes. It is an error if more than one argument starts with prefix.
func SwitchValue(args []string, prefix string) (value string, ok bool, err error) {
	for _, v := range args {
		if !strings.HasPrefix(v, prefix) {
			continue
		}

		if ok {
			return "", false, errorf("%w: %s", ErrMultipleSwitches, prefix)
		}

		value, ok = toSlash(trimArg(v[len(prefix):])), true
	}
	return value, ok, nil
}

// ClangArgs returns the arguments of the target compiler: the fixed
// compatibility flags, a flag pair for every system header prefix and the
// rewritten args, in that order. The sidecar files are looked up in the
// directory of the object output switch.
func (c *Config) ClangArgs(args []string) ([]string, error) {
	args = c.RewriteIncludes(args)
	obj, _, err := SwitchValue(args, c.ObjectSwitch)
	if err != nil {
		return nil, err
	}

	sc, err := c.ReadSidecar(dirOf(obj))
	if err != nil {
		return nil, err
	}

	return append(c.CompatArgs(sc), args...), nil
}

// CompatArgs returns the flags always passed to the target compiler.
func (c *Config) CompatArgs(sc Sidecar) []string {
	r := []string{c.DriverMode, c.VersionFlag + sc.Version}
	r = append(r, c.ExtraArgs...)
	for _, v := range sc.Prefixes {
		r = append(r, c.PassThrough, c.SystemPrefixFlag+`"`+v+`"`)
	}
	return r
}

// dirOf returns the part of the slash separated s before its last slash.
func dirOf(s string) string {
	switch i := strings.LastIndexByte(s, '/'); {
	case i < 0:
		return ""
	case i == 0:
		return "/"
	default:
		return s[:i]
	}
}
