// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwrap // import "modernc.org/clwrap/lib"

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Sidecar is the configuration found beside the object output directory.
type Sidecar struct {
	Version  string   // major.minor, "0" if unknown
	Prefixes []string // system header prefixes
}

// ReadSidecar reads the version and system prefix files in dir. Missing files
// and an empty dir yield the zero configuration with Version "0".
func (c *Config) ReadSidecar(dir string) (r Sidecar, err error) {
	r.Version = "0"
	if dir == "" {
		return r, nil
	}

	dir = filepath.FromSlash(dir)
	if fn := filepath.Join(dir, c.VersionFile); isFile(fn) {
		lines, err := readLines(fn)
		if err != nil {
			return r, err
		}

		if len(lines) != 0 {
			if r.Version, err = msVersion(lines[0]); err != nil {
				return r, errorf("%s: %v", fn, err)
			}
		}
	}

	if fn := filepath.Join(dir, c.SystemFile); isFile(fn) {
		lines, err := readLines(fn)
		if err != nil {
			return r, err
		}

		for _, v := range lines {
			if v != "" {
				r.Prefixes = append(r.Prefixes, v)
			}
		}
	}
	return r, nil
}

// msVersion converts a _MSC_VER style code, eg. 1929, to major.minor, eg.
// 19.29. Negative codes are rejected.
func msVersion(s string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}

	v := fmt.Sprintf("v%d.%d", n/100, n%100)
	if !semver.IsValid(v) {
		return "", fmt.Errorf("negative compiler version code: %s", s)
	}

	return fmt.Sprintf("%s.%02d", strings.TrimPrefix(semver.Major(v), "v"), n%100), nil
}

func isFile(fn string) bool {
	fi, err := os.Stat(fn)
	return err == nil && fi.Mode().IsRegular()
}
