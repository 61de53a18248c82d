// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwrap // import "modernc.org/clwrap/lib"

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

var hives = map[string]registry.Key{
	"HKEY_CLASSES_ROOT":   registry.CLASSES_ROOT,
	"HKEY_CURRENT_CONFIG": registry.CURRENT_CONFIG,
	"HKEY_CURRENT_USER":   registry.CURRENT_USER,
	"HKEY_LOCAL_MACHINE":  registry.LOCAL_MACHINE,
	"HKEY_USERS":          registry.USERS,
}

// Registry returns a Resolver reading the default value of the registry key,
// for example `HKEY_LOCAL_MACHINE\SOFTWARE\LLVM\LLVM`, as an installation
// directory. Executables are resolved in its bin subdirectory.
func Registry(key string) Resolver {
	return ResolverFunc(func(name string) (string, bool) {
		hive, path, ok := strings.Cut(key, `\`)
		if !ok {
			return "", false
		}

		root, ok := hives[hive]
		if !ok {
			return "", false
		}

		k, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
		if err != nil {
			return "", false
		}

		defer k.Close()

		dir, _, err := k.GetStringValue("")
		if err != nil || dir == "" {
			return "", false
		}

		return filepath.Join(dir, "bin", name), true
	})
}
