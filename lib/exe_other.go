// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package clwrap // import "modernc.org/clwrap/lib"

// Registry returns a Resolver that resolves nothing. There is no registry
// outside Windows.
func Registry(key string) Resolver {
	return ResolverFunc(func(string) (string, bool) { return "", false })
}
