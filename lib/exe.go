// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwrap // import "modernc.org/clwrap/lib"

// Resolver locates the target compiler executable.
type Resolver interface {
	// Resolve returns the path of the executable name, if known.
	Resolve(name string) (path string, ok bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(name string) (string, bool)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(name string) (string, bool) { return f(name) }

// Path returns a Resolver resolving every name to path. An empty path
// resolves nothing.
func Path(path string) Resolver {
	return ResolverFunc(func(string) (string, bool) { return path, path != "" })
}

// Bare returns a Resolver resolving every name to itself, leaving the lookup
// to the program running the command.
func Bare() Resolver {
	return ResolverFunc(func(name string) (string, bool) { return name, true })
}

// SetResolvers replaces the resolvers consulted, in order, for the target
// compiler executable. The default is the platform registry.
func (t *Task) SetResolvers(r ...Resolver) { t.resolvers = r }

func (t *Task) executable() string {
	if t.clang != "" {
		return t.clang
	}

	resolvers := t.resolvers
	if resolvers == nil {
		resolvers = []Resolver{Registry(t.cfg.RegistryKey)}
	}
	for _, r := range resolvers {
		if s, ok := r.Resolve(t.cfg.Executable); ok {
			return s
		}
	}

	t.log.Warn().Str("key", t.cfg.RegistryKey).Msg("not found: please install clang")
	s, _ := Bare().Resolve(t.cfg.Executable)
	return s
}
