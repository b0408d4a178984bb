// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package osshim

import (
	"maps"
	"os"
	"strings"
)

const (
	// HomeVar is the primary variable used to locate the user's home directory.
	HomeVar = "HOME"
	// UserProfileVar is the Windows fallback for [HomeVar].
	UserProfileVar = "USERPROFILE"
)

// Env is an immutable snapshot of environment variables.
//
// The zero value is an empty environment. Env is safe for concurrent use
// because it is never mutated after construction; [Env.With] returns a copy.
type Env struct {
	vars map[string]string
}

// RealEnv captures the environment of the current process.
func RealEnv() Env {
	vars := make(map[string]string)
	for _, pair := range os.Environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}
	return Env{vars: vars}
}

// EnvFromMap builds an Env from the given variables. The map is copied.
func EnvFromMap(vars map[string]string) Env {
	return Env{vars: maps.Clone(vars)}
}

// Get returns the value of the variable named key and whether it is set.
func (e Env) Get(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Map returns a copy of all variables. It never returns nil.
func (e Env) Map() map[string]string {
	if e.vars == nil {
		return map[string]string{}
	}
	return maps.Clone(e.vars)
}

// With returns a copy of the environment with key set to value.
func (e Env) With(key, value string) Env {
	vars := e.Map()
	vars[key] = value
	return Env{vars: vars}
}

// HomeDir returns the user's home directory taken from HOME, falling back to
// USERPROFILE. Empty values are treated as unset.
func HomeDir(env Env) (string, bool) {
	for _, key := range []string{HomeVar, UserProfileVar} {
		if v, ok := env.Get(key); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
