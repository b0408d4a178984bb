// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package osshim isolates the process environment and the file system behind
// injectable values so that profile loading can be exercised without touching
// the real machine.
//
// The file system is represented by [afero.Fs]: [RealFs] returns the operating
// system implementation and [FsFromMap] builds an in-memory one. The
// environment is represented by [Env], an immutable snapshot of variables.
package osshim
