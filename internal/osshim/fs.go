// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package osshim

import (
	"fmt"

	"github.com/spf13/afero"
)

// RealFs returns the operating system file system.
func RealFs() afero.Fs {
	return afero.NewOsFs()
}

// FsFromMap builds an in-memory file system containing the given files,
// keyed by path. Parent directories are created implicitly.
func FsFromMap(files map[string]string) (afero.Fs, error) {
	fs := afero.NewMemMapFs()
	for path, contents := range files {
		if err := afero.WriteFile(fs, path, []byte(contents), 0o600); err != nil {
			return nil, fmt.Errorf("error writing in-memory file %q: %w", path, err)
		}
	}
	return fs, nil
}
