// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import "errors"

var (
	// ErrInvalidConfigFile indicates that a configuration or credentials file
	// could not be parsed as INI.
	ErrInvalidConfigFile = errors.New("invalid profile file")
	// ErrPropertyOutsideProfile indicates a property line that appears before
	// the first profile header.
	ErrPropertyOutsideProfile = errors.New("property defined outside of a profile")
	// ErrInvalidEnvironment indicates that the loader environment variables
	// could not be read.
	ErrInvalidEnvironment = errors.New("invalid loader environment")
)
