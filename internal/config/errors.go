// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	ErrInvalidKey          = errors.New("invalid setting key")
	ErrInvalidProfile      = errors.New("invalid profile name")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrUnexpectedArguments = errors.New("unexpected command-line arguments")
)
