// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	ErrNotFound  = errors.New("setting not found")
	ErrNilConfig = errors.New("nil config")
)
