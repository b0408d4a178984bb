// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains small value types shared between the providers and
// the command-line application.
package models
