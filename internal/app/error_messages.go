// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires configuration, providers and presentation for the
// resolver command.
//
// All Msg* constants are human-readable message strings written to the
// terminal or to log entries to describe the outcome of a run.
package app

const (
	// MsgNotFound is printed when no provider knows the requested key.
	MsgNotFound = "not found"

	// MsgFailedToLoadProfiles is logged when the profile files cannot be read
	// or parsed while explaining a resolution.
	MsgFailedToLoadProfiles = "failed to load profile files"

	// MsgCopyFailed is logged when the value could not be placed on the
	// clipboard. The value is still printed.
	MsgCopyFailed = "failed to copy value to clipboard"

	// MsgCopied is logged after the value was placed on the clipboard.
	MsgCopied = "value copied to clipboard"

	// MsgResolved is logged with the final result of a run.
	MsgResolved = "setting resolved"
)
