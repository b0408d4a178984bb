// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader builds a [profile.ProfileSet] from the shared configuration
// file and the shared credentials file.
//
// File locations and the selected profile come from the environment:
//   - AWS_CONFIG_FILE             (default ~/.aws/config)
//   - AWS_SHARED_CREDENTIALS_FILE (default ~/.aws/credentials)
//   - AWS_PROFILE                 (default "default")
//
// Both files use an INI dialect. In the configuration file profiles are
// declared as [default] or [profile NAME]; in the credentials file every
// section header is a profile name. When a profile appears in both files the
// credentials file wins key by key.
//
// Missing files are not errors. Malformed files are, and callers are expected
// to decide how to degrade (the providers treat them as "no configuration").
package loader
