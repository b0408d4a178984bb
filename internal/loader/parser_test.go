// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"testing"

	"github.com/MKhiriev/go-profile-resolver/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_ConfigProfiles(t *testing.T) {
	data := `
# leading comment
[default]
region = us-west-2
output = json

; another comment
[profile base]
region = us-east-1

[profile needs-source]
source_profile = credentials
role_arn = arn:aws:iam::123456789012:role/test
`
	profiles, err := parseFile([]byte(data), configFile, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, rawProfiles{
		"default":      {"region": "us-west-2", "output": "json"},
		"base":         {"region": "us-east-1"},
		"needs-source": {"source_profile": "credentials", "role_arn": "arn:aws:iam::123456789012:role/test"},
	}, profiles)
}

// TestParseFile_ConfigSkipsNonProfileSections verifies that bare section names
// and other section types in the config file do not become profiles.
func TestParseFile_ConfigSkipsNonProfileSections(t *testing.T) {
	data := `
[base]
region = eu-west-1

[sso-session corp]
sso_region = us-east-1

[profile ok]
region = us-east-1

[profile too many words]
region = us-east-2
`
	profiles, err := parseFile([]byte(data), configFile, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, rawProfiles{"ok": {"region": "us-east-1"}}, profiles)
}

func TestParseFile_ProfileDefaultWinsOverBareDefault(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "prefixed first",
			data: "[profile default]\nregion = us-east-1\n[default]\nregion = us-west-2\n",
		},
		{
			name: "bare first",
			data: "[default]\nregion = us-west-2\n[profile default]\nregion = us-east-1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, err := parseFile([]byte(tt.data), configFile, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, rawProfiles{"default": {"region": "us-east-1"}}, profiles)
		})
	}
}

func TestParseFile_CredentialsProfiles(t *testing.T) {
	data := `
[default]
aws_access_key_id = AKIDEFAULT

[base]
aws_access_key_id = AKIBASE
aws_secret_access_key = secret

[profile prefixed]
aws_access_key_id = ignored
`
	profiles, err := parseFile([]byte(data), credentialsFile, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, rawProfiles{
		"default": {"aws_access_key_id": "AKIDEFAULT"},
		"base":    {"aws_access_key_id": "AKIBASE", "aws_secret_access_key": "secret"},
	}, profiles)
}

func TestParseFile_ValuesAndComments(t *testing.T) {
	data := `
[profile values]
region =   us-east-1   
endpoint_url = https://example.com/path#fragment
quoted = "kept as is"
inline = value # trailing comment
empty =
s3 =
  max_concurrent_requests = 20
`
	profiles, err := parseFile([]byte(data), configFile, logger.Nop())
	require.NoError(t, err)

	props := profiles["values"]
	require.NotNil(t, props)
	assert.Equal(t, "us-east-1", props["region"])
	assert.Equal(t, "https://example.com/path#fragment", props["endpoint_url"])
	assert.Equal(t, `"kept as is"`, props["quoted"])
	assert.Equal(t, "value", props["inline"])
	assert.Contains(t, props, "empty")
	assert.Empty(t, props["empty"])
	assert.Contains(t, props, "s3")
	assert.NotContains(t, props, "max_concurrent_requests", "nested values stay nested")
}

func TestParseFile_DuplicateSectionsMerge(t *testing.T) {
	data := "[profile a]\nregion = us-east-1\noutput = json\n[profile a]\nregion = eu-west-1\n"

	profiles, err := parseFile([]byte(data), configFile, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, rawProfiles{"a": {"region": "eu-west-1", "output": "json"}}, profiles)
}

func TestParseFile_EmptyInput(t *testing.T) {
	profiles, err := parseFile(nil, configFile, logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestParseFile_PropertyOutsideProfile(t *testing.T) {
	data := "region = us-east-1\n[default]\noutput = json\n"

	_, err := parseFile([]byte(data), configFile, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPropertyOutsideProfile)
}

// TestParseFile_DefaultHeaderSkipped verifies that a literal [DEFAULT]
// section is ignored like any other non-profile section.
func TestParseFile_DefaultHeaderSkipped(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "leading",
			data: "[DEFAULT]\nregion = us-west-2\n[profile a]\nregion = eu-west-1\n",
		},
		{
			name: "after a profile",
			data: "# comment\n[profile a]\nregion = eu-west-1\n\n[DEFAULT]\nregion = us-west-2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, err := parseFile([]byte(tt.data), configFile, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, rawProfiles{"a": {"region": "eu-west-1"}}, profiles)
		})
	}
}

func TestParseFile_PropertyOutsideProfileWithDefaultHeader(t *testing.T) {
	data := "output = json\n[DEFAULT]\nregion = us-west-2\n[profile a]\nregion = eu-west-1\n"

	_, err := parseFile([]byte(data), configFile, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPropertyOutsideProfile)
}

func TestScanPreamble(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		stray      bool
		defaultHdr bool
	}{
		{name: "empty"},
		{name: "comments only", data: "# a\n; b\n\n"},
		{name: "stray property", data: "region = x\n[default]\n", stray: true},
		{name: "default header", data: "[DEFAULT]\nregion = x\n", defaultHdr: true},
		{name: "lowercase default is a profile", data: "[default]\nregion = x\n"},
		{name: "both", data: "region = x\n[ DEFAULT ]\n", stray: true, defaultHdr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stray, defaultHdr := scanPreamble([]byte(tt.data))
			assert.Equal(t, tt.stray, stray)
			assert.Equal(t, tt.defaultHdr, defaultHdr)
		})
	}
}

func TestParseFile_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unclosed section", data: "[profile a\nregion = us-east-1\n"},
		{name: "line without delimiter", data: "[profile a]\nthis is not a property\n"},
		{name: "colon delimiter", data: "[profile a]\nregion: us-west-2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile([]byte(tt.data), configFile, logger.Nop())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfigFile)
		})
	}
}

func TestValidProfileName(t *testing.T) {
	valid := []string{"default", "base", "needs-source", "a_b", "team/dev", "x.y", "50%", "me@corp", "a:b", "a+b"}
	for _, name := range valid {
		assert.True(t, validProfileName(name), name)
	}

	invalid := []string{"", "has space", "tab\tname", "semi;colon", "brack]et", "ünïcode"}
	for _, name := range invalid {
		assert.False(t, validProfileName(name), name)
	}
}

func TestSectionProfileName(t *testing.T) {
	tests := []struct {
		section  string
		kind     fileKind
		name     string
		prefixed bool
		ok       bool
	}{
		{section: "default", kind: configFile, name: "default", ok: true},
		{section: "profile default", kind: configFile, name: "default", prefixed: true, ok: true},
		{section: "profile  spaced", kind: configFile, name: "spaced", prefixed: true, ok: true},
		{section: "base", kind: configFile, ok: false},
		{section: "profile", kind: configFile, ok: false},
		{section: "base", kind: credentialsFile, name: "base", ok: true},
		{section: "profile base", kind: credentialsFile, name: "profile base", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.section, func(t *testing.T) {
			name, prefixed, ok := sectionProfileName(tt.section, tt.kind)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.prefixed, prefixed)
		})
	}
}
