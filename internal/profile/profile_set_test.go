// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileSet_Empty(t *testing.T) {
	set := NewProfileSet("")

	assert.True(t, set.IsEmpty())
	assert.Zero(t, set.Len())
	assert.Equal(t, DefaultProfileName, set.SelectedProfile())
	assert.Empty(t, set.Names())
}

func TestProfileSet_Nil(t *testing.T) {
	var set *ProfileSet

	assert.True(t, set.IsEmpty())
	assert.Zero(t, set.Len())
	assert.Equal(t, DefaultProfileName, set.SelectedProfile())
	assert.Nil(t, set.Names())

	_, ok := set.GetProfile("default")
	assert.False(t, ok)
}

func TestProfileSet_GetProfile(t *testing.T) {
	set := NewProfileSet("base",
		NewProfile("default", nil),
		NewProfile("base", map[string]string{"region": "us-east-1"}),
	)

	assert.False(t, set.IsEmpty())
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, "base", set.SelectedProfile())
	assert.Equal(t, []string{"base", "default"}, set.Names())

	p, ok := set.GetProfile("base")
	require.True(t, ok)
	assert.Equal(t, "base", p.Name())

	_, ok = set.GetProfile("doesnotexist")
	assert.False(t, ok, "absence is reported, not raised")
}

// TestNewProfileSet_DuplicateNames verifies that the last profile with a
// given name wins.
func TestNewProfileSet_DuplicateNames(t *testing.T) {
	set := NewProfileSet("",
		NewProfile("default", map[string]string{"region": "us-east-1"}),
		NewProfile("default", map[string]string{"region": "eu-west-1"}),
	)

	require.Equal(t, 1, set.Len())
	p, _ := set.GetProfile("default")
	v, _ := p.Get("region")
	assert.Equal(t, "eu-west-1", v)
}

// TestNewProfileSet_AcceptsCycles verifies that cyclic source_profile
// references are valid data at construction time.
func TestNewProfileSet_AcceptsCycles(t *testing.T) {
	set := NewProfileSet("a",
		NewProfile("a", map[string]string{SourceProfileKey: "b"}),
		NewProfile("b", map[string]string{SourceProfileKey: "a"}),
	)
	assert.Equal(t, 2, set.Len())
}
