// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	info := NewBuildInfo(" 1.2.3 ", "", "abc123")

	assert.Equal(t, "1.2.3", info.Version())
	assert.Equal(t, NotAvailable, info.Date())
	assert.Equal(t, "abc123", info.Commit())
	assert.Equal(t, "resolver 1.2.3 (abc123)", info.String())
}

func TestBuildInfo_ZeroValue(t *testing.T) {
	var info BuildInfo

	assert.Equal(t, []BuildField{
		{Label: "Build version", Value: NotAvailable},
		{Label: "Build date", Value: NotAvailable},
		{Label: "Build commit", Value: NotAvailable},
	}, info.Fields())
}
