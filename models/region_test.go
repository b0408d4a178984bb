package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion(t *testing.T) {
	tests := []struct {
		name     string
		region   Region
		expected string
		zero     bool
	}{
		{name: "named region", region: NewRegion("us-east-1"), expected: "us-east-1"},
		{name: "empty name", region: NewRegion(""), expected: "", zero: true},
		{name: "zero value", region: Region{}, expected: "", zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.region.String())
			assert.Equal(t, tt.zero, tt.region.IsZero())
		})
	}
}

func TestRegion_Equality(t *testing.T) {
	assert.Equal(t, NewRegion("eu-west-1"), NewRegion("eu-west-1"))
	assert.NotEqual(t, NewRegion("eu-west-1"), NewRegion("eu-west-2"))
}
