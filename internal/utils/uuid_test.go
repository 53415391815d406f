package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestIsUUID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "0192c1a4-7d3e-7c1b-9a3f-2b1c4d5e6f70", want: true},
		{in: "0192C1A4-7D3E-7C1B-9A3F-2B1C4D5E6F70", want: true},
		{in: "urn:uuid:0192c1a4-7d3e-7c1b-9a3f-2b1c4d5e6f70", want: false},
		{in: "0192c1a47d3e7c1b9a3f2b1c4d5e6f70", want: false},
		{in: "not-a-uuid", want: false},
		{in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUUID(tt.in))
		})
	}
}
