package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomOrderIDGenerator_Format(t *testing.T) {
	gen := RandomOrderIDGenerator{}

	for i := 0; i < 100; i++ {
		id := gen.Generate()
		assert.Regexp(t, `^ORD[A-Z0-9]{6}$`, id)
	}
}

func TestRandomOrderIDGenerator_Varies(t *testing.T) {
	gen := RandomOrderIDGenerator{}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[gen.Generate()] = true
	}
	// Collisions are possible in a 36^6 space but a thousand draws
	// should not collapse to a handful of values.
	assert.Greater(t, len(seen), 990)
}

func TestFixedOrderIDGenerator_InOrder(t *testing.T) {
	gen := NewFixedOrderIDGenerator("ORDAAAAAA", "ORDBBBBBB")

	assert.Equal(t, "ORDAAAAAA", gen.Generate())
	assert.Equal(t, "ORDBBBBBB", gen.Generate())
}

func TestFixedOrderIDGenerator_PanicsWhenExhausted(t *testing.T) {
	gen := NewFixedOrderIDGenerator("ORDAAAAAA")
	require.Equal(t, "ORDAAAAAA", gen.Generate())

	assert.Panics(t, func() { gen.Generate() })
}
