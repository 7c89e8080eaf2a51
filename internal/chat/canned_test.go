package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanned_KeywordMatch(t *testing.T) {
	ctx := context.Background()
	c := NewCanned()

	tests := []struct {
		message string
		want    string
	}{
		{"hello there", "Hello! How can I assist you today?"},
		{"got anything SPICY?", "The Dragon Fire wings are our hottest plate - not for the faint of heart."},
		{"what about a dessert", "The Midnight Lava Cake is the house favourite when you need cheering up."},
		{"i want a drink", "Try the Cosmic Blue Latte - perfect when you are tired or feeling creative."},
	}

	for _, tt := range tests {
		reply, err := c.Reply(ctx, tt.message)
		require.NoError(t, err)
		assert.Equal(t, tt.want, reply, "message %q", tt.message)
	}
}

func TestCanned_Fallback(t *testing.T) {
	c := NewCanned()

	reply, err := c.Reply(context.Background(), "what is the weather like")
	require.NoError(t, err)
	assert.Equal(t, "I can help with the menu, mood recommendations and orders. What are you craving?", reply)
}

func TestCanned_Deterministic(t *testing.T) {
	c := NewCanned()

	first, err := c.Reply(context.Background(), "recommend me something")
	require.NoError(t, err)
	second, err := c.Reply(context.Background(), "recommend me something")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
