package chat

import (
	"context"
	"strings"
)

// rule maps a message keyword to a canned reply. First match wins.
type rule struct {
	keyword string
	reply   string
}

// Canned is a deterministic, offline Responder. It scans the message for
// known keywords and falls back to a generic nudge toward the menu.
type Canned struct {
	rules    []rule
	fallback string
}

// NewCanned constructs the default Chef AI keyword table.
func NewCanned() *Canned {
	return &Canned{
		rules: []rule{
			{keyword: "hello", reply: "Hello! How can I assist you today?"},
			{keyword: "hi", reply: "Hello! How can I assist you today?"},
			{keyword: "mood", reply: "Tell me your mood and I will pick dishes to match - try Happy, Calm or Energetic."},
			{keyword: "recommend", reply: "Pick a mood on the menu and I will recommend up to three matching dishes."},
			{keyword: "spicy", reply: "The Dragon Fire wings are our hottest plate - not for the faint of heart."},
			{keyword: "dessert", reply: "The Midnight Lava Cake is the house favourite when you need cheering up."},
			{keyword: "drink", reply: "Try the Cosmic Blue Latte - perfect when you are tired or feeling creative."},
			{keyword: "vegan", reply: "The Zen Avocado Salad is our lightest veg option at 300 kcal."},
			{keyword: "price", reply: "Dishes range from the $8 Cosmic Blue Latte to the $24 Truffle Mushroom Risotto."},
		},
		fallback: "I can help with the menu, mood recommendations and orders. What are you craving?",
	}
}

// Reply implements Responder. Matching is case-insensitive substring search
// over the rule table in declaration order.
func (c *Canned) Reply(_ context.Context, message string) (string, error) {
	lower := strings.ToLower(message)
	for _, r := range c.rules {
		if strings.Contains(lower, r.keyword) {
			return r.reply, nil
		}
	}
	return c.fallback, nil
}
