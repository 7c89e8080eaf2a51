// Package chat generates replies for the ai/chat endpoint.
//
// The dispatcher treats chat like any other endpoint; reply content comes
// from a Responder. The canned responder keeps the engine fully offline and
// deterministic, while the Anthropic and OpenAI responders delegate to the
// respective APIs.
package chat

import "context"

// Responder produces a reply to a single chat message.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// SystemPrompt frames every provider-backed conversation. The persona and
// catalog facts match the demo restaurant.
const SystemPrompt = `You are Chef AI, the friendly assistant of a mood-driven restaurant.
The menu has five items: Truffle Mushroom Risotto ($24, Veg), Dragon Fire wings
($16, Non-Veg), Zen Avocado Salad ($18, Veg), Midnight Lava Cake ($12, Dessert)
and Cosmic Blue Latte ($8, Drinks). Answer briefly and stay on the topic of
food, moods and orders.`
