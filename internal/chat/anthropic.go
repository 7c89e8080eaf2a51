package chat

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicOptions configures the Anthropic responder (model id, max
// tokens, temperature, API key). Extend via functional options to preserve
// stability.
type AnthropicOptions struct {
	Model       anthropic.Model
	MaxTokens   int64
	Temperature float64
	APIKey      string
}

// Anthropic wraps the Anthropic Messages API behind the Responder interface.
type Anthropic struct {
	client *anthropic.Client
	opts   AnthropicOptions
}

// NewAnthropic creates an Anthropic responder using the official client.
func NewAnthropic(optFns ...func(o *AnthropicOptions)) *Anthropic {
	opts := AnthropicOptions{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		MaxTokens:   512,
		Temperature: 0.7,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Anthropic{
		client: &client,
		opts:   opts,
	}
}

// NewAnthropicFromClient creates an Anthropic responder from an existing client.
func NewAnthropicFromClient(client *anthropic.Client, optFns ...func(o *AnthropicOptions)) *Anthropic {
	opts := AnthropicOptions{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		MaxTokens:   512,
		Temperature: 0.7,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Anthropic{
		client: client,
		opts:   opts,
	}
}

// Reply implements Responder via a single non-streaming Messages call.
func (a *Anthropic) Reply(ctx context.Context, message string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       a.opts.Model,
		MaxTokens:   a.opts.MaxTokens,
		Temperature: anthropic.Float(a.opts.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(message)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var reply string
	for _, block := range resp.Content {
		if block.Type == "text" {
			reply += block.AsText().Text
		}
	}

	if reply == "" {
		return "", fmt.Errorf("anthropic api returned no text content")
	}
	return reply, nil
}
