package chat

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIOptions configures the OpenAI responder. Fields mirror a minimal
// subset of Chat Completion parameters.
type OpenAIOptions struct {
	Model               string
	MaxCompletionTokens int64
	Temperature         float64
	APIKey              string
}

// OpenAI wraps the OpenAI Chat Completions API behind the Responder interface.
type OpenAI struct {
	client *openai.Client
	opts   OpenAIOptions
}

// NewOpenAI creates an OpenAI responder using the official client.
func NewOpenAI(optFns ...func(o *OpenAIOptions)) *OpenAI {
	opts := OpenAIOptions{
		Model:               openai.ChatModelGPT4oMini,
		MaxCompletionTokens: 512,
		Temperature:         0.7,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := openai.NewClient(clientOpts...)

	return &OpenAI{
		client: &client,
		opts:   opts,
	}
}

// NewOpenAIFromClient creates an OpenAI responder from an existing client.
func NewOpenAIFromClient(client *openai.Client, optFns ...func(o *OpenAIOptions)) *OpenAI {
	opts := OpenAIOptions{
		Model:               openai.ChatModelGPT4oMini,
		MaxCompletionTokens: 512,
		Temperature:         0.7,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &OpenAI{
		client: client,
		opts:   opts,
	}
}

// Reply implements Responder via a single non-streaming completion.
func (o *OpenAI) Reply(ctx context.Context, message string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.opts.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(message),
		},
		MaxCompletionTokens: openai.Int(o.opts.MaxCompletionTokens),
		Temperature:         openai.Float(o.opts.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
