// Package config resolves runtime settings from the environment. A .env
// file in the working directory is loaded when present; explicit
// environment variables always win.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/moodbite/moodbite/internal/chat"
)

// Environment variable names.
const (
	EnvDBPath       = "MOODBITE_DB"
	EnvChatProvider = "MOODBITE_CHAT_PROVIDER"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
	EnvOpenAIKey    = "OPENAI_API_KEY"
)

// Chat provider names accepted in MOODBITE_CHAT_PROVIDER.
const (
	ProviderCanned    = "canned"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Config holds resolved runtime settings.
type Config struct {
	DBPath       string
	ChatProvider string
	AnthropicKey string
	OpenAIKey    string
}

// Load reads a .env file if one exists, then resolves settings from the
// environment. A missing .env file is not an error.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to load .env file", "error", err)
		}
	}
	return Config{
		DBPath:       getEnvOrDefault(EnvDBPath, "moodbite.db"),
		ChatProvider: getEnvOrDefault(EnvChatProvider, ProviderCanned),
		AnthropicKey: os.Getenv(EnvAnthropicKey),
		OpenAIKey:    os.Getenv(EnvOpenAIKey),
	}
}

// Responder constructs the chat backend selected by ChatProvider.
func (c Config) Responder() (chat.Responder, error) {
	switch c.ChatProvider {
	case ProviderCanned:
		return chat.NewCanned(), nil
	case ProviderAnthropic:
		if c.AnthropicKey == "" {
			return nil, fmt.Errorf("chat provider %q requires %s", c.ChatProvider, EnvAnthropicKey)
		}
		return chat.NewAnthropic(func(o *chat.AnthropicOptions) { o.APIKey = c.AnthropicKey }), nil
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return nil, fmt.Errorf("chat provider %q requires %s", c.ChatProvider, EnvOpenAIKey)
		}
		return chat.NewOpenAI(func(o *chat.OpenAIOptions) { o.APIKey = c.OpenAIKey }), nil
	default:
		return nil, fmt.Errorf("unknown chat provider %q (want %s, %s, or %s)",
			c.ChatProvider, ProviderCanned, ProviderAnthropic, ProviderOpenAI)
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
