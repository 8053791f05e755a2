package ai

import "errors"

// LLMConfig represents LLM and speech-to-text configuration.
type LLMConfig struct {
	APIKey    string
	BaseURL   string // default: https://api.openai.com/v1
	ChatModel string // default: gpt-4o-mini
	STTModel  string // default: whisper-1
}

// applyDefaults fills unset values.
func (c *LLMConfig) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.ChatModel == "" {
		c.ChatModel = "gpt-4o-mini"
	}
	if c.STTModel == "" {
		c.STTModel = "whisper-1"
	}
}

// Validate checks the configuration.
func (c *LLMConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("api key is required")
	}
	return nil
}
