package ai

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

// SpeechToText is the transcription endpoint interface.
type SpeechToText interface {
	// Transcribe converts captured audio bytes into text.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type speechClient struct {
	client *openai.Client
	model  string
}

// NewSpeechToText creates a SpeechToText backed by an OpenAI-compatible
// transcription endpoint.
func NewSpeechToText(cfg *LLMConfig) (SpeechToText, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL

	return &speechClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.STTModel,
	}, nil
}

func (c *speechClient) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", errors.Wrapf(ErrUpstream, "transcription: %v", err)
	}
	return resp.Text, nil
}
