// Package ai wraps the OpenAI-compatible chat and speech-to-text endpoints
// behind small interfaces so the rest of the server can be tested with mocks.
package ai

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

// ChatOptions tunes a single chat request.
type ChatOptions struct {
	Temperature float32
	MaxTokens   int
}

// LLMClient is the chat endpoint interface.
type LLMClient interface {
	// Chat performs synchronous chat.
	Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error)

	// ChatStream performs streaming chat. Both channels are closed when the
	// stream terminates; a value on the error channel means the stream failed.
	ChatStream(ctx context.Context, messages []Message, opts ChatOptions) (<-chan string, <-chan error)
}

type llmClient struct {
	client *openai.Client
	model  string
}

// NewLLMClient creates an LLMClient backed by an OpenAI-compatible endpoint.
func NewLLMClient(cfg *LLMConfig) (LLMClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL

	return &llmClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.ChatModel,
	}, nil
}

func (c *llmClient) Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    convertMessages(messages),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", errors.Wrapf(ErrUpstream, "chat completion: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.Wrap(ErrUpstream, "empty chat response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *llmClient) ChatStream(ctx context.Context, messages []Message, opts ChatOptions) (<-chan string, <-chan error) {
	contentChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		defer close(contentChan)
		defer close(errChan)

		req := openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    convertMessages(messages),
			Temperature: opts.Temperature,
			MaxTokens:   opts.MaxTokens,
			Stream:      true,
		}

		stream, err := c.client.CreateChatCompletionStream(ctx, req)
		if err != nil {
			errChan <- errors.Wrapf(ErrUpstream, "open chat stream: %v", err)
			return
		}
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				errChan <- errors.Wrapf(ErrUpstream, "receive chat delta: %v", err)
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case contentChan <- delta:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return contentChan, errChan
}

func convertMessages(messages []Message) []openai.ChatCompletionMessage {
	converted := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		if len(m.Parts) == 0 {
			converted[i] = openai.ChatCompletionMessage{
				Role:    m.Role,
				Content: m.Content,
			}
			continue
		}

		parts := make([]openai.ChatMessagePart, 0, len(m.Parts))
		for _, p := range m.Parts {
			switch p.Type {
			case ContentPartTypeImage:
				parts = append(parts, openai.ChatMessagePart{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: p.ImageURL},
				})
			default:
				parts = append(parts, openai.ChatMessagePart{
					Type: openai.ChatMessagePartTypeText,
					Text: p.Text,
				})
			}
		}
		converted[i] = openai.ChatCompletionMessage{
			Role:         m.Role,
			MultiContent: parts,
		}
	}
	return converted
}
