package ai

import (
	"context"
	"sync"
)

// MockLLMClient is a mock implementation of LLMClient for testing.
type MockLLMClient struct {
	mu sync.Mutex

	// ChatReply is returned by Chat when ChatErr is nil.
	ChatReply string
	// ChatErr makes Chat fail.
	ChatErr error
	// StreamChunks are emitted by ChatStream in order.
	StreamChunks []string
	// StreamErr is sent after the chunks, aborting the stream.
	StreamErr error

	// Recorded inputs of the most recent call.
	LastMessages []Message
	LastOptions  ChatOptions
	ChatCalls    int
	StreamCalls  int
}

func (m *MockLLMClient) Chat(_ context.Context, messages []Message, opts ChatOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatCalls++
	m.LastMessages = append([]Message(nil), messages...)
	m.LastOptions = opts
	if m.ChatErr != nil {
		return "", m.ChatErr
	}
	return m.ChatReply, nil
}

func (m *MockLLMClient) ChatStream(_ context.Context, messages []Message, opts ChatOptions) (<-chan string, <-chan error) {
	m.mu.Lock()
	m.StreamCalls++
	m.LastMessages = append([]Message(nil), messages...)
	m.LastOptions = opts
	chunks := append([]string(nil), m.StreamChunks...)
	streamErr := m.StreamErr
	m.mu.Unlock()

	contentChan := make(chan string)
	errChan := make(chan error, 1)
	go func() {
		defer close(contentChan)
		defer close(errChan)
		for _, chunk := range chunks {
			contentChan <- chunk
		}
		if streamErr != nil {
			errChan <- streamErr
		}
	}()
	return contentChan, errChan
}

// MockSpeechToText is a mock implementation of SpeechToText for testing.
type MockSpeechToText struct {
	Transcript string
	Err        error
	Calls      int
	LastAudio  []byte
}

func (m *MockSpeechToText) Transcribe(_ context.Context, audio []byte) (string, error) {
	m.Calls++
	m.LastAudio = append([]byte(nil), audio...)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Transcript, nil
}
