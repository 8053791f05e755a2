// Package chat orchestrates a single conversation turn: it assembles the
// outgoing message list, streams the reply and records it into the session.
package chat

import (
	"context"
	"strings"

	"github.com/hrygo/famichat/plugin/ai"
	"github.com/hrygo/famichat/server/clock"
	"github.com/hrygo/famichat/server/prompt"
	"github.com/hrygo/famichat/server/session"
)

const (
	turnTemperature = 0.7
	turnMaxTokens   = 2048

	// imageInstruction is the text part preceding the image reference.
	imageInstruction = "Analyze this image:"
)

// TurnOptions selects the turn variant.
type TurnOptions struct {
	IncludeImage bool
	ImageURL     string
}

// isImageTurn reports whether both image fields are present.
func (o TurnOptions) isImageTurn() bool {
	return o.IncludeImage && o.ImageURL != ""
}

// Orchestrator runs chat turns against the LLM.
type Orchestrator struct {
	llm   ai.LLMClient
	clock clock.Clock
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(llm ai.LLMClient, clk clock.Clock) *Orchestrator {
	return &Orchestrator{llm: llm, clock: clk}
}

// StreamTurn invokes the LLM in streaming mode and relays delta chunks in
// arrival order. On successful completion of a non-image turn the
// accumulated reply is appended to the session as an assistant message.
// On failure the partial buffer is discarded and the session is unchanged.
//
// Image turns deliberately drop all prior history except the last user
// message: the raw image analysis would otherwise pollute later turns'
// context. Their replies are shown but never recorded.
func (o *Orchestrator) StreamTurn(ctx context.Context, state *session.State, opts TurnOptions) (<-chan string, <-chan error) {
	messages := o.buildMessages(state, opts)

	contentChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		defer close(contentChan)
		defer close(errChan)

		upstream, upstreamErr := o.llm.ChatStream(ctx, messages, ai.ChatOptions{
			Temperature: turnTemperature,
			MaxTokens:   turnMaxTokens,
		})

		var reply strings.Builder
		for {
			select {
			case chunk, ok := <-upstream:
				if !ok {
					upstream = nil
					if upstreamErr == nil {
						o.finishTurn(state, opts, reply.String())
						return
					}
					continue
				}
				reply.WriteString(chunk)
				select {
				case contentChan <- chunk:
				case <-ctx.Done():
					errChan <- ctx.Err()
					return
				}

			case err, ok := <-upstreamErr:
				if !ok {
					upstreamErr = nil
					if upstream == nil {
						o.finishTurn(state, opts, reply.String())
						return
					}
					continue
				}
				if err != nil {
					errChan <- err
					return
				}

			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return contentChan, errChan
}

// buildMessages assembles the outgoing message list for one turn. The system
// message is composed fresh every time and never persisted into history.
func (o *Orchestrator) buildMessages(state *session.State, opts TurnOptions) []ai.Message {
	messages := []ai.Message{
		ai.SystemMessage(prompt.Compose(state.Member(), o.clock.Now())),
	}

	history := state.Messages()
	if opts.isImageTurn() {
		if len(history) > 0 {
			last := history[len(history)-1]
			if last.Role == ai.RoleUser {
				messages = append(messages, ai.UserMessage(last.PlainText()))
			}
		}
		messages = append(messages, ai.ImageUserMessage(imageInstruction, opts.ImageURL))
		return messages
	}

	return append(messages, history...)
}

// finishTurn records the reply for non-image turns.
func (o *Orchestrator) finishTurn(state *session.State, opts TurnOptions, reply string) {
	if opts.isImageTurn() {
		return
	}
	state.AppendAssistant(reply)
}
