// Package suggest produces conversation-starter suggestions for a member,
// dynamically through the LLM when available, or through a deterministic
// interest-keyed generator otherwise.
package suggest

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/hrygo/famichat/plugin/ai"
	"github.com/hrygo/famichat/server/clock"
	"github.com/hrygo/famichat/store"
)

// DefaultBatchSize is the suggestion count for the LLM path.
const DefaultBatchSize = 5

const (
	llmTemperature = 0.8
	llmMaxTokens   = 300
)

// Engine generates suggestion batches.
type Engine struct {
	llm   ai.LLMClient // nil disables the LLM path
	clock clock.Clock
	rng   *rand.Rand
}

// NewEngine creates a suggestion engine. llm may be nil; rng seeds the
// fallback shuffle and is injectable so tests can pin a seed.
func NewEngine(llm ai.LLMClient, clk clock.Clock, rng *rand.Rand) *Engine {
	return &Engine{llm: llm, clock: clk, rng: rng}
}

// Suggest returns up to n distinct suggestions for the member.
//
// Members without interests (or a nil member) receive the fixed generic
// batch without any LLM call. Otherwise the LLM path is attempted when a
// client is configured; any failure falls through to the deterministic
// fallback generator.
func (e *Engine) Suggest(ctx context.Context, member *store.Member, n int) []string {
	if n <= 0 {
		return []string{}
	}

	if member == nil || len(member.Interests) == 0 {
		if n > len(genericSuggestions) {
			n = len(genericSuggestions)
		}
		return append([]string(nil), genericSuggestions[:n]...)
	}

	if e.llm != nil {
		if suggestions, err := e.suggestLLM(ctx, member, n); err == nil {
			return suggestions
		} else {
			slog.Debug("suggestion llm path failed, using fallback",
				"member", member.Name, "error", err)
		}
	}

	return e.fallback(member, n)
}

// suggestLLM asks the chat endpoint for one suggestion per line and parses
// the reply. Short replies are padded from the fallback generator.
func (e *Engine) suggestLLM(ctx context.Context, member *store.Member, n int) ([]string, error) {
	tick := e.clock.Now()
	interests := strings.Join(member.Interests, ", ")

	messages := []ai.Message{
		ai.SystemMessage("Bạn là trợ lý tạo câu hỏi gợi ý cho cuộc trò chuyện gia đình."),
		ai.UserMessage(fmt.Sprintf(
			"Thành viên: %s. Sở thích: %s. Hôm nay là %s, ngày %s. "+
				"Hãy tạo đúng %d câu gợi ý trò chuyện đa dạng, mang tính thời sự, mỗi câu một dòng, "+
				"không đánh số, không gạch đầu dòng.",
			member.Name, interests, tick.Weekday, tick.Date, DefaultBatchSize)),
	}

	reply, err := e.llm.Chat(ctx, messages, ai.ChatOptions{
		Temperature: llmTemperature,
		MaxTokens:   llmMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	suggestions := parseSuggestionLines(reply)
	if len(suggestions) < n {
		for _, candidate := range e.fallback(member, n) {
			if len(suggestions) >= n {
				break
			}
			if !contains(suggestions, candidate) {
				suggestions = append(suggestions, candidate)
			}
		}
	}
	if len(suggestions) > n {
		suggestions = suggestions[:n]
	}
	return suggestions, nil
}

// parseSuggestionLines splits the reply by line, trims each line, drops
// empties and strips leading bullet markers the model may add anyway.
func parseSuggestionLines(reply string) []string {
	lines := []string{}
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !contains(lines, line) {
			lines = append(lines, line)
		}
	}
	return lines
}

// fallback deterministically generates suggestions keyed on the member's
// interests. For each interest the first topic matching by symmetric
// substring wins; unmatched interests get two synthesized prompts. The
// shuffled daily pool pads the candidate list.
func (e *Engine) fallback(member *store.Member, n int) []string {
	candidates := []string{}
	for _, interest := range member.Interests {
		lowered := strings.ToLower(strings.TrimSpace(interest))
		if lowered == "" {
			continue
		}

		matched := false
		for _, entry := range topicTable {
			if strings.Contains(lowered, entry.Topic) || strings.Contains(entry.Topic, lowered) {
				candidates = append(candidates, entry.Prompts...)
				matched = true
				break
			}
		}
		if !matched {
			candidates = append(candidates,
				"Thông tin mới nhất về "+interest,
				"Top 5 điều thú vị về "+interest,
			)
		}
	}

	pool := append([]string(nil), dailyPool...)
	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	candidates = append(candidates, pool...)

	unique := []string{}
	seen := map[string]bool{}
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}

	e.rng.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	if n > len(unique) {
		n = len(unique)
	}
	return unique[:n]
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
