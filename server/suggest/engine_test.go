package suggest

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/famichat/plugin/ai"
	"github.com/hrygo/famichat/server/clock"
	"github.com/hrygo/famichat/store"
)

var testClock = clock.Fixed(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

func newFallbackEngine(seed int64) *Engine {
	return NewEngine(nil, testClock, rand.New(rand.NewSource(seed)))
}

func assertDistinct(t *testing.T, suggestions []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, s := range suggestions {
		assert.False(t, seen[s], "duplicate suggestion %q", s)
		seen[s] = true
	}
}

func TestSuggest_GenericPool(t *testing.T) {
	e := newFallbackEngine(1)

	t.Run("NoMember", func(t *testing.T) {
		got := e.Suggest(context.Background(), nil, 5)
		assert.Equal(t, genericSuggestions[:5], got)
	})

	t.Run("MemberWithoutInterests", func(t *testing.T) {
		member := &store.Member{Name: "Con"}
		got := e.Suggest(context.Background(), member, 5)
		assert.Equal(t, genericSuggestions[:5], got)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := e.Suggest(context.Background(), nil, 8)
		second := e.Suggest(context.Background(), nil, 8)
		assert.Equal(t, first, second)
	})

	t.Run("CappedAtPoolSize", func(t *testing.T) {
		got := e.Suggest(context.Background(), nil, 20)
		assert.Len(t, got, len(genericSuggestions))
	})
}

func TestSuggest_BatchSize(t *testing.T) {
	member := &store.Member{Name: "Bố", Interests: []string{"thể thao"}}
	for n := 1; n <= 20; n++ {
		e := newFallbackEngine(42)
		got := e.Suggest(context.Background(), member, n)
		// sports bucket (5) + daily pool (10) = 15 unique candidates
		want := n
		if want > 15 {
			want = 15
		}
		assert.Len(t, got, want, "n=%d", n)
		assertDistinct(t, got)
	}
}

func TestSuggest_FallbackDeterministic(t *testing.T) {
	member := &store.Member{Name: "Bố", Interests: []string{"thể thao", "đầu tư"}}

	first := newFallbackEngine(7).Suggest(context.Background(), member, 5)
	second := newFallbackEngine(7).Suggest(context.Background(), member, 5)
	assert.Equal(t, first, second)

	other := newFallbackEngine(8).Suggest(context.Background(), member, 5)
	assert.NotEqual(t, first, other, "different seeds should shuffle differently")
}

func TestSuggest_SportsBucket(t *testing.T) {
	member := &store.Member{Name: "Bố", Interests: []string{"thể thao"}}
	e := newFallbackEngine(3)

	got := e.Suggest(context.Background(), member, 15)
	require.Len(t, got, 15)
	assert.Contains(t, got, "Kết quả cúp châu Âu hôm nay")
}

func TestSuggest_SymmetricSubstringMatch(t *testing.T) {
	t.Run("InterestContainsTopic", func(t *testing.T) {
		member := &store.Member{Name: "Mẹ", Interests: []string{"đọc sách văn học"}}
		got := newFallbackEngine(3).Suggest(context.Background(), member, 15)
		assert.Contains(t, got, "Sách hay về lịch sử Việt Nam")
	})

	t.Run("TopicContainsInterest", func(t *testing.T) {
		member := &store.Member{Name: "Mẹ", Interests: []string{"sách"}}
		got := newFallbackEngine(3).Suggest(context.Background(), member, 15)
		assert.Contains(t, got, "Sách hay về lịch sử Việt Nam")
	})
}

func TestSuggest_SynthesizedPrompts(t *testing.T) {
	member := &store.Member{Name: "Con", Interests: []string{"cờ vây"}}
	got := newFallbackEngine(3).Suggest(context.Background(), member, 12)

	assert.Contains(t, got, "Thông tin mới nhất về cờ vây")
	assert.Contains(t, got, "Top 5 điều thú vị về cờ vây")
}

func TestSuggest_LLMPath(t *testing.T) {
	member := &store.Member{Name: "Bố", Interests: []string{"thể thao"}}

	t.Run("ParsesLines", func(t *testing.T) {
		mock := &ai.MockLLMClient{ChatReply: "Câu một\nCâu hai\nCâu ba\nCâu bốn\nCâu năm"}
		e := NewEngine(mock, testClock, rand.New(rand.NewSource(1)))

		got := e.Suggest(context.Background(), member, 5)
		assert.Equal(t, []string{"Câu một", "Câu hai", "Câu ba", "Câu bốn", "Câu năm"}, got)
		assert.Equal(t, 1, mock.ChatCalls)
		assert.InDelta(t, 0.8, mock.LastOptions.Temperature, 0.001)
	})

	t.Run("StripsBulletMarkers", func(t *testing.T) {
		mock := &ai.MockLLMClient{ChatReply: "- Câu một\n* Câu hai\n\nCâu ba\n- Câu bốn\n- Câu năm"}
		e := NewEngine(mock, testClock, rand.New(rand.NewSource(1)))

		got := e.Suggest(context.Background(), member, 5)
		assert.Equal(t, []string{"Câu một", "Câu hai", "Câu ba", "Câu bốn", "Câu năm"}, got)
	})

	t.Run("PadsShortReply", func(t *testing.T) {
		mock := &ai.MockLLMClient{ChatReply: "Câu một\nCâu hai"}
		e := NewEngine(mock, testClock, rand.New(rand.NewSource(1)))

		got := e.Suggest(context.Background(), member, 5)
		assert.Len(t, got, 5)
		assertDistinct(t, got)
		assert.Equal(t, "Câu một", got[0])
		assert.Equal(t, "Câu hai", got[1])
	})

	t.Run("TruncatesLongReply", func(t *testing.T) {
		mock := &ai.MockLLMClient{ChatReply: "a\nb\nc\nd\ne\nf\ng"}
		e := NewEngine(mock, testClock, rand.New(rand.NewSource(1)))

		got := e.Suggest(context.Background(), member, 5)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
	})

	t.Run("FallsBackOnError", func(t *testing.T) {
		mock := &ai.MockLLMClient{ChatErr: errors.Wrap(ai.ErrUpstream, "quota exceeded")}
		e := NewEngine(mock, testClock, rand.New(rand.NewSource(7)))
		want := newFallbackEngine(7).Suggest(context.Background(), member, 5)

		got := e.Suggest(context.Background(), member, 5)
		assert.Equal(t, want, got)
	})

	t.Run("PromptCarriesMemberAndDate", func(t *testing.T) {
		mock := &ai.MockLLMClient{ChatReply: "a\nb\nc\nd\ne"}
		e := NewEngine(mock, testClock, rand.New(rand.NewSource(1)))

		e.Suggest(context.Background(), member, 5)
		require.Len(t, mock.LastMessages, 2)
		assert.Equal(t, ai.RoleSystem, mock.LastMessages[0].Role)
		userPrompt := mock.LastMessages[1].Content
		assert.Contains(t, userPrompt, "Bố")
		assert.Contains(t, userPrompt, "thể thao")
		assert.Contains(t, userPrompt, "02/06/2025")
	})
}
