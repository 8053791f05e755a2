package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/famichat/plugin/ai"
	"github.com/hrygo/famichat/store"
)

func TestState_SelectMemberInvalidatesSuggestions(t *testing.T) {
	s := NewState()
	s.SetSuggestions([]string{"a", "b"})
	require.NotNil(t, s.Suggestions())

	s.SelectMember(&store.Member{Name: "Bố"})
	assert.Nil(t, s.Suggestions())
	assert.Equal(t, "Bố", s.Member().Name)
}

func TestState_Messages(t *testing.T) {
	s := NewState()
	s.AppendUser("xin chào")
	s.AppendAssistant("Chào bạn")

	messages := s.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, ai.RoleUser, messages[0].Role)
	assert.Equal(t, ai.RoleAssistant, messages[1].Role)

	// The returned slice is a copy.
	messages[0].Content = "mutated"
	assert.Equal(t, "xin chào", s.Messages()[0].Content)
}

func TestState_SeenAudio(t *testing.T) {
	s := NewState()
	assert.False(t, s.SeenAudio(123))
	assert.True(t, s.SeenAudio(123))
	assert.False(t, s.SeenAudio(456))
	assert.True(t, s.SeenAudio(456))
}

func TestState_Reset(t *testing.T) {
	s := NewState()
	s.SelectMember(&store.Member{Name: "Mẹ"})
	s.AppendUser("hello")
	s.SetSuggestions([]string{"a"})
	s.SeenAudio(9)

	s.Reset()
	assert.Empty(t, s.Messages())
	assert.Nil(t, s.Suggestions())
	assert.False(t, s.SeenAudio(9))
	// Member selection survives a reset.
	assert.Equal(t, "Mẹ", s.Member().Name)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	first := r.Create()
	second := r.Create()
	assert.NotEqual(t, first.ID, second.ID)
	assert.Same(t, first, r.Get(first.ID))
	assert.Nil(t, r.Get("missing"))

	r.Delete(first.ID)
	assert.Nil(t, r.Get(first.ID))
}

func TestSession_TurnGuard(t *testing.T) {
	r := NewRegistry()
	s := r.Create()

	require.NoError(t, s.BeginTurn())
	assert.ErrorIs(t, s.BeginTurn(), ErrTurnInProgress)

	s.EndTurn()
	require.NoError(t, s.BeginTurn())
	s.EndTurn()
}
