// Package session holds the volatile per-session state: the selected member,
// the visible conversation, the suggestion cache and the last audio
// fingerprint.
package session

import (
	"sync"

	"github.com/hrygo/famichat/plugin/ai"
	"github.com/hrygo/famichat/store"
)

// State is the per-session record. The conversation holds only user and
// assistant messages; the system message is composed fresh each turn and is
// never stored here.
type State struct {
	mu sync.Mutex

	member           *store.Member
	messages         []ai.Message
	suggestions      []string
	audioFingerprint *uint64
}

// NewState creates an empty session state.
func NewState() *State {
	return &State{}
}

// SelectMember sets the current member and invalidates the suggestion cache.
func (s *State) SelectMember(member *store.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.member = member
	s.suggestions = nil
}

// Member returns the currently selected member, or nil.
func (s *State) Member() *store.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.member
}

// AppendUser appends a user message to the conversation.
func (s *State) AppendUser(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, ai.UserMessage(text))
}

// AppendAssistant appends an assistant message to the conversation.
func (s *State) AppendAssistant(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, ai.AssistantMessage(text))
}

// Messages returns a copy of the conversation.
func (s *State) Messages() []ai.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ai.Message(nil), s.messages...)
}

// Suggestions returns the cached suggestion batch, or nil when absent.
func (s *State) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suggestions == nil {
		return nil
	}
	return append([]string(nil), s.suggestions...)
}

// SetSuggestions caches a suggestion batch.
func (s *State) SetSuggestions(suggestions []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = append([]string(nil), suggestions...)
}

// SeenAudio records the fingerprint of a captured audio clip and reports
// whether it equals the previously observed one (a duplicate capture).
func (s *State) SeenAudio(fingerprint uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audioFingerprint != nil && *s.audioFingerprint == fingerprint {
		return true
	}
	s.audioFingerprint = &fingerprint
	return false
}

// Reset clears the conversation, the suggestion cache and the audio
// fingerprint. The member selection survives a reset.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.suggestions = nil
	s.audioFingerprint = nil
}
