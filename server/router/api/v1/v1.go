// Package v1 exposes the REST and SSE surface the web UI drives: member
// CRUD, session lifecycle, suggestion refresh, streaming chat and speech
// transcription.
package v1

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hrygo/famichat/internal/profile"
	"github.com/hrygo/famichat/plugin/ai"
	"github.com/hrygo/famichat/server/chat"
	"github.com/hrygo/famichat/server/clock"
	"github.com/hrygo/famichat/server/session"
	"github.com/hrygo/famichat/server/speech"
	"github.com/hrygo/famichat/server/suggest"
	"github.com/hrygo/famichat/store"
)

// APIV1Service bundles the core components behind the HTTP handlers.
type APIV1Service struct {
	Profile  *profile.Profile
	Store    *store.Store
	Sessions *session.Registry
	Suggest  *suggest.Engine
	Chat     *chat.Orchestrator // nil when no API key is configured
	Speech   *speech.Adapter    // nil when no API key is configured
}

// NewAPIV1Service wires the service. When the profile has no API key the
// chat and speech services stay nil and the server runs degraded: the
// suggestion engine uses only the fallback path.
func NewAPIV1Service(p *profile.Profile, st *store.Store) (*APIV1Service, error) {
	clk := clock.SystemClock{}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	service := &APIV1Service{
		Profile:  p,
		Store:    st,
		Sessions: session.NewRegistry(),
	}

	var llm ai.LLMClient
	if p.IsAIEnabled() {
		cfg := &ai.LLMConfig{
			APIKey:    p.OpenAIAPIKey,
			BaseURL:   p.OpenAIBaseURL,
			ChatModel: p.ChatModel,
			STTModel:  p.STTModel,
		}
		client, err := ai.NewLLMClient(cfg)
		if err != nil {
			return nil, err
		}
		llm = client
		stt, err := ai.NewSpeechToText(cfg)
		if err != nil {
			return nil, err
		}
		service.Chat = chat.NewOrchestrator(llm, clk)
		service.Speech = speech.NewAdapter(stt)
	}

	service.Suggest = suggest.NewEngine(llm, clk, rng)
	return service, nil
}

// Register attaches all routes to the echo instance.
func (s *APIV1Service) Register(e *echo.Echo) {
	group := e.Group("/api/v1")
	group.Use(middleware.CORS())

	group.GET("/members", s.ListMembers)
	group.POST("/members", s.CreateMember)
	group.PATCH("/members/:name", s.UpdateMember)
	group.DELETE("/members/:name", s.DeleteMember)

	group.POST("/images", s.EncodeImage)

	group.GET("/family-info", s.GetFamilyInfo)
	group.PUT("/family-info", s.UpdateFamilyInfo)

	group.POST("/sessions", s.CreateSession)
	group.POST("/sessions/:id/reset", s.ResetSession)
	group.POST("/sessions/:id/member", s.SelectMember)
	group.GET("/sessions/:id/messages", s.ListMessages)
	group.GET("/sessions/:id/suggestions", s.GetSuggestions)
	group.POST("/sessions/:id/chat", s.StreamChat)
	group.POST("/sessions/:id/speech", s.TranscribeSpeech)
}

// session resolves the session path parameter.
func (s *APIV1Service) session(c echo.Context) (*session.Session, error) {
	sess := s.Sessions.Get(c.Param("id"))
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return sess, nil
}

// requireAI guards endpoints that need a configured API key.
func (s *APIV1Service) requireAI() error {
	if s.Chat == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable,
			"chat is disabled: no API key configured")
	}
	return nil
}
