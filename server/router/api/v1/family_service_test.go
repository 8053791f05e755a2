package v1

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/famichat/internal/profile"
	"github.com/hrygo/famichat/plugin/ai"
	"github.com/hrygo/famichat/server/chat"
	"github.com/hrygo/famichat/server/clock"
	"github.com/hrygo/famichat/server/session"
	"github.com/hrygo/famichat/server/speech"
	"github.com/hrygo/famichat/server/suggest"
	"github.com/hrygo/famichat/store"
)

func newTestService(t *testing.T, llm ai.LLMClient, stt ai.SpeechToText) (*APIV1Service, *echo.Echo) {
	t.Helper()

	st := store.New(filepath.Join(t.TempDir(), store.DefaultFileName))
	_, err := st.Load()
	require.NoError(t, err)

	clk := clock.Fixed(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	service := &APIV1Service{
		Profile:  &profile.Profile{Mode: "dev"},
		Store:    st,
		Sessions: session.NewRegistry(),
		Suggest:  suggest.NewEngine(llm, clk, rand.New(rand.NewSource(1))),
	}
	if llm != nil {
		service.Chat = chat.NewOrchestrator(llm, clk)
	}
	if stt != nil {
		service.Speech = speech.NewAdapter(stt)
	}

	e := echo.New()
	service.Register(e)
	return service, e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListMembers(t *testing.T) {
	_, e := newTestService(t, nil, nil)

	rec := doJSON(e, http.MethodGet, "/api/v1/members", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bố")
	assert.Contains(t, rec.Body.String(), "Mẹ")
}

func TestCreateMember(t *testing.T) {
	service, e := newTestService(t, nil, nil)

	t.Run("Success", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/members",
			`{"name":"Con","interests":"âm nhạc\nphim ảnh"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		doc, err := service.Store.Document()
		require.NoError(t, err)
		assert.Len(t, doc.Members, 3)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/members", `{"name":"Bố"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("EmptyName", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/members", `{"name":"  "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateMember(t *testing.T) {
	_, e := newTestService(t, nil, nil)

	rec := doJSON(e, http.MethodPatch, "/api/v1/members/Bố",
		`{"interests":"cờ tướng","notes":"ghi chú"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/api/v1/members/Ông", `{"interests":""}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMember(t *testing.T) {
	service, e := newTestService(t, nil, nil)

	rec := doJSON(e, http.MethodDelete, "/api/v1/members/Mẹ", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	doc, err := service.Store.Document()
	require.NoError(t, err)
	assert.Len(t, doc.Members, 1)

	// Absent member deletes are a no-op.
	rec = doJSON(e, http.MethodDelete, "/api/v1/members/Mẹ", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestFamilyInfo(t *testing.T) {
	_, e := newTestService(t, nil, nil)

	rec := doJSON(e, http.MethodPut, "/api/v1/family-info",
		`{"address":"Hà Nội","important_dates":["2025-06-02"],"shared_interests":["du lịch"]}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/family-info", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hà Nội")
}
