package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionResponse is the public view of a session.
type SessionResponse struct {
	ID     string `json:"id"`
	Member string `json:"member,omitempty"`
}

// CreateSession mints a new session.
// POST /api/v1/sessions
func (s *APIV1Service) CreateSession(c echo.Context) error {
	sess := s.Sessions.Create()
	return c.JSON(http.StatusCreated, SessionResponse{ID: sess.ID})
}

// ResetSession clears the conversation and caches. A reset cannot abort an
// in-flight stream; it only discards the in-memory history.
// POST /api/v1/sessions/:id/reset
func (s *APIV1Service) ResetSession(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}
	sess.State.Reset()
	return c.NoContent(http.StatusNoContent)
}

// SelectMemberRequest names the member to select. An empty name deselects.
type SelectMemberRequest struct {
	Name string `json:"name"`
}

// SelectMember switches the session to a member and invalidates the cached
// suggestions.
// POST /api/v1/sessions/:id/member
func (s *APIV1Service) SelectMember(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	req := &SelectMemberRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	if req.Name == "" {
		sess.State.SelectMember(nil)
		return c.JSON(http.StatusOK, SessionResponse{ID: sess.ID})
	}

	doc, err := s.Store.Document()
	if err != nil {
		return storeHTTPError(err)
	}
	member := doc.FindMember(req.Name)
	if member == nil {
		return echo.NewHTTPError(http.StatusNotFound, "member not found")
	}

	sess.State.SelectMember(member)
	return c.JSON(http.StatusOK, SessionResponse{ID: sess.ID, Member: member.Name})
}

// ListMessages returns the visible conversation of the session.
// GET /api/v1/sessions/:id/messages
func (s *APIV1Service) ListMessages(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess.State.Messages())
}
