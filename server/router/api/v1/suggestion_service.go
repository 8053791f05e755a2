package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hrygo/famichat/server/suggest"
)

// SuggestionsResponse carries a suggestion batch.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Cached      bool     `json:"cached"`
}

// GetSuggestions returns conversation starters for the session's member.
// The batch is cached until the member changes or refresh=true is passed.
// GET /api/v1/sessions/:id/suggestions?n=5&refresh=false
func (s *APIV1Service) GetSuggestions(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	n := suggest.DefaultBatchSize
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 20 {
			return echo.NewHTTPError(http.StatusBadRequest, "n must be an integer in [1, 20]")
		}
		n = parsed
	}

	refresh := c.QueryParam("refresh") == "true"
	if !refresh {
		if cached := sess.State.Suggestions(); cached != nil && len(cached) == n {
			return c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: cached, Cached: true})
		}
	}

	suggestions := s.Suggest.Suggest(c.Request().Context(), sess.State.Member(), n)
	sess.State.SetSuggestions(suggestions)
	return c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}
