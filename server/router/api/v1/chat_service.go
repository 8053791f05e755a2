package v1

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hrygo/famichat/server/chat"
	"github.com/hrygo/famichat/server/session"
)

// ChatRequest starts one conversation turn. Message may be empty on an
// image turn that re-sends the previous user message.
type ChatRequest struct {
	Message      string `json:"message"`
	IncludeImage bool   `json:"include_image"`
	ImageURL     string `json:"image_url"`
}

// StreamChat runs one turn and streams the reply as server-sent events,
// one delta chunk per event. The visible-typing effect depends on chunks
// being flushed as they arrive, so nothing is buffered server-side.
// POST /api/v1/sessions/:id/chat
func (s *APIV1Service) StreamChat(c echo.Context) error {
	if err := s.requireAI(); err != nil {
		return err
	}

	sess, err := s.session(c)
	if err != nil {
		return err
	}

	req := &ChatRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	// One turn at a time per session; the previous stream must terminate
	// before a new turn starts.
	if err := sess.BeginTurn(); err != nil {
		if errors.Is(err, session.ErrTurnInProgress) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return err
	}
	defer sess.EndTurn()

	if req.Message != "" {
		sess.State.AppendUser(req.Message)
	}

	requestID := uuid.New().String()
	start := time.Now()
	slog.Info("chat turn started",
		"request_id", requestID,
		"session", sess.ID,
		"image", req.IncludeImage,
		"history", len(sess.State.Messages()))

	ctx := c.Request().Context()
	contentChan, errChan := s.Chat.StreamTurn(ctx, sess.State, chat.TurnOptions{
		IncludeImage: req.IncludeImage,
		ImageURL:     req.ImageURL,
	})

	response := c.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)

	for contentChan != nil || errChan != nil {
		select {
		case chunk, ok := <-contentChan:
			if !ok {
				contentChan = nil
				continue
			}
			if _, err := fmt.Fprintf(response, "data: %s\n\n", encodeSSEData(chunk)); err != nil {
				return err
			}
			response.Flush()

		case err, ok := <-errChan:
			if !ok {
				errChan = nil
				continue
			}
			if err != nil {
				slog.Error("chat turn failed",
					"request_id", requestID,
					"session", sess.ID,
					"error", err)
				fmt.Fprintf(response, "event: error\ndata: %s\n\n", encodeSSEData(err.Error()))
				response.Flush()
				return nil
			}

		case <-ctx.Done():
			return nil
		}
	}

	slog.Info("chat turn completed",
		"request_id", requestID,
		"session", sess.ID,
		"duration_ms", time.Since(start).Milliseconds())
	fmt.Fprint(response, "event: done\ndata: \n\n")
	response.Flush()
	return nil
}
