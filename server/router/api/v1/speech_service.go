package v1

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// TranscriptResponse carries a transcription result.
type TranscriptResponse struct {
	Text string `json:"text"`
}

// TranscribeSpeech forwards an uploaded audio capture to the speech-to-text
// endpoint. A repeat capture of the same clip answers 204 without a call.
// POST /api/v1/sessions/:id/speech (multipart field "audio")
func (s *APIV1Service) TranscribeSpeech(c echo.Context) error {
	if err := s.requireAI(); err != nil {
		return err
	}

	sess, err := s.session(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("audio")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "audio file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot open audio upload")
	}
	defer src.Close()
	audio, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read audio upload")
	}

	text, ok, err := s.Speech.Transcribe(c.Request().Context(), sess.State, audio)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, TranscriptResponse{Text: text})
}
