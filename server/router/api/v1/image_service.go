package v1

import (
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/labstack/echo/v4"

	"github.com/hrygo/famichat/server/imagedata"
)

// ImageResponse carries the encoded data URI for a chat image part.
type ImageResponse struct {
	DataURI string `json:"data_uri"`
}

// EncodeImage converts an uploaded image into a base64 data URI the UI
// passes back on an image-bearing chat turn. The image is re-encoded in
// its own format; nothing is written to disk.
// POST /api/v1/images (multipart field "image")
func (s *APIV1Service) EncodeImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	format, err := imagedata.FormatFromFilename(file.Filename)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot open image upload")
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot decode image")
	}

	uri, err := imagedata.EncodeDataURI(img, format)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ImageResponse{DataURI: uri})
}
