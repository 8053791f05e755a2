// Package imagedata encodes in-memory images as base64 data URIs for the
// chat endpoint's image parts. No disk I/O is involved.
package imagedata

import (
	"bytes"
	"encoding/base64"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// mimeTypes maps the supported encode formats to their data URI MIME types.
var mimeTypes = map[imaging.Format]string{
	imaging.JPEG: "image/jpeg",
	imaging.PNG:  "image/png",
	imaging.GIF:  "image/gif",
	imaging.TIFF: "image/tiff",
	imaging.BMP:  "image/bmp",
}

// FormatFromFilename resolves the encode format from a file name extension.
func FormatFromFilename(name string) (imaging.Format, error) {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return format, errors.Wrapf(err, "unsupported image %q", name)
	}
	return format, nil
}

// EncodeDataURI re-serializes the image in the given format and returns it
// as a base64 data URI.
func EncodeDataURI(img image.Image, format imaging.Format) (string, error) {
	mime, ok := mimeTypes[format]
	if !ok {
		return "", errors.Errorf("unsupported image format %v", format)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return "", errors.Wrap(err, "encode image")
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
