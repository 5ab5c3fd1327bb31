package storage

import (
	"encoding/base64"
	"net/http"
	"path"
	"strings"

	apperrors "foodgram-backend/internal/errors"

	"github.com/google/uuid"
)

const defaultKeyPrefix = "recipes"

// extensions lists the accepted image types by sniffed content type
var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Image is a decoded image payload ready to be stored
type Image struct {
	Data        []byte
	ContentType string
}

// Extension returns the file extension for the image's content type
func (i *Image) Extension() string {
	return extensions[i.ContentType]
}

// DecodeDataURI decodes a base64 data URI such as "data:image/png;base64,...".
// The content type is sniffed from the bytes; the declared one is ignored.
func DecodeDataURI(uri string) (*Image, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return nil, apperrors.ErrInvalidImage
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return nil, apperrors.ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, apperrors.ErrInvalidImage.Detailf("image payload is not valid base64")
	}
	if len(data) == 0 {
		return nil, apperrors.ErrInvalidImage.Detailf("image payload is empty")
	}

	contentType := http.DetectContentType(data)
	if _, ok := extensions[contentType]; !ok {
		return nil, apperrors.ErrInvalidImage.Detailf("unsupported image type %s", contentType)
	}
	return &Image{Data: data, ContentType: contentType}, nil
}

// objectKey returns a fresh key under prefix for img
func objectKey(prefix string, img *Image) string {
	return path.Join(prefix, uuid.NewString()+img.Extension())
}
