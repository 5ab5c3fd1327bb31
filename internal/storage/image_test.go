package storage

import (
	"encoding/base64"
	"strings"
	"testing"

	apperrors "foodgram-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func TestDecodeDataURI(t *testing.T) {
	t.Run("valid png", func(t *testing.T) {
		img, err := DecodeDataURI(dataURI("image/png", pngBytes))
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.ContentType)
		assert.Equal(t, ".png", img.Extension())
		assert.Equal(t, pngBytes, img.Data)
	})

	t.Run("declared type is ignored", func(t *testing.T) {
		img, err := DecodeDataURI(dataURI("image/jpeg", pngBytes))
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.ContentType)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		cases := map[string]string{
			"not a data uri": "https://example.com/cat.png",
			"no comma":       "data:image/png;base64",
			"not base64":     "data:image/png,rawbytes",
			"bad payload":    "data:image/png;base64,***",
			"empty payload":  "data:image/png;base64,",
			"not an image":   dataURI("text/plain", []byte(strings.Repeat("hello ", 10))),
		}
		for name, uri := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := DecodeDataURI(uri)
				assert.ErrorIs(t, err, apperrors.ErrInvalidImage)
			})
		}
	})
}

func TestObjectKey(t *testing.T) {
	img := &Image{Data: pngBytes, ContentType: "image/png"}
	a := objectKey("recipes", img)
	b := objectKey("recipes", img)

	assert.True(t, strings.HasPrefix(a, "recipes/"))
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.NotEqual(t, a, b)
}
