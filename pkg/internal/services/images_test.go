package services_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
var tinyPNG, _ = base64.StdEncoding.DecodeString("iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func TestEncodeImageDataURL(t *testing.T) {
	t.Parallel()

	url, err := services.EncodeImageDataURL(tinyPNG, 0)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	require.Equal(t, services.MediaTypeImage, services.ResolveMedia(url).Type)

	_, err = services.EncodeImageDataURL(tinyPNG, 10)
	require.True(t, services.IsValidationError(err))

	_, err = services.EncodeImageDataURL([]byte("just some text"), 0)
	require.True(t, services.IsValidationError(err))

	_, err = services.EncodeImageDataURL(nil, 0)
	require.True(t, services.IsValidationError(err))
}
