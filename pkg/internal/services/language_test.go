package services_test

import (
	"testing"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "unknown", services.DetectLanguage("   "))
	require.Equal(t, "en", services.DetectLanguage("The morning light over the mountains was absolutely beautiful today"))
	require.Equal(t, "ja", services.DetectLanguage("今日は山の朝の光がとても美しかったです"))
}
