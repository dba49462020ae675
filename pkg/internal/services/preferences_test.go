package services_test

import (
	"testing"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/stretchr/testify/require"
)

func TestPreferenceDefaults(t *testing.T) {
	t.Parallel()

	prefs := services.NewPreferenceService(services.MapStorage{}).Load()
	require.Equal(t, services.DefaultPreferences, prefs)
	require.Equal(t, "theme-light", prefs.BodyClass())
}

func TestPreferenceIgnoresInvalidStoredValues(t *testing.T) {
	t.Parallel()

	storage := services.MapStorage{
		services.StorageKeyTheme:    "sepia",
		services.StorageKeyFontSize: "20px",
		services.StorageKeyLayout:   models.LayoutList,
	}
	prefs := services.NewPreferenceService(storage).Load()
	require.Equal(t, models.ThemeLight, prefs.Theme)
	require.Equal(t, models.FontSizeMedium, prefs.FontSize)
	require.Equal(t, models.LayoutList, prefs.Layout)
}

func TestPreferenceToggles(t *testing.T) {
	t.Parallel()

	storage := services.MapStorage{}
	service := services.NewPreferenceService(storage)

	require.Equal(t, models.ThemeDark, service.ToggleTheme().Theme)
	require.Equal(t, models.ThemeDark, storage[services.StorageKeyTheme])
	require.Equal(t, models.ThemeLight, service.ToggleTheme().Theme)

	require.Equal(t, models.LayoutList, service.ToggleLayout().Layout)
	require.Equal(t, models.LayoutGrid, service.ToggleLayout().Layout)
	require.Equal(t, models.LayoutGrid, storage[services.StorageKeyLayout])
}

func TestPreferenceSetters(t *testing.T) {
	t.Parallel()

	storage := services.MapStorage{}
	service := services.NewPreferenceService(storage)

	prefs, err := service.SetFontSize(models.FontSizeLarge)
	require.NoError(t, err)
	require.Equal(t, models.FontSizeLarge, prefs.FontSize)

	_, err = service.SetFontSize("13px")
	require.True(t, services.IsValidationError(err))
	require.Equal(t, models.FontSizeLarge, service.Load().FontSize)

	_, err = service.SetTheme("blue")
	require.True(t, services.IsValidationError(err))

	_, err = service.SetLayout("masonry")
	require.True(t, services.IsValidationError(err))

	prefs, err = service.SetLayout(models.LayoutList)
	require.NoError(t, err)
	require.Equal(t, models.LayoutList, prefs.Layout)
}
