package services

import (
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/samber/lo"
)

var DefaultPreferences = models.Preferences{
	Theme:    models.ThemeLight,
	FontSize: models.FontSizeMedium,
	Layout:   models.LayoutGrid,
}

// PreferenceService reads and writes UI preferences through the client's storage.
type PreferenceService struct {
	storage LocalStorage
}

func NewPreferenceService(storage LocalStorage) *PreferenceService {
	return &PreferenceService{storage: storage}
}

func (v *PreferenceService) read(key string, allowed []string, fallback string) string {
	if val, ok := v.storage.Get(key); ok && lo.Contains(allowed, val) {
		return val
	}
	return fallback
}

func (v *PreferenceService) Load() models.Preferences {
	return models.Preferences{
		Theme:    v.read(StorageKeyTheme, []string{models.ThemeLight, models.ThemeDark}, DefaultPreferences.Theme),
		FontSize: v.read(StorageKeyFontSize, models.FontSizeOptions, DefaultPreferences.FontSize),
		Layout:   v.read(StorageKeyLayout, []string{models.LayoutGrid, models.LayoutList}, DefaultPreferences.Layout),
	}
}

func (v *PreferenceService) SetTheme(theme models.Theme) (models.Preferences, error) {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return v.Load(), ValidationError{Field: "theme", Reason: "must be light or dark"}
	}
	v.storage.Set(StorageKeyTheme, theme)
	return v.Load(), nil
}

func (v *PreferenceService) ToggleTheme() models.Preferences {
	current := v.Load()
	prefs, _ := v.SetTheme(lo.Ternary(current.Theme == models.ThemeLight, models.ThemeDark, models.ThemeLight))
	return prefs
}

func (v *PreferenceService) SetFontSize(size models.FontSize) (models.Preferences, error) {
	if !lo.Contains(models.FontSizeOptions, size) {
		return v.Load(), ValidationError{Field: "font_size", Reason: "must be one of 14px, 16px or 18px"}
	}
	v.storage.Set(StorageKeyFontSize, size)
	return v.Load(), nil
}

func (v *PreferenceService) SetLayout(layout models.Layout) (models.Preferences, error) {
	if layout != models.LayoutGrid && layout != models.LayoutList {
		return v.Load(), ValidationError{Field: "layout", Reason: "must be grid or list"}
	}
	v.storage.Set(StorageKeyLayout, layout)
	return v.Load(), nil
}

func (v *PreferenceService) ToggleLayout() models.Preferences {
	current := v.Load()
	prefs, _ := v.SetLayout(lo.Ternary(current.Layout == models.LayoutGrid, models.LayoutList, models.LayoutGrid))
	return prefs
}
