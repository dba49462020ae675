package models

type Theme = string

const (
	ThemeLight = Theme("light")
	ThemeDark  = Theme("dark")
)

type FontSize = string

const (
	FontSizeSmall  = FontSize("14px")
	FontSizeMedium = FontSize("16px")
	FontSizeLarge  = FontSize("18px")
)

var FontSizeOptions = []FontSize{FontSizeSmall, FontSizeMedium, FontSizeLarge}

type Layout = string

const (
	LayoutGrid = Layout("grid")
	LayoutList = Layout("list")
)

type Preferences struct {
	Theme    Theme    `json:"theme"`
	FontSize FontSize `json:"font_size"`
	Layout   Layout   `json:"layout"`
}

// BodyClass is the document class carrying the theme.
func (v Preferences) BodyClass() string {
	return "theme-" + v.Theme
}
