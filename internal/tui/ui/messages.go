package ui

// ThemeChangeRequestMsg asks the root model to switch to the theme with
// id ThemeName.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views once the theme has switched.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// ConfigSavedMsg reports the outcome of writing the config file. Views
// showing settings re-read them when it arrives.
type ConfigSavedMsg struct {
	Err error
}
