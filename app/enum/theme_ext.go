package enum

// ThemeOf returns the persisted theme for a dark-mode flag (true→dark, false→light).
func ThemeOf(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeFromStored parses a stored value. Anything other than "dark" or "light" is unset.
func ThemeFromStored(v string) Theme {
	t, err := ParseTheme(v)
	if err != nil {
		return ThemeUnset
	}
	return t
}
