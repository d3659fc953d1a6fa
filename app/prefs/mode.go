// Package prefs keeps the dark-mode flag in sync between stored preference,
// the system color-scheme signal and the page root marker.
package prefs

import "github.com/umputun/shade/app/enum"

// ComputeInitialMode returns the dark-mode flag to apply on page load.
// An explicit stored choice wins, otherwise the system preference is used.
func ComputeInitialMode(stored enum.Theme, systemPrefersDark bool) bool {
	switch stored {
	case enum.ThemeDark:
		return true
	case enum.ThemeLight:
		return false
	default:
		return systemPrefersDark
	}
}

// ComputeToggledMode returns the flag after a single click on the toggle control.
func ComputeToggledMode(current bool) bool {
	return !current
}
