package prefs

// Flag is a Marker without a page behind it.
type Flag struct {
	dark bool
}

// IsDark returns the flag value.
func (f *Flag) IsDark() bool { return f.dark }

// SetDark sets the flag value.
func (f *Flag) SetDark(dark bool) { f.dark = dark }
