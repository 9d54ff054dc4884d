package ui

// ColorProvider exposes the active theme's sequences. It satisfies the
// error package's color interface, so error reports follow the theme.
type ColorProvider struct{}

// Red returns the error color.
func (ColorProvider) Red() string { return GetCurrentTheme().Error }

// Yellow returns the warning color.
func (ColorProvider) Yellow() string { return GetCurrentTheme().Warning }

// Green returns the success color.
func (ColorProvider) Green() string { return GetCurrentTheme().Success }

// Cyan returns the primary color.
func (ColorProvider) Cyan() string { return GetCurrentTheme().Primary }

// Grey returns the secondary color.
func (ColorProvider) Grey() string { return GetCurrentTheme().Secondary }

// Bold returns the bold sequence.
func (ColorProvider) Bold() string { return GetCurrentTheme().Bold }

// Reset clears all formatting.
func (ColorProvider) Reset() string { return GetCurrentTheme().Reset }
