package themes

import (
	"fmt"
	"strings"
)

// UnknownThemeError is returned when a design names a theme the registry
// does not hold.
type UnknownThemeError struct {
	Name      string
	Available []string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q, available themes: %s", e.Name, strings.Join(e.Available, ", "))
}

// MissingFragmentError is returned when a fragment lookup exhausts a theme's
// whole parent chain without a match.
type MissingFragmentError struct {
	Theme    string
	Fragment string
}

func (e *MissingFragmentError) Error() string {
	return fmt.Sprintf("theme %q has no %q fragment and no ancestor provides one", e.Theme, e.Fragment)
}

// ThemeLoadError is returned when a custom theme folder cannot be read or
// its metadata is malformed.
type ThemeLoadError struct {
	Dir     string
	Message string
	Cause   error
}

func (e *ThemeLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load theme from %s: %s: %v", e.Dir, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load theme from %s: %s", e.Dir, e.Message)
}

func (e *ThemeLoadError) Unwrap() error {
	return e.Cause
}
