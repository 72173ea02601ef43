// Package rendering turns a validated CV and design into a complete LaTeX
// document by composing the active theme's template fragments.
package rendering

import "fmt"

// TemplateError represents an error parsing a theme's template fragment
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// PlaceholderResolutionError reports a fragment that referenced data the
// rendering state does not carry. The fragment and theme are named so theme
// authors can find the bad placeholder; for entry fragments, Section and
// EntryIndex point at the input entry being rendered.
type PlaceholderResolutionError struct {
	Theme    string
	Fragment string
	Cause    error

	Section    string
	EntryIndex int // -1 outside entry fragments
}

func (e *PlaceholderResolutionError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("placeholder resolution failed in %s fragment of theme %q (section %q, entry %d): %v",
			e.Fragment, e.Theme, e.Section, e.EntryIndex, e.Cause)
	}
	return fmt.Sprintf("placeholder resolution failed in %s fragment of theme %q: %v", e.Fragment, e.Theme, e.Cause)
}

func (e *PlaceholderResolutionError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
