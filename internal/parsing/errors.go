// Package parsing reads the YAML input document and produces the validated
// CV and Design. All violations found in one pass are aggregated into a
// single error so users never fix fields one re-run at a time.
package parsing

import (
	"fmt"
	"strings"
)

// FieldError ties a single violation to the input field path that caused it,
// e.g. "cv.sections.education.0.start_date".
type FieldError struct {
	Path string
	Err  error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// SchemaValidationError aggregates every violation found while validating an
// input document.
type SchemaValidationError struct {
	Errors []FieldError
}

// Unwrap exposes the individual violations so callers can match a specific
// error kind inside the aggregate with errors.As.
func (e *SchemaValidationError) Unwrap() []error {
	unwrapped := make([]error, len(e.Errors))
	for i := range e.Errors {
		unwrapped[i] = e.Errors[i]
	}
	return unwrapped
}

func (e *SchemaValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// UnambiguousDateConflictError reports an entry that supplies both a
// single-point date and a start/end date pair.
type UnambiguousDateConflictError struct{}

func (e *UnambiguousDateConflictError) Error() string {
	return `"date" and "start_date"/"end_date" are mutually exclusive; provide one or the other`
}

// DateOrderError reports a date range whose start is after its end.
type DateOrderError struct {
	Start string
	End   string
}

func (e *DateOrderError) Error() string {
	return fmt.Sprintf(`"start_date" (%s) can not be after "end_date" (%s)`, e.Start, e.End)
}

// VariantMismatch describes, for one entry variant, the required fields an
// entry did not satisfy.
type VariantMismatch struct {
	Variant string
	Missing []string
}

// VariantResolutionError reports an entry that satisfies no variant's
// required field set. Tried lists every variant in resolution priority
// order with its unmet fields.
type VariantResolutionError struct {
	Tried []VariantMismatch
}

func (e *VariantResolutionError) Error() string {
	var sb strings.Builder
	sb.WriteString("entry matches no variant:")
	for _, mismatch := range e.Tried {
		sb.WriteString(fmt.Sprintf(" %s (missing %s);", mismatch.Variant, strings.Join(mismatch.Missing, ", ")))
	}
	return strings.TrimSuffix(sb.String(), ";")
}
