package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_ValidInput(t *testing.T) {
	input := []byte(`
cv:
  name: John Doe
  email: john@example.com
  sections:
    experience:
      - company: ACME
        position: Engineer
design:
  theme: classic
`)

	err := ValidateDocument(input)
	assert.NoError(t, err)
}

func TestValidateDocument_MissingCV(t *testing.T) {
	input := []byte(`design: {theme: classic}`)

	err := ValidateDocument(input)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateDocument_WrongType(t *testing.T) {
	input := []byte(`
cv:
  name: 42
  sections:
    experience: not-a-list
`)

	err := ValidateDocument(input)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2, "all violations should be reported together")
}

func TestValidateDocument_UnknownTopLevelKey(t *testing.T) {
	input := []byte(`
cv:
  name: John Doe
  sections:
    summary:
      - one line
renderer: pdflatex
`)

	err := ValidateDocument(input)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateDocument_EmptySectionRejected(t *testing.T) {
	input := []byte(`
cv:
  name: John Doe
  sections:
    experience: []
`)

	err := ValidateDocument(input)
	require.Error(t, err)
}

func TestValidateDocument_NotYAML(t *testing.T) {
	err := ValidateDocument([]byte("cv: [unclosed"))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.Errors[0].Message, "not valid YAML")
}

func TestValidationError_NumbersEachViolation(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "cv.name", Message: "Invalid type"},
		{Field: "cv.sections", Message: "Invalid type"},
	}}

	msg := ve.Error()
	assert.Contains(t, msg, "1. cv.name")
	assert.Contains(t, msg, "2. cv.sections")
}
