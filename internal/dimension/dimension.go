// Package dimension parses and computes the physical length literals that
// theme templates use for derived layout values.
package dimension

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DimensionError represents a malformed length literal or an invalid operation.
type DimensionError struct {
	Literal string
	Op      string
	Message string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension error in %s(%q): %s", e.Op, e.Literal, e.Message)
}

// pointsPerUnit converts each supported unit to TeX points.
var pointsPerUnit = map[string]float64{
	"pt": 1,
	"mm": 2.84528,
	"cm": 28.4528,
	"in": 72.27,
}

var literalPattern = regexp.MustCompile(`^(\d+\.?\d*) *(cm|mm|in|pt)$`)

// Dimension is a physical length: a numeric value plus a unit.
type Dimension struct {
	Value float64
	Unit  string
}

// Parse parses a literal of the form "<number> <unit>" where the unit is one
// of cm, mm, in, or pt. The space between number and unit is optional.
func Parse(literal string) (Dimension, error) {
	m := literalPattern.FindStringSubmatch(strings.TrimSpace(literal))
	if m == nil {
		return Dimension{}, &DimensionError{
			Literal: literal,
			Op:      "parse",
			Message: `expected "<number> <unit>" with unit cm, mm, in, or pt`,
		}
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Dimension{}, &DimensionError{
			Literal: literal,
			Op:      "parse",
			Message: fmt.Sprintf("invalid number %q", m[1]),
		}
	}

	return Dimension{Value: value, Unit: m[2]}, nil
}

// String formats the dimension back to its literal form, e.g. "1.24 cm".
func (d Dimension) String() string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + " " + d.Unit
}

// Add returns a+b expressed in a's unit. The right operand is converted if
// its unit differs.
func Add(a, b string) (string, error) {
	left, err := Parse(a)
	if err != nil {
		return "", err
	}
	right, err := Parse(b)
	if err != nil {
		return "", err
	}

	converted := right.Value * pointsPerUnit[right.Unit] / pointsPerUnit[left.Unit]
	return Dimension{Value: round(left.Value + converted), Unit: left.Unit}.String(), nil
}

// Multiply scales a length literal by a factor, keeping its unit.
func Multiply(literal string, factor float64) (string, error) {
	d, err := Parse(literal)
	if err != nil {
		return "", err
	}
	return Dimension{Value: round(d.Value * factor), Unit: d.Unit}.String(), nil
}

// Divide divides a length literal by a divisor, keeping its unit.
// Division by zero fails with a DimensionError.
func Divide(literal string, divisor float64) (string, error) {
	d, err := Parse(literal)
	if err != nil {
		return "", err
	}
	if divisor == 0 {
		return "", &DimensionError{Literal: literal, Op: "divide", Message: "division by zero"}
	}
	return Dimension{Value: round(d.Value / divisor), Unit: d.Unit}.String(), nil
}

// round trims floating point noise so results format cleanly as literals.
func round(v float64) float64 {
	return math.Round(v*10000) / 10000
}
