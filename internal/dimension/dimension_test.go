package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_WithSpace(t *testing.T) {
	d, err := Parse("2 cm")
	require.NoError(t, err)
	assert.Equal(t, 2.0, d.Value)
	assert.Equal(t, "cm", d.Unit)
}

func TestParse_WithoutSpace(t *testing.T) {
	d, err := Parse("10.4cm")
	require.NoError(t, err)
	assert.Equal(t, 10.4, d.Value)
	assert.Equal(t, "cm", d.Unit)
}

func TestParse_UnknownUnit(t *testing.T) {
	_, err := Parse("2 px")
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, "2 px", dimErr.Literal)
	assert.Equal(t, "parse", dimErr.Op)
}

func TestParse_MissingNumber(t *testing.T) {
	_, err := Parse("cm")
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
}

func TestDivide_Halving(t *testing.T) {
	result, err := Divide("2 cm", 2)
	require.NoError(t, err)
	assert.Equal(t, "1 cm", result)
}

func TestDivide_FractionalResult(t *testing.T) {
	result, err := Divide("10.4 cm", 2)
	require.NoError(t, err)
	assert.Equal(t, "5.2 cm", result)
}

func TestDivide_ByZero(t *testing.T) {
	_, err := Divide("1 cm", 0)
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, "divide", dimErr.Op)
	assert.Equal(t, "1 cm", dimErr.Literal)
}

func TestDivide_MalformedLiteral(t *testing.T) {
	_, err := Divide("two cm", 2)
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
}

func TestMultiply_KeepsUnit(t *testing.T) {
	result, err := Multiply("0.2 cm", 3)
	require.NoError(t, err)
	assert.Equal(t, "0.6 cm", result)
}

func TestAdd_SameUnit(t *testing.T) {
	result, err := Add("1.2 cm", "0.8 cm")
	require.NoError(t, err)
	assert.Equal(t, "2 cm", result)
}

func TestAdd_ConvertsRightOperand(t *testing.T) {
	result, err := Add("1 in", "72.27 pt")
	require.NoError(t, err)
	assert.Equal(t, "2 in", result)
}

func TestAdd_ResultUsesLeftUnit(t *testing.T) {
	result, err := Add("10 mm", "1 cm")
	require.NoError(t, err)
	assert.Equal(t, "20 mm", result)
}

func TestString_TrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "1 cm", Dimension{Value: 1, Unit: "cm"}.String())
	assert.Equal(t, "0.12 cm", Dimension{Value: 0.12, Unit: "cm"}.String())
}
