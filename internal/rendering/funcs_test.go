package rendering

import (
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFuncs_LinkURL(t *testing.T) {
	tmpl, err := template.New("fragment").
		Delims("<<", ">>").
		Funcs(templateFuncs()).
		Parse(`<< linkURL .Text >>`)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, tmpl.Execute(&buf, struct{ Text string }{"[Go](https://go.dev)"}))
	assert.Equal(t, "https://go.dev", buf.String())
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "J. Doe", abbreviateName("John Doe"))
	assert.Equal(t, "J. M. Doe", abbreviateName("John Milton Doe"))
	assert.Equal(t, "Plato", abbreviateName("Plato"))
	assert.Equal(t, "", abbreviateName(""))
}

func TestPageNumberingText(t *testing.T) {
	got := pageNumberingText("NAME -- Page PAGE_NUMBER of TOTAL_PAGES", "John & Jane")
	assert.Equal(t, `John \& Jane -- Page \thepage{} of \pageref*{LastPage}`, got)
}

func TestToFloat(t *testing.T) {
	f, err := toFloat(2)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, f)

	f, err = toFloat(0.5)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, f)

	_, err = toFloat("2")
	assert.Error(t, err)
}
