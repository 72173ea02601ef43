package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeLaTeX(""))
}

func TestEscapeLaTeX_NoSpecialCharacters(t *testing.T) {
	text := "This is normal text with no special characters"
	assert.Equal(t, text, EscapeLaTeX(text))
}

func TestEscapeLaTeX_PercentAndAmpersand(t *testing.T) {
	assert.Equal(t, `100\% \& done`, EscapeLaTeX("100% & done"))
}

func TestEscapeLaTeX_AllSpecialCharacters(t *testing.T) {
	result := EscapeLaTeX("test${}~&%#^_\\")
	expected := `test\$\{\}\textasciitilde{}\&\%\#\textasciicircum{}\_\textbackslash{}`
	assert.Equal(t, expected, result)
}

func TestEscapeLaTeX_UnicodePassesThrough(t *testing.T) {
	text := "résumé with unicode: α β γ"
	assert.Equal(t, text, EscapeLaTeX(text))
}

func TestToLaTeX_PlainText(t *testing.T) {
	assert.Equal(t, `100\% \& done`, ToLaTeX("100% & done"))
}

func TestToLaTeX_Bold(t *testing.T) {
	assert.Equal(t, `This is \textbf{bold} text`, ToLaTeX("This is **bold** text"))
}

func TestToLaTeX_Italic(t *testing.T) {
	assert.Equal(t, `This is \textit{italic} text`, ToLaTeX("This is *italic* text"))
}

func TestToLaTeX_BoldContentEscaped(t *testing.T) {
	assert.Equal(t, `\textbf{50\%}`, ToLaTeX("**50%**"))
}

func TestToLaTeX_Link(t *testing.T) {
	result := ToLaTeX("[RenderCV](https://example.com)")
	assert.Equal(t, `\href{https://example.com}{RenderCV}`, result)
}

func TestToLaTeX_LinkTextEscapedIndependently(t *testing.T) {
	result := ToLaTeX("[50% off](https://example.com/q%20r)")
	assert.Equal(t, `\href{https://example.com/q\%20r}{50\% off}`, result)
}

func TestToLaTeX_ItalicInsideLinkText(t *testing.T) {
	result := ToLaTeX("[*italic link*](https://example.com)")
	assert.Equal(t, `\href{https://example.com}{\textit{italic link}}`, result)
}

func TestToLaTeX_UnmatchedBoldPassesThrough(t *testing.T) {
	assert.Equal(t, "**unterminated bold", ToLaTeX("**unterminated bold"))
}

func TestToLaTeX_UnmatchedBracketPassesThrough(t *testing.T) {
	assert.Equal(t, "[not a link", ToLaTeX("[not a link"))
}

func TestToLaTeX_BoldAndItalicMixed(t *testing.T) {
	result := ToLaTeX("a *clean and tidy CV* pattern by **Gayle L. McDowell**")
	assert.Equal(t, `a \textit{clean and tidy CV} pattern by \textbf{Gayle L. McDowell}`, result)
}

func TestToLaTeX_Empty(t *testing.T) {
	assert.Equal(t, "", ToLaTeX(""))
}

func TestLinkURL_ExtractsURL(t *testing.T) {
	assert.Equal(t, "https://example.com", LinkURL("[text](https://example.com)"))
}

func TestLinkURL_NonLinkUnchanged(t *testing.T) {
	assert.Equal(t, "plain", LinkURL("plain"))
}
