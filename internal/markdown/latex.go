// Package markdown converts a restricted markdown subset (bold, italic,
// inline links) into LaTeX text that is safe to embed in a theme fragment.
package markdown

import (
	"regexp"
	"strings"
)

var (
	linkPattern   = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()\s]+)\)`)
	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)
)

// EscapeLaTeX escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeURL escapes only the characters that would terminate a \href
// argument, keeping the scheme and path structure intact.
func EscapeURL(url string) string {
	return strings.NewReplacer("%", `\%`, "#", `\#`, "&", `\&`).Replace(url)
}

// ToLaTeX converts text containing the supported markdown subset to LaTeX.
// Recognized constructs become formatting commands with their contents
// escaped; everything else is escaped as literal text. Unmatched or
// malformed delimiters pass through unchanged. The transform is applied
// exactly once; feeding it already-escaped output is a caller error.
func ToLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	last := 0
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(emphasisToLaTeX(text[last:m[0]]))
		linkText := text[m[2]:m[3]]
		linkURL := text[m[4]:m[5]]
		b.WriteString(`\href{` + EscapeURL(linkURL) + `}{` + emphasisToLaTeX(linkText) + `}`)
		last = m[1]
	}
	b.WriteString(emphasisToLaTeX(text[last:]))
	return b.String()
}

// LinkURL extracts the URL from a markdown link, or returns the input
// unchanged if it is not a link. Templates use it to build bare hyperlinks.
func LinkURL(text string) string {
	if m := linkPattern.FindStringSubmatch(text); m != nil {
		return m[2]
	}
	return text
}

func emphasisToLaTeX(text string) string {
	var b strings.Builder
	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(italicToLaTeX(text[last:m[0]]))
		b.WriteString(`\textbf{` + italicToLaTeX(text[m[2]:m[3]]) + `}`)
		last = m[1]
	}
	b.WriteString(italicToLaTeX(text[last:]))
	return b.String()
}

func italicToLaTeX(text string) string {
	var b strings.Builder
	last := 0
	for _, m := range italicPattern.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(EscapeLaTeX(text[last:m[0]]))
		b.WriteString(`\textit{` + EscapeLaTeX(text[m[2]:m[3]]) + `}`)
		last = m[1]
	}
	b.WriteString(EscapeLaTeX(text[last:]))
	return b.String()
}
