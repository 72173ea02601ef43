package rendering

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Iuvenis-Sapiens/rendercv/internal/dimension"
	"github.com/Iuvenis-Sapiens/rendercv/internal/markdown"
	"github.com/Iuvenis-Sapiens/rendercv/internal/types"
)

// templateFuncs is the closed set of helpers fragments may call. Fragments
// have no other way to run code.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"escape":    markdown.EscapeLaTeX,
		"latex":     markdown.ToLaTeX,
		"url":       markdown.EscapeURL,
		"linkURL":   markdown.LinkURL,
		"colorHTML": types.ParseColorHex,
		"bold": func(s string) string {
			return `\textbf{` + s + `}`
		},
		"italic": func(s string) string {
			return `\textit{` + s + `}`
		},
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
		"divideLength": func(literal string, divisor any) (string, error) {
			f, err := toFloat(divisor)
			if err != nil {
				return "", err
			}
			return dimension.Divide(literal, f)
		},
		"multiplyLength": func(literal string, factor any) (string, error) {
			f, err := toFloat(factor)
			if err != nil {
				return "", err
			}
			return dimension.Multiply(literal, f)
		},
		"addLength":      dimension.Add,
		"abbreviateName": abbreviateName,
		"pageNumbering":  pageNumberingText,
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

// abbreviateName shortens every name but the last to its initial, turning
// "John Milton Doe" into "J. M. Doe".
func abbreviateName(name string) string {
	words := strings.Fields(name)
	if len(words) < 2 {
		return name
	}
	out := make([]string, len(words))
	for i, word := range words[:len(words)-1] {
		out[i] = string([]rune(word)[:1]) + "."
	}
	out[len(words)-1] = words[len(words)-1]
	return strings.Join(out, " ")
}

// pageNumberingText expands the NAME, PAGE_NUMBER, and TOTAL_PAGES
// placeholders of a page numbering style into LaTeX.
func pageNumberingText(style, name string) string {
	out := strings.ReplaceAll(style, "NAME", markdown.EscapeLaTeX(name))
	out = strings.ReplaceAll(out, "PAGE_NUMBER", `\thepage{}`)
	out = strings.ReplaceAll(out, "TOTAL_PAGES", `\pageref*{LastPage}`)
	return out
}
