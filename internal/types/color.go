package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// namedColors covers the color keywords the built-in themes accept.
var namedColors = map[string]string{
	"black":   "000000",
	"white":   "FFFFFF",
	"red":     "FF0000",
	"green":   "008000",
	"blue":    "0000FF",
	"cyan":    "00FFFF",
	"magenta": "FF00FF",
	"yellow":  "FFFF00",
	"orange":  "FFA500",
	"purple":  "800080",
	"brown":   "A52A2A",
	"gray":    "808080",
	"grey":    "808080",
}

var rgbColorPattern = regexp.MustCompile(`^rgb\( *(\d{1,3}) *, *(\d{1,3}) *, *(\d{1,3}) *\)$`)
var hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// ParseColorHex normalizes a color given as a name, a hex value, or an
// rgb(r,g,b) triplet into an uppercase RRGGBB string for LaTeX's
// \definecolor{...}{HTML}{...}.
func ParseColorHex(color string) (string, error) {
	color = strings.TrimSpace(color)

	if hex, ok := namedColors[strings.ToLower(color)]; ok {
		return hex, nil
	}
	if m := hexColorPattern.FindStringSubmatch(color); m != nil {
		return strings.ToUpper(m[1]), nil
	}
	if m := rgbColorPattern.FindStringSubmatch(color); m != nil {
		var channels [3]int
		for i, part := range m[1:] {
			v, _ := strconv.Atoi(part)
			if v > 255 {
				return "", fmt.Errorf("color %q has an RGB channel above 255", color)
			}
			channels[i] = v
		}
		return fmt.Sprintf("%02X%02X%02X", channels[0], channels[1], channels[2]), nil
	}

	return "", fmt.Errorf("color %q is not a known name, hex value, or rgb(r,g,b) triplet", color)
}
