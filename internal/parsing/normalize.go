package parsing

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	phoneStripper   = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
	dialablePattern = regexp.MustCompile(`^\+[0-9]{7,15}$`)
)

// NormalizePhone strips formatting characters from a phone number and
// returns the dialable form. Numbers must carry a country code.
func NormalizePhone(phone string) (string, error) {
	normalized := phoneStripper.Replace(strings.TrimSpace(phone))
	if normalized == "" {
		return "", fmt.Errorf("phone number is empty")
	}
	if !strings.HasPrefix(normalized, "+") {
		return "", fmt.Errorf("phone number %q must start with a country code, like +1", phone)
	}
	if !dialablePattern.MatchString(normalized) {
		return "", fmt.Errorf("phone number %q is not a valid international number", phone)
	}
	return normalized, nil
}

// NormalizeURL prepends the https scheme when the value has none and
// verifies the result parses to a URL with a host.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("URL is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("%q is not a valid URL", raw)
	}
	return parsed.String(), nil
}
