package validation

import (
	"net/url"
	"regexp"
	"strings"

	"yt-transcript/errors"
)

// Patterns are tried in priority order; the first capture group of the
// first match wins. Ambiguous URLs with multiple 11-character runs resolve
// to the first pattern's first match.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
}

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateURL performs URL validation
func (v *Validator) ValidateURL(urlStr string) error {
	const op = "Validator.ValidateURL"

	if urlStr == "" {
		return errors.InvalidInput(op, nil, "URL is required")
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return errors.InvalidInput(op, err, "Invalid URL format")
	}

	// Protocol validation
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.InvalidInput(op, nil, "URL must use HTTP or HTTPS")
	}

	// Domain validation
	host := parsedURL.Hostname()
	if !strings.Contains(host, "youtube.com") && !strings.Contains(host, "youtu.be") {
		return errors.InvalidInput(op, nil, "Only YouTube URLs are supported")
	}

	return nil
}

// ExtractVideoID pulls the 11-character video identifier out of a URL.
// It never panics on malformed input; a URL with no identifier in a
// recognized position yields a not-found error.
func (v *Validator) ExtractVideoID(urlStr string) (string, error) {
	const op = "Validator.ExtractVideoID"

	for _, pattern := range idPatterns {
		if match := pattern.FindStringSubmatch(urlStr); match != nil {
			return match[1], nil
		}
	}

	return "", errors.NotFound(op, nil, "No video ID found in URL")
}
