package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// URLPattern is the acceptance policy for target URLs: an http(s) scheme, a host that is
// a domain name, localhost or a dotted-quad IPv4 address, an optional port and an
// optional path or query without whitespace.
const URLPattern = `(?i)^https?://` +
	`(?:(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}\.?` +
	`|localhost` +
	`|\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
	`(?::\d+)?` +
	`(?:/?|[/?]\S+)$`

var urlRe = regexp.MustCompile(URLPattern)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

// IsValidURL reports whether candidate matches URLPattern.
func IsValidURL(candidate string) bool {
	return urlRe.MatchString(candidate)
}

type URLValidator struct {
	maxLength       int
	maxBatchSize    int
	allowPrivateIPs bool
	ipValidator     *IPValidator
}

func NewURLValidator(maxLength, maxBatchSize int, allowPrivateIPs bool) *URLValidator {
	return &URLValidator{
		maxLength:       maxLength,
		maxBatchSize:    maxBatchSize,
		allowPrivateIPs: allowPrivateIPs,
		ipValidator:     NewIPValidator(),
	}
}

func (v *URLValidator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	if len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	if scheme, _, ok := strings.Cut(rawURL, ":"); ok && blockedProtocols[strings.ToLower(scheme)] {
		return ErrUnsafeProtocol
	}

	if !IsValidURL(rawURL) {
		return ErrInvalidURLFormat
	}

	if v.allowPrivateIPs {
		return nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}
	return v.ipValidator.ValidateHost(parsed.Host)
}

func (v *URLValidator) ValidateBatch(urls []string) error {
	if len(urls) == 0 {
		return ErrEmptyBatch
	}

	if len(urls) > v.maxBatchSize {
		return ErrBatchTooLarge
	}

	var batchErrors []IndexedError
	for i, u := range urls {
		if err := v.ValidateURL(u); err != nil {
			batchErrors = append(batchErrors, IndexedError{Index: i, Err: err})
		}
	}

	if len(batchErrors) > 0 {
		return &BatchValidationError{Errors: batchErrors}
	}

	return nil
}
