package registry

import "errors"

var (
	ErrInvalidURL         = errors.New("invalid url")
	ErrNotFound           = errors.New("link not found")
	ErrCodeSpaceExhausted = errors.New("could not generate a unique code")
)
