package validation

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyURL            = errors.New("url is required")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrURLTooLong          = errors.New("url exceeds maximum length")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
	ErrBatchTooLarge       = errors.New("batch size exceeds maximum")
	ErrEmptyBatch          = errors.New("urls is required")
)

// BatchValidationError collects the per-item failures of a batch, in input order.
type BatchValidationError struct {
	Errors []IndexedError
}

type IndexedError struct {
	Index int
	Err   error
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("batch validation failed: %d invalid urls", len(e.Errors))
}

func (e *BatchValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, ie := range e.Errors {
		errs[i] = ie.Err
	}
	return errs
}
