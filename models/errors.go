package models

import (
	"errors"
	"fmt"
)

// Error codes used in logs and internal error handling.
const (
	ErrCodeElementNotFound   = "ELEMENT_NOT_FOUND"
	ErrCodeInteractionFailed = "INTERACTION_FAILED"
	ErrCodeNavTimeout        = "NAVIGATION_TIMEOUT"
	ErrCodeBrowserCrash      = "BROWSER_CRASH"
	ErrCodeInvalidInput      = "INVALID_INPUT"
)

// ScrapeError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type ScrapeError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// NewScrapeError creates a new ScrapeError.
func NewScrapeError(code, message string, err error) *ScrapeError {
	return &ScrapeError{Code: code, Message: message, Err: err}
}

// IsFatal reports whether err indicates the browser session itself is
// unusable. A fatal error aborts the whole run; everything else is handled
// at field or project granularity.
func IsFatal(err error) bool {
	var se *ScrapeError
	if errors.As(err, &se) {
		return se.Code == ErrCodeBrowserCrash
	}
	return false
}
