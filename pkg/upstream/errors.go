// Package upstream defines the error taxonomy for spreadsheet fetch failures
// and the single place those failures are classified. Everything downstream
// branches on the Kind enum, never on error strings.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an upstream fetch failure.
type Kind string

const (
	// KindGeneric covers failures with no special handling.
	KindGeneric Kind = "upstream_error"

	// KindQuota marks quota or rate-limit failures. The cache may serve a
	// stale entry instead of surfacing these.
	KindQuota Kind = "quota_exceeded"

	// KindTimeout marks fetches that lost the race against the fetch
	// timeout. Surfaced distinctly so the HTTP layer can map them to 504.
	KindTimeout Kind = "timeout"
)

// Error wraps an upstream failure with its classification.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Kind, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with an explicit classification.
func NewError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// quotaSignatures are the known quota-exceeded markers in upstream error
// messages. The Sheets API surfaces quota failures inconsistently: sometimes
// a 429 status, sometimes a RESOURCE_EXHAUSTED status string, sometimes just
// message text.
var quotaSignatures = []string{
	"quota exceeded",
	"rate limit exceeded",
	"resource_exhausted",
	"too many requests",
	"error 429",
}

var timeoutSignatures = []string{
	"timeout",
	"timed out",
	"deadline exceeded",
}

// Classify maps an arbitrary fetch error to its Kind. Already-tagged errors
// keep their tag; everything else is classified by message inspection.
func Classify(err error) Kind {
	if err == nil {
		return KindGeneric
	}

	var uerr *Error
	if errors.As(err, &uerr) {
		return uerr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	msg := strings.ToLower(err.Error())
	for _, sig := range quotaSignatures {
		if strings.Contains(msg, sig) {
			return KindQuota
		}
	}
	for _, sig := range timeoutSignatures {
		if strings.Contains(msg, sig) {
			return KindTimeout
		}
	}
	return KindGeneric
}

// IsQuota reports whether err classifies as a quota failure.
func IsQuota(err error) bool {
	return Classify(err) == KindQuota
}

// IsTimeout reports whether err classifies as a timeout.
func IsTimeout(err error) bool {
	return Classify(err) == KindTimeout
}
