package upstream

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindGeneric},
		{"quota_message", errors.New("googleapi: Error 429: Quota exceeded for quota metric 'Read requests'"), KindQuota},
		{"rate_limit_message", errors.New("Rate Limit Exceeded"), KindQuota},
		{"resource_exhausted", errors.New("rpc error: code = RESOURCE_EXHAUSTED desc = insufficient quota"), KindQuota},
		{"deadline_exceeded", context.DeadlineExceeded, KindTimeout},
		{"wrapped_deadline", fmt.Errorf("fetch spreadsheet: %w", context.DeadlineExceeded), KindTimeout},
		{"timeout_message", errors.New("net/http: request timed out"), KindTimeout},
		{"status_429_without_quota_text", errors.New("googleapi: Error 429: per-user requests throttled"), KindQuota},
		{"generic", errors.New("connection refused"), KindGeneric},
		{"cancelled", context.Canceled, KindGeneric},
		{"digits_in_unrelated_error", errors.New("failed to parse row 4290 of sheet 'Coverage'"), KindGeneric},
		{"port_in_address", errors.New("dial tcp 10.0.0.1:4291: connection refused"), KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassify_TaggedErrorKeepsKind(t *testing.T) {
	// An explicit tag wins over message inspection.
	err := NewError(KindQuota, errors.New("opaque backend failure"))
	if got := Classify(err); got != KindQuota {
		t.Errorf("Classify(tagged) = %s, want %s", got, KindQuota)
	}

	wrapped := fmt.Errorf("fetch: %w", NewError(KindTimeout, errors.New("slow upstream")))
	if got := Classify(wrapped); got != KindTimeout {
		t.Errorf("Classify(wrapped tagged) = %s, want %s", got, KindTimeout)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewError(KindGeneric, inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is should reach the wrapped error")
	}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestIsQuotaAndIsTimeout(t *testing.T) {
	if !IsQuota(errors.New("quota exceeded")) {
		t.Error("IsQuota should match quota messages")
	}
	if IsQuota(errors.New("connection reset")) {
		t.Error("IsQuota should not match generic errors")
	}
	if !IsTimeout(NewError(KindTimeout, errors.New("x"))) {
		t.Error("IsTimeout should match tagged timeout errors")
	}
}
