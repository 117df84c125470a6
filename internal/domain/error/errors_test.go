package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrStoreUnavailable.Error() != "account store unavailable" {
		t.Errorf("ErrStoreUnavailable has unexpected message: %s", ErrStoreUnavailable.Error())
	}
	if ErrInvalidDelta.Error() != "points delta must be positive" {
		t.Errorf("ErrInvalidDelta has unexpected message: %s", ErrInvalidDelta.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidUserID", ErrInvalidUserID, 4001},
		{"InvalidDelta", ErrInvalidDelta, 4002},
		{"MalformedUpdate", ErrMalformedUpdate, 4003},
		{"EmptyMessage", ErrEmptyMessage, 4004},
		{"PointsOverflow", ErrPointsOverflow, 4005},
		{"AccountNotFound", ErrAccountNotFound, 4040},
		{"WebhookNotFound", ErrWebhookNotFound, 4041},
		{"StoreUnavailable", ErrStoreUnavailable, 5030},
		{"ReplyFailed", ErrReplyFailed, 5020},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4001},
		{"StoreError", NewStoreError("redis", "get", 1, errors.New("dial tcp")), 5030},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("firebase", "set", 42, cause)

	expected := "firebase store set failed for user 42: connection refused"
	if err.Error() != expected {
		t.Errorf("StoreError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("errors.Is(err, ErrStoreUnavailable) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if !IsStoreUnavailableError(fmt.Errorf("ledger: %w", err)) {
		t.Errorf("IsStoreUnavailableError should see through wrapping")
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("errors.As should find *StoreError")
	}
	fields := storeErr.LogFields()
	if fields["driver"] != "firebase" || fields["user_id"] != int64(42) {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestReplyError(t *testing.T) {
	err := NewReplyError(100, 7, errors.New("Forbidden: bot was blocked by the user"))

	expected := "reply to message 7 in chat 100 failed: Forbidden: bot was blocked by the user"
	if err.Error() != expected {
		t.Errorf("ReplyError.Error() = %s, want %s", err.Error(), expected)
	}
	if !IsReplyFailedError(err) {
		t.Errorf("IsReplyFailedError(err) = false, want true")
	}
	if IsStoreUnavailableError(err) {
		t.Errorf("reply errors must not match ErrStoreUnavailable")
	}
}

func TestHelperPredicates(t *testing.T) {
	if !IsAccountNotFoundError(fmt.Errorf("get: %w", ErrAccountNotFound)) {
		t.Errorf("IsAccountNotFoundError should match wrapped error")
	}
	if !IsMalformedUpdateError(ErrMalformedUpdate) {
		t.Errorf("IsMalformedUpdateError should match base error")
	}
	if IsAccountNotFoundError(ErrStoreUnavailable) {
		t.Errorf("IsAccountNotFoundError should not match a different error")
	}
}
