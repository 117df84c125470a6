package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized responses and log fields
const (
	// 4xxx - Client errors
	CodeInvalidUserID    = 4001
	CodeInvalidDelta     = 4002
	CodeMalformedUpdate  = 4003
	CodeEmptyMessage     = 4004
	CodePointsOverflow   = 4005
	CodeInvalidThreshold = 4006
	CodeAccountNotFound  = 4040
	CodeWebhookNotFound  = 4041

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeStoreUnavailable = 5030
	CodeReplyFailed      = 5020
)

// Base error types
var (
	// ErrInvalidUserID is returned when the chat user ID is zero
	ErrInvalidUserID = errors.New("user ID must be non-zero")

	// ErrInvalidDelta is returned when a credit is not a positive number of points
	ErrInvalidDelta = errors.New("points delta must be positive")

	// ErrPointsOverflow is returned when a credit would overflow the counter
	ErrPointsOverflow = errors.New("points total would overflow")

	// ErrAccountNotFound is returned when the store has no record for a user
	ErrAccountNotFound = errors.New("account not found")

	// ErrStoreUnavailable is returned when the account store cannot be reached or is not initialized
	ErrStoreUnavailable = errors.New("account store unavailable")

	// ErrMalformedUpdate is returned when an inbound update payload cannot be parsed
	ErrMalformedUpdate = errors.New("malformed update payload")

	// ErrEmptyMessage is returned when an update carries no text to process
	ErrEmptyMessage = errors.New("message has no text")

	// ErrReplyFailed is returned when the chat platform rejects an outgoing message
	ErrReplyFailed = errors.New("reply could not be delivered")

	// ErrInvalidThreshold is returned when the reward table is misconfigured
	ErrInvalidThreshold = errors.New("invalid reward threshold")

	// ErrWebhookNotFound is returned when a webhook request targets an unknown secret path
	ErrWebhookNotFound = errors.New("webhook path not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidDelta):
		return CodeInvalidDelta
	case errors.Is(err, ErrMalformedUpdate):
		return CodeMalformedUpdate
	case errors.Is(err, ErrEmptyMessage):
		return CodeEmptyMessage
	case errors.Is(err, ErrPointsOverflow):
		return CodePointsOverflow
	case errors.Is(err, ErrInvalidThreshold):
		return CodeInvalidThreshold
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrWebhookNotFound):
		return CodeWebhookNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	case errors.Is(err, ErrReplyFailed):
		return CodeReplyFailed
	default:
		return CodeInternalServer
	}
}

// StoreError describes a failed call against the account store
type StoreError struct {
	Driver    string
	Operation string
	UserID    int64
	Err       error
}

// Error implements the error interface for StoreError
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store %s failed for user %d: %v", e.Driver, e.Operation, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is reports every StoreError as ErrStoreUnavailable
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_error",
		"driver":     e.Driver,
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"error":      e.Err.Error(),
		"error_code": CodeStoreUnavailable,
	}
}

// NewStoreError wraps a driver failure so callers can match it with ErrStoreUnavailable
func NewStoreError(driver, operation string, userID int64, err error) error {
	return &StoreError{
		Driver:    driver,
		Operation: operation,
		UserID:    userID,
		Err:       err,
	}
}

// ReplyError describes a message the chat platform refused to deliver
type ReplyError struct {
	ChatID    int64
	MessageID int
	Err       error
}

// Error implements the error interface for ReplyError
func (e *ReplyError) Error() string {
	return fmt.Sprintf("reply to message %d in chat %d failed: %v", e.MessageID, e.ChatID, e.Err)
}

// Unwrap returns the underlying error
func (e *ReplyError) Unwrap() error {
	return e.Err
}

// Is reports every ReplyError as ErrReplyFailed
func (e *ReplyError) Is(target error) bool {
	return target == ErrReplyFailed
}

// LogFields returns a map of fields for structured logging
func (e *ReplyError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "reply_error",
		"chat_id":    e.ChatID,
		"message_id": e.MessageID,
		"error":      e.Err.Error(),
		"error_code": CodeReplyFailed,
	}
}

// NewReplyError creates a new detailed reply error
func NewReplyError(chatID int64, messageID int, err error) error {
	return &ReplyError{
		ChatID:    chatID,
		MessageID: messageID,
		Err:       err,
	}
}

// IsStoreUnavailableError checks if the error means the account store could not serve the call
func IsStoreUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsMalformedUpdateError checks if the error is caused by an unparseable payload
func IsMalformedUpdateError(err error) bool {
	return errors.Is(err, ErrMalformedUpdate)
}

// IsReplyFailedError checks if the error is a failed outgoing message
func IsReplyFailedError(err error) bool {
	return errors.Is(err, ErrReplyFailed)
}
