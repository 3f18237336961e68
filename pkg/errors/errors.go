package errors

import (
	"errors"
	"fmt"
)

// Sentinel categories. Every coded error produced by the engine wraps one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("collaborator unavailable")
)

// Error codes surfaced to the UI shell.
const (
	CodeEmptyStory       = "empty_story"
	CodeInvalidDuration  = "invalid_duration"
	CodeDurationLocked   = "duration_locked"
	CodeInvalidDraft     = "invalid_draft"
	CodeUploadFailed     = "upload_failed"
	CodeCreateFailed     = "create_failed"
	CodeDeleteFailed     = "delete_failed"
	CodeNotOwner         = "not_owner"
	CodeAnalyticsFailed  = "analytics_failed"
	CodeRateLimited      = "rate_limited"
	CodeUnknownSticker   = "unknown_sticker"
	CodeStoryNotInFeed   = "story_not_in_feed"
	CodeInteractionBusy  = "interaction_busy"
	CodeLocationNotFound = "location_not_found"
	CodeUnsupportedMedia = "unsupported_media"
)

// Error carries a machine readable code next to the human message.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join is errors.Join, re-exported so callers need a single import.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// GetCode returns the outermost error code, or "" if none is set.
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
