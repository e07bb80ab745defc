package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrUnauthorized      = fmt.Errorf("unauthorized")
	ErrNotFound          = fmt.Errorf("not found")
	ErrNotCheckedIn      = fmt.Errorf("not checked in")
	ErrForbidden         = fmt.Errorf("forbidden")
	ErrStoreFailure      = fmt.Errorf("store failure")
	ErrInvalidPayload    = fmt.Errorf("invalid payload")
	ErrInvalidTransition = fmt.Errorf("invalid sharing transition")
	ErrUnknownEvent      = fmt.Errorf("unknown event")
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrEmptyWords        = fmt.Errorf("no words have been found")
	ErrLoopStopped       = fmt.Errorf("event loop stopped")
	ErrConnectionClosed  = fmt.Errorf("connection closed")
	ErrSlowConsumer      = fmt.Errorf("outbound buffer full")
)

// Message returns the short text sent back to the originating socket in an error event.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case stderrors.Is(err, ErrNotCheckedIn):
		return "Not checked in to this show"
	case stderrors.Is(err, ErrNotFound):
		return "Show not found"
	case stderrors.Is(err, ErrForbidden):
		return "Not allowed"
	case stderrors.Is(err, ErrInvalidPayload):
		return err.Error()
	case stderrors.Is(err, ErrUnknownEvent):
		return err.Error()
	case stderrors.Is(err, ErrStoreFailure):
		return "Failed to save, please retry"
	default:
		return "An error occurred"
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
