package logic

import (
	"errors"
	"fmt"
)

// ValidationError means the activity itself is unacceptable in its current
// state: a referenced object is missing, an addressee does not exist, a
// claim does not verify. The dispatcher rejects without marking the activity
// handled, so a later retry can succeed once the cause is gone.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SendStatusError is a non-2xx response to an outbound request; it carries
// the status so callers can classify the failure as transient or permanent.
type SendStatusError struct {
	Status int
	Body   string
}

func (e *SendStatusError) Error() string {
	return fmt.Sprintf("got status %d: response: %s", e.Status, e.Body)
}

// isPermanentStatus decides whether an HTTP status is a permanent-absence
// signal. The list comes from config; the protocol does not pin it down.
func isPermanentStatus(permanentCodes []int, status int) bool {
	for _, code := range permanentCodes {
		if status == code {
			return true
		}
	}
	return false
}

// isPermanentSendError is the permanence classifier applied to an arbitrary
// send error. Transport-level failures (no response at all) are transient.
func isPermanentSendError(permanentCodes []int, err error) bool {
	var statusErr *SendStatusError
	if errors.As(err, &statusErr) {
		return isPermanentStatus(permanentCodes, statusErr.Status)
	}
	return false
}
