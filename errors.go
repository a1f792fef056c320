package result

import (
	"errors"
	"fmt"
)

var (
	ErrPendingOrEmpty = errors.New("cannot unwrap a pending or empty result")
	ErrNoneUnwrapped  = errors.New("cannot unwrap a none option")
)

// panic messages
const (
	nilCallbackPanicMsg = "result: the provided callback is nil"
	nilFuturePanicMsg   = "result: the provided future is nil"
)

// ResultError is the value passed to panic when an Err Result is unwrapped.
// It holds the original error payload, so that it can be recovered later
// without loss, by Capture or any of the bridge functions.
type ResultError struct {
	payload any
}

func newResultError(payload any) *ResultError {
	return &ResultError{payload: payload}
}

// Payload returns the original Err payload.
func (e *ResultError) Payload() any {
	return e.payload
}

func (e *ResultError) Error() string {
	if err, ok := e.payload.(error); ok && err != nil {
		return err.Error()
	}
	return fmt.Sprint(e.payload)
}

func (e *ResultError) Unwrap() error {
	err, _ := e.payload.(error)
	return err
}

// ExpectError is the value passed to panic by Expect.
// Its message is the one provided by the caller, while the payload of the
// failed Result, if any, is still reachable through Payload and Unwrap.
type ExpectError struct {
	msg     string
	payload any
}

func newExpectError(msg string, payload any) *ExpectError {
	return &ExpectError{msg: msg, payload: payload}
}

func (e *ExpectError) Error() string {
	return e.msg
}

func (e *ExpectError) Payload() any {
	return e.payload
}

func (e *ExpectError) Unwrap() error {
	err, _ := e.payload.(error)
	return err
}
