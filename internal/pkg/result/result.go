// Package result holds the tagged Success/Error envelope returned by the
// reminder repository instead of a bare error.
package result

import "fmt"

// Result is either a Success carrying data or an Error carrying a message and
// an optional cause. The zero value is not meaningful; use Success or Error.
type Result[T any] struct {
	data    T
	ok      bool
	message string
	cause   error
}

// Success wraps data in a successful result.
func Success[T any](data T) Result[T] {
	return Result[T]{data: data, ok: true}
}

// Error builds a failed result. cause may be nil.
func Error[T any](message string, cause error) Result[T] {
	return Result[T]{message: message, cause: cause}
}

// IsSuccess reports whether the result carries data.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Data returns the payload; it is the zero value for an Error result.
func (r Result[T]) Data() T {
	return r.data
}

// Message returns the error message; empty for a Success result.
func (r Result[T]) Message() string {
	return r.message
}

// Cause returns the underlying error, if any.
func (r Result[T]) Cause() error {
	return r.cause
}

// Get returns the payload and whether the result is a Success.
func (r Result[T]) Get() (T, bool) {
	return r.data, r.ok
}

// Err converts an Error result into a Go error. Success returns nil.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.cause != nil {
		return fmt.Errorf("%s: %w", r.message, r.cause)
	}
	return fmt.Errorf("%s", r.message)
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.data)
	}
	return fmt.Sprintf("Error(%s)", r.message)
}
