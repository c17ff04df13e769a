// Package async provides a generic timeout guard for racing an operation
// against a deadline.
package async

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned when the operation does not settle before the
// deadline.
var ErrTimeout = errors.New("operation timed out")

type result[T any] struct {
	value T
	err   error
}

// WithTimeout runs op and races it against the given deadline. If op
// settles first its value or error is returned unchanged. If the deadline
// elapses first, the zero value and ErrTimeout are returned; op's context
// is cancelled and its eventual outcome is discarded. Cancellation of the
// parent context is forwarded the same way.
//
// Whichever path wins, the deadline timer is released before returning.
func WithTimeout[T any](ctx context.Context, timeout time.Duration, op func(ctx context.Context) (T, error)) (T, error) {
	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so the losing goroutine can always complete its send.
	done := make(chan result[T], 1)
	go func() {
		value, err := op(opCtx)
		done <- result[T]{value: value, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var zero T
	select {
	case res := <-done:
		return res.value, res.err
	case <-timer.C:
		return zero, ErrTimeout
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
