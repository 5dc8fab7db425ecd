// Package fallback runs an ordered chain of alternative strategies and keeps
// the first one that succeeds.
package fallback

import (
	"context"
	"errors"
	"fmt"
)

// ErrExhausted is returned when every strategy failed.
var ErrExhausted = errors.New("all strategies failed")

// Strategy is one named way of producing a T.
type Strategy[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, error)
}

// First runs strategies in order and returns the first successful value along
// with the name of the strategy that produced it. A panicking strategy counts
// as a failure. When the list is exhausted the returned error wraps
// ErrExhausted and every individual failure.
func First[T any](ctx context.Context, strategies ...Strategy[T]) (T, string, error) {
	var zero T
	errs := []error{ErrExhausted}

	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		v, err := attempt(ctx, s)
		if err == nil {
			return v, s.Name, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
	}

	return zero, "", errors.Join(errs...)
}

func attempt[T any](ctx context.Context, s Strategy[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Run(ctx)
}
