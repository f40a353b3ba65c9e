package stream

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/eventkit/pkg/logger"
)

// Decorator wraps a handler to add cross-cutting functionality. Multiple
// decorators can be composed using the Decorate helper.
type Decorator[T any] func(Handler[T]) Handler[T]

// Decorate applies a series of decorators to a handler. Decorators are
// applied so that the first decorator in the list becomes the outermost
// wrapper (executes first).
//
// Example:
//
//	handler := stream.Decorate(onDamage,
//	    stream.Recover[int](),
//	    stream.Filter(func(dmg int) bool { return dmg > 0 }),
//	)
func Decorate[T any](h Handler[T], decorators ...Decorator[T]) Handler[T] {
	for i := len(decorators) - 1; i >= 0; i-- {
		h = decorators[i](h)
	}
	return h
}

// WithFilter wraps a handler to run only for values matching the predicate.
// Filtered-out events are acknowledged with a nil error, so they never
// interrupt delivery to other subscribers.
func WithFilter[T any](h Handler[T], pred func(T) bool) Handler[T] {
	return func(sender any, value T) error {
		if !pred(value) {
			return nil
		}
		return h(sender, value)
	}
}

// WithOnce wraps a handler to process at most one event. After the first
// delivery the wrapper becomes a permanent no-op, even if that delivery
// returned an error. Useful for one-shot triggers that should survive a
// forgotten unsubscribe.
func WithOnce[T any](h Handler[T]) Handler[T] {
	done := false
	return func(sender any, value T) error {
		if done {
			return nil
		}
		done = true
		return h(sender, value)
	}
}

// WithRecover wraps a handler to convert panics into returned errors. The
// producer itself never recovers handler panics; wrap handlers that must
// not take down the publisher.
func WithRecover[T any](h Handler[T]) Handler[T] {
	return func(sender any, value T) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("handler panic: %v", r)
			}
		}()
		return h(sender, value)
	}
}

// WithLogging wraps a handler to log each delivery with timing. Successful
// deliveries log at debug level, failures at error level. The name identifies
// the handler in log output.
func WithLogging[T any](h Handler[T], log *slog.Logger, name string) Handler[T] {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return func(sender any, value T) error {
		start := time.Now()
		err := h(sender, value)
		if err != nil {
			log.Error("handler failed",
				logger.Component(name),
				logger.Elapsed(start),
				logger.Error(err))
			return err
		}
		log.Debug("handler completed",
			logger.Component(name),
			logger.Elapsed(start))
		return nil
	}
}

// Filter returns a Decorator that wraps a handler with a value predicate.
// This is a factory function for use with the Decorate helper.
func Filter[T any](pred func(T) bool) Decorator[T] {
	return func(h Handler[T]) Handler[T] {
		return WithFilter(h, pred)
	}
}

// Once returns a Decorator that limits a handler to a single delivery.
// This is a factory function for use with the Decorate helper.
func Once[T any]() Decorator[T] {
	return func(h Handler[T]) Handler[T] {
		return WithOnce(h)
	}
}

// Recover returns a Decorator that converts handler panics into errors.
// This is a factory function for use with the Decorate helper.
func Recover[T any]() Decorator[T] {
	return func(h Handler[T]) Handler[T] {
		return WithRecover(h)
	}
}

// Logging returns a Decorator that logs handler execution with timing.
// This is a factory function for use with the Decorate helper.
func Logging[T any](log *slog.Logger, name string) Decorator[T] {
	return func(h Handler[T]) Handler[T] {
		return WithLogging(h, log, name)
	}
}
