package stream

import "errors"

var (
	// ErrNilHandler is returned when subscribing with a nil handler.
	ErrNilHandler = errors.New("nil handler")

	// ErrNilSource is returned by combinators when a source producer is nil.
	ErrNilSource = errors.New("nil source producer")

	// ErrNilTarget is returned by combinators when the target producer is nil.
	ErrNilTarget = errors.New("nil target producer")

	// ErrNilTransform is returned by MapTo when the transform function is nil.
	ErrNilTransform = errors.New("nil transform function")

	// ErrProducerClosed is returned when publishing to a closed producer.
	ErrProducerClosed = errors.New("producer is closed")
)
