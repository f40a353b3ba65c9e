package stream

import "github.com/dmitrymomot/eventkit/pkg/logger"

// Producer is a typed event channel. It owns the event stream: components
// publish through the producer, while consumers attach through the Listener
// view and read the retained state through the State view.
//
// A producer built with WithReplay retains the last published event and
// replays it to every new subscriber; without it the producer still retains
// the last value for the State view but never delivers it retroactively.
//
// Producer is not safe for concurrent use. Publish, Subscribe, Unsubscribe,
// and Close must all happen on the same goroutine.
//
// Example:
//
//	health := stream.NewProducer[int](stream.WithReplay())
//	defer health.Close()
//
//	sub, err := health.Listener().Subscribe(func(sender any, hp int) error {
//	    hud.SetHealth(hp)
//	    return nil
//	})
//	if err != nil {
//	    return err
//	}
//	defer sub.Close()
//
//	if err := health.Publish(player, 100); err != nil {
//	    return err
//	}
type Producer[T any] struct {
	c *container[T]
}

// NewProducer creates a typed event producer.
//
// Example:
//
//	score := stream.NewProducer[int](
//	    stream.WithReplay(),
//	    stream.WithLogger(logger),
//	)
//	defer score.Close()
func NewProducer[T any](opts ...Option) *Producer[T] {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Producer[T]{
		c: &container[T]{
			replay: cfg.replay,
			logger: cfg.logger,
		},
	}
}

// Publish retains the event as the producer's last value and then delivers
// it synchronously to every current subscriber in subscription order.
//
// Publishing with no subscribers is not an error: the event is retained and
// delivery is a no-op. Publishing on a closed producer returns
// ErrProducerClosed without retaining or delivering anything.
//
// The first handler error aborts delivery to the remaining subscribers and
// is returned wrapped with the failing subscription's id. Handler panics
// propagate to the caller.
func (p *Producer[T]) Publish(sender any, value T) error {
	if p.c.closed {
		return ErrProducerClosed
	}

	p.c.retain(sender, value)
	return p.c.dispatch(sender, value)
}

// Listener returns the subscription view of the producer. All listeners
// returned by a producer share the same subscriber list.
func (p *Producer[T]) Listener() *Listener[T] {
	return &Listener[T]{c: p.c}
}

// State returns the read-only view of the producer's retained last value.
func (p *Producer[T]) State() *State[T] {
	return &State[T]{c: p.c}
}

// Close shuts down the producer. After Close, Publish returns
// ErrProducerClosed and the retained value is frozen at whatever was last
// published. Close does not detach existing subscriptions: their handles
// stay valid, and Subscribe continues to work (including replay of the
// frozen value) for consumers attached after the fact.
//
// Close is idempotent; subsequent calls are no-ops.
func (p *Producer[T]) Close() error {
	if p.c.closed {
		return nil
	}

	p.c.closed = true
	p.c.logger.Debug("producer closed", logger.Subscribers(len(p.c.regs)))
	return nil
}
