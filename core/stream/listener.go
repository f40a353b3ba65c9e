package stream

import (
	"fmt"

	"github.com/dmitrymomot/eventkit/pkg/logger"
)

// Listener is the subscription view of a producer. Hand it to consumer
// components to let them attach and detach handlers without being able to
// publish or close the underlying channel.
type Listener[T any] struct {
	c *container[T]
}

// Subscribe registers a handler and returns its subscription handle.
// Handlers are invoked in subscription order. Subscribing the same handler
// function twice creates two independent registrations, each delivered to
// separately and each detached through its own handle.
//
// On a producer built with WithReplay, Subscribe delivers the retained last
// event (with its original sender) to the new handler exactly once, before
// returning. No replay happens when nothing has been published yet. If the
// replay delivery fails, the registration stays active and Subscribe returns
// the live handle together with the wrapped error; the caller decides
// whether to keep or close it.
//
// A nil handler returns ErrNilHandler.
func (l *Listener[T]) Subscribe(h Handler[T]) (*Subscription, error) {
	if h == nil {
		return nil, ErrNilHandler
	}

	c := l.c
	reg := c.add(h)
	sub := &Subscription{
		id: reg.id,
		detach: func() {
			c.remove(reg.id)
		},
	}
	c.logger.Debug("handler subscribed",
		logger.Subscription(reg.id),
		logger.Subscribers(len(c.regs)))

	if c.replay && c.hasLast {
		if err := h(c.lastSender, c.lastValue); err != nil {
			return sub, fmt.Errorf("replay to subscription %s: %w", reg.id, err)
		}
	}

	return sub, nil
}

// Unsubscribe detaches the registration the handle was issued for. It is a
// no-op for a nil handle, a handle already detached (by either Unsubscribe
// or Subscription.Close), or a handle issued by a different producer.
func (l *Listener[T]) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	if l.c.remove(sub.id) {
		l.c.logger.Debug("handler unsubscribed",
			logger.Subscription(sub.id),
			logger.Subscribers(len(l.c.regs)))
	}
}

// Len returns the number of active registrations.
func (l *Listener[T]) Len() int {
	return len(l.c.regs)
}
