package stream

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/eventkit/pkg/logger"
)

// registration is a single subscribed handler with its unique identity.
// The same handler function subscribed twice produces two registrations.
type registration[T any] struct {
	id string
	fn Handler[T]
}

// container holds the shared state behind a producer and its views:
// the ordered handler list, the retained last event, and lifecycle flags.
//
// The container performs no locking. All access must happen on a single
// goroutine; see the package documentation for the concurrency contract.
type container[T any] struct {
	regs   []*registration[T]
	logger *slog.Logger

	replay bool
	closed bool

	lastSender any
	lastValue  T
	hasLast    bool
}

// add appends a new registration to the end of the handler list.
func (c *container[T]) add(fn Handler[T]) *registration[T] {
	reg := &registration[T]{
		id: uuid.New().String(),
		fn: fn,
	}
	c.regs = append(c.regs, reg)
	return reg
}

// remove detaches the registration with the given id. It reports whether a
// registration was found; removing an unknown id is a no-op.
func (c *container[T]) remove(id string) bool {
	for i, reg := range c.regs {
		if reg.id == id {
			c.regs = append(c.regs[:i], c.regs[i+1:]...)
			return true
		}
	}
	return false
}

// retain records the event as the container's last value. Retention happens
// before dispatch so that handlers reading the state view during delivery
// observe the event being delivered, never a stale one.
func (c *container[T]) retain(sender any, value T) {
	c.lastSender = sender
	c.lastValue = value
	c.hasLast = true
}

// dispatch invokes every handler registered at the time of the call, in
// registration order. It iterates over a snapshot of the handler list, so
// handlers that subscribe or unsubscribe during delivery never affect the
// in-flight pass: handlers removed mid-pass still receive this event, and
// handlers added mid-pass receive only subsequent events.
//
// The first handler error stops the pass and is returned wrapped with the
// failing subscription's id. Later handlers do not run for this event.
func (c *container[T]) dispatch(sender any, value T) error {
	if len(c.regs) == 0 {
		return nil
	}

	snapshot := make([]*registration[T], len(c.regs))
	copy(snapshot, c.regs)

	for _, reg := range snapshot {
		if err := reg.fn(sender, value); err != nil {
			return fmt.Errorf("subscription %s: %w", reg.id, err)
		}
	}

	c.logger.Debug("event dispatched", logger.Subscribers(len(snapshot)))
	return nil
}
