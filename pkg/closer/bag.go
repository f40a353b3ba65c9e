package closer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/eventkit/pkg/logger"
)

// Bag collects io.Closers and disposes them together, in the order they
// were added. It owns a cancellation context that is canceled as the first
// step of Close, before any member is disposed, so work driven by the bag's
// context observes cancellation while its resources still exist.
//
// Adding a closer transfers disposal responsibility to the bag: members
// should not be closed separately once added.
//
// Bag is not safe for concurrent use. The context returned by Context is
// the only artifact safe to share across goroutines.
//
// Example:
//
//	bag := closer.NewBag()
//	defer bag.Close()
//
//	sub, err := damage.Listener().Subscribe(onDamage)
//	if err != nil {
//	    return err
//	}
//	bag.Add(sub)
type Bag struct {
	ctx    context.Context
	cancel context.CancelFunc
	items  []io.Closer
	logger *slog.Logger
	closed bool
}

// BagOption configures a Bag.
type BagOption func(*Bag)

// WithLogger configures structured logging for the bag. Disposal faults are
// reported through it. Logging is disabled by default. A nil logger is
// ignored.
func WithLogger(logger *slog.Logger) BagOption {
	return func(b *Bag) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBag creates an empty bag with a fresh cancellation context.
func NewBag(opts ...BagOption) *Bag {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Bag{
		ctx:    ctx,
		cancel: cancel,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Context returns the bag's cancellation context. It is canceled before any
// member is closed, signaling dependents to stop while their resources are
// still alive.
func (b *Bag) Context() context.Context {
	return b.ctx
}

// Add stores a closer for disposal when the bag is closed. Insertion order
// is preserved and is the disposal order. Adding to a closed bag disposes
// the closer immediately instead of storing it, so late registrations are
// never leaked. Nil closers are ignored.
func (b *Bag) Add(c io.Closer) {
	if c == nil {
		return
	}

	if b.closed {
		if err := closeMember(c); err != nil {
			b.logger.Warn("late closer disposed with error", logger.Error(err))
		}
		return
	}

	b.items = append(b.items, c)
}

// AddFunc stores a teardown function, wrapping it with Func.
// Nil functions are ignored.
func (b *Bag) AddFunc(fn func() error) {
	if fn == nil {
		return
	}
	b.Add(Func(fn))
}

// Len returns the number of closers currently held. A closed bag holds
// none.
func (b *Bag) Len() int {
	return len(b.items)
}

// Close cancels the bag's context and then closes every member in
// insertion order. A member's error or panic is recorded and does not stop
// disposal of the remaining members; all faults are aggregated with
// errors.Join and returned after every member has been closed.
//
// Close is idempotent; subsequent calls are no-ops.
func (b *Bag) Close() error {
	if b.closed {
		return nil
	}

	b.closed = true
	b.cancel()

	var errs []error
	for i, c := range b.items {
		if err := closeMember(c); err != nil {
			b.logger.Error("closer failed during bag teardown",
				logger.Position(i),
				logger.Error(err))
			errs = append(errs, fmt.Errorf("closer %d: %w", i, err))
		}
	}
	b.items = nil

	return errors.Join(errs...)
}

// closeMember closes a single member, converting panics into errors so one
// faulty closer cannot abort the teardown of the rest.
func closeMember(c io.Closer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("close panicked: %v", r)
		}
	}()
	return c.Close()
}
