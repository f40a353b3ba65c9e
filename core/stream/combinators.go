package stream

// PipeTo forwards every event published on source to target, preserving the
// sender. It returns the forwarding subscription; close it to stop
// forwarding. Closing the forwarding subscription does not close either
// producer.
//
// If source was built with WithReplay and has a retained event, it is
// forwarded immediately during PipeTo. Errors from target's subscribers (or
// from target being closed) propagate to the source.Publish caller.
//
// Example:
//
//	damage := stream.NewProducer[int]()
//	analytics := stream.NewProducer[int]()
//
//	pipe, err := stream.PipeTo(damage, analytics)
//	if err != nil {
//	    return err
//	}
//	defer pipe.Close()
func PipeTo[T any](source, target *Producer[T]) (*Subscription, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if target == nil {
		return nil, ErrNilTarget
	}

	return source.Listener().Subscribe(func(sender any, value T) error {
		return target.Publish(sender, value)
	})
}

// MapTo forwards every event published on source to target after applying
// transform to the value. The sender is preserved. It returns the
// forwarding subscription; close it to stop forwarding.
//
// The transform runs inside the forwarding handler, so a panicking
// transform propagates to the source.Publish caller.
//
// Example:
//
//	health := stream.NewProducer[int]()
//	healthText := stream.NewProducer[string]()
//
//	pipe, err := stream.MapTo(health, healthText, func(hp int) string {
//	    return fmt.Sprintf("%d HP", hp)
//	})
//	if err != nil {
//	    return err
//	}
//	defer pipe.Close()
func MapTo[T, U any](source *Producer[T], target *Producer[U], transform func(T) U) (*Subscription, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if target == nil {
		return nil, ErrNilTarget
	}
	if transform == nil {
		return nil, ErrNilTransform
	}

	return source.Listener().Subscribe(func(sender any, value T) error {
		return target.Publish(sender, transform(value))
	})
}

// Pair carries the latest values of the two sources combined by
// CombineLatest.
type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// Combined is the downstream surface of CombineLatest. It implements
// io.Closer, so it can be collected in a closer.Bag alongside
// subscriptions.
type Combined[T1, T2 any] struct {
	out    *Producer[Pair[T1, T2]]
	first  *Subscription
	second *Subscription

	latest1 T1
	latest2 T2
	has1    bool
	has2    bool
	closed  bool
}

// CombineLatest subscribes to both sources and republishes a Pair of their
// latest values downstream. Nothing is emitted until both sources have
// produced at least one value; from then on every event from either source
// emits a pair combining the new value with the other source's most recent
// one. The pair's sender is the sender of the triggering event.
//
// Sources built with WithReplay deliver their retained event while
// CombineLatest attaches, so the pair may become complete immediately. The
// downstream never replays on its own: subscribers attached through
// Combined.Subscribe receive only pairs emitted after they attach.
//
// Close the returned Combined to detach from both sources and shut the
// downstream.
//
// Example:
//
//	position := stream.NewProducer[Vec2](stream.WithReplay())
//	velocity := stream.NewProducer[Vec2](stream.WithReplay())
//
//	motion, err := stream.CombineLatest(position, velocity)
//	if err != nil {
//	    return err
//	}
//	defer motion.Close()
//
//	sub, err := motion.Subscribe(func(sender any, pv stream.Pair[Vec2, Vec2]) error {
//	    predictPath(pv.First, pv.Second)
//	    return nil
//	})
func CombineLatest[T1, T2 any](first *Producer[T1], second *Producer[T2]) (*Combined[T1, T2], error) {
	if first == nil || second == nil {
		return nil, ErrNilSource
	}

	c := &Combined[T1, T2]{
		out: NewProducer[Pair[T1, T2]](),
	}

	firstSub, err := first.Listener().Subscribe(func(sender any, value T1) error {
		c.latest1 = value
		c.has1 = true
		return c.emit(sender)
	})
	if err != nil {
		return nil, err
	}
	c.first = firstSub

	secondSub, err := second.Listener().Subscribe(func(sender any, value T2) error {
		c.latest2 = value
		c.has2 = true
		return c.emit(sender)
	})
	if err != nil {
		_ = firstSub.Close()
		return nil, err
	}
	c.second = secondSub

	return c, nil
}

// emit publishes the current pair downstream once both slots are filled.
func (c *Combined[T1, T2]) emit(sender any) error {
	if !c.has1 || !c.has2 {
		return nil
	}
	return c.out.Publish(sender, Pair[T1, T2]{First: c.latest1, Second: c.latest2})
}

// Subscribe attaches a handler to the combined output. Handler errors
// propagate through the emitting source's Publish call.
func (c *Combined[T1, T2]) Subscribe(h Handler[Pair[T1, T2]]) (*Subscription, error) {
	return c.out.Listener().Subscribe(h)
}

// Len returns the number of subscribers attached to the combined output.
func (c *Combined[T1, T2]) Len() int {
	return c.out.Listener().Len()
}

// Close detaches from both sources and closes the downstream producer.
// Already-issued downstream handles stay valid. Close is idempotent.
func (c *Combined[T1, T2]) Close() error {
	if c.closed {
		return nil
	}

	c.closed = true
	_ = c.first.Close()
	_ = c.second.Close()
	return c.out.Close()
}
