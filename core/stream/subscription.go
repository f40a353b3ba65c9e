package stream

// Subscription is the handle issued by Subscribe for a single registration.
// It implements io.Closer, so handles can be collected in a closer.Bag and
// torn down together with other resources.
type Subscription struct {
	id     string
	detach func()
	closed bool
}

// ID returns the registration's unique identifier. The id also appears in
// wrapped handler errors and debug logs.
func (s *Subscription) ID() string {
	return s.id
}

// Close detaches the registration this handle was issued for. The first
// call consumes the handle; subsequent calls are no-ops. Close never fails
// and never affects other registrations, including other subscriptions of
// the same handler function.
func (s *Subscription) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true
	s.detach()
	return nil
}
