package stream

// State is the read-only view of a producer's retained last value. Hand it
// to components that need the current value without receiving events.
type State[T any] struct {
	c *container[T]
}

// Last returns the most recently published value and whether one exists.
// The flag is independent of T's zero value: publishing the zero value
// still reports true. Before the first publish it reports false, and after
// the producer is closed it keeps returning the frozen last value.
func (s *State[T]) Last() (T, bool) {
	return s.c.lastValue, s.c.hasLast
}
