package closer

// Func adapts a plain function to io.Closer, so teardown logic that is not
// already a Closer can be collected in a Bag.
//
// Example:
//
//	bag.Add(closer.Func(func() error {
//	    ticker.Stop()
//	    return nil
//	}))
type Func func() error

// Close calls the underlying function.
func (f Func) Close() error {
	return f()
}
