package stream

// Handler processes a single event delivered to a subscription.
//
// The sender identifies the component that published the event; it is passed
// through unchanged from Publish (and from the retained event during replay).
// Returning a non-nil error stops delivery to the remaining subscribers of
// that publish call and surfaces the error to the publisher.
//
// Handlers run synchronously on the publisher's goroutine. Panics are not
// recovered by the producer; wrap a handler with WithRecover to convert
// panics into errors.
type Handler[T any] func(sender any, value T) error
