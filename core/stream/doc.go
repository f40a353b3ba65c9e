// Package stream provides typed publish/subscribe event channels for wiring
// components together without direct references. A producer delivers events
// synchronously to subscribers in subscription order, retains the last
// published value for state queries, and can replay that value to late
// subscribers. Combinators compose channels into pipelines, and subscription
// handles integrate with pkg/closer for grouped teardown.
//
// # Core Components
//
// Producer owns an event channel. Publishing retains the event as the
// channel's last value and invokes every subscriber synchronously on the
// caller's goroutine.
//
// Listener is the subscription view of a producer. Consumer components
// receive a Listener so they can attach handlers without gaining the
// ability to publish or close the channel.
//
// State is the read-only view of the retained last value, with an explicit
// has-value flag that works for zero values too.
//
// Subscription is the handle returned by Subscribe. Each registration gets
// its own handle with a unique id; closing the handle detaches exactly that
// registration. Subscription implements io.Closer.
//
// Handler is the subscriber callback: func(sender any, value T) error. The
// sender identifies the publishing component and travels with the event,
// including through replay and combinators.
//
// Decorator wraps handlers with cross-cutting behavior such as filtering,
// logging, one-shot delivery, and panic recovery.
//
// # Basic Usage
//
// Create a producer per event kind, hand out its views, and publish:
//
//	import (
//		"github.com/dmitrymomot/eventkit/core/stream"
//	)
//
//	type Damage struct {
//		Amount int
//	}
//
//	func main() {
//		damage := stream.NewProducer[Damage]()
//		defer damage.Close()
//
//		sub, err := damage.Listener().Subscribe(func(sender any, d Damage) error {
//			fmt.Printf("%v dealt %d damage\n", sender, d.Amount)
//			return nil
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer sub.Close()
//
//		if err := damage.Publish("boss", Damage{Amount: 12}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Retained State and Replay
//
// Every producer retains its last published event. The State view exposes
// it on demand:
//
//	health := stream.NewProducer[int]()
//	_ = health.Publish(player, 100)
//
//	if hp, ok := health.State().Last(); ok {
//		fmt.Println("current health:", hp)
//	}
//
// A producer built with WithReplay additionally delivers the retained event
// (with its original sender) to each new subscriber once, during Subscribe.
// Late subscribers catch up on the current value without waiting for the
// next publish:
//
//	health := stream.NewProducer[int](stream.WithReplay())
//	_ = health.Publish(player, 100)
//
//	// The handler runs immediately with (player, 100).
//	sub, _ := health.Listener().Subscribe(func(sender any, hp int) error {
//		hud.SetHealth(hp)
//		return nil
//	})
//
// Replay happens exactly once per Subscribe and never retroactively: a
// subscriber attached after three publishes sees only the third value, once.
//
// # Combinators
//
// PipeTo forwards events between channels of the same type; MapTo converts
// between types on the way. CombineLatest merges two channels into pairs of
// their latest values, emitting once both have produced something:
//
//	motion, err := stream.CombineLatest(position, velocity)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer motion.Close()
//
//	sub, _ := motion.Subscribe(func(sender any, pv stream.Pair[Vec2, Vec2]) error {
//		predictPath(pv.First, pv.Second)
//		return nil
//	})
//
// # Handler Decorators
//
// Decorators wrap handlers before subscribing. They compose with Decorate
// (first decorator is outermost):
//
//	handler := stream.Decorate(onDamage,
//		stream.Recover[Damage](),
//		stream.Logging[Damage](log, "on-damage"),
//		stream.Filter(func(d Damage) bool { return d.Amount > 0 }),
//		stream.Once[Damage](),
//	)
//	sub, err := damage.Listener().Subscribe(handler)
//
// # Error Handling
//
// Delivery is ordered and interruptible: the first handler returning a
// non-nil error stops the pass, and Publish returns the error wrapped with
// the failing subscription's id. Subscribers later in the order do not see
// that event. Handler panics are not recovered; use WithRecover on handlers
// that must not take down the publisher.
//
// Publishing on a closed producer fails fast with ErrProducerClosed.
// Subscribe, Unsubscribe, and State reads keep working on a closed
// producer; only publishing is rejected.
//
// # Concurrency
//
// The package performs no locking. A producer and everything attached to it
// must be driven from a single goroutine, such as a game loop or an actor.
// Reentrancy from handlers is safe: subscribing or unsubscribing during a
// delivery never corrupts the in-flight pass, because each pass iterates a
// snapshot of the subscriber list. Handlers added during a pass receive
// only subsequent events; handlers removed during a pass still receive the
// in-flight one.
//
// Handlers may publish further events, including back into the same
// channel. Such nested publishes complete before the outer one resumes, and
// the recursion depth is bounded only by the caller's own event graph.
//
// # Teardown
//
// Detachment is always explicit: a subscription that is never closed stays
// registered for the producer's lifetime. Subscription, Combined, and
// Producer-owning wrappers implement io.Closer, so pkg/closer can dispose a
// whole component's attachments in one call:
//
//	bag := closer.NewBag()
//	defer bag.Close()
//
//	sub, err := damage.Listener().Subscribe(handler)
//	if err != nil {
//		return err
//	}
//	bag.Add(sub)
package stream
