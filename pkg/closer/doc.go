// Package closer aggregates io.Closers for grouped, ordered teardown.
//
// A Bag collects everything a component needs to release (event
// subscriptions, tickers, files, custom teardown funcs via Func) and
// disposes the lot with a single Close call. Members close in insertion
// order, a failing or panicking member never prevents the rest from
// closing, and all faults come back aggregated with errors.Join.
//
// The bag also carries a cancellation context. It is canceled as the first
// step of Close, before any member is disposed, so long-running work driven
// by the bag's context finds out about shutdown while the resources it
// depends on still exist.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/eventkit/pkg/closer"
//	)
//
//	type Enemy struct {
//		bag *closer.Bag
//	}
//
//	func NewEnemy(damage *stream.Producer[int]) (*Enemy, error) {
//		e := &Enemy{bag: closer.NewBag()}
//
//		sub, err := damage.Listener().Subscribe(e.onDamage)
//		if err != nil {
//			return nil, err
//		}
//		e.bag.Add(sub)
//
//		e.bag.AddFunc(func() error {
//			e.releaseSprite()
//			return nil
//		})
//
//		return e, nil
//	}
//
//	func (e *Enemy) Close() error {
//		return e.bag.Close()
//	}
//
// Closing is idempotent, and closers added after Close are disposed
// immediately rather than leaked, so a component can be torn down without
// coordinating every late registration.
package closer
