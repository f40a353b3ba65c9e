// Package logger provides structured logging attributes built on Go's
// standard slog package. It offers a set of pre-built, nil-safe attribute
// constructors for the logging vocabulary of event channels: errors,
// panics, subscription ids, subscriber counts, timings, and generic
// metadata.
//
// # Features
//
//   - Built on Go's standard slog for compatibility and performance
//   - Type-safe attribute creation with nil safety
//   - Event-channel vocabulary (subscriptions, subscriber counts, positions)
//   - Debugging helpers for stack traces and caller information
//
// # Basic Usage
//
// Attribute helpers plug directly into slog calls:
//
//	import (
//		"log/slog"
//
//		"github.com/dmitrymomot/eventkit/pkg/logger"
//	)
//
//	log := slog.Default()
//
//	log.Debug("handler subscribed",
//		logger.Component("stream"),
//		logger.Subscription(sub.ID()),
//		logger.Subscribers(listener.Len()),
//	)
//
//	if err := bag.Close(); err != nil {
//		log.Error("teardown finished with faults", logger.Error(err))
//	}
//
// # Nil Safety
//
// Helpers taking a value that may be absent (errors, panic values, ids)
// return an empty slog.Attr for the absent case, so call sites never need
// conditional logging:
//
//	log.Info("subscription closed",
//		logger.Subscription(id), // empty attr when id == ""
//		logger.Error(err),       // empty attr when err == nil
//	)
//
// # Debugging
//
// Stack and Caller capture runtime information for fault reports:
//
//	defer func() {
//		if r := recover(); r != nil {
//			log.Error("handler panicked",
//				logger.Panic(r),
//				logger.Stack(),
//			)
//		}
//	}()
package logger
