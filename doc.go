// Package eventkit provides typed event channels for wiring game and
// application components together without direct references. The library
// implements modern Go patterns including generics for type safety,
// functional options for configuration, and io.Closer-based resource
// management for composable teardown.
//
// # LLM Assistant Note
//
// This file serves as an index of all packages in the eventkit library,
// designed to help LLMs understand the complete codebase structure and
// functionality. Each package entry includes the full import path and a
// concise description of its purpose.
//
// # Package Organization
//
// The eventkit library is organized into two categories:
//
//   - Core: the event channel, its views, and combinators
//   - Utilities: standalone packages usable on their own
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/eventkit/core/stream
//	go doc -all github.com/dmitrymomot/eventkit/pkg/closer
//
// # Core Packages
//
//	github.com/dmitrymomot/eventkit/core/stream - Typed publish/subscribe channels with retained state, replay, and combinators
//
// # Utility Packages
//
//	github.com/dmitrymomot/eventkit/pkg/closer - Grouped io.Closer teardown with cancellation context and fault isolation
//	github.com/dmitrymomot/eventkit/pkg/logger - Nil-safe slog attribute helpers with event-channel vocabulary
//
// # Design Principles
//
// Single-goroutine semantics: channels dispatch synchronously on the
// publisher's goroutine and perform no locking. Drive a channel and its
// subscribers from one goroutine (a game loop, an actor, a test).
//
// Explicit ownership: subscriptions are handles, teardown is io.Closer,
// and a closer.Bag composes both into component-scoped lifetimes.
//
// No hidden machinery: no background goroutines, no finalizers, no
// reflection on the hot path.
package eventkit
