package stream

import (
	"io"
	"log/slog"
)

// settings holds producer configuration assembled from options.
type settings struct {
	replay bool
	logger *slog.Logger
}

func defaultSettings() settings {
	return settings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a producer.
type Option func(*settings)

// WithReplay makes the producer deliver its retained last event to every
// new subscriber at Subscribe time. The setting is fixed for the producer's
// lifetime. Default is off: late subscribers receive only events published
// after they attach.
func WithReplay() Option {
	return func(s *settings) {
		s.replay = true
	}
}

// WithLogger configures structured logging for the producer. Logging is
// disabled by default. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}
