package logger_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("sub", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "sub", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestPanic(t *testing.T) {
	t.Parallel()
	attr := logger.Panic("went sideways")
	require.Equal(t, "panic", attr.Key)
	assert.Equal(t, "went sideways", attr.Value.Any())

	empty := logger.Panic(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Performance and Timing Tests
// ============================================================================

func TestDuration(t *testing.T) {
	t.Parallel()
	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-500 * time.Millisecond)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	// Check that elapsed is at least 500ms
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}

// ============================================================================
// Event Channel Tests
// ============================================================================

func TestSubscription(t *testing.T) {
	t.Parallel()
	attr := logger.Subscription("sub-1")
	require.Equal(t, "subscription_id", attr.Key)
	assert.Equal(t, "sub-1", attr.Value.String())

	empty := logger.Subscription("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestSubscribers(t *testing.T) {
	t.Parallel()
	attr := logger.Subscribers(3)
	require.Equal(t, "subscribers", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}

func TestPosition(t *testing.T) {
	t.Parallel()
	attr := logger.Position(2)
	require.Equal(t, "position", attr.Key)
	assert.Equal(t, int64(2), attr.Value.Int64())
}

// ============================================================================
// Generic Metadata Tests
// ============================================================================

func TestComponent(t *testing.T) {
	t.Parallel()
	attr := logger.Component("stream")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "stream", attr.Value.String())
}

func TestCount(t *testing.T) {
	t.Parallel()
	attr := logger.Count("deliveries", 7)
	require.Equal(t, "deliveries", attr.Key)
	assert.Equal(t, int64(7), attr.Value.Int64())
}

func TestKey(t *testing.T) {
	t.Parallel()
	attr := logger.Key("sender", "boss")
	require.Equal(t, "sender", attr.Key)
	assert.Equal(t, "boss", attr.Value.Any())

	empty := logger.Key("sender", nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Debugging Tests
// ============================================================================

func TestStack(t *testing.T) {
	t.Parallel()
	attr := logger.Stack()
	require.Equal(t, "stack", attr.Key)
	assert.Contains(t, attr.Value.String(), "goroutine")
}

func TestCaller(t *testing.T) {
	t.Parallel()
	attr := logger.Caller()
	require.Equal(t, "caller", attr.Key)
	assert.True(t, strings.Contains(attr.Value.String(), "attr_test.go"))
}
