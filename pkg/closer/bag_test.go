package closer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventkit/pkg/closer"
)

func TestNewBag(t *testing.T) {
	t.Parallel()

	t.Run("creates empty bag with live context", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag()
		require.NotNil(t, bag)
		assert.Equal(t, 0, bag.Len())

		require.NotNil(t, bag.Context())
		assert.NoError(t, bag.Context().Err())
	})

	t.Run("creates bag with custom logger", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		bag := closer.NewBag(closer.WithLogger(logger))
		require.NotNil(t, bag)
		require.NoError(t, bag.Close())
	})

	t.Run("ignores nil logger", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag(closer.WithLogger(nil))
		require.NotNil(t, bag)
		require.NoError(t, bag.Close())
	})
}

func TestBag_Add(t *testing.T) {
	t.Parallel()

	t.Run("stores closers in insertion order", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag()

		var order []string
		bag.AddFunc(func() error {
			order = append(order, "first")
			return nil
		})
		bag.AddFunc(func() error {
			order = append(order, "second")
			return nil
		})
		bag.AddFunc(func() error {
			order = append(order, "third")
			return nil
		})
		require.Equal(t, 3, bag.Len())

		require.NoError(t, bag.Close())
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("ignores nil closer", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag()
		bag.Add(nil)
		bag.AddFunc(nil)
		assert.Equal(t, 0, bag.Len())
	})

	t.Run("closes immediately when the bag is already closed", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag()
		require.NoError(t, bag.Close())

		lateClosed := false
		bag.AddFunc(func() error {
			lateClosed = true
			return nil
		})

		assert.True(t, lateClosed)
		assert.Equal(t, 0, bag.Len())
	})

	t.Run("late closer errors are swallowed", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag()
		require.NoError(t, bag.Close())

		// The error has nowhere to go; it must not panic or resurrect
		// the bag.
		bag.AddFunc(func() error {
			return errors.New("late teardown failed")
		})
		assert.Equal(t, 0, bag.Len())
	})
}

func TestBag_Close(t *testing.T) {
	t.Parallel()

	t.Run("cancels context before closing members", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag()
		ctx := bag.Context()

		var observed []error
		bag.AddFunc(func() error {
			observed = append(observed, ctx.Err())
			return nil
		})

		require.NoError(t, bag.Close())
		require.Len(t, observed, 1)
		assert.ErrorIs(t, observed[0], context.Canceled)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag()

		closes := 0
		bag.AddFunc(func() error {
			closes++
			return nil
		})

		require.NoError(t, bag.Close())
		require.NoError(t, bag.Close())
		assert.Equal(t, 1, closes)
	})

	t.Run("member error does not stop the teardown", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag()

		errFirst := errors.New("first member failed")
		errSecond := errors.New("second member failed")

		var order []string
		bag.AddFunc(func() error {
			order = append(order, "first")
			return errFirst
		})
		bag.AddFunc(func() error {
			order = append(order, "second")
			return errSecond
		})
		bag.AddFunc(func() error {
			order = append(order, "third")
			return nil
		})

		err := bag.Close()
		require.Error(t, err)
		assert.ErrorIs(t, err, errFirst)
		assert.ErrorIs(t, err, errSecond)
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("member panic is contained", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag()

		survived := false
		bag.AddFunc(func() error {
			panic("teardown blew up")
		})
		bag.AddFunc(func() error {
			survived = true
			return nil
		})

		err := bag.Close()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "close panicked")
		assert.True(t, survived)
	})

	t.Run("empty bag closes clean", func(t *testing.T) {
		t.Parallel()

		bag := closer.NewBag()
		require.NoError(t, bag.Close())
		assert.ErrorIs(t, bag.Context().Err(), context.Canceled)
	})
}
