package cache

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSingular(t *testing.T) {
	t.Run("GetMissing", func(t *testing.T) {
		c := NewSingular[int]("test#missing")
		var got int
		assert.ErrorIs(t, c.Get(&got), ErrNotFound)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		c := NewSingular[[]string]("test#list")
		assert.NoError(t, c.Set([]string{"a", "b"}, time.Minute))
		var got []string
		assert.NoError(t, c.Get(&got))
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("MutexGetSetComputesOnce", func(t *testing.T) {
		c := NewSingular[int]("test#computed")
		calls := 0
		fn := func() (int, error) {
			calls++
			return 42, nil
		}

		var got int
		assert.NoError(t, c.MutexGetSet(&got, fn, time.Minute))
		assert.Equal(t, 42, got)
		assert.NoError(t, c.MutexGetSet(&got, fn, time.Minute))
		assert.Equal(t, 42, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("MutexGetSetPropagatesError", func(t *testing.T) {
		c := NewSingular[int]("test#failing")
		boom := errors.New("boom")
		var got int
		err := c.MutexGetSet(&got, func() (int, error) { return 0, boom }, time.Minute)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("FlushDropsValue", func(t *testing.T) {
		c := NewSingular[int]("test#flushed")
		assert.NoError(t, c.Set(7, time.Minute))
		assert.NoError(t, c.Flush())
		var got int
		assert.ErrorIs(t, c.Get(&got), ErrNotFound)
	})
}
