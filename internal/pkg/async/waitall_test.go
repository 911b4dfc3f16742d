package async

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWaitAll(t *testing.T) {
	t.Run("AllSucceed", func(t *testing.T) {
		err := WaitAll(
			Errable(func() error { return nil }),
			Errable(func() error { return nil }),
			Errable(func() error { return nil }),
		)
		assert.NoError(t, err)
	})

	t.Run("OneFails", func(t *testing.T) {
		boom := errors.New("boom")
		err := WaitAll(
			Errable(func() error { return nil }),
			Errable(func() error { return boom }),
			Errable(func() error { return nil }),
		)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.NoError(t, WaitAll())
	})
}
