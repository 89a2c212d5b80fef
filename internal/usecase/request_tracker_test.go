package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestTracker(t *testing.T) {
	tr := NewRequestTracker()

	t.Run("newer request supersedes older one", func(t *testing.T) {
		ctx1, first, release1 := tr.Begin(context.Background(), "s1:quote")
		ctx2, second, release2 := tr.Begin(context.Background(), "s1:quote")
		defer release2()

		assert.ErrorIs(t, ctx1.Err(), context.Canceled)
		assert.NoError(t, ctx2.Err())
		assert.False(t, first.IsLatest())
		assert.True(t, second.IsLatest())

		release1()
		assert.True(t, second.IsLatest())
	})

	t.Run("scopes are independent", func(t *testing.T) {
		_, a, ra := tr.Begin(context.Background(), "s1:search")
		_, b, rb := tr.Begin(context.Background(), "s2:search")
		defer ra()
		defer rb()
		assert.True(t, a.IsLatest())
		assert.True(t, b.IsLatest())
		assert.NotEqual(t, a.Token, b.Token)
	})

	t.Run("release cancels context", func(t *testing.T) {
		ctx, _, release := tr.Begin(context.Background(), "s3:quote")
		release()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("empty scope is untracked", func(t *testing.T) {
		parent := context.Background()
		ctx, ticket, release := tr.Begin(parent, "")
		defer release()
		assert.Equal(t, parent, ctx)
		assert.True(t, ticket.IsLatest())
	})
}
