package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisabledCacheIsNoOp(t *testing.T) {
	c := New("")
	ctx := context.Background()

	assert.False(t, c.Enabled())

	var dest []string
	assert.False(t, c.GetJSON(ctx, "autocomplete:jo", &dest))
	assert.Nil(t, dest)

	// writes and invalidations must not panic without redis
	c.SetJSON(ctx, "autocomplete:jo", []string{"Joe's Coffee"}, time.Minute)
	c.Invalidate(ctx, "leaderboard:top")

	assert.False(t, c.GetJSON(ctx, "autocomplete:jo", &dest))
}

func TestEnabledWithAddress(t *testing.T) {
	c := New("localhost:6379")
	assert.True(t, c.Enabled())
}
