package local

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/mp_hub/repository"
)

func newTestCache(t *testing.T) *TicketCache {
	t.Helper()
	c, err := NewTicketCache(filepath.Join(t.TempDir(), "cache", "ticket.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestTicketCache_SaveOverwriteExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	c := newTestCache(t)
	c.now = func() time.Time { return now }

	_, err := c.Fetch(ctx, "jsapi")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	require.NoError(t, c.Save(ctx, "jsapi", "first", time.Minute))
	require.NoError(t, c.Save(ctx, "jsapi", "second", time.Minute))

	got, err := c.Fetch(ctx, "jsapi")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	now = now.Add(time.Minute)
	_, err = c.Fetch(ctx, "jsapi")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestTicketCache_SharedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shared.db")

	a, err := NewTicketCache(path)
	require.NoError(t, err)
	defer a.Close()
	b, err := NewTicketCache(path)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Save(ctx, "k", "from-a", time.Hour))
	got, err := b.Fetch(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "from-a", got)
}

func TestTicketCache_RejectsNonPositiveTTL(t *testing.T) {
	c := newTestCache(t)
	err := c.Save(context.Background(), "k", "v", -time.Second)
	assert.ErrorIs(t, err, repository.ErrInvalidTTL)
}
