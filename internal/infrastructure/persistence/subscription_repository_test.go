package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partkit/partkit/internal/domain/shared"
	"github.com/partkit/partkit/internal/domain/subscription"
)

func newTestRepo(t *testing.T) *GormSubscriptionRepository {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "ledger.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewGormSubscriptionRepository(db.DB)
}

func mustSubscription(t *testing.T, partNumber string) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.New(partNumber)
	require.NoError(t, err)
	return sub
}

func TestAddAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sub := mustSubscription(t, "91255A540")
	require.NoError(t, repo.Add(ctx, sub))

	found, err := repo.FindByPartNumber(ctx, "91255A540")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, found.ID)
	assert.Equal(t, "91255A540", found.PartNumber)
	assert.Nil(t, found.LastSyncedAt)
}

func TestAddDuplicate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, mustSubscription(t, "91255A540")))
	err := repo.Add(ctx, mustSubscription(t, "91255A540"))
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestRemove(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, mustSubscription(t, "91255A540")))
	require.NoError(t, repo.Remove(ctx, "91255A540"))

	_, err := repo.FindByPartNumber(ctx, "91255A540")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Remove(ctx, "91255A540"), shared.ErrNotFound)
}

func TestListOrdered(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, pn := range []string{"98023A031", "91255A540", "94639A115"} {
		require.NoError(t, repo.Add(ctx, mustSubscription(t, pn)))
	}

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "91255A540", subs[0].PartNumber)
	assert.Equal(t, "94639A115", subs[1].PartNumber)
	assert.Equal(t, "98023A031", subs[2].PartNumber)
}

func TestUpdateAfterSync(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sub := mustSubscription(t, "91255A540")
	require.NoError(t, repo.Add(ctx, sub))

	sub.RecordSync("BHS-SS188-1/4x20-0.75-HEX", "Button Head Hex Drive Screw", time.Now())
	require.NoError(t, repo.Update(ctx, sub))

	found, err := repo.FindByPartNumber(ctx, "91255A540")
	require.NoError(t, err)
	assert.Equal(t, "BHS-SS188-1/4x20-0.75-HEX", found.GeneratedName)
	assert.Equal(t, "Button Head Hex Drive Screw", found.Description)
	require.NotNil(t, found.LastSyncedAt)

	assert.ErrorIs(t, repo.Update(ctx, mustSubscription(t, "00000A000")), shared.ErrNotFound)
}

func TestCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Add(ctx, mustSubscription(t, "91255A540")))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
