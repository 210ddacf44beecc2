package memory

import (
	"bytes"
	"context"
	"encoding/csv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pawprint/internal/adapters/driven/storage/export"
	"github.com/custodia-labs/pawprint/internal/core/domain"
)

func TestFavoriteStore_UpsertAndList(t *testing.T) {
	store := NewFavoriteStore()
	ctx := context.Background()

	pet := domain.Pet{ID: "1", Name: "Buddy", Type: "Dog", Breed: "Golden Retriever"}
	require.NoError(t, store.Upsert(ctx, pet))

	favs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, pet, favs[0].Pet)
	assert.False(t, favs[0].CreatedAt.IsZero())
}

func TestFavoriteStore_UpsertReplaces(t *testing.T) {
	store := NewFavoriteStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, domain.Pet{ID: "1", Name: "Buddy", Breed: "Beagle"}))
	require.NoError(t, store.Upsert(ctx, domain.Pet{ID: "1", Name: "Buddy II"}))

	favs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "Buddy II", favs[0].Name)
	assert.Empty(t, favs[0].Breed)
}

func TestFavoriteStore_ListEmptyIsNotNil(t *testing.T) {
	favs, err := NewFavoriteStore().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, favs)
	assert.Empty(t, favs)
}

func TestFavoriteStore_OrderingWithEqualTimestamps(t *testing.T) {
	store := NewFavoriteStore()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Upsert(ctx, domain.Pet{ID: id, Name: id}))
	}
	// Re-saving moves "a" to the front.
	require.NoError(t, store.Upsert(ctx, domain.Pet{ID: "a", Name: "a"}))

	favs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 3)
	assert.Equal(t, "a", favs[0].ID)
	assert.Equal(t, "c", favs[1].ID)
	assert.Equal(t, "b", favs[2].ID)
}

func TestFavoriteStore_Delete(t *testing.T) {
	store := NewFavoriteStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, domain.Pet{ID: "1", Name: "Buddy"}))
	require.NoError(t, store.Delete(ctx, "1"))
	require.NoError(t, store.Delete(ctx, "does-not-exist"))

	favs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestFavoriteStore_ExportCSV(t *testing.T) {
	store := NewFavoriteStore()
	store.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	var empty bytes.Buffer
	require.NoError(t, store.ExportCSV(ctx, &empty))
	records, err := csv.NewReader(&empty).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{export.Header}, records)

	require.NoError(t, store.Upsert(ctx, domain.Pet{ID: "1", Name: "Buddy"}))
	var buf bytes.Buffer
	require.NoError(t, store.ExportCSV(ctx, &buf))
	records, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Buddy", records[1][1])
	assert.Equal(t, "2025-01-01T00:00:00Z", records[1][11])
}

func TestFavoriteStore_ConcurrentUpserts(t *testing.T) {
	store := NewFavoriteStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Upsert(ctx, domain.Pet{ID: "same", Name: "Buddy"})
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	favs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}
