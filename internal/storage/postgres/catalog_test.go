package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/storage/postgres"
	"github.com/cory-johannsen/hoard/internal/testutil"
)

func setupCatalogRepo(t *testing.T) *postgres.CatalogRepository {
	t.Helper()
	return postgres.NewCatalogRepository(testutil.NewPool(t))
}

func TestCatalogRepository_UpsertAndGet(t *testing.T) {
	repo := setupCatalogRepo(t)
	ctx := context.Background()

	rec := testutil.SampleItems()[len(testutil.SampleItems())-1]
	require.NoError(t, repo.Upsert(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	rec.Price = 2500
	require.NoError(t, repo.Upsert(ctx, rec))
	got, err = repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 2500, got.Price)
}

func TestCatalogRepository_InsertDuplicate(t *testing.T) {
	repo := setupCatalogRepo(t)
	ctx := context.Background()

	rec := catalog.ItemRecord{ID: "rope", Name: "Hempen Rope", Price: 100, Rarity: catalog.Common}
	require.NoError(t, repo.Insert(ctx, rec))
	err := repo.Insert(ctx, rec)
	assert.ErrorIs(t, err, catalog.ErrDuplicateItem)
}

func TestCatalogRepository_InvalidRecordRejected(t *testing.T) {
	repo := setupCatalogRepo(t)
	err := repo.Upsert(context.Background(), catalog.ItemRecord{ID: "bad", Name: "Bad", Price: -1})
	assert.Error(t, err)
}

func TestCatalogRepository_ListAllOrdered(t *testing.T) {
	repo := setupCatalogRepo(t)
	ctx := context.Background()

	items := testutil.SampleItems()
	require.NoError(t, repo.UpsertAll(ctx, items))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(items))
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}

	reg := catalog.NewRegistryFrom(items)
	want, err := reg.ListAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}

func TestCatalogRepository_ListAllMatchesRegistryOrder(t *testing.T) {
	repo := setupCatalogRepo(t)
	ctx := context.Background()

	items := []catalog.ItemRecord{
		{ID: "aa", Name: "Lower Double", Price: 1, Rarity: catalog.Common},
		{ID: "_under", Name: "Underscore", Price: 1, Rarity: catalog.Common},
		{ID: "B", Name: "Upper", Price: 1, Rarity: catalog.Common},
		{ID: "a-b", Name: "Hyphen", Price: 1, Rarity: catalog.Common},
		{ID: "Zed", Name: "Upper Zed", Price: 1, Rarity: catalog.Common},
	}
	require.NoError(t, repo.UpsertAll(ctx, items))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)

	want, err := catalog.NewRegistryFrom(items).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID, "position %d", i)
	}
	assert.Equal(t, []string{"B", "Zed", "_under", "a-b", "aa"}, ids(got))
}

func ids(items []catalog.ItemRecord) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestCatalogRepository_UpsertAllIsAtomic(t *testing.T) {
	repo := setupCatalogRepo(t)
	ctx := context.Background()

	items := []catalog.ItemRecord{
		{ID: "a", Name: "A", Price: 1},
		{ID: "b", Name: "", Price: 1},
	}
	assert.Error(t, repo.UpsertAll(ctx, items))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogRepository_GetMissing(t *testing.T) {
	repo := setupCatalogRepo(t)
	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, postgres.ErrItemNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), "nope"), postgres.ErrItemNotFound)
}

func TestCatalogRepository_Delete(t *testing.T) {
	repo := setupCatalogRepo(t)
	ctx := context.Background()

	rec := catalog.ItemRecord{ID: "torch", Name: "Torch", Price: 1, Rarity: catalog.Common}
	require.NoError(t, repo.Upsert(ctx, rec))
	require.NoError(t, repo.Delete(ctx, "torch"))
	_, err := repo.GetByID(ctx, "torch")
	assert.ErrorIs(t, err, postgres.ErrItemNotFound)
}

func TestProperty_CatalogRepository_RoundTrip(t *testing.T) {
	repo := setupCatalogRepo(t)
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		rec := catalog.ItemRecord{
			ID:     rapid.StringMatching(`[a-z]{4,12}`).Draw(rt, "id"),
			Name:   rapid.StringMatching(`[A-Z][a-z]{2,10}`).Draw(rt, "name"),
			Price:  rapid.IntRange(0, 1_000_000).Draw(rt, "price"),
			Rarity: rapid.SampledFrom(catalog.Rarities).Draw(rt, "rarity"),
			Type:   rapid.SampledFrom([]string{"potion", "wondrous", "ring"}).Draw(rt, "type"),
		}
		require.NoError(rt, repo.Upsert(ctx, rec))
		got, err := repo.GetByID(ctx, rec.ID)
		require.NoError(rt, err)
		assert.Equal(rt, rec, got)
	})
}
