package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWithClient(client)
}

func airship(id string) Product {
	return Product{
		ID:                id,
		Title:             "Airship " + id,
		PassengerCapacity: 50,
		MaximumSpeed:      100,
		InStock:           11,
	}
}

func TestCreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := airship("LZ127")
	require.NoError(t, s.Create(ctx, want))

	got, err := s.Get(ctx, "LZ127")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "no-such-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOverwritesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, airship("LZ127")))

	updated := airship("LZ127")
	updated.InStock = 3
	require.NoError(t, s.Create(ctx, updated))

	got, err := s.Get(ctx, "LZ127")
	require.NoError(t, err)
	assert.Equal(t, 3, got.InStock)
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// More products than one SCAN batch returns, to exercise the cursor loop.
	ids := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10", "a11", "a12"}
	for _, id := range ids {
		require.NoError(t, s.Create(ctx, airship(id)))
	}

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(ids))

	seen := make(map[string]bool, len(products))
	for _, p := range products {
		seen[p.ID] = true
	}
	for _, id := range ids {
		assert.True(t, seen[id], "missing product %s", id)
	}
}

func TestListEmpty(t *testing.T) {
	s := newTestStore(t)

	products, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, airship("LZ127")))
	require.NoError(t, s.Delete(ctx, "LZ127"))

	_, err := s.Get(ctx, "LZ127")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissing(t *testing.T) {
	s := newTestStore(t)

	err := s.Delete(context.Background(), "no-such-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, airship("LZ127")))
	require.NoError(t, s.Create(ctx, airship("LZ129")))

	products, err := s.GetByIDs(ctx, []string{"LZ127", "LZ129"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "LZ127", products[0].ID)
	assert.Equal(t, "LZ129", products[1].ID)
}

func TestGetByIDsPartialMiss(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, airship("LZ127")))

	// Missing ids are silently filtered; the caller diffs the result.
	products, err := s.GetByIDs(ctx, []string{"LZ127", "no-such-id"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "LZ127", products[0].ID)
}

func TestGetByIDsAllMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetByIDs(context.Background(), []string{"x", "y"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDecrementStock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, airship("LZ127"))) // in_stock 11

	stock, err := s.DecrementStock(ctx, "LZ127", 4)
	require.NoError(t, err)
	assert.Equal(t, 7, stock)

	stock, err = s.DecrementStock(ctx, "LZ127", 4)
	require.NoError(t, err)
	assert.Equal(t, 3, stock)

	got, err := s.Get(ctx, "LZ127")
	require.NoError(t, err)
	assert.Equal(t, 3, got.InStock)
}

func TestDecrementStockMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.DecrementStock(context.Background(), "no-such-id", 1)
	require.ErrorIs(t, err, ErrNotFound)

	// The guard must not have created the key as a side effect.
	_, err = s.Get(context.Background(), "no-such-id")
	require.ErrorIs(t, err, ErrNotFound)
}
