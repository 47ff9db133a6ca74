package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldesdev/fleet-commerce/internal/orders-service/orderdb"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func sampleDetails() []orderdb.OrderDetail {
	return []orderdb.OrderDetail{
		{ProductID: "LZ127", Price: "99.99", Quantity: 1},
		{ProductID: "LZ129", Price: "150.00", Quantity: 2},
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, sampleDetails())
	require.NoError(t, err)
	assert.Positive(t, id)

	order, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.OrderDetails, 2)
	assert.Equal(t, "LZ127", order.OrderDetails[0].ProductID)
	assert.Equal(t, "99.99", order.OrderDetails[0].Price)
	assert.Equal(t, 1, order.OrderDetails[0].Quantity)
	assert.Equal(t, "LZ129", order.OrderDetails[1].ProductID)
}

func TestGetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), 9999)
	require.ErrorIs(t, err, orderdb.ErrNotFound)
}

func TestIDsIncrease(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleDetails())
	require.NoError(t, err)
	second, err := repo.Create(ctx, sampleDetails())
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestListPaging(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ids := make([]int64, 0, 5)
	for i := 0; i < 5; i++ {
		id, err := repo.Create(ctx, sampleDetails())
		require.NoError(t, err)
		ids = append(ids, id)
	}

	page1, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, ids[0], page1[0].ID)
	assert.Equal(t, ids[1], page1[1].ID)
	require.Len(t, page1[0].OrderDetails, 2)

	page2, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, ids[2], page2[0].ID)

	page3, err := repo.List(ctx, 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, ids[4], page3[0].ID)
}

func TestListBeyondLastPage(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleDetails())
	require.NoError(t, err)

	orders, err := repo.List(ctx, 50, 10)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
