package ordersservice

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	ordersv1 "github.com/mvaldesdev/fleet-commerce/internal/genproto/orders/v1"
	"github.com/mvaldesdev/fleet-commerce/internal/orders-service/orderdb/sqlite"
)

func newTestClient(t *testing.T) ordersv1.OrdersClient {
	t.Helper()

	repo, err := sqlite.Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	ordersv1.RegisterOrdersServer(srv, NewServer(repo))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return ordersv1.NewOrdersClient(conn)
}

func sampleDetails() []*ordersv1.OrderDetail {
	return []*ordersv1.OrderDetail{
		{ProductId: "LZ127", Price: "99.99", Quantity: 1},
		{ProductId: "LZ129", Price: "150.00", Quantity: 2},
	}
}

func TestCreateAndGetOrder(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateOrder(ctx, &ordersv1.CreateOrderRequest{OrderDetails: sampleDetails()})
	require.NoError(t, err)
	assert.Positive(t, created.GetId())

	resp, err := client.GetOrder(ctx, &ordersv1.GetOrderRequest{Id: created.GetId()})
	require.NoError(t, err)
	order := resp.GetOrder()
	assert.Equal(t, created.GetId(), order.GetId())
	require.Len(t, order.GetOrderDetails(), 2)
	assert.Equal(t, "LZ127", order.GetOrderDetails()[0].GetProductId())
	assert.Equal(t, "99.99", order.GetOrderDetails()[0].GetPrice())
	assert.Equal(t, int32(1), order.GetOrderDetails()[0].GetQuantity())
}

func TestGetOrderNotFound(t *testing.T) {
	client := newTestClient(t)

	_, err := client.GetOrder(context.Background(), &ordersv1.GetOrderRequest{Id: 9999})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestCreateOrderEmptyDetails(t *testing.T) {
	client := newTestClient(t)

	_, err := client.CreateOrder(context.Background(), &ordersv1.CreateOrderRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCreateOrderInvalidDetail(t *testing.T) {
	client := newTestClient(t)

	_, err := client.CreateOrder(context.Background(), &ordersv1.CreateOrderRequest{
		OrderDetails: []*ordersv1.OrderDetail{{ProductId: "LZ127", Price: "99.99", Quantity: 0}},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListOrdersPaging(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	ids := make([]int64, 0, 3)
	for i := 0; i < 3; i++ {
		created, err := client.CreateOrder(ctx, &ordersv1.CreateOrderRequest{OrderDetails: sampleDetails()})
		require.NoError(t, err)
		ids = append(ids, created.GetId())
	}

	resp, err := client.ListOrders(ctx, &ordersv1.ListOrdersRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.GetOrders(), 2)
	assert.Equal(t, ids[0], resp.GetOrders()[0].GetId())

	resp, err = client.ListOrders(ctx, &ordersv1.ListOrdersRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.GetOrders(), 1)
	assert.Equal(t, ids[2], resp.GetOrders()[0].GetId())
}

func TestListOrdersFloorsPageAndLimit(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.CreateOrder(ctx, &ordersv1.CreateOrderRequest{OrderDetails: sampleDetails()})
	require.NoError(t, err)

	// Zero values must behave like page 1 with the default limit, not blow
	// up the OFFSET computation.
	resp, err := client.ListOrders(ctx, &ordersv1.ListOrdersRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.GetOrders(), 1)
}
