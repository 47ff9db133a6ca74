package service

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/core/domain/entity"
	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/core/ports"
	ordersv1 "github.com/mvaldesdev/fleet-commerce/internal/genproto/orders/v1"
)

// GRPCOrdersService adapts the orders gRPC client to the
// ports.OrdersService port.
type GRPCOrdersService struct {
	client  ordersv1.OrdersClient
	timeout time.Duration
}

var _ ports.OrdersService = (*GRPCOrdersService)(nil)

func NewGRPCOrdersClient(client ordersv1.OrdersClient, timeout time.Duration) ports.OrdersService {
	return &GRPCOrdersService{client: client, timeout: timeout}
}

func (s *GRPCOrdersService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.client.GetOrder(ctx, &ordersv1.GetOrderRequest{Id: id})
	if err != nil {
		return nil, translateOrderErr(err, "GetOrder")
	}
	order := fromProtoOrder(res.GetOrder())
	if order == nil {
		return nil, fmt.Errorf("grpc GetOrder: empty order in response")
	}
	return order, nil
}

func (s *GRPCOrdersService) ListOrders(ctx context.Context, page, limit int) ([]*entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.client.ListOrders(ctx, &ordersv1.ListOrdersRequest{
		Page:  int32(page),
		Limit: int32(limit),
	})
	if err != nil {
		return nil, translateOrderErr(err, "ListOrders")
	}
	orders := make([]*entity.Order, 0, len(res.GetOrders()))
	for _, o := range res.GetOrders() {
		orders = append(orders, fromProtoOrder(o))
	}
	return orders, nil
}

func (s *GRPCOrdersService) CreateOrder(ctx context.Context, details []entity.OrderDetail) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	protoDetails := make([]*ordersv1.OrderDetail, 0, len(details))
	for _, d := range details {
		protoDetails = append(protoDetails, &ordersv1.OrderDetail{
			ProductId: d.ProductID,
			Price:     d.Price,
			Quantity:  int32(d.Quantity),
		})
	}

	res, err := s.client.CreateOrder(ctx, &ordersv1.CreateOrderRequest{OrderDetails: protoDetails})
	if err != nil {
		return 0, translateOrderErr(err, "CreateOrder")
	}
	return res.GetId(), nil
}

func translateOrderErr(err error, op string) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", status.Convert(err).Message(), entity.ErrOrderNotFound)
	}
	return fmt.Errorf("grpc %s: %w", op, err)
}

func fromProtoOrder(o *ordersv1.Order) *entity.Order {
	if o == nil {
		return nil
	}
	details := make([]entity.OrderDetail, 0, len(o.GetOrderDetails()))
	for _, d := range o.GetOrderDetails() {
		details = append(details, entity.OrderDetail{
			ProductID: d.GetProductId(),
			Price:     d.GetPrice(),
			Quantity:  int(d.GetQuantity()),
		})
	}
	return &entity.Order{ID: o.GetId(), OrderDetails: details}
}
