// Package ordersservice exposes order persistence over gRPC. It trusts the
// gateway to have verified that every referenced product exists before
// CreateOrder is called; no product lookups happen here.
package ordersservice

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ordersv1 "github.com/mvaldesdev/fleet-commerce/internal/genproto/orders/v1"
	"github.com/mvaldesdev/fleet-commerce/internal/orders-service/orderdb"
)

type Server struct {
	ordersv1.UnimplementedOrdersServer
	repo orderdb.Repository
}

func NewServer(repo orderdb.Repository) *Server {
	return &Server{repo: repo}
}

func (s *Server) GetOrder(ctx context.Context, req *ordersv1.GetOrderRequest) (*ordersv1.GetOrderResponse, error) {
	order, err := s.repo.Get(ctx, req.GetId())
	if err != nil {
		return nil, repoError(err)
	}
	return &ordersv1.GetOrderResponse{Order: toProto(order)}, nil
}

func (s *Server) ListOrders(ctx context.Context, req *ordersv1.ListOrdersRequest) (*ordersv1.ListOrdersResponse, error) {
	// The gateway clamps page and limit; floor them here anyway so a
	// misbehaving caller cannot produce a negative OFFSET.
	page := int(req.GetPage())
	if page < 1 {
		page = 1
	}
	limit := int(req.GetLimit())
	if limit < 1 {
		limit = 10
	}

	orders, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, repoError(err)
	}
	out := make([]*ordersv1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toProto(o))
	}
	return &ordersv1.ListOrdersResponse{Orders: out}, nil
}

func (s *Server) CreateOrder(ctx context.Context, req *ordersv1.CreateOrderRequest) (*ordersv1.CreateOrderResponse, error) {
	if len(req.GetOrderDetails()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "order_details must not be empty")
	}
	details := make([]orderdb.OrderDetail, 0, len(req.GetOrderDetails()))
	for _, d := range req.GetOrderDetails() {
		if d.GetProductId() == "" || d.GetPrice() == "" || d.GetQuantity() < 1 {
			return nil, status.Error(codes.InvalidArgument, "order detail requires product_id, price and quantity >= 1")
		}
		details = append(details, orderdb.OrderDetail{
			ProductID: d.GetProductId(),
			Price:     d.GetPrice(),
			Quantity:  int(d.GetQuantity()),
		})
	}

	id, err := s.repo.Create(ctx, details)
	if err != nil {
		return nil, repoError(err)
	}
	slog.InfoContext(ctx, "order created", "order_id", id, "lines", len(details))
	return &ordersv1.CreateOrderResponse{Id: id}, nil
}

func repoError(err error) error {
	if errors.Is(err, orderdb.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func toProto(o *orderdb.Order) *ordersv1.Order {
	details := make([]*ordersv1.OrderDetail, 0, len(o.OrderDetails))
	for _, d := range o.OrderDetails {
		details = append(details, &ordersv1.OrderDetail{
			ProductId: d.ProductID,
			Price:     d.Price,
			Quantity:  int32(d.Quantity),
		})
	}
	return &ordersv1.Order{Id: o.ID, OrderDetails: details}
}
