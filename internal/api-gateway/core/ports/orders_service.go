package ports

import (
	"context"

	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/core/domain/entity"
)

// OrdersService is the gateway's view of the orders service. The
// implementation is a black box behind RPC; only these operations exist.
type OrdersService interface {
	// GetOrder returns entity.ErrOrderNotFound when no such order exists.
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)

	// ListOrders returns one page of orders. Callers clamp page and limit
	// before calling.
	ListOrders(ctx context.Context, page, limit int) ([]*entity.Order, error)

	// CreateOrder persists a new order and returns its assigned id. The
	// caller must have verified that every referenced product exists; no
	// check happens downstream.
	CreateOrder(ctx context.Context, details []entity.OrderDetail) (int64, error)
}
