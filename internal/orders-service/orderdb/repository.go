// Package orderdb defines the domain types and the persistence port for the
// orders service. Orders are immutable once created: there is no update
// operation anywhere in the system.
package orderdb

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no order matches the requested id.
var ErrNotFound = errors.New("order not found")

// OrderDetail is one line of an order. Price is a decimal string; it is
// never parsed into a float anywhere in the system.
type OrderDetail struct {
	ProductID string
	Price     string
	Quantity  int
}

// Order is a persisted order. The id is assigned by the repository on
// creation.
type Order struct {
	ID           int64
	OrderDetails []OrderDetail
	CreatedAt    time.Time
}

// Repository is the port the gRPC server depends on, so the SQLite
// implementation can be swapped for in-memory in tests.
type Repository interface {
	// Create persists a new order and returns its assigned id.
	Create(ctx context.Context, details []OrderDetail) (int64, error)

	// Get returns the order with the given id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*Order, error)

	// List returns the requested page of orders in ascending id order.
	// page is 1-based; callers are expected to clamp page and limit
	// before calling.
	List(ctx context.Context, page, limit int) ([]*Order, error)
}
