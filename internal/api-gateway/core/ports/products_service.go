package ports

import (
	"context"

	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/core/domain/entity"
)

// ProductsService is the gateway's view of the products service.
type ProductsService interface {
	// Get returns entity.ErrProductNotFound when no such product exists.
	Get(ctx context.Context, id string) (entity.Product, error)

	Create(ctx context.Context, p entity.Product) error

	// Delete returns entity.ErrProductNotFound when no such product exists.
	Delete(ctx context.Context, id string) error

	// GetProductsByID resolves a batch of ids in a single round trip. Ids
	// with no matching product are filtered out, so the result may be
	// shorter than ids — callers must diff requested against returned ids
	// to detect partial misses. entity.ErrProductNotFound is returned only
	// when none of the ids resolved.
	GetProductsByID(ctx context.Context, ids []string) ([]entity.Product, error)
}
