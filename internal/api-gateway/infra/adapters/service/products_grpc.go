// Package service contains the gRPC adapters implementing the gateway's
// ports. Every call is bounded by a timeout; nothing here retries — order
// creation has no idempotency guarantee, so an automatic retry could create
// a duplicate order.
package service

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/core/domain/entity"
	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/core/ports"
	productsv1 "github.com/mvaldesdev/fleet-commerce/internal/genproto/products/v1"
)

// GRPCProductsService adapts the products gRPC client to the
// ports.ProductsService port.
type GRPCProductsService struct {
	client  productsv1.ProductsClient
	timeout time.Duration
}

var _ ports.ProductsService = (*GRPCProductsService)(nil)

func NewGRPCProductsClient(client productsv1.ProductsClient, timeout time.Duration) ports.ProductsService {
	return &GRPCProductsService{client: client, timeout: timeout}
}

func (s *GRPCProductsService) Get(ctx context.Context, id string) (entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.client.GetProduct(ctx, &productsv1.GetProductRequest{Id: id})
	if err != nil {
		return entity.Product{}, translateProductErr(err, "GetProduct")
	}
	return fromProtoProduct(res.GetProduct()), nil
}

func (s *GRPCProductsService) Create(ctx context.Context, p entity.Product) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.CreateProduct(ctx, &productsv1.CreateProductRequest{
		Product: &productsv1.Product{
			Id:                p.ID,
			Title:             p.Title,
			PassengerCapacity: int32(p.PassengerCapacity),
			MaximumSpeed:      int32(p.MaximumSpeed),
			InStock:           int32(p.InStock),
		},
	})
	if err != nil {
		return translateProductErr(err, "CreateProduct")
	}
	return nil
}

func (s *GRPCProductsService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.client.DeleteProduct(ctx, &productsv1.DeleteProductRequest{Id: id}); err != nil {
		return translateProductErr(err, "DeleteProduct")
	}
	return nil
}

func (s *GRPCProductsService) GetProductsByID(ctx context.Context, ids []string) ([]entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.client.GetProductsByID(ctx, &productsv1.GetProductsByIDRequest{Ids: ids})
	if err != nil {
		return nil, translateProductErr(err, "GetProductsByID")
	}
	products := make([]entity.Product, 0, len(res.GetProducts()))
	for _, p := range res.GetProducts() {
		products = append(products, fromProtoProduct(p))
	}
	return products, nil
}

// translateProductErr maps NOT_FOUND statuses onto the typed domain error
// and keeps everything else as a wrapped transport/server failure.
func translateProductErr(err error, op string) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", status.Convert(err).Message(), entity.ErrProductNotFound)
	}
	return fmt.Errorf("grpc %s: %w", op, err)
}

func fromProtoProduct(p *productsv1.Product) entity.Product {
	return entity.Product{
		ID:                p.GetId(),
		Title:             p.GetTitle(),
		PassengerCapacity: int(p.GetPassengerCapacity()),
		MaximumSpeed:      int(p.GetMaximumSpeed()),
		InStock:           int(p.GetInStock()),
	}
}
