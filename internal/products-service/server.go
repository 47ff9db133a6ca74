// Package productsservice exposes the product store over gRPC. The facade
// adds no business logic beyond translating store errors into gRPC status
// codes; it is also the sole owner of the stock-decrement capability.
package productsservice

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	productsv1 "github.com/mvaldesdev/fleet-commerce/internal/genproto/products/v1"
	"github.com/mvaldesdev/fleet-commerce/internal/products-service/store"
)

type Server struct {
	productsv1.UnimplementedProductsServer
	store *store.Store
}

func NewServer(st *store.Store) *Server {
	return &Server{store: st}
}

func (s *Server) GetProduct(ctx context.Context, req *productsv1.GetProductRequest) (*productsv1.GetProductResponse, error) {
	p, err := s.store.Get(ctx, req.GetId())
	if err != nil {
		return nil, storeError(err)
	}
	return &productsv1.GetProductResponse{Product: toProto(p)}, nil
}

func (s *Server) CreateProduct(ctx context.Context, req *productsv1.CreateProductRequest) (*productsv1.CreateProductResponse, error) {
	p := req.GetProduct()
	if p.GetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "product id is required")
	}
	if err := s.store.Create(ctx, fromProto(p)); err != nil {
		return nil, storeError(err)
	}
	slog.InfoContext(ctx, "product created", "product_id", p.GetId())
	return &productsv1.CreateProductResponse{Id: p.GetId()}, nil
}

func (s *Server) DeleteProduct(ctx context.Context, req *productsv1.DeleteProductRequest) (*productsv1.DeleteProductResponse, error) {
	if err := s.store.Delete(ctx, req.GetId()); err != nil {
		return nil, storeError(err)
	}
	slog.InfoContext(ctx, "product deleted", "product_id", req.GetId())
	return &productsv1.DeleteProductResponse{Id: req.GetId()}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *productsv1.ListProductsRequest) (*productsv1.ListProductsResponse, error) {
	products, err := s.store.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	out := make([]*productsv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProto(p))
	}
	return &productsv1.ListProductsResponse{Products: out}, nil
}

// GetProductsByID resolves a batch of ids in one store round trip. Missing
// ids are filtered from the response; per the store contract the call fails
// with NotFound only when no id resolved at all.
func (s *Server) GetProductsByID(ctx context.Context, req *productsv1.GetProductsByIDRequest) (*productsv1.GetProductsByIDResponse, error) {
	products, err := s.store.GetByIDs(ctx, req.GetIds())
	if err != nil {
		return nil, storeError(err)
	}
	out := make([]*productsv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProto(p))
	}
	return &productsv1.GetProductsByIDResponse{Products: out}, nil
}

func (s *Server) DecrementStock(ctx context.Context, req *productsv1.DecrementStockRequest) (*productsv1.DecrementStockResponse, error) {
	if req.GetAmount() < 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must not be negative")
	}
	newStock, err := s.store.DecrementStock(ctx, req.GetId(), int(req.GetAmount()))
	if err != nil {
		return nil, storeError(err)
	}
	slog.InfoContext(ctx, "stock decremented",
		"product_id", req.GetId(), "amount", req.GetAmount(), "in_stock", newStock)
	return &productsv1.DecrementStockResponse{InStock: int32(newStock)}, nil
}

// storeError translates store failures into the typed codes the gateway
// relies on for its HTTP mapping. Anything that is not a NotFound surfaces
// as Internal so transport problems are never mistaken for missing data.
func storeError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func toProto(p store.Product) *productsv1.Product {
	return &productsv1.Product{
		Id:                p.ID,
		Title:             p.Title,
		PassengerCapacity: int32(p.PassengerCapacity),
		MaximumSpeed:      int32(p.MaximumSpeed),
		InStock:           int32(p.InStock),
	}
}

func fromProto(p *productsv1.Product) store.Product {
	return store.Product{
		ID:                p.GetId(),
		Title:             p.GetTitle(),
		PassengerCapacity: int(p.GetPassengerCapacity()),
		MaximumSpeed:      int(p.GetMaximumSpeed()),
		InStock:           int(p.GetInStock()),
	}
}
