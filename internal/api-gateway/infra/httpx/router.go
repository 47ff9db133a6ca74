package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/infra/httpx/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachTracingMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/products/{id}", handler.GetProduct)
	r.Post("/products", handler.CreateProduct)
	r.Delete("/products/{id}", handler.DeleteProduct)

	r.Get("/orders/{id}", handler.GetOrder)
	r.Get("/orders", handler.ListOrders)
	r.Post("/orders", handler.CreateOrder)
	return r
}
