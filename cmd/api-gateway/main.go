package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/infra/adapters/service"
	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/infra/httpx"
	ordersv1 "github.com/mvaldesdev/fleet-commerce/internal/genproto/orders/v1"
	productsv1 "github.com/mvaldesdev/fleet-commerce/internal/genproto/products/v1"
	"github.com/mvaldesdev/fleet-commerce/internal/pkg/config"
	"github.com/mvaldesdev/fleet-commerce/internal/pkg/telemetry"
)

func main() {
	telemetry.InitLogger("api-gateway")

	cfg, err := config.LoadGateway()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	shutdown, err := telemetry.SetupTracer(ctx, "api-gateway")
	if err != nil {
		log.Fatalf("set up tracer: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	productsConn := createGRPCConn(cfg.ProductsServiceAddr)
	defer productsConn.Close()

	ordersConn := createGRPCConn(cfg.OrdersServiceAddr)
	defer ordersConn.Close()

	products := service.NewGRPCProductsClient(productsv1.NewProductsClient(productsConn), cfg.RPCTimeout)
	orders := service.NewGRPCOrdersClient(ordersv1.NewOrdersClient(ordersConn), cfg.RPCTimeout)

	handler := httpx.NewHandler(products, orders, cfg.ProductImageRoot)
	router := httpx.NewRouter(handler)

	slog.Info("api gateway running", "addr", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

func createGRPCConn(addr string) *grpc.ClientConn {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("could not connect to %s: %v", addr, err)
	}
	return conn
}
