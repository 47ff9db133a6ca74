package main

import (
	"context"
	"log"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	productsv1 "github.com/mvaldesdev/fleet-commerce/internal/genproto/products/v1"
	"github.com/mvaldesdev/fleet-commerce/internal/pkg/config"
	"github.com/mvaldesdev/fleet-commerce/internal/pkg/interceptors"
	"github.com/mvaldesdev/fleet-commerce/internal/pkg/telemetry"
	productsservice "github.com/mvaldesdev/fleet-commerce/internal/products-service"
	"github.com/mvaldesdev/fleet-commerce/internal/products-service/store"
)

func main() {
	telemetry.InitLogger("products-service")

	cfg, err := config.LoadProducts()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	shutdown, err := telemetry.SetupTracer(context.Background(), "products-service")
	if err != nil {
		log.Fatalf("set up tracer: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	st, err := store.Open(cfg.RedisURI)
	if err != nil {
		log.Fatalf("open product store: %v", err)
	}
	defer st.Close()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(interceptors.RequestIDServerInterceptor()),
	)
	productsv1.RegisterProductsServer(grpcServer, productsservice.NewServer(st))

	slog.Info("products service running", "addr", cfg.GRPCAddr)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
