package main

import (
	"context"
	"log"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	ordersv1 "github.com/mvaldesdev/fleet-commerce/internal/genproto/orders/v1"
	ordersservice "github.com/mvaldesdev/fleet-commerce/internal/orders-service"
	"github.com/mvaldesdev/fleet-commerce/internal/orders-service/orderdb/sqlite"
	"github.com/mvaldesdev/fleet-commerce/internal/pkg/config"
	"github.com/mvaldesdev/fleet-commerce/internal/pkg/interceptors"
	"github.com/mvaldesdev/fleet-commerce/internal/pkg/telemetry"
)

func main() {
	telemetry.InitLogger("orders-service")

	cfg, err := config.LoadOrders()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	shutdown, err := telemetry.SetupTracer(context.Background(), "orders-service")
	if err != nil {
		log.Fatalf("set up tracer: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	repo, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("open order repository: %v", err)
	}
	defer repo.Close()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(interceptors.RequestIDServerInterceptor()),
	)
	ordersv1.RegisterOrdersServer(grpcServer, ordersservice.NewServer(repo))

	slog.Info("orders service running", "addr", cfg.GRPCAddr)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
