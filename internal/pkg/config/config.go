// Package config loads per-binary configuration. All values come from
// environment variables (with defaults), read through viper so the same
// keys can also be supplied via a config file in development.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Gateway holds the api-gateway configuration.
type Gateway struct {
	HTTPAddr            string        `mapstructure:"HTTP_ADDR"`
	ProductsServiceAddr string        `mapstructure:"PRODUCTS_SERVICE_ADDR"`
	OrdersServiceAddr   string        `mapstructure:"ORDERS_SERVICE_ADDR"`
	ProductImageRoot    string        `mapstructure:"PRODUCT_IMAGE_ROOT"`
	RPCTimeout          time.Duration `mapstructure:"RPC_TIMEOUT"`
}

// Products holds the products-service configuration.
type Products struct {
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	RedisURI string `mapstructure:"REDIS_URI"`
}

// Orders holds the orders-service configuration.
type Orders struct {
	GRPCAddr   string `mapstructure:"GRPC_ADDR"`
	SQLitePath string `mapstructure:"SQLITE_PATH"`
}

// LoadGateway reads the gateway configuration from the environment.
func LoadGateway() (Gateway, error) {
	v := newViper()
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("PRODUCTS_SERVICE_ADDR", "localhost:9090")
	v.SetDefault("ORDERS_SERVICE_ADDR", "localhost:9091")
	v.SetDefault("PRODUCT_IMAGE_ROOT", "http://example.com/airship/images")
	v.SetDefault("RPC_TIMEOUT", 5*time.Second)

	var cfg Gateway
	if err := v.Unmarshal(&cfg); err != nil {
		return Gateway{}, fmt.Errorf("config: unmarshal gateway config: %w", err)
	}
	return cfg, nil
}

// LoadProducts reads the products-service configuration from the environment.
func LoadProducts() (Products, error) {
	v := newViper()
	v.SetDefault("GRPC_ADDR", ":9090")
	v.SetDefault("REDIS_URI", "redis://localhost:6379/0")

	var cfg Products
	if err := v.Unmarshal(&cfg); err != nil {
		return Products{}, fmt.Errorf("config: unmarshal products config: %w", err)
	}
	return cfg, nil
}

// LoadOrders reads the orders-service configuration from the environment.
func LoadOrders() (Orders, error) {
	v := newViper()
	v.SetDefault("GRPC_ADDR", ":9091")
	v.SetDefault("SQLITE_PATH", "./data/orders.db")

	var cfg Orders
	if err := v.Unmarshal(&cfg); err != nil {
		return Orders{}, fmt.Errorf("config: unmarshal orders config: %w", err)
	}
	return cfg, nil
}

// newViper builds a viper instance that reads environment variables. A
// fresh instance per Load call keeps the three binaries' defaults from
// leaking into each other in tests.
func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}
