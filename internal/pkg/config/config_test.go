package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGatewayDefaults(t *testing.T) {
	cfg, err := LoadGateway()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "localhost:9090", cfg.ProductsServiceAddr)
	assert.Equal(t, "localhost:9091", cfg.OrdersServiceAddr)
	assert.Equal(t, "http://example.com/airship/images", cfg.ProductImageRoot)
	assert.Equal(t, 5*time.Second, cfg.RPCTimeout)
}

func TestLoadGatewayEnvOverride(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8888")
	t.Setenv("RPC_TIMEOUT", "2s")

	cfg, err := LoadGateway()
	require.NoError(t, err)
	assert.Equal(t, ":8888", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Second, cfg.RPCTimeout)
}

func TestLoadProductsDefaults(t *testing.T) {
	cfg, err := LoadProducts()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GRPCAddr)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURI)
}

func TestLoadOrdersEnvOverride(t *testing.T) {
	t.Setenv("SQLITE_PATH", "/tmp/test-orders.db")

	cfg, err := LoadOrders()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test-orders.db", cfg.SQLitePath)
	assert.Equal(t, ":9091", cfg.GRPCAddr)
}
