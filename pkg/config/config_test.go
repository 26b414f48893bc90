package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, config.StorageFile, cfg.Storage.Driver)
	assert.Equal(t, 500*time.Millisecond, cfg.Catalog.LatencyAll)
	assert.Equal(t, 300*time.Millisecond, cfg.Catalog.LatencyByID)
	assert.Equal(t, 400*time.Millisecond, cfg.Catalog.LatencyByCategory)
	assert.Equal(t, "5.99", cfg.Checkout.ShippingFee.StringFixed(2))
	assert.Equal(t, "50.00", cfg.Checkout.FreeShippingThreshold.StringFixed(2))
	assert.Equal(t, "0.08", cfg.Checkout.TaxRate.StringFixed(2))
	assert.Equal(t, 1500*time.Millisecond, cfg.Checkout.OrderDelay)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("CHECKOUT_TAX_RATE", "0.19")
	t.Setenv("CATALOG_LATENCY_ALL_MS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "0.19", cfg.Checkout.TaxRate.StringFixed(2))
	assert.Zero(t, cfg.Catalog.LatencyAll)
}

func TestLoad_ValoresInvalidosUsanDefault(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "no-es-numero")
	t.Setenv("CHECKOUT_SHIPPING_FEE", "gratis")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "5.99", cfg.Checkout.ShippingFee.StringFixed(2))
}

func TestLoad_DriverDesconocido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_DRIVER", "redis")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "tienda", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/tienda?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
