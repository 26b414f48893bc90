package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Drivers de almacenamiento de estado soportados.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Storage  StorageConfig
	DB       DBConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig define dónde se guarda el estado de la sesión (carrito, wishlist, usuario).
type StorageConfig struct {
	Driver string // memory, file, postgres
	Dir    string // solo driver file
}

// DBConfig configuración de PostgreSQL (solo driver postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// CatalogConfig latencias simuladas del catálogo en memoria.
type CatalogConfig struct {
	LatencyAll        time.Duration
	LatencyByID       time.Duration
	LatencyByCategory time.Duration
}

// CheckoutConfig política de envío/impuestos y demora simulada al colocar la orden.
type CheckoutConfig struct {
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	TaxRate               decimal.Decimal // fracción: 0.08 = 8%
	OrderDelay            time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "tienda-api"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", StorageFile)),
			Dir:    getString(v, "STORAGE_DIR", "./data"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "tienda"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Catalog: CatalogConfig{
			LatencyAll:        getMillis(v, "CATALOG_LATENCY_ALL_MS", 500),
			LatencyByID:       getMillis(v, "CATALOG_LATENCY_BY_ID_MS", 300),
			LatencyByCategory: getMillis(v, "CATALOG_LATENCY_BY_CATEGORY_MS", 400),
		},
		Checkout: CheckoutConfig{
			ShippingFee:           getDecimal(v, "CHECKOUT_SHIPPING_FEE", "5.99"),
			FreeShippingThreshold: getDecimal(v, "CHECKOUT_FREE_SHIPPING_THRESHOLD", "50"),
			TaxRate:               getDecimal(v, "CHECKOUT_TAX_RATE", "0.08"),
			OrderDelay:            getMillis(v, "CHECKOUT_ORDER_DELAY_MS", 1500),
		},
	}

	switch cfg.Storage.Driver {
	case StorageMemory, StorageFile, StoragePostgres:
	default:
		return nil, fmt.Errorf("config: STORAGE_DRIVER desconocido %q", cfg.Storage.Driver)
	}
	if cfg.Checkout.TaxRate.IsNegative() || cfg.Checkout.ShippingFee.IsNegative() {
		return nil, fmt.Errorf("config: tarifas de checkout no pueden ser negativas")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getMillis(v *viper.Viper, key string, def int) time.Duration {
	n := getInt(v, key, def)
	if n < 0 {
		n = 0
	}
	return time.Duration(n) * time.Millisecond
}

func getDecimal(v *viper.Viper, key, def string) decimal.Decimal {
	if v.IsSet(key) {
		if d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key))); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(def)
}
