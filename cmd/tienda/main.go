// Command tienda opera el catálogo, el carrito, la wishlist y el checkout desde la terminal,
// sobre el mismo almacenamiento que la API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/tienda-api/internal/bootstrap"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	open := func(ctx context.Context) (*bootstrap.Container, error) {
		return bootstrap.New(ctx, cfg)
	}
	if err := newRootCmd(os.Stdout, open).Execute(); err != nil {
		os.Exit(1)
	}
}
