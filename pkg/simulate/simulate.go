// Package simulate modela las esperas de red simuladas del catálogo y del checkout.
package simulate

import (
	"context"
	"time"
)

// Wait bloquea durante d o hasta que ctx se cancele; en ese caso devuelve ctx.Err().
// Con d <= 0 solo verifica el contexto.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
