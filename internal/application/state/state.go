// Package state es el adaptador de persistencia que los casos de uso invocan después de
// cada transición: serializa el estado a JSON bajo una clave fija del StateStorage.
package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Claves persistidas.
const (
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
	KeyUser     = "user"
)

// Load lee y decodifica la clave. Es best-effort: clave ausente, error de lectura o JSON
// corrupto devuelven el valor cero y false. La corrupción solo se registra en el log.
func Load[T any](ctx context.Context, s repository.StateStorage, key string) (T, bool) {
	var zero T
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("no se pudo leer el estado persistido, se usa estado vacío")
		return zero, false
	}
	if !ok {
		return zero, false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("estado persistido corrupto descartado")
		return zero, false
	}
	return v, true
}

// Save serializa v y lo escribe bajo la clave. Los errores del almacenamiento se propagan.
func Save(ctx context.Context, s repository.StateStorage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("persistir %s: %w", key, err)
	}
	return nil
}

// Remove elimina la clave.
func Remove(ctx context.Context, s repository.StateStorage, key string) error {
	if err := s.Delete(ctx, key); err != nil {
		return fmt.Errorf("eliminar %s: %w", key, err)
	}
	return nil
}
