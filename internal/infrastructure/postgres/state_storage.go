package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/cart"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.StateStorage = (*StateStorage)(nil)

// schemaStateStorage value es TEXT y no JSONB para poder guardar (y luego descartar)
// contenido corrupto igual que el local storage del navegador.
// cart_total solo se llena en la fila "cart" cuando value decodifica como líneas.
const (
	schemaStateStorage = `
	CREATE TABLE IF NOT EXISTS storefront_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		cart_total NUMERIC(12,2),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	migrateCartTotal = `ALTER TABLE storefront_state ADD COLUMN IF NOT EXISTS cart_total NUMERIC(12,2)`
)

const keyCart = "cart"

// StateStorage implementación del puerto StateStorage sobre PostgreSQL (usable con pool o tx).
type StateStorage struct {
	q Querier
}

// NewStateStorage construye el adaptador. Pasar pool o tx (Querier).
func NewStateStorage(q Querier) *StateStorage {
	return &StateStorage{q: q}
}

// EnsureSchema crea la tabla si no existe.
func (s *StateStorage) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schemaStateStorage); err != nil {
		return fmt.Errorf("crear tabla storefront_state: %w", err)
	}
	if _, err := s.q.Exec(ctx, migrateCartTotal); err != nil {
		return fmt.Errorf("migrar cart_total: %w", err)
	}
	return nil
}

// Get obtiene el valor de una clave.
func (s *StateStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.q.QueryRow(ctx, `SELECT value FROM storefront_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get state %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Set inserta o reemplaza el valor (last write wins). Para "cart" también guarda el total.
func (s *StateStorage) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO storefront_state (key, value, cart_total, updated_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, cart_total = EXCLUDED.cart_total, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, key, string(value), cartTotal(key, value)); err != nil {
		return fmt.Errorf("set state %s: %w", key, err)
	}
	return nil
}

// Delete elimina la clave.
func (s *StateStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.q.Exec(ctx, `DELETE FROM storefront_state WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete state %s: %w", key, err)
	}
	return nil
}

// CartTotal total del último carrito guardado. ok es false si no hay carrito o estaba corrupto.
func (s *StateStorage) CartTotal(ctx context.Context) (decimal.Decimal, bool, error) {
	var total decimal.NullDecimal
	err := s.q.QueryRow(ctx, `SELECT cart_total FROM storefront_state WHERE key = $1`, keyCart).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("get cart_total: %w", err)
	}
	return total.Decimal, total.Valid, nil
}

func cartTotal(key string, value []byte) decimal.NullDecimal {
	if key != keyCart {
		return decimal.NullDecimal{}
	}
	var lines []entity.CartLine
	if err := json.Unmarshal(value, &lines); err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: cart.Total(lines).Round(2), Valid: true}
}
