package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.StateStorage = (*Storage)(nil)

// Storage StateStorage volátil; se pierde al terminar el proceso.
type Storage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStorage construye un almacenamiento vacío.
func NewStorage() *Storage {
	return &Storage{data: map[string][]byte{}}
}

// Get devuelve una copia del valor guardado.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Set reemplaza el valor de la clave.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = slices.Clone(value)
	return nil
}

// Delete elimina la clave.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
