package repository

import "context"

// StateStorage puerto clave/valor donde se persiste el estado de la sesión
// (equivalente al local storage del navegador). Los valores son JSON opaco.
type StateStorage interface {
	// Get devuelve (nil, false, nil) si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete no falla si la clave no existe.
	Delete(ctx context.Context, key string) error
}
