package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
)

func TestStorage_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()

	_, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`[]`)
	require.NoError(t, s.Set(ctx, "cart", value))
	value[0] = 'x'

	got, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(got), "Set guarda una copia")

	require.NoError(t, s.Delete(ctx, "cart"))
	require.NoError(t, s.Delete(ctx, "cart"))
	_, ok, _ = s.Get(ctx, "cart")
	assert.False(t, ok)
}
