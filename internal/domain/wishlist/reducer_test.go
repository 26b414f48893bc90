package wishlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/wishlist"
)

func TestToggle_AgregaYQuita(t *testing.T) {
	p := entity.Product{ID: "3", Name: "Smart Watch Series 5"}

	s := wishlist.Reduce(wishlist.State{}, wishlist.Toggle{Product: p})
	require.True(t, s.Contains("3"))

	s = wishlist.Reduce(s, wishlist.Toggle{Product: p})
	assert.False(t, s.Contains("3"))
	assert.Empty(t, s.Items)
}

func TestToggle_ConservaOrdenDeInsercion(t *testing.T) {
	s := wishlist.State{}
	for _, id := range []string{"4", "1", "8"} {
		s = wishlist.Reduce(s, wishlist.Toggle{Product: entity.Product{ID: id}})
	}
	s = wishlist.Reduce(s, wishlist.Toggle{Product: entity.Product{ID: "1"}})

	require.Len(t, s.Items, 2)
	assert.Equal(t, "4", s.Items[0].ID)
	assert.Equal(t, "8", s.Items[1].ID)
}

func TestRemoveYClear(t *testing.T) {
	s := wishlist.Reduce(wishlist.State{}, wishlist.Toggle{Product: entity.Product{ID: "1"}})
	s = wishlist.Reduce(s, wishlist.Toggle{Product: entity.Product{ID: "2"}})

	s = wishlist.Reduce(s, wishlist.Remove{ProductID: "404"})
	assert.Len(t, s.Items, 2)

	s = wishlist.Reduce(s, wishlist.Remove{ProductID: "1"})
	assert.Equal(t, []string{"2"}, ids(s))

	s = wishlist.Reduce(s, wishlist.Clear{})
	assert.Empty(t, s.Items)
	assert.NotNil(t, s.Items)
}

func TestReduce_NoModificaEntrada(t *testing.T) {
	before := wishlist.Reduce(wishlist.State{}, wishlist.Toggle{Product: entity.Product{ID: "1"}})
	_ = wishlist.Reduce(before, wishlist.Toggle{Product: entity.Product{ID: "2"}})
	_ = wishlist.Reduce(before, wishlist.Remove{ProductID: "1"})
	assert.Equal(t, []string{"1"}, ids(before))
}

func TestHydrate_SinDuplicados(t *testing.T) {
	s := wishlist.Hydrate([]entity.Product{{ID: "1", Name: "a"}, {ID: ""}, {ID: "1", Name: "b"}, {ID: "2"}})
	assert.Equal(t, []string{"1", "2"}, ids(s))
	p, _ := s.Get("1")
	assert.Equal(t, "a", p.Name)
}

func ids(s wishlist.State) []string {
	out := make([]string, 0, len(s.Items))
	for _, p := range s.Items {
		out = append(out, p.ID)
	}
	return out
}
