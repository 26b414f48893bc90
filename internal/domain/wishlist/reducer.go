// Package wishlist contiene el reducer puro de la lista de deseos: un conjunto de
// productos indexado por ID que conserva el orden de inserción.
package wishlist

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// State productos guardados, sin duplicados por ID.
type State struct {
	Items []entity.Product
}

// Action transición de la wishlist. Implementaciones: Toggle, Remove, Clear.
type Action interface {
	apply(State) State
}

// Toggle agrega el producto si no está; si está, lo quita.
type Toggle struct {
	Product entity.Product
}

// Remove quita el producto si está.
type Remove struct {
	ProductID string
}

// Clear vacía la wishlist.
type Clear struct{}

// Reduce aplica a sobre s sin modificar s.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

func (a Toggle) apply(s State) State {
	if a.Product.ID == "" {
		return s
	}
	if s.Contains(a.Product.ID) {
		return Remove{ProductID: a.Product.ID}.apply(s)
	}
	items := make([]entity.Product, len(s.Items), len(s.Items)+1)
	copy(items, s.Items)
	return State{Items: append(items, a.Product)}
}

func (a Remove) apply(s State) State {
	items := make([]entity.Product, 0, len(s.Items))
	for _, p := range s.Items {
		if p.ID != a.ProductID {
			items = append(items, p)
		}
	}
	return State{Items: items}
}

func (Clear) apply(State) State {
	return State{Items: []entity.Product{}}
}

// Contains indica si el producto está guardado.
func (s State) Contains(productID string) bool {
	_, ok := s.Get(productID)
	return ok
}

// Get devuelve la copia guardada del producto.
func (s State) Get(productID string) (entity.Product, bool) {
	for _, p := range s.Items {
		if p.ID == productID {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Hydrate reconstruye el estado persistido descartando duplicados (gana el primero) y productos sin ID.
func Hydrate(items []entity.Product) State {
	s := State{Items: []entity.Product{}}
	for _, p := range items {
		if p.ID == "" || s.Contains(p.ID) {
			continue
		}
		s.Items = append(s.Items, p)
	}
	return s
}
