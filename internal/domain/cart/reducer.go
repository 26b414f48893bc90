// Package cart contiene el reducer puro del carrito: (State, Action) -> State.
// No persiste nada; el host (caso de uso) guarda el estado después de cada transición.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// State líneas del carrito en orden de inserción. Como máximo una línea por producto.
type State struct {
	Lines []entity.CartLine
}

// Action transición del carrito. Implementaciones: AddLine, RemoveLine, SetQuantity, Clear.
type Action interface {
	apply(State) State
}

// AddLine suma Quantity a la línea del producto o agrega una línea nueva.
// Quantity <= 0 no tiene efecto. No hay tope por inventario.
type AddLine struct {
	Product  entity.Product
	Quantity int
}

// RemoveLine elimina la línea del producto si existe.
type RemoveLine struct {
	ProductID string
}

// SetQuantity sobrescribe la cantidad; Quantity <= 0 equivale a RemoveLine.
type SetQuantity struct {
	ProductID string
	Quantity  int
}

// Clear vacía el carrito.
type Clear struct{}

// Reduce aplica a sobre s y devuelve el nuevo estado. s no se modifica.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

func (a AddLine) apply(s State) State {
	if a.Quantity <= 0 || a.Product.ID == "" {
		return s
	}
	lines := cloneLines(s.Lines)
	for i := range lines {
		if lines[i].ID == a.Product.ID {
			lines[i].Quantity += a.Quantity
			return State{Lines: lines}
		}
	}
	lines = append(lines, entity.CartLine{ID: a.Product.ID, Product: a.Product, Quantity: a.Quantity})
	return State{Lines: lines}
}

func (a RemoveLine) apply(s State) State {
	lines := make([]entity.CartLine, 0, len(s.Lines))
	for _, l := range s.Lines {
		if l.ID != a.ProductID {
			lines = append(lines, l)
		}
	}
	return State{Lines: lines}
}

func (a SetQuantity) apply(s State) State {
	if a.Quantity <= 0 {
		return RemoveLine{ProductID: a.ProductID}.apply(s)
	}
	lines := cloneLines(s.Lines)
	for i := range lines {
		if lines[i].ID == a.ProductID {
			lines[i].Quantity = a.Quantity
		}
	}
	return State{Lines: lines}
}

func (Clear) apply(State) State {
	return State{Lines: []entity.CartLine{}}
}

// Line busca la línea de un producto.
func (s State) Line(productID string) (entity.CartLine, bool) {
	for _, l := range s.Lines {
		if l.ID == productID {
			return l, true
		}
	}
	return entity.CartLine{}, false
}

// IsEmpty indica si no hay líneas.
func (s State) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Total suma de precio * cantidad; carrito vacío = 0. Se calcula en cada lectura.
func Total(lines []entity.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount suma de cantidades.
func ItemCount(lines []entity.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// Hydrate reconstruye un estado a partir de líneas persistidas, pasándolas por AddLine:
// las líneas duplicadas se fusionan y las de cantidad no positiva se descartan.
func Hydrate(lines []entity.CartLine) State {
	s := State{Lines: []entity.CartLine{}}
	for _, l := range lines {
		p := l.Product
		if p.ID == "" {
			p.ID = l.ID
		}
		s = Reduce(s, AddLine{Product: p, Quantity: l.Quantity})
	}
	return s
}

func cloneLines(lines []entity.CartLine) []entity.CartLine {
	dup := make([]entity.CartLine, len(lines), len(lines)+1)
	copy(dup, lines)
	return dup
}
