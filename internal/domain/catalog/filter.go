// Package catalog implementa el motor de filtrado y ordenamiento del listado de productos.
package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// SortKey criterio de ordenamiento del listado.
type SortKey string

// Criterios soportados. SortNone conserva el orden de entrada.
const (
	SortNone       SortKey = ""
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortRatingDesc SortKey = "rating-desc"
)

// ParseSortKey valida el criterio recibido ("" o "none" = sin orden).
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(strings.ToLower(s))); k {
	case SortNone, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortRatingDesc:
		return k, nil
	case "none":
		return SortNone, nil
	default:
		return SortNone, fmt.Errorf("%w: criterio de orden %q", domain.ErrInvalidInput, s)
	}
}

// Filter estado del filtro. Campos vacíos o nil no filtran.
type Filter struct {
	Category string
	MinPrice *decimal.Decimal // inclusivo
	MaxPrice *decimal.Decimal // inclusivo
	Query    string           // subcadena en nombre o descripción, sin distinguir mayúsculas
	Sort     SortKey
}

// Apply compone, en este orden fijo: categoría, rango de precio, búsqueda de texto y
// ordenamiento estable. Devuelve un slice nuevo; products no se modifica.
func Apply(products []entity.Product, f Filter) []entity.Product {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(f.Query))

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		if query != "" &&
			!strings.Contains(fold.String(p.Name), query) &&
			!strings.Contains(fold.String(p.Description), query) {
			continue
		}
		out = append(out, p)
	}

	if cmpFn := comparator(f.Sort); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

func comparator(k SortKey) func(a, b entity.Product) int {
	switch k {
	case SortPriceAsc:
		return func(a, b entity.Product) int { return a.Price.Cmp(b.Price) }
	case SortPriceDesc:
		return func(a, b entity.Product) int { return b.Price.Cmp(a.Price) }
	case SortNameAsc:
		c := collate.New(language.English)
		return func(a, b entity.Product) int { return c.CompareString(a.Name, b.Name) }
	case SortNameDesc:
		c := collate.New(language.English)
		return func(a, b entity.Product) int { return c.CompareString(b.Name, a.Name) }
	case SortRatingDesc:
		return func(a, b entity.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		return nil
	}
}

// ParseFilter construye un Filter desde parámetros de texto (query string o flags).
// Valores vacíos no filtran; categoría desconocida, precios inválidos o un rango
// invertido devuelven ErrInvalidInput.
func ParseFilter(category, minPrice, maxPrice, query, sort string) (Filter, error) {
	var f Filter
	if c := strings.TrimSpace(category); c != "" {
		if !entity.IsValidCategory(c) {
			return f, fmt.Errorf("%w: categoría %q", domain.ErrInvalidInput, c)
		}
		f.Category = c
	}
	var err error
	if f.MinPrice, err = parsePrice(minPrice, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parsePrice(maxPrice, "max_price"); err != nil {
		return f, err
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return f, fmt.Errorf("%w: min_price mayor que max_price", domain.ErrInvalidInput)
	}
	f.Query = query
	if f.Sort, err = ParseSortKey(sort); err != nil {
		return f, err
	}
	return f, nil
}

func parsePrice(raw, name string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil, fmt.Errorf("%w: %s debe ser un número no negativo", domain.ErrInvalidInput, name)
	}
	return &d, nil
}
