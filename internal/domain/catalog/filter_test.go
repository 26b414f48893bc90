package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/catalog"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func p(id, name, price, category string, rating float64) entity.Product {
	return entity.Product{
		ID: id, Name: name, Price: decimal.RequireFromString(price),
		Description: "Descripción de " + name, Category: category, Rating: rating,
	}
}

func fixture() []entity.Product {
	return []entity.Product{
		p("1", "Premium Wireless Headphones", "299.99", entity.CategoryElectronics, 4.8),
		p("2", "Slim Fit Cotton T-Shirt", "29.99", entity.CategoryClothing, 4.5),
		p("3", "Smart Watch Series 5", "399.99", entity.CategoryElectronics, 4.9),
		p("4", "Leather Messenger Bag", "149.99", entity.CategoryAccessories, 4.6),
		p("7", "Wireless Bluetooth Speaker", "79.99", entity.CategoryElectronics, 4.3),
		p("8", "Premium Coffee Maker", "149.99", entity.CategoryHome, 4.8),
	}
}

func ids(ps []entity.Product) []string {
	out := make([]string, 0, len(ps))
	for _, x := range ps {
		out = append(out, x.ID)
	}
	return out
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestApply_SinFiltrosConservaOrden(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4", "7", "8"}, ids(catalog.Apply(fixture(), catalog.Filter{})))
}

func TestApply_Categoria(t *testing.T) {
	got := catalog.Apply(fixture(), catalog.Filter{Category: entity.CategoryElectronics})
	assert.Equal(t, []string{"1", "3", "7"}, ids(got))
}

func TestApply_RangoDePrecioInclusivo(t *testing.T) {
	got := catalog.Apply(fixture(), catalog.Filter{MinPrice: dec("79.99"), MaxPrice: dec("149.99")})
	assert.Equal(t, []string{"4", "7", "8"}, ids(got))
}

func TestApply_BusquedaEnNombreODescripcionSinMayusculas(t *testing.T) {
	got := catalog.Apply(fixture(), catalog.Filter{Query: "  WIRELESS "})
	assert.Equal(t, []string{"1", "7"}, ids(got))

	got = catalog.Apply(fixture(), catalog.Filter{Query: "descripción de leather"})
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestApply_ComposicionDeFiltros(t *testing.T) {
	got := catalog.Apply(fixture(), catalog.Filter{
		Category: entity.CategoryElectronics,
		MaxPrice: dec("300"),
		Query:    "wireless",
		Sort:     catalog.SortPriceAsc,
	})
	assert.Equal(t, []string{"7", "1"}, ids(got))
}

func TestApply_OrdenPrecioAscYDescInvierten(t *testing.T) {
	distinct := []entity.Product{
		p("a", "A", "10", "home", 1), p("b", "B", "30", "home", 1), p("c", "C", "20", "home", 1),
	}
	asc := ids(catalog.Apply(distinct, catalog.Filter{Sort: catalog.SortPriceAsc}))
	desc := ids(catalog.Apply(distinct, catalog.Filter{Sort: catalog.SortPriceDesc}))

	require.Equal(t, []string{"a", "c", "b"}, asc)
	assert.Equal(t, []string{"b", "c", "a"}, desc)
}

func TestApply_EmpatesConservanOrdenRelativo(t *testing.T) {
	// 4 y 8 cuestan lo mismo; 1 y 8 tienen el mismo rating.
	asc := ids(catalog.Apply(fixture(), catalog.Filter{Sort: catalog.SortPriceAsc}))
	assert.Equal(t, []string{"2", "7", "4", "8", "1", "3"}, asc)

	desc := ids(catalog.Apply(fixture(), catalog.Filter{Sort: catalog.SortPriceDesc}))
	assert.Equal(t, []string{"3", "1", "4", "8", "7", "2"}, desc)

	rating := ids(catalog.Apply(fixture(), catalog.Filter{Sort: catalog.SortRatingDesc}))
	assert.Equal(t, []string{"3", "1", "8", "4", "2", "7"}, rating)
}

func TestApply_OrdenPorNombre(t *testing.T) {
	asc := ids(catalog.Apply(fixture(), catalog.Filter{Sort: catalog.SortNameAsc}))
	assert.Equal(t, []string{"4", "8", "1", "2", "3", "7"}, asc)

	desc := ids(catalog.Apply(fixture(), catalog.Filter{Sort: catalog.SortNameDesc}))
	assert.Equal(t, []string{"7", "3", "2", "1", "8", "4"}, desc)
}

func TestApply_Idempotente(t *testing.T) {
	filters := []catalog.Filter{
		{},
		{Category: entity.CategoryElectronics, Sort: catalog.SortRatingDesc},
		{Query: "premium", Sort: catalog.SortNameDesc},
		{MinPrice: dec("50"), Sort: catalog.SortPriceDesc},
	}
	for _, f := range filters {
		once := catalog.Apply(fixture(), f)
		twice := catalog.Apply(once, f)
		assert.Equal(t, ids(once), ids(twice))
	}
}

func TestApply_NoModificaEntrada(t *testing.T) {
	in := fixture()
	_ = catalog.Apply(in, catalog.Filter{Sort: catalog.SortPriceDesc})
	assert.Equal(t, []string{"1", "2", "3", "4", "7", "8"}, ids(in))
}

func TestParseSortKey(t *testing.T) {
	k, err := catalog.ParseSortKey("price-desc")
	require.NoError(t, err)
	assert.Equal(t, catalog.SortPriceDesc, k)

	k, err = catalog.ParseSortKey("none")
	require.NoError(t, err)
	assert.Equal(t, catalog.SortNone, k)

	_, err = catalog.ParseSortKey("popularity")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseFilter(t *testing.T) {
	f, err := catalog.ParseFilter("home", "10", "200.50", " coffee ", "price-desc")
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryHome, f.Category)
	assert.Equal(t, "10", f.MinPrice.String())
	assert.Equal(t, "200.5", f.MaxPrice.String())
	assert.Equal(t, catalog.SortPriceDesc, f.Sort)

	empty, err := catalog.ParseFilter("", "", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, empty.MinPrice)
	assert.Nil(t, empty.MaxPrice)
	assert.Equal(t, catalog.SortNone, empty.Sort)

	for name, args := range map[string][5]string{
		"categoría":       {"garden", "", "", "", ""},
		"precio inválido": {"", "abc", "", "", ""},
		"precio negativo": {"", "", "-1", "", ""},
		"rango invertido": {"", "20", "10", "", ""},
		"orden":           {"", "", "", "", "cheapest"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.ParseFilter(args[0], args[1], args[2], args[3], args[4])
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
