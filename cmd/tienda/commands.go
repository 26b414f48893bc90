package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-api/internal/bootstrap"
	"github.com/jhoicas/tienda-api/internal/domain/catalog"
)

// opener abre el contenedor de casos de uso; los tests inyectan uno en memoria.
type opener func(ctx context.Context) (*bootstrap.Container, error)

type cli struct {
	out  io.Writer
	open opener
}

func newRootCmd(out io.Writer, open opener) *cobra.Command {
	c := &cli{out: out, open: open}

	root := &cobra.Command{
		Use:          "tienda",
		Short:        "Tienda: catálogo, carrito, wishlist y checkout",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.AddCommand(c.catalogCmd(), c.cartCmd(), c.wishlistCmd(), c.checkoutCmd())
	return root
}

// run abre el contenedor, ejecuta fn e imprime su resultado como JSON.
func (c *cli) run(cmd *cobra.Command, fn func(ctx context.Context, ct *bootstrap.Container) (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ct, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer ct.Close()

	v, err := fn(ctx, ct)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) catalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{Use: "catalog", Short: "Consultar el catálogo"}

	var category, minPrice, maxPrice, query, sortKey string
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar productos con filtros opcionales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := catalog.ParseFilter(category, minPrice, maxPrice, query, sortKey)
			if err != nil {
				return err
			}
			return c.run(cmd, func(ctx context.Context, ct *bootstrap.Container) (any, error) {
				return ct.Catalog.List(ctx, f)
			})
		},
	}
	list.Flags().StringVar(&category, "category", "", "electronics | clothing | accessories | home")
	list.Flags().StringVar(&minPrice, "min-price", "", "precio mínimo (inclusivo)")
	list.Flags().StringVar(&maxPrice, "max-price", "", "precio máximo (inclusivo)")
	list.Flags().StringVarP(&query, "query", "q", "", "texto en nombre o descripción")
	list.Flags().StringVar(&sortKey, "sort", "", "price-asc | price-desc | name-asc | name-desc | rating-desc")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Mostrar un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, ct *bootstrap.Container) (any, error) {
				return ct.Catalog.GetByID(ctx, args[0])
			})
		},
	}

	catalogCmd.AddCommand(list, show)
	return catalogCmd
}

func (c *cli) cartCmd() *cobra.Command {
	cartCmd := &cobra.Command{Use: "cart", Short: "Operar el carrito"}

	show := &cobra.Command{
		Use:   "show",
		Short: "Mostrar el carrito",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(_ context.Context, ct *bootstrap.Container) (any, error) {
				return ct.Cart.Get(), nil
			})
		},
	}
	add := &cobra.Command{
		Use:   "add <id> [cantidad]",
		Short: "Agregar un producto (cantidad por defecto 1)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty := 1
			if len(args) == 2 {
				n, err := parseQuantity(args[1])
				if err != nil {
					return err
				}
				qty = n
			}
			return c.run(cmd, func(ctx context.Context, ct *bootstrap.Container) (any, error) {
				return ct.Cart.Add(ctx, args[0], qty)
			})
		},
	}
	set := &cobra.Command{
		Use:   "set <id> <cantidad>",
		Short: "Fijar la cantidad (0 elimina la línea)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}
			return c.run(cmd, func(ctx context.Context, ct *bootstrap.Container) (any, error) {
				return ct.Cart.SetQuantity(ctx, args[0], qty)
			})
		},
	}
	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Quitar un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, ct *bootstrap.Container) (any, error) {
				return ct.Cart.Remove(ctx, args[0])
			})
		},
	}
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Vaciar el carrito",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, ct *bootstrap.Container) (any, error) {
				return ct.Cart.Clear(ctx)
			})
		},
	}

	cartCmd.AddCommand(show, add, set, remove, clearCmd)
	return cartCmd
}

func (c *cli) wishlistCmd() *cobra.Command {
	wishlistCmd := &cobra.Command{Use: "wishlist", Short: "Operar la wishlist"}

	show := &cobra.Command{
		Use:   "show",
		Short: "Mostrar la wishlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(_ context.Context, ct *bootstrap.Container) (any, error) {
				return ct.Wishlist.Get(), nil
			})
		},
	}
	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Agregar o quitar un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, ct *bootstrap.Container) (any, error) {
				return ct.Wishlist.Toggle(ctx, args[0])
			})
		},
	}

	wishlistCmd.AddCommand(show, toggle)
	return wishlistCmd
}

func (c *cli) checkoutCmd() *cobra.Command {
	checkoutCmd := &cobra.Command{Use: "checkout", Short: "Resumen y cotización"}

	var pdfPath string
	quote := &cobra.Command{
		Use:   "quote",
		Short: "Mostrar el resumen y, con --pdf, guardar la cotización",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, ct *bootstrap.Container) (any, error) {
				summary := ct.Checkout.Summary()
				if pdfPath == "" {
					return summary, nil
				}
				b, _, err := ct.Checkout.QuotePDF(ctx)
				if err != nil {
					return nil, err
				}
				if err := os.WriteFile(pdfPath, b, 0o644); err != nil {
					return nil, fmt.Errorf("guardar cotización: %w", err)
				}
				return map[string]any{"summary": summary, "pdf": pdfPath, "bytes": len(b)}, nil
			})
		},
	}
	quote.Flags().StringVar(&pdfPath, "pdf", "", "ruta donde guardar la cotización en PDF")

	checkoutCmd.AddCommand(quote)
	return checkoutCmd
}

func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("cantidad inválida %q", s)
	}
	return n, nil
}
