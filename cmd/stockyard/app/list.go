package app

import (
	"github.com/spf13/cobra"

	"github.com/stockyard/stockyard/pkg/catalogs"
)

// NewListCommand creates the list command.
func (a *App) NewListCommand() *cobra.Command {
	var (
		sortField  string
		descending bool
		byCategory bool
		category   string
		lowStock   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Long: `List prints the catalog in id order by default. Use --sort to order
by id, name, price, stock, or category, --by-category for a two-level
category grouping, --category to filter to one category code, and
--low-stock to show only products strictly below a stock threshold.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.Catalog()
			if err != nil {
				return err
			}

			var products []catalogs.Product
			switch {
			case cmd.Flags().Changed("low-stock"):
				products = catalog.ListLowStock(lowStock)
			case category != "":
				parsed, err := catalogs.ParseCategory(category)
				if err != nil {
					return err
				}
				products = catalog.FilterByCategory(parsed)
			case byCategory:
				products = catalog.SortByCategory(!descending)
			case sortField != "":
				products = catalog.SortBy(sortField, !descending)
			default:
				products = catalog.List()
			}

			return a.printProducts(cmd.OutOrStdout(), products)
		},
	}

	cmd.Flags().StringVarP(&sortField, "sort", "s", "", "sort field: id, name, price, stock, category")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort in descending order")
	cmd.Flags().BoolVar(&byCategory, "by-category", false, "group by category, id order within each group")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter to one category code")
	cmd.Flags().IntVar(&lowStock, "low-stock", 0, "show products with stock strictly below the threshold")

	return cmd
}

// NewSearchCommand creates the search command.
func (a *App) NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search products by name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.Catalog()
			if err != nil {
				return err
			}

			products := catalog.Search(args[0])
			if len(products) == 0 {
				cmd.Printf("no products match %q\n", args[0])
				return nil
			}
			return a.printProducts(cmd.OutOrStdout(), products)
		},
	}
}
