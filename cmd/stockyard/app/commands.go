package app

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stockyard/stockyard/internal/cmd/output"
	"github.com/stockyard/stockyard/pkg/catalogs"
)

// productView is the serializable shape of a product for json and yaml
// output. Prices travel as strings to keep decimal exactness.
type productView struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Price       string `json:"price" yaml:"price"`
	Stock       int    `json:"stock" yaml:"stock"`
	Category    string `json:"category" yaml:"category"`
}

func newProductView(product catalogs.Product) productView {
	return productView{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.String(),
		Stock:       product.Stock,
		Category:    product.Category.Code(),
	}
}

// printProducts renders products in the configured output format.
func (a *App) printProducts(w io.Writer, products []catalogs.Product) error {
	format := output.DetectFormat(a.config.Output)
	formatter := output.NewFormatter(format)

	if format == output.FormatJSON || format == output.FormatYAML {
		views := make([]productView, 0, len(products))
		for _, product := range products {
			views = append(views, newProductView(product))
		}
		return formatter.Format(w, views)
	}

	data := output.Data{
		Headers: []string{"ID", "Name", "Price", "Stock", "Category", "Description"},
	}
	for _, product := range products {
		data.Rows = append(data.Rows, []string{
			strconv.Itoa(product.ID),
			product.Name,
			product.Price.String(),
			strconv.Itoa(product.Stock),
			product.Category.DisplayName(),
			product.Description,
		})
	}
	return formatter.Format(w, data)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("stockyard %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit: %s\n", a.commit)
				cmd.Printf("  built:  %s\n", a.date)
			}
		},
	}
}

// NewCategoriesCommand creates the categories command.
func (a *App) NewCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the fixed product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			format := output.DetectFormat(a.config.Output)
			formatter := output.NewFormatter(format)

			if format == output.FormatJSON || format == output.FormatYAML {
				type categoryView struct {
					Code  string `json:"code" yaml:"code"`
					Label string `json:"label" yaml:"label"`
				}
				views := []categoryView{}
				for _, category := range catalogs.Categories() {
					views = append(views, categoryView{Code: category.Code(), Label: category.DisplayName()})
				}
				return formatter.Format(cmd.OutOrStdout(), views)
			}

			data := output.Data{Headers: []string{"Code", "Label"}}
			for _, category := range catalogs.Categories() {
				data.Rows = append(data.Rows, []string{category.Code(), category.DisplayName()})
			}
			return formatter.Format(cmd.OutOrStdout(), data)
		},
	}
}
