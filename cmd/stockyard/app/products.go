package app

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/stockyard/stockyard/pkg/catalogs"
	"github.com/stockyard/stockyard/pkg/errors"
)

// NewAddCommand creates the add command.
func (a *App) NewAddCommand() *cobra.Command {
	var (
		id          int
		description string
		price       string
		stock       int
		category    string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a product to the catalog",
		Long: `Add creates a product and persists it immediately. Without --id the
next free five-digit id is assigned. Names are unique within the
catalog, compared case-insensitively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.Catalog()
			if err != nil {
				return err
			}

			if id == 0 {
				id, err = catalog.GenerateID()
				if err != nil {
					return err
				}
			}

			parsedPrice, err := decimal.NewFromString(price)
			if err != nil {
				return errors.NewValidationError("price", price, "not a decimal number")
			}
			parsedCategory, err := catalogs.ParseCategory(category)
			if err != nil {
				return err
			}

			product, err := catalogs.NewProduct(id, args[0], description, parsedPrice, stock, parsedCategory)
			if err != nil {
				return err
			}
			if err := catalog.Add(product); err != nil {
				return err
			}

			cmd.Printf("added product %d\n", product.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "product id (default: next free id)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "free-text description")
	cmd.Flags().StringVarP(&price, "price", "p", "0", "unit price")
	cmd.Flags().IntVarP(&stock, "stock", "n", 0, "initial stock count")
	cmd.Flags().StringVarP(&category, "category", "c", catalogs.CategoryOthers.Code(), "category code")

	return cmd
}

// NewRemoveCommand creates the remove command.
func (a *App) NewRemoveCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a product, or a whole category with --category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.Catalog()
			if err != nil {
				return err
			}

			if category != "" {
				if len(args) > 0 {
					return errors.NewValidationError("args", args, "give an id or --category, not both")
				}
				parsed, err := catalogs.ParseCategory(category)
				if err != nil {
					return err
				}
				removed, err := catalog.RemoveByCategory(parsed)
				if err != nil {
					return err
				}
				cmd.Printf("removed %d products\n", removed)
				return nil
			}

			if len(args) == 0 {
				return errors.NewValidationError("id", "", "product id required")
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("id", args[0], "not a number")
			}

			removed, err := catalog.Remove(id)
			if err != nil {
				return err
			}
			if !removed {
				return errors.NewNotFoundError("product", args[0])
			}
			cmd.Printf("removed product %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "remove every product in this category code")

	return cmd
}

// NewStockCommand creates the stock command.
func (a *App) NewStockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stock <id> <delta>",
		Short: "Adjust a product's stock by a delta",
		Long: `Stock applies a signed delta to a product's stock count. A negative
delta that would push stock below zero fails without changing anything.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.Catalog()
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("id", args[0], "not a number")
			}
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.NewValidationError("delta", args[1], "not a number")
			}

			product, err := catalog.AdjustStock(id, delta)
			if err != nil {
				return err
			}
			cmd.Printf("product %d stock is now %d\n", product.ID, product.Stock)
			return nil
		},
	}
}
