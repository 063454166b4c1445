package app

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stockyard/stockyard/pkg/errors"
)

// NewCheckoutCommand creates the checkout command.
func (a *App) NewCheckoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <id=qty>...",
		Short: "Stage quantities and commit a validated checkout",
		Long: `Checkout stages each id=qty pair against live stock and commits all
decrements as one batch. Any unknown product or shortfall fails the
whole checkout with nothing changed.

Example:

  stockyard checkout 10001=2 10007=1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			cart := client.Cart()
			for _, arg := range args {
				id, qty, err := parseCheckoutArg(arg)
				if err != nil {
					return err
				}
				if err := cart.AddItem(id, qty); err != nil {
					return err
				}
			}

			total := cart.TotalPrice()
			items := cart.TotalItems()
			if err := cart.Checkout(); err != nil {
				return err
			}

			cmd.Printf("checked out %d items for %s\n", items, total.StringFixed(2))
			return nil
		},
	}
}

// parseCheckoutArg parses one id=qty argument.
func parseCheckoutArg(arg string) (int, int, error) {
	pair := strings.SplitN(arg, "=", 2)
	if len(pair) != 2 {
		return 0, 0, errors.NewValidationError("item", arg, "expected id=qty")
	}
	id, err := strconv.Atoi(pair[0])
	if err != nil {
		return 0, 0, errors.NewValidationError("item", arg, "id is not a number")
	}
	qty, err := strconv.Atoi(pair[1])
	if err != nil {
		return 0, 0, errors.NewValidationError("item", arg, "quantity is not a number")
	}
	return id, qty, nil
}
