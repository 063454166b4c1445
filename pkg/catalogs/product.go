package catalogs

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stockyard/stockyard/pkg/constants"
	"github.com/stockyard/stockyard/pkg/errors"
)

// Product is a single inventory item. Values are internally consistent by
// construction: only NewProduct builds one, so the catalog re-checks nothing
// beyond id and name uniqueness. ID and Name are immutable after creation.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    Category
}

// NewProduct validates and constructs a Product. It enforces the identifier
// range, a non-blank single-line name, a non-negative price and stock, and a
// known category. A Product that fails any of these is never created.
func NewProduct(id int, name, description string, price decimal.Decimal, stock int, category Category) (Product, error) {
	if id < constants.MinProductID || id > constants.MaxProductID {
		return Product{}, errors.NewValidationError("id", id, "must be a 5-digit identifier in [10000, 99999]")
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, errors.NewValidationError("name", name, "cannot be blank")
	}
	if strings.ContainsAny(name, "\r\n") {
		return Product{}, errors.NewValidationError("name", name, "cannot span multiple lines")
	}
	if strings.ContainsAny(description, "\r\n") {
		return Product{}, errors.NewValidationError("description", description, "cannot span multiple lines")
	}
	if price.Sign() < 0 {
		return Product{}, errors.NewValidationError("price", price.String(), "cannot be negative")
	}
	if stock < 0 {
		return Product{}, errors.NewValidationError("stock", stock, "cannot be negative")
	}
	if !category.Valid() {
		return Product{}, errors.NewValidationError("category", string(category), "unknown category code")
	}

	return Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Category:    category,
	}, nil
}

// WithStock returns a copy of the product with the given stock quantity.
// Negative stock is rejected so the non-negativity invariant holds on
// every constructed value.
func (p Product) WithStock(stock int) (Product, error) {
	if stock < 0 {
		return Product{}, errors.NewValidationError("stock", stock, "cannot be negative")
	}
	p.Stock = stock
	return p, nil
}

// NameEquals reports whether the product name matches the given name
// case-insensitively. Name uniqueness across the catalog uses this check.
func (p Product) NameEquals(name string) bool {
	return strings.EqualFold(p.Name, name)
}
