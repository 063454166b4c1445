package catalogs

import (
	"github.com/stockyard/stockyard/pkg/errors"
)

// Category classifies a product. The Category value itself is the stable
// symbolic code persisted to storage; the human-facing label comes from
// DisplayName. The two are kept distinct so stored data survives label
// changes.
type Category string

// The fixed set of product categories.
const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryCare        Category = "CARE"
	CategoryFood        Category = "FOOD"
	CategoryCandies     Category = "CANDIES"
	CategoryClothing    Category = "CLOTHING"
	CategoryOthers      Category = "OTHERS"
)

// displayNames maps category codes to their human-facing labels.
var displayNames = map[Category]string{
	CategoryElectronics: "Electronics",
	CategoryCare:        "Personal Care",
	CategoryFood:        "Food",
	CategoryCandies:     "Candies",
	CategoryClothing:    "Clothing",
	CategoryOthers:      "Others",
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryCare,
		CategoryFood,
		CategoryCandies,
		CategoryClothing,
		CategoryOthers,
	}
}

// ParseCategory converts a stored category code into a Category.
// Unknown codes return a validation error.
func ParseCategory(code string) (Category, error) {
	c := Category(code)
	if !c.Valid() {
		return "", errors.NewValidationError("category", code, "unknown category code")
	}
	return c, nil
}

// Valid reports whether the category is one of the fixed set.
func (c Category) Valid() bool {
	_, ok := displayNames[c]
	return ok
}

// Code returns the stable symbolic code persisted to storage.
func (c Category) Code() string {
	return string(c)
}

// DisplayName returns the human-facing label used in queries and sorts.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// String implements fmt.Stringer using the display label.
func (c Category) String() string {
	return c.DisplayName()
}
