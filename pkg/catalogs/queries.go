package catalogs

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns the collator used for lexicographic ordering of names
// and category display labels.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// Search returns products whose name or description contains the query,
// case-insensitively, in id order. A blank query matches nothing; rejecting
// blank input earlier is the caller's responsibility.
func (c *catalog) Search(query string) []Product {
	results := []Product{}
	if strings.TrimSpace(query) == "" {
		return results
	}

	q := strings.ToLower(query)
	for _, product := range c.products.List() {
		if strings.Contains(strings.ToLower(product.Name), q) ||
			strings.Contains(strings.ToLower(product.Description), q) {
			results = append(results, product)
		}
	}
	return results
}

// SortBy returns all products ordered by the given field. Unknown fields
// return the id-ordered list unchanged rather than failing; callers have
// come to rely on that permissive default. The sort is stable: ties keep
// id order regardless of direction.
func (c *catalog) SortBy(field string, ascending bool) []Product {
	products := c.products.List()

	var less func(a, b Product) bool
	switch strings.ToLower(field) {
	case "id":
		less = func(a, b Product) bool { return a.ID < b.ID }
	case "name":
		col := newCollator()
		less = func(a, b Product) bool { return col.CompareString(a.Name, b.Name) < 0 }
	case "price":
		less = func(a, b Product) bool { return a.Price.Cmp(b.Price) < 0 }
	case "stock":
		less = func(a, b Product) bool { return a.Stock < b.Stock }
	case "category":
		col := newCollator()
		less = func(a, b Product) bool {
			return col.CompareString(a.Category.DisplayName(), b.Category.DisplayName()) < 0
		}
	default:
		return products
	}

	sort.SliceStable(products, func(i, j int) bool {
		if ascending {
			return less(products[i], products[j])
		}
		return less(products[j], products[i])
	})
	return products
}

// SortByCategory returns all products grouped by category display label.
// The group labels are ordered lexicographically in the requested direction;
// within a group, members keep catalog (id) order. This is a two-level sort,
// not a secondary sort on name.
func (c *catalog) SortByCategory(ascending bool) []Product {
	groups := make(map[string][]Product)
	var labels []string
	for _, product := range c.products.List() {
		label := product.Category.DisplayName()
		if _, ok := groups[label]; !ok {
			labels = append(labels, label)
		}
		groups[label] = append(groups[label], product)
	}

	col := newCollator()
	sort.Slice(labels, func(i, j int) bool {
		if ascending {
			return col.CompareString(labels[i], labels[j]) < 0
		}
		return col.CompareString(labels[j], labels[i]) < 0
	})

	results := []Product{}
	for _, label := range labels {
		results = append(results, groups[label]...)
	}
	return results
}

// FilterByCategory returns products with an exact category match, in id order.
func (c *catalog) FilterByCategory(category Category) []Product {
	results := []Product{}
	for _, product := range c.products.List() {
		if product.Category == category {
			results = append(results, product)
		}
	}
	return results
}

// ListLowStock returns products with stock strictly below threshold, in id
// order.
func (c *catalog) ListLowStock(threshold int) []Product {
	results := []Product{}
	for _, product := range c.products.List() {
		if product.Stock < threshold {
			results = append(results, product)
		}
	}
	return results
}
