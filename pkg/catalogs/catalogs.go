// Package catalogs provides the core product catalog for the stockyard
// system. A catalog is the single source of truth for products: it enforces
// identifier and name uniqueness, keeps stock non-negative, persists to a
// durable line-oriented store, and answers search, sort, and filter queries.
//
// One concrete implementation backs two modes: file-backed (constructed with
// WithPath, loads on creation and rewrites the store after every mutation)
// and in-memory (the default, for tests and temporary work). Both are safe
// for concurrent callers; every mutating operation holds an internal lock
// across its check-then-persist sequence.
//
// Example usage:
//
//	catalog, err := catalogs.New(catalogs.WithPath("products.txt"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := catalog.GenerateID()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	product, err := catalogs.NewProduct(id, "Keyboard", "Mechanical, US layout",
//	    decimal.NewFromInt(49), 12, catalogs.CategoryElectronics)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := catalog.Add(product); err != nil {
//	    log.Fatal(err)
//	}
package catalogs

// Reader provides read-only, side-effect-free access to catalog data,
// plus the id/name availability checks callers use to pre-validate input.
type Reader interface {
	// Get returns the product with the given id.
	Get(id int) (Product, error)

	// List returns all products ordered by id ascending.
	List() []Product

	// Len returns the number of products.
	Len() int

	// Search returns products whose name or description contains the query,
	// case-insensitively. A blank query matches nothing.
	Search(query string) []Product

	// SortBy returns all products ordered by the given field (id, name,
	// price, stock, category). An unknown field returns the id-ordered
	// list unchanged.
	SortBy(field string, ascending bool) []Product

	// SortByCategory returns all products grouped by category display
	// label, group labels ordered lexicographically, members in id order.
	SortByCategory(ascending bool) []Product

	// FilterByCategory returns products with an exact category match.
	FilterByCategory(category Category) []Product

	// ListLowStock returns products with stock strictly below threshold.
	ListLowStock(threshold int) []Product

	// GenerateID returns the lowest unused identifier in the 5-digit id
	// space, or ErrCapacityExhausted when the space is fully allocated.
	GenerateID() (int, error)

	// NameExists reports whether any product already uses the name,
	// case-insensitively.
	NameExists(name string) bool
}

// Writer provides the mutating catalog operations. Each persists the full
// catalog before returning; a failed operation leaves memory and storage
// unchanged.
type Writer interface {
	// Add inserts a new product. Fails on id or name collision.
	Add(product Product) error

	// Remove deletes a product, reporting whether a deletion occurred.
	// Removing an absent id is a no-op that touches no storage.
	Remove(id int) (bool, error)

	// Update replaces a stored product wholesale, including stock.
	// The name is immutable: an update that changes it is rejected.
	Update(product Product) error

	// UpdateBatch validates every replacement first, then applies them all
	// and persists once. Either every product is committed or none is.
	UpdateBatch(products []Product) error

	// AdjustStock applies a stock delta to a product and returns the
	// updated value. A decrement below zero fails with insufficient stock.
	AdjustStock(id, delta int) (Product, error)

	// RemoveByCategory deletes every product in the category, persisting
	// once, and returns how many were removed.
	RemoveByCategory(category Category) (int, error)
}

// Persistence handles loading from and saving to the backing store.
type Persistence interface {
	// Load replaces the in-memory catalog with the store contents.
	// Malformed records are skipped and recorded in the LoadReport.
	Load() error

	// Save rewrites the full backing store from memory.
	Save() error

	// LoadReport returns details of the most recent Load, including any
	// skipped records. Nil before the first load.
	LoadReport() *LoadReport
}

// Catalog is the complete interface combining all catalog capabilities.
type Catalog interface {
	Reader
	Writer
	Persistence
}
