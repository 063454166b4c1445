package catalogs

import (
	"strconv"
	"sync"

	"github.com/stockyard/stockyard/pkg/constants"
	"github.com/stockyard/stockyard/pkg/errors"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Catalog     = (*catalog)(nil)
	_ Reader      = (*catalog)(nil)
	_ Writer      = (*catalog)(nil)
	_ Persistence = (*catalog)(nil)
)

// catalog is the single concrete implementation of the Catalog interface.
// It works as:
// - Memory catalog (store == nil)
// - File-backed catalog (store writes the line store configured via WithPath).
type catalog struct {
	options  *catalogOptions
	products *Products
	store    *store // nil for in-memory catalogs

	// mu serializes every check-then-persist sequence so the on-disk state
	// never diverges from memory across interleaved mutations.
	mu     sync.Mutex
	report *LoadReport
}

// New creates a new catalog with the given options.
// WithPath(path) = file-backed catalog with auto-load.
// Default = in-memory catalog.
func New(opts ...Option) (Catalog, error) {
	options := catalogDefaults().apply(opts...)

	cat := &catalog{
		options:  options,
		products: NewProducts(),
	}
	if options.path != "" {
		cat.store = newStore(options.path)
	}

	if cat.store != nil && options.autoLoad {
		if err := cat.Load(); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// Get returns a product by id.
func (c *catalog) Get(id int) (Product, error) {
	product, ok := c.products.Get(id)
	if !ok {
		return Product{}, errors.NewNotFoundError("product", strconv.Itoa(id))
	}
	return product, nil
}

// List returns all products ordered by id ascending.
func (c *catalog) List() []Product {
	return c.products.List()
}

// Len returns the number of products.
func (c *catalog) Len() int {
	return c.products.Len()
}

// GenerateID returns the lowest unused identifier in the 5-digit id space.
// When the space is fully allocated it returns the top of range together
// with ErrCapacityExhausted; the id must not be treated as fresh.
func (c *catalog) GenerateID() (int, error) {
	for id := constants.MinProductID; id <= constants.MaxProductID; id++ {
		if !c.products.Exists(id) {
			return id, nil
		}
	}
	return constants.MaxProductID, errors.ErrCapacityExhausted
}

// NameExists reports whether any product already uses the name, case-insensitively.
func (c *catalog) NameExists(name string) bool {
	for _, product := range c.products.List() {
		if product.NameEquals(name) {
			return true
		}
	}
	return false
}

// Add inserts a new product and persists the catalog. A duplicate id or a
// case-insensitively duplicate name fails before anything is written.
func (c *catalog) Add(product Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.options.readOnly {
		return errors.ErrReadOnly
	}
	if c.products.Exists(product.ID) {
		return errors.NewDuplicateError("product", "id", strconv.Itoa(product.ID))
	}
	if c.NameExists(product.Name) {
		return errors.NewDuplicateError("product", "name", product.Name)
	}

	c.products.Set(product)
	if err := c.save(); err != nil {
		// Roll back the in-memory insertion
		c.products.Delete(product.ID)
		return err
	}

	c.options.logger.Debug().
		Int("id", product.ID).
		Str("name", product.Name).
		Msg("product added")
	return nil
}

// Remove deletes a product by id, persisting on success. An absent id is a
// no-op that touches no storage.
func (c *catalog) Remove(id int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.options.readOnly {
		return false, errors.ErrReadOnly
	}

	previous, ok := c.products.Get(id)
	if !ok {
		return false, nil
	}

	c.products.Delete(id)
	if err := c.save(); err != nil {
		c.products.Set(previous)
		return false, err
	}

	c.options.logger.Debug().Int("id", id).Msg("product removed")
	return true, nil
}

// Update replaces a stored product wholesale (including stock) and persists.
// The name is immutable: an update that changes it is rejected.
func (c *catalog) Update(product Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.options.readOnly {
		return errors.ErrReadOnly
	}

	existing, ok := c.products.Get(product.ID)
	if !ok {
		return errors.NewNotFoundError("product", strconv.Itoa(product.ID))
	}
	if !existing.NameEquals(product.Name) {
		return errors.NewValidationError("name", product.Name, "product name is immutable")
	}

	c.products.Set(product)
	if err := c.save(); err != nil {
		c.products.Set(existing)
		return err
	}

	c.options.logger.Debug().Int("id", product.ID).Msg("product updated")
	return nil
}

// UpdateBatch validates every replacement, then applies them all and
// persists once. Either every product in the batch is committed or none is.
func (c *catalog) UpdateBatch(products []Product) error {
	if len(products) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.options.readOnly {
		return errors.ErrReadOnly
	}

	// Validate the whole batch before touching anything.
	previous := make([]Product, 0, len(products))
	for _, product := range products {
		existing, ok := c.products.Get(product.ID)
		if !ok {
			return errors.NewNotFoundError("product", strconv.Itoa(product.ID))
		}
		if !existing.NameEquals(product.Name) {
			return errors.NewValidationError("name", product.Name, "product name is immutable")
		}
		previous = append(previous, existing)
	}

	c.products.SetBatch(products)
	if err := c.save(); err != nil {
		c.products.SetBatch(previous)
		return err
	}

	c.options.logger.Debug().Int("count", len(products)).Msg("product batch updated")
	return nil
}

// AdjustStock applies a stock delta to a product, persisting the result.
// A decrement past zero fails with insufficient stock and changes nothing.
func (c *catalog) AdjustStock(id, delta int) (Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.options.readOnly {
		return Product{}, errors.ErrReadOnly
	}

	existing, ok := c.products.Get(id)
	if !ok {
		return Product{}, errors.NewNotFoundError("product", strconv.Itoa(id))
	}

	newStock := existing.Stock + delta
	if newStock < 0 {
		return Product{}, errors.NewInsufficientStockError(id, -delta, existing.Stock)
	}

	updated, err := existing.WithStock(newStock)
	if err != nil {
		return Product{}, err
	}

	c.products.Set(updated)
	if err := c.save(); err != nil {
		c.products.Set(existing)
		return Product{}, err
	}

	c.options.logger.Debug().
		Int("id", id).
		Int("delta", delta).
		Int("stock", updated.Stock).
		Msg("stock adjusted")
	return updated, nil
}

// RemoveByCategory deletes every product in the category, persisting once.
func (c *catalog) RemoveByCategory(category Category) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.options.readOnly {
		return 0, errors.ErrReadOnly
	}

	var removed []Product
	for _, product := range c.products.List() {
		if product.Category == category {
			removed = append(removed, product)
		}
	}
	if len(removed) == 0 {
		return 0, nil
	}

	for _, product := range removed {
		c.products.Delete(product.ID)
	}
	if err := c.save(); err != nil {
		c.products.SetBatch(removed)
		return 0, err
	}

	c.options.logger.Debug().
		Str("category", category.Code()).
		Int("count", len(removed)).
		Msg("category removed")
	return len(removed), nil
}

// Load replaces the in-memory catalog with the store contents. Malformed
// records are skipped, logged, and recorded in the LoadReport. A no-op for
// in-memory catalogs.
func (c *catalog) Load() error {
	if c.store == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	products, report, err := c.store.Load()
	if err != nil {
		return err
	}

	c.products.Clear()
	c.products.SetBatch(products)
	c.report = report

	for _, skipped := range report.Skipped {
		c.options.logger.Warn().
			Str("path", report.Path).
			Int("line", skipped.Line).
			Str("reason", skipped.Reason).
			Msg("skipped malformed record")
	}
	c.options.logger.Debug().
		Str("path", report.Path).
		Int("loaded", report.Loaded).
		Int("skipped", len(report.Skipped)).
		Msg("catalog loaded")
	return nil
}

// Save rewrites the full backing store from memory. A no-op for in-memory
// catalogs.
func (c *catalog) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save()
}

// save rewrites the store. Callers must hold c.mu.
func (c *catalog) save() error {
	if c.store == nil {
		return nil
	}
	return c.store.Save(c.products.List())
}

// LoadReport returns details of the most recent Load. Nil before the first
// load and for in-memory catalogs.
func (c *catalog) LoadReport() *LoadReport {
	return c.report
}
