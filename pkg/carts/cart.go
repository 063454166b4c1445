// Package carts provides the shopping cart: a transient staging area of
// per-product purchase intents that resolves against a catalog and commits
// stock decrements through a validated, two-phase checkout.
//
// A cart never owns product data. It holds identifiers and quantities;
// products are fetched from the catalog at read time and again at checkout
// time, because stock may have changed between staging and commit.
package carts

import (
	"sort"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/stockyard/stockyard/pkg/catalogs"
	"github.com/stockyard/stockyard/pkg/errors"
	"github.com/stockyard/stockyard/pkg/logging"
)

// Line is one staged cart entry resolved against the catalog.
type Line struct {
	Product  catalogs.Product
	Quantity int
}

// Cart stages quantities per product id against a catalog. All operations
// are safe for concurrent callers; checkout holds the cart lock across both
// phases.
type Cart struct {
	catalog catalogs.Catalog
	logger  zerolog.Logger

	mu    sync.Mutex
	lines map[int]int // product id -> staged quantity
}

// Option configures a cart during construction.
type Option func(*Cart)

// WithLogger sets the logger used for cart events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cart) {
		c.logger = logger
	}
}

// New creates an empty cart bound to the given catalog.
func New(catalog catalogs.Catalog, opts ...Option) *Cart {
	cart := &Cart{
		catalog: catalog,
		logger:  *logging.Default(),
		lines:   make(map[int]int),
	}
	for _, opt := range opts {
		opt(cart)
	}
	return cart
}

// AddItem stages qty more units of the product. The requested quantity plus
// whatever the cart already stages for that id must fit within the
// product's live stock: staging is checked cumulatively, so two adds that
// individually fit but jointly exceed stock fail on the second add rather
// than surviving until checkout.
func (c *Cart) AddItem(id, qty int) error {
	if qty <= 0 {
		return errors.NewValidationError("quantity", qty, "must be positive")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	product, err := c.catalog.Get(id)
	if err != nil {
		return err
	}

	staged := c.lines[id]
	if staged+qty > product.Stock {
		return errors.NewInsufficientStockError(id, staged+qty, product.Stock)
	}

	c.lines[id] = staged + qty
	c.logger.Debug().
		Int("id", id).
		Int("qty", qty).
		Int("staged", c.lines[id]).
		Msg("item staged")
	return nil
}

// RemoveItem drops the staged line for the product. Absent ids are a no-op.
func (c *Cart) RemoveItem(id int) {
	c.mu.Lock()
	delete(c.lines, id)
	c.mu.Unlock()
}

// UpdateQuantity replaces the staged quantity for the product. A quantity
// of zero or less is equivalent to RemoveItem; otherwise the new quantity
// is re-validated against live stock.
func (c *Cart) UpdateQuantity(id, qty int) error {
	if qty <= 0 {
		c.RemoveItem(id)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	product, err := c.catalog.Get(id)
	if err != nil {
		return err
	}
	if qty > product.Stock {
		return errors.NewInsufficientStockError(id, qty, product.Stock)
	}

	c.lines[id] = qty
	return nil
}

// Clear empties all staged lines.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = make(map[int]int)
	c.mu.Unlock()
}

// Len returns the number of staged lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Items resolves the staged lines against the catalog and returns them in
// id order. Lines whose product has since been deleted are silently dropped
// from the view; the cart does not reconcile its own state when that
// happens, checkout will simply report the missing product.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolve()
}

// resolve builds the resolved line view. Callers must hold c.mu.
func (c *Cart) resolve() []Line {
	lines := []Line{}
	for id, qty := range c.lines {
		product, err := c.catalog.Get(id)
		if err != nil {
			continue
		}
		lines = append(lines, Line{Product: product, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Product.ID < lines[j].Product.ID
	})
	return lines
}

// TotalItems returns the sum of quantities across resolved lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.resolve() {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the sum of unit price times quantity across resolved
// lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, line := range c.resolve() {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Checkout converts the staged lines into authoritative stock decrements.
//
// Phase 1 re-fetches every staged product and validates its quantity
// against live stock; any missing product or shortfall fails the whole
// checkout with nothing mutated. Phase 2 commits all decrements through the
// catalog's batch update, which persists them as a single step, then clears
// the cart.
//
// An empty cart checks out trivially and touches no persistence. The batch
// commit leaves no observable partial state within a process; the residual
// risk is a crash in the middle of the store rewrite itself.
func (c *Cart) Checkout() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return nil
	}

	// Phase 1: validate every line against live stock. No mutation here.
	updates := make([]catalogs.Product, 0, len(c.lines))
	for id, qty := range c.lines {
		product, err := c.catalog.Get(id)
		if err != nil {
			return errors.WrapResource("checkout", "product", strconv.Itoa(id), err)
		}
		if qty > product.Stock {
			return errors.NewInsufficientStockError(id, qty, product.Stock)
		}
		updated, err := product.WithStock(product.Stock - qty)
		if err != nil {
			return err
		}
		updates = append(updates, updated)
	}

	// Phase 2: commit every decrement in one persisted batch.
	if err := c.catalog.UpdateBatch(updates); err != nil {
		return errors.WrapResource("checkout", "cart", "", err)
	}

	c.logger.Info().
		Int("lines", len(updates)).
		Msg("checkout committed")
	c.lines = make(map[int]int)
	return nil
}
