package catalogs

import (
	"maps"
	"sort"
	"strconv"
	"sync"

	"github.com/stockyard/stockyard/pkg/errors"
)

// Products is a concurrent safe map of products keyed by identifier.
type Products struct {
	mu       sync.RWMutex
	products map[int]Product
}

// NewProducts creates a new empty Products map.
func NewProducts() *Products {
	return &Products{
		products: make(map[int]Product),
	}
}

// Get returns a product by id and whether it exists.
func (p *Products) Get(id int) (Product, bool) {
	p.mu.RLock()
	product, ok := p.products[id]
	p.mu.RUnlock()
	return product, ok
}

// Set stores a product by id (upsert semantics).
func (p *Products) Set(product Product) {
	p.mu.Lock()
	p.products[product.ID] = product
	p.mu.Unlock()
}

// Add adds a product, returning an error if its id already exists.
func (p *Products) Add(product Product) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.products[product.ID]; exists {
		return errors.NewDuplicateError("product", "id", strconv.Itoa(product.ID))
	}

	p.products[product.ID] = product
	return nil
}

// Delete removes a product by id, reporting whether a deletion occurred.
func (p *Products) Delete(id int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.products[id]; !exists {
		return false
	}

	delete(p.products, id)
	return true
}

// Exists checks if a product exists without returning it.
func (p *Products) Exists(id int) bool {
	p.mu.RLock()
	_, exists := p.products[id]
	p.mu.RUnlock()
	return exists
}

// Len returns the number of products.
func (p *Products) Len() int {
	p.mu.RLock()
	length := len(p.products)
	p.mu.RUnlock()
	return length
}

// List returns all products ordered by id ascending. This is the catalog's
// canonical iteration order; every query result derives from it.
func (p *Products) List() []Product {
	p.mu.RLock()
	products := make([]Product, 0, len(p.products))
	for _, product := range p.products {
		products = append(products, product)
	}
	p.mu.RUnlock()

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})
	return products
}

// Map returns a copy of all products keyed by id.
func (p *Products) Map() map[int]Product {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make(map[int]Product, len(p.products))
	maps.Copy(result, p.products)
	return result
}

// SetBatch stores multiple products in a single operation (upsert behavior).
func (p *Products) SetBatch(products []Product) {
	if len(products) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, product := range products {
		p.products[product.ID] = product
	}
}

// Clear removes all products.
func (p *Products) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.products {
		delete(p.products, k)
	}
}
