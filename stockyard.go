// Package stockyard provides the main entry point for the stockyard product
// catalog system. It wires a durable product catalog to shopping carts that
// perform validated, all-or-nothing stock transfers at checkout.
//
// Example usage:
//
//	yard, err := stockyard.New(stockyard.WithPath("products.txt"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	catalog := yard.Catalog()
//	for _, product := range catalog.List() {
//	    fmt.Printf("%d %s\n", product.ID, product.Name)
//	}
//
//	cart := yard.Cart()
//	if err := cart.AddItem(10001, 2); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cart.Checkout(); err != nil {
//	    log.Fatal(err)
//	}
package stockyard

import (
	"github.com/stockyard/stockyard/pkg/carts"
	"github.com/stockyard/stockyard/pkg/catalogs"
	"github.com/stockyard/stockyard/pkg/errors"
)

// Client binds a catalog to the carts it hands out. There is no ambient
// singleton: construct one client at startup and pass it to every
// collaborator.
type Client struct {
	options *options
	catalog catalogs.Catalog
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (*Client, error) {
	options := defaults().apply(opts...)

	catalogOpts := []catalogs.Option{
		catalogs.WithLogger(options.logger),
	}
	if options.path != "" {
		catalogOpts = append(catalogOpts, catalogs.WithPath(options.path))
	}
	if options.readOnly {
		catalogOpts = append(catalogOpts, catalogs.WithReadOnly())
	}

	catalog, err := catalogs.New(catalogOpts...)
	if err != nil {
		return nil, errors.WrapResource("create", "catalog", options.path, err)
	}

	return &Client{
		options: options,
		catalog: catalog,
	}, nil
}

// Catalog returns the authoritative catalog.
func (c *Client) Catalog() catalogs.Catalog {
	return c.catalog
}

// Cart returns a new empty cart bound to the catalog. Carts are
// per-session; hand one to each purchase flow.
func (c *Client) Cart() *carts.Cart {
	return carts.New(c.catalog, carts.WithLogger(c.options.logger))
}
