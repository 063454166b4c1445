package catalogs

import (
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"

	"github.com/stockyard/stockyard/pkg/errors"
)

// snapshot is the YAML document written by Export and read by Import.
// Prices travel as strings to keep decimal exactness.
type snapshot struct {
	Products []snapshotProduct `yaml:"products"`
}

type snapshotProduct struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Price       string `yaml:"price"`
	Stock       int    `yaml:"stock"`
	Category    string `yaml:"category"`
}

// Export writes the whole catalog as a YAML snapshot, products in id order.
// Snapshots are the structured alternative to the line store: use them for
// backups or to migrate a store file to an escaped format.
func Export(w io.Writer, source Reader) error {
	snap := snapshot{Products: []snapshotProduct{}}
	for _, product := range source.List() {
		snap.Products = append(snap.Products, snapshotProduct{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price.String(),
			Stock:       product.Stock,
			Category:    product.Category.Code(),
		})
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return errors.WrapParse("yaml", "", err)
	}
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", "snapshot", err)
	}
	return nil
}

// Import reads a YAML snapshot and adds every product to the target catalog.
// Unlike the permissive line-store load, import is strict: every record is
// validated before any product is added, and any bad record fails the whole
// import. Adding stops at the first catalog error (such as a duplicate id).
func Import(r io.Reader, target Catalog) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.WrapIO("read", "snapshot", err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return errors.WrapParse("yaml", "", err)
	}

	products := make([]Product, 0, len(snap.Products))
	for _, record := range snap.Products {
		price, err := decimal.NewFromString(record.Price)
		if err != nil {
			return errors.NewValidationError("price", record.Price, "not a decimal number")
		}
		category, err := ParseCategory(record.Category)
		if err != nil {
			return err
		}
		product, err := NewProduct(record.ID, record.Name, record.Description, price, record.Stock, category)
		if err != nil {
			return err
		}
		products = append(products, product)
	}

	for _, product := range products {
		if err := target.Add(product); err != nil {
			return errors.WrapResource("import", "product", strconv.Itoa(product.ID), err)
		}
	}
	return nil
}
