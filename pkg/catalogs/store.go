package catalogs

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stockyard/stockyard/pkg/constants"
	"github.com/stockyard/stockyard/pkg/errors"
)

// store reads and writes the line-oriented product store: one record per
// line, six comma-separated fields in fixed order
//
//	id,name,description,price,stock,category-code
//
// with no header. Fields are quoted per RFC 4180 when they contain commas
// or quotes, so free text survives round-trips; legacy files written
// without quoting still parse. Category is stored by its symbolic code,
// never its display label.
type store struct {
	path string
}

// newStore creates a store for the given path.
func newStore(path string) *store {
	return &store{path: path}
}

// LoadReport records the outcome of a store load. Skipped records are a
// best-effort recovery, not a correctness guarantee; the report keeps the
// data loss observable.
type LoadReport struct {
	Path    string
	Loaded  int
	Skipped []SkippedRecord
}

// SkippedRecord identifies one malformed store line that load discarded.
type SkippedRecord struct {
	Line   int
	Reason string
}

// Load reads every well-formed record from the store. A missing file is an
// empty catalog, not an error. Malformed lines (wrong field count, bad
// numbers, unknown category code, invalid field values) are skipped and
// recorded in the report rather than aborting the load.
func (s *store) Load() ([]Product, *LoadReport, error) {
	report := &LoadReport{Path: s.path}

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Product{}, report, nil
		}
		return nil, nil, errors.WrapIO("read", s.path, err)
	}
	defer file.Close()

	var products []Product
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		product, err := decodeRecord(text)
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedRecord{
				Line:   line,
				Reason: err.Error(),
			})
			continue
		}
		products = append(products, product)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.WrapIO("read", s.path, err)
	}

	report.Loaded = len(products)
	return products, report, nil
}

// Save rewrites the full store from the given products. The write goes to a
// temporary file in the same directory and is renamed into place, so a
// failed save never truncates the previous store.
func (s *store) Save(products []Product) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("mkdir", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", s.path, err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	for _, product := range products {
		if err := writer.Write(encodeRecord(product)); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return errors.WrapIO("write", s.path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapIO("write", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("close", s.path, err)
	}

	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("chmod", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("rename", s.path, err)
	}
	return nil
}

// encodeRecord converts a product into its six store fields.
func encodeRecord(product Product) []string {
	return []string{
		strconv.Itoa(product.ID),
		product.Name,
		product.Description,
		product.Price.String(),
		strconv.Itoa(product.Stock),
		product.Category.Code(),
	}
}

// decodeRecord parses one store line back into a validated Product.
func decodeRecord(text string) (Product, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	fields, err := reader.Read()
	if err != nil {
		return Product{}, fmt.Errorf("malformed record: %w", err)
	}
	if len(fields) != constants.StoreFieldCount {
		return Product{}, fmt.Errorf("expected %d fields, got %d", constants.StoreFieldCount, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Product{}, fmt.Errorf("bad id %q", fields[0])
	}
	price, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil {
		return Product{}, fmt.Errorf("bad price %q", fields[3])
	}
	stock, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil {
		return Product{}, fmt.Errorf("bad stock %q", fields[4])
	}
	category, err := ParseCategory(strings.TrimSpace(fields[5]))
	if err != nil {
		return Product{}, fmt.Errorf("unknown category code %q", fields[5])
	}

	return NewProduct(id, fields[1], fields[2], price, stock, category)
}
