package catalogs

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockyard/stockyard/pkg/errors"
)

func mustProduct(t *testing.T, id int, name string, price string, stock int, category Category) Product {
	t.Helper()
	p, err := NewProduct(id, name, "", decimal.RequireFromString(price), stock, category)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := NewProduct(10001, "Keyboard", "Mechanical, US layout",
			decimal.RequireFromString("49.90"), 12, CategoryElectronics)
		require.NoError(t, err)
		assert.Equal(t, 10001, p.ID)
		assert.Equal(t, "Keyboard", p.Name)
		assert.Equal(t, 12, p.Stock)
		assert.Equal(t, CategoryElectronics, p.Category)
	})

	t.Run("id below range", func(t *testing.T) {
		_, err := NewProduct(9999, "Keyboard", "", decimal.NewFromInt(1), 1, CategoryElectronics)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("id above range", func(t *testing.T) {
		_, err := NewProduct(100000, "Keyboard", "", decimal.NewFromInt(1), 1, CategoryElectronics)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := NewProduct(10001, "   ", "", decimal.NewFromInt(1), 1, CategoryElectronics)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("multiline name", func(t *testing.T) {
		_, err := NewProduct(10001, "Key\nboard", "", decimal.NewFromInt(1), 1, CategoryElectronics)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := NewProduct(10001, "Keyboard", "", decimal.NewFromInt(-1), 1, CategoryElectronics)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("negative stock", func(t *testing.T) {
		_, err := NewProduct(10001, "Keyboard", "", decimal.NewFromInt(1), -1, CategoryElectronics)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := NewProduct(10001, "Keyboard", "", decimal.NewFromInt(1), 1, Category("GADGETS"))
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("zero price and stock are valid", func(t *testing.T) {
		_, err := NewProduct(10001, "Sample", "", decimal.Zero, 0, CategoryOthers)
		assert.NoError(t, err)
	})
}

func TestProductWithStock(t *testing.T) {
	p := mustProduct(t, 10001, "Keyboard", "49.90", 5, CategoryElectronics)

	updated, err := p.WithStock(0)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, 5, p.Stock, "original value unchanged")

	_, err = p.WithStock(-1)
	assert.True(t, errors.IsValidationError(err))
}

func TestProductNameEquals(t *testing.T) {
	p := mustProduct(t, 10001, "Keyboard", "1", 1, CategoryElectronics)
	assert.True(t, p.NameEquals("keyboard"))
	assert.True(t, p.NameEquals("KEYBOARD"))
	assert.False(t, p.NameEquals("mouse"))
}

func TestCategory(t *testing.T) {
	t.Run("parse known codes", func(t *testing.T) {
		for _, category := range Categories() {
			parsed, err := ParseCategory(category.Code())
			require.NoError(t, err)
			assert.Equal(t, category, parsed)
		}
	})

	t.Run("parse unknown code", func(t *testing.T) {
		_, err := ParseCategory("GADGETS")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("code and label stay distinct", func(t *testing.T) {
		assert.Equal(t, "CARE", CategoryCare.Code())
		assert.Equal(t, "Personal Care", CategoryCare.DisplayName())
	})

	t.Run("fixed set", func(t *testing.T) {
		assert.Len(t, Categories(), 6)
	})
}
