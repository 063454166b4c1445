package stockyard

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockyard/stockyard/pkg/catalogs"
	"github.com/stockyard/stockyard/pkg/errors"
	"github.com/stockyard/stockyard/pkg/logging"
)

func TestNewInMemory(t *testing.T) {
	yard, err := New(WithLogger(logging.Nop))
	require.NoError(t, err)
	require.NotNil(t, yard.Catalog())
	assert.Equal(t, 0, yard.Catalog().Len())
}

func TestClientEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")

	yard, err := New(WithPath(path), WithLogger(logging.Nop))
	require.NoError(t, err)
	catalog := yard.Catalog()

	id, err := catalog.GenerateID()
	require.NoError(t, err)

	product, err := catalogs.NewProduct(id, "Keyboard", "Mechanical, US layout",
		decimal.RequireFromString("49.90"), 5, catalogs.CategoryElectronics)
	require.NoError(t, err)
	require.NoError(t, catalog.Add(product))

	cart := yard.Cart()
	require.NoError(t, cart.AddItem(id, 2))
	require.NoError(t, cart.Checkout())

	// A fresh client over the same store sees the committed decrement.
	reopened, err := New(WithPath(path), WithLogger(logging.Nop))
	require.NoError(t, err)
	got, err := reopened.Catalog().Get(id)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)
}

func TestClientCartsShareTheCatalog(t *testing.T) {
	yard, err := New(WithLogger(logging.Nop))
	require.NoError(t, err)

	product, err := catalogs.NewProduct(10001, "Keyboard", "",
		decimal.RequireFromString("49.90"), 5, catalogs.CategoryElectronics)
	require.NoError(t, err)
	require.NoError(t, yard.Catalog().Add(product))

	first := yard.Cart()
	second := yard.Cart()
	require.NotSame(t, first, second, "each call hands out a fresh cart")

	require.NoError(t, first.AddItem(10001, 5))
	require.NoError(t, first.Checkout())

	// The second cart validates against the same drained stock.
	err = second.AddItem(10001, 1)
	assert.True(t, errors.IsInsufficientStock(err))
}

func TestClientReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")

	seed, err := New(WithPath(path), WithLogger(logging.Nop))
	require.NoError(t, err)
	product, err := catalogs.NewProduct(10001, "Keyboard", "",
		decimal.RequireFromString("49.90"), 5, catalogs.CategoryElectronics)
	require.NoError(t, err)
	require.NoError(t, seed.Catalog().Add(product))

	yard, err := New(WithPath(path), WithReadOnly(), WithLogger(logging.Nop))
	require.NoError(t, err)

	got, err := yard.Catalog().Get(10001)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", got.Name)

	err = yard.Catalog().Add(product)
	assert.ErrorIs(t, err, errors.ErrReadOnly)

	cart := yard.Cart()
	require.NoError(t, cart.AddItem(10001, 1))
	err = cart.Checkout()
	assert.ErrorIs(t, err, errors.ErrReadOnly, "checkout cannot commit against a read-only catalog")
}
