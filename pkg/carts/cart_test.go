package carts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockyard/stockyard/pkg/catalogs"
	"github.com/stockyard/stockyard/pkg/errors"
	"github.com/stockyard/stockyard/pkg/logging"
)

func newCatalog(t *testing.T) catalogs.Catalog {
	t.Helper()
	cat, err := catalogs.New(catalogs.WithLogger(logging.Nop))
	require.NoError(t, err)
	return cat
}

func newFileCatalog(t *testing.T) (catalogs.Catalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.txt")
	cat, err := catalogs.New(catalogs.WithPath(path), catalogs.WithLogger(logging.Nop))
	require.NoError(t, err)
	return cat, path
}

func addProduct(t *testing.T, cat catalogs.Catalog, id int, name, price string, stock int) {
	t.Helper()
	p, err := catalogs.NewProduct(id, name, "", decimal.RequireFromString(price), stock, catalogs.CategoryElectronics)
	require.NoError(t, err)
	require.NoError(t, cat.Add(p))
}

func TestCartAddItem(t *testing.T) {
	cat := newCatalog(t)
	addProduct(t, cat, 10001, "Keyboard", "49.90", 5)
	cart := New(cat, WithLogger(logging.Nop))

	t.Run("stages within stock", func(t *testing.T) {
		require.NoError(t, cart.AddItem(10001, 3))
		assert.Equal(t, 3, cart.TotalItems())
	})

	t.Run("cumulative staging exceeding stock fails", func(t *testing.T) {
		err := cart.AddItem(10001, 3)
		assert.True(t, errors.IsInsufficientStock(err))
		assert.Equal(t, 3, cart.TotalItems(), "failed add leaves staging unchanged")
	})

	t.Run("staging never touches catalog stock", func(t *testing.T) {
		p, err := cat.Get(10001)
		require.NoError(t, err)
		assert.Equal(t, 5, p.Stock)
	})

	t.Run("unknown product", func(t *testing.T) {
		err := cart.AddItem(20000, 1)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		assert.True(t, errors.IsValidationError(cart.AddItem(10001, 0)))
		assert.True(t, errors.IsValidationError(cart.AddItem(10001, -2)))
	})
}

func TestCartRemoveItem(t *testing.T) {
	cat := newCatalog(t)
	addProduct(t, cat, 10001, "Keyboard", "49.90", 5)
	cart := New(cat, WithLogger(logging.Nop))

	require.NoError(t, cart.AddItem(10001, 2))
	cart.RemoveItem(10001)
	assert.Equal(t, 0, cart.Len())

	// Absent id is a no-op.
	cart.RemoveItem(20000)
	assert.Equal(t, 0, cart.Len())
}

func TestCartUpdateQuantity(t *testing.T) {
	cat := newCatalog(t)
	addProduct(t, cat, 10001, "Keyboard", "49.90", 5)
	cart := New(cat, WithLogger(logging.Nop))
	require.NoError(t, cart.AddItem(10001, 2))

	t.Run("replaces rather than accumulates", func(t *testing.T) {
		require.NoError(t, cart.UpdateQuantity(10001, 4))
		assert.Equal(t, 4, cart.TotalItems())
	})

	t.Run("over stock fails", func(t *testing.T) {
		err := cart.UpdateQuantity(10001, 6)
		assert.True(t, errors.IsInsufficientStock(err))
		assert.Equal(t, 4, cart.TotalItems())
	})

	t.Run("zero removes the line", func(t *testing.T) {
		require.NoError(t, cart.UpdateQuantity(10001, 0))
		assert.Equal(t, 0, cart.Len())
	})
}

func TestCartItems(t *testing.T) {
	cat := newCatalog(t)
	addProduct(t, cat, 10002, "Mouse", "19.90", 8)
	addProduct(t, cat, 10001, "Keyboard", "49.90", 5)
	cart := New(cat, WithLogger(logging.Nop))

	require.NoError(t, cart.AddItem(10002, 1))
	require.NoError(t, cart.AddItem(10001, 2))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 10001, items[0].Product.ID, "lines come back in id order")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 10002, items[1].Product.ID)

	t.Run("deleted products drop out of the view", func(t *testing.T) {
		removed, err := cat.Remove(10002)
		require.NoError(t, err)
		require.True(t, removed)
		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 10001, items[0].Product.ID)
	})
}

func TestCartTotals(t *testing.T) {
	cat := newCatalog(t)
	addProduct(t, cat, 10001, "Keyboard", "49.90", 5)
	addProduct(t, cat, 10002, "Mouse", "19.90", 8)
	cart := New(cat, WithLogger(logging.Nop))

	require.NoError(t, cart.AddItem(10001, 2))
	require.NoError(t, cart.AddItem(10002, 3))

	assert.Equal(t, 5, cart.TotalItems())
	assert.True(t, cart.TotalPrice().Equal(decimal.RequireFromString("159.50")),
		"2*49.90 + 3*19.90, got %s", cart.TotalPrice())
}

func TestCartCheckout(t *testing.T) {
	cat, path := newFileCatalog(t)
	addProduct(t, cat, 10001, "Keyboard", "49.90", 5)
	addProduct(t, cat, 10002, "Mouse", "19.90", 8)
	cart := New(cat, WithLogger(logging.Nop))

	require.NoError(t, cart.AddItem(10001, 5))
	require.NoError(t, cart.AddItem(10002, 3))
	require.NoError(t, cart.Checkout())

	t.Run("stock decremented", func(t *testing.T) {
		p, err := cat.Get(10001)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock)

		p, err = cat.Get(10002)
		require.NoError(t, err)
		assert.Equal(t, 5, p.Stock)
	})

	t.Run("cart cleared", func(t *testing.T) {
		assert.Equal(t, 0, cart.Len())
	})

	t.Run("decrements persisted", func(t *testing.T) {
		reloaded, err := catalogs.New(catalogs.WithPath(path), catalogs.WithLogger(logging.Nop))
		require.NoError(t, err)
		p, err := reloaded.Get(10001)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock)
	})
}

func TestCartCheckoutEmpty(t *testing.T) {
	cat, path := newFileCatalog(t)
	cart := New(cat, WithLogger(logging.Nop))

	// The store file only appears on the first save, so its absence after
	// checkout proves nothing was persisted.
	require.NoError(t, cart.Checkout())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "empty checkout writes nothing")
}

func TestCartCheckoutFailsWhole(t *testing.T) {
	t.Run("product deleted after staging", func(t *testing.T) {
		cat := newCatalog(t)
		addProduct(t, cat, 10001, "Keyboard", "49.90", 5)
		addProduct(t, cat, 10002, "Mouse", "19.90", 8)
		cart := New(cat, WithLogger(logging.Nop))

		require.NoError(t, cart.AddItem(10001, 2))
		require.NoError(t, cart.AddItem(10002, 1))
		removed, err := cat.Remove(10002)
		require.NoError(t, err)
		require.True(t, removed)

		err = cart.Checkout()
		assert.True(t, errors.IsNotFound(err))

		p, getErr := cat.Get(10001)
		require.NoError(t, getErr)
		assert.Equal(t, 5, p.Stock, "no partial decrement")
		assert.Equal(t, 2, cart.Len(), "failed checkout keeps the cart intact")
	})

	t.Run("stock drained after staging", func(t *testing.T) {
		cat := newCatalog(t)
		addProduct(t, cat, 10001, "Keyboard", "49.90", 5)
		addProduct(t, cat, 10002, "Mouse", "19.90", 8)
		cart := New(cat, WithLogger(logging.Nop))

		require.NoError(t, cart.AddItem(10001, 2))
		require.NoError(t, cart.AddItem(10002, 4))
		_, err := cat.AdjustStock(10002, -6)
		require.NoError(t, err)

		err = cart.Checkout()
		assert.True(t, errors.IsInsufficientStock(err))

		p, getErr := cat.Get(10001)
		require.NoError(t, getErr)
		assert.Equal(t, 5, p.Stock, "no partial decrement")
	})
}
