package catalogs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockyard/stockyard/pkg/errors"
)

func TestExportImportRoundTrip(t *testing.T) {
	source := newMemoryCatalog(t)
	require.NoError(t, source.Add(mustProduct(t, 10001, "Keyboard", "49.90", 12, CategoryElectronics)))
	require.NoError(t, source.Add(mustProduct(t, 10002, "Cheese, aged", "8.75", 6, CategoryFood)))

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, source))
	assert.True(t, strings.Contains(buf.String(), "Keyboard"))
	assert.True(t, strings.Contains(buf.String(), "ELECTRONICS"), "snapshot stores category codes")

	target := newMemoryCatalog(t)
	require.NoError(t, Import(&buf, target))

	require.Equal(t, 2, target.Len())
	got, err := target.Get(10002)
	require.NoError(t, err)
	assert.Equal(t, "Cheese, aged", got.Name)
	assert.True(t, got.Price.Equal(mustProduct(t, 10002, "x", "8.75", 1, CategoryFood).Price))
}

func TestExportEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, newMemoryCatalog(t)))

	target := newMemoryCatalog(t)
	require.NoError(t, Import(&buf, target))
	assert.Equal(t, 0, target.Len())
}

func TestImportIsStrict(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		target := newMemoryCatalog(t)
		err := Import(strings.NewReader("products: [not a map"), target)
		assert.Error(t, err)
		assert.Equal(t, 0, target.Len())
	})

	t.Run("bad record fails before anything is added", func(t *testing.T) {
		doc := `products:
  - id: 10001
    name: Keyboard
    price: "49.90"
    stock: 12
    category: ELECTRONICS
  - id: 10002
    name: Ghost
    price: "cheap"
    stock: 1
    category: OTHERS
`
		target := newMemoryCatalog(t)
		err := Import(strings.NewReader(doc), target)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, 0, target.Len(), "strict import adds nothing on failure")
	})

	t.Run("duplicate against target", func(t *testing.T) {
		target := newMemoryCatalog(t)
		require.NoError(t, target.Add(mustProduct(t, 10001, "Keyboard", "49.90", 12, CategoryElectronics)))

		doc := `products:
  - id: 10001
    name: Keyboard
    price: "49.90"
    stock: 12
    category: ELECTRONICS
`
		err := Import(strings.NewReader(doc), target)
		assert.True(t, errors.IsAlreadyExists(err))
	})
}
