package catalogs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadMissingFile(t *testing.T) {
	s := newStore(filepath.Join(t.TempDir(), "absent.txt"))

	products, report, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, 0, report.Loaded)
	assert.Empty(t, report.Skipped)
}

func TestStoreSaveLoad(t *testing.T) {
	s := newStore(filepath.Join(t.TempDir(), "products.txt"))

	want := []Product{
		mustProduct(t, 10001, "Keyboard", "49.90", 12, CategoryElectronics),
		mustProduct(t, 10002, "Shampoo", "4.25", 40, CategoryCare),
	}
	require.NoError(t, s.Save(want))

	got, report, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.True(t, want[0].Price.Equal(got[0].Price))
	assert.Equal(t, want[1].Category, got[1].Category)
}

func TestStorePlainRecordsStayUnquoted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	s := newStore(path)

	require.NoError(t, s.Save([]Product{
		mustProduct(t, 10001, "Keyboard", "49.9", 12, CategoryElectronics),
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "10001,Keyboard,,49.9,12,ELECTRONICS\n", string(data),
		"comma-free fields keep the legacy unquoted layout")
}

func TestStoreQuotesFreeTextWithCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	s := newStore(path)

	p, err := NewProduct(10001, "Cheese, aged", "Sharp, crumbly",
		decimal.RequireFromString("8.75"), 6, CategoryFood)
	require.NoError(t, err)
	require.NoError(t, s.Save([]Product{p}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"Cheese, aged"`))

	got, report, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, "Cheese, aged", got[0].Name)
	assert.Equal(t, "Sharp, crumbly", got[0].Description)
}

func TestStoreLoadLegacyUnquotedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	content := "10001,Keyboard,Mechanical keyboard,49.9,12,ELECTRONICS\n" +
		"10002,Shampoo,,4.25,40,CARE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	got, report, err := newStore(path).Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, "Mechanical keyboard", got[0].Description)
}

func TestStoreLoadSkipsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "10001,Keyboard,49.9,12,ELECTRONICS"},
		{"too many fields", "10001,Keyboard,a,b,49.9,12,ELECTRONICS"},
		{"bad id", "abc,Keyboard,,49.9,12,ELECTRONICS"},
		{"id out of range", "999,Keyboard,,49.9,12,ELECTRONICS"},
		{"bad price", "10001,Keyboard,,cheap,12,ELECTRONICS"},
		{"negative price", "10001,Keyboard,,-1,12,ELECTRONICS"},
		{"bad stock", "10001,Keyboard,,49.9,dozen,ELECTRONICS"},
		{"negative stock", "10001,Keyboard,,49.9,-3,ELECTRONICS"},
		{"unknown category", "10001,Keyboard,,49.9,12,GADGETS"},
		{"blank name", "10001,   ,,49.9,12,ELECTRONICS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "products.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.line+"\n"), 0644))

			got, report, err := newStore(path).Load()
			require.NoError(t, err)
			assert.Empty(t, got)
			require.Len(t, report.Skipped, 1)
			assert.Equal(t, 1, report.Skipped[0].Line)
			assert.NotEmpty(t, report.Skipped[0].Reason)
		})
	}
}

func TestStoreLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	content := "\n10001,Keyboard,,49.9,12,ELECTRONICS\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	got, report, err := newStore(path).Load()
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Empty(t, report.Skipped, "blank lines are not recorded as skips")
}

func TestStoreSaveReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	s := newStore(path)

	require.NoError(t, s.Save([]Product{
		mustProduct(t, 10001, "Keyboard", "49.9", 12, CategoryElectronics),
		mustProduct(t, 10002, "Shampoo", "4.25", 40, CategoryCare),
	}))
	require.NoError(t, s.Save([]Product{
		mustProduct(t, 10001, "Keyboard", "49.9", 11, CategoryElectronics),
	}))

	got, _, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1, "save is a full rewrite, not an append")
	assert.Equal(t, 11, got[0].Stock)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
