package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockyard/stockyard/pkg/errors"
)

func TestParseCheckoutArg(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, qty, err := parseCheckoutArg("10001=2")
		require.NoError(t, err)
		assert.Equal(t, 10001, id)
		assert.Equal(t, 2, qty)
	})

	tests := []struct {
		name string
		arg  string
	}{
		{"missing separator", "10001"},
		{"bad id", "abc=2"},
		{"bad quantity", "10001=two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseCheckoutArg(tt.arg)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
