package product_test

import (
	"testing"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T) *product.Product {
	t.Helper()

	p, err := product.NewProduct(kernel.NewUUID(), "Mineral Water", "Purified mineral water", "20L", 80)
	require.NoError(t, err)
	return p
}

func TestNewProduct_Defaults(t *testing.T) {
	p := newTestProduct(t)

	assert.True(t, p.IsAvailable())
	assert.Equal(t, 80, p.Price())
	assert.Equal(t, 0, p.DiscountPrice())
	assert.Equal(t, 80, p.EffectivePrice())
}

func TestNewProduct_RejectsInvalidInput(t *testing.T) {
	_, err := product.NewProduct(kernel.NewUUID(), "", "", "20L", 80)
	require.ErrorIs(t, err, product.ErrNameIsRequired)

	_, err = product.NewProduct(kernel.NewUUID(), "Mineral Water", "", "", 80)
	require.ErrorIs(t, err, product.ErrSizeIsRequired)

	_, err = product.NewProduct(kernel.NewUUID(), "Mineral Water", "", "20L", -1)
	require.Error(t, err)

	_, err = product.NewProduct(kernel.UUID{}, "Mineral Water", "", "20L", 80)
	require.Error(t, err)
}

func TestProduct_EffectivePrice(t *testing.T) {
	p := newTestProduct(t)

	require.NoError(t, p.ApplyDiscountPrice(65))
	assert.Equal(t, 65, p.EffectivePrice())

	// a discount at or above the list price is ignored
	require.NoError(t, p.ApplyDiscountPrice(80))
	assert.Equal(t, 80, p.EffectivePrice())

	require.NoError(t, p.ApplyDiscountPrice(0))
	assert.Equal(t, 80, p.EffectivePrice())

	require.Error(t, p.ApplyDiscountPrice(-5))
}

func TestProduct_AvailabilityToggle(t *testing.T) {
	p := newTestProduct(t)

	p.MarkUnavailable()
	assert.False(t, p.IsAvailable())

	p.MarkAvailable()
	assert.True(t, p.IsAvailable())
}

func TestProduct_Rename(t *testing.T) {
	p := newTestProduct(t)

	require.NoError(t, p.Rename("Spring Water", "Natural spring water"))
	assert.Equal(t, "Spring Water", p.Name())
	assert.Equal(t, "Natural spring water", p.Description())

	require.ErrorIs(t, p.Rename("", ""), product.ErrNameIsRequired)
}

func TestRestoreProduct_RoundTrip(t *testing.T) {
	p := newTestProduct(t)
	require.NoError(t, p.ApplyDiscountPrice(65))
	p.MarkUnavailable()

	restored, err := product.RestoreProduct(
		p.ID(), p.Name(), p.Description(), p.Size(),
		p.Price(), p.DiscountPrice(), p.IsAvailable(),
	)

	require.NoError(t, err)
	assert.True(t, p.IsEqual(restored))
	assert.Equal(t, 65, restored.EffectivePrice())
	assert.False(t, restored.IsAvailable())
}
