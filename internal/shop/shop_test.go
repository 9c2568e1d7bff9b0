package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamber/internal/player"
)

func TestPurchase(t *testing.T) {
	s := player.NewState()

	item, err := Purchase(s, 1)
	require.NoError(t, err)
	assert.Equal(t, "Extra Life", item.Name)
	assert.Equal(t, player.StartBalance-50, s.Balance)
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	s := player.NewState()

	_, err := Purchase(s, 14) // $15000
	assert.ErrorIs(t, err, player.ErrInsufficientFund)
	assert.Equal(t, player.StartBalance, s.Balance)
}

func TestPurchaseUnknownItem(t *testing.T) {
	s := player.NewState()

	_, err := Purchase(s, 99)
	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Equal(t, player.StartBalance, s.Balance)
}

func TestCatalogIsCopy(t *testing.T) {
	items := Catalog()
	require.Len(t, items, 14)
	items[0].Price = 0

	assert.Equal(t, int64(50), Catalog()[0].Price)
}
