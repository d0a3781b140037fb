package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeaccessories/internal/domain"
)

func TestCartTotal(t *testing.T) {
	assert.Equal(t, 0.0, domain.CartTotal(nil))
	assert.Equal(t, 0.0, domain.CartTotal([]domain.CartItem{}))

	items := []domain.CartItem{
		{ProductID: "led-light", Price: 24.50, Quantity: 2},
		{ProductID: "helmet-pro", Price: 79.99, Quantity: 1},
	}
	assert.Equal(t, 128.99, domain.CartTotal(items))
	assert.Equal(t, 3, domain.CartItemCount(items))
}

func TestAddCartItemMerges(t *testing.T) {
	helmet := domain.CartItemFrom(domain.DefaultInventory()[0], 0)

	split := domain.AddCartItem(nil, helmet, 2)
	split = domain.AddCartItem(split, helmet, 3)
	once := domain.AddCartItem(nil, helmet, 5)

	require.Len(t, split, 1)
	assert.Equal(t, once, split)
	assert.Equal(t, 5, split[0].Quantity)
	assert.Equal(t, "Place A", split[0].Location.Zone)
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	inv := domain.DefaultInventory()
	cart := domain.AddCartItem(nil, domain.CartItemFrom(inv[0], 1), 1)
	cart = domain.AddCartItem(cart, domain.CartItemFrom(inv[1], 1), 4)

	assert.Equal(t, domain.RemoveCartItem(cart, inv[0].ID), domain.SetCartItemQuantity(cart, inv[0].ID, 0))
	assert.Equal(t, domain.RemoveCartItem(cart, inv[0].ID), domain.SetCartItemQuantity(cart, inv[0].ID, -3))

	updated := domain.SetCartItemQuantity(cart, inv[1].ID, 9)
	assert.Equal(t, 9, updated[1].Quantity)
	assert.Equal(t, 4, cart[1].Quantity, "input must not be mutated")
}

func TestNewOrderSnapshotsItems(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	items := []domain.CartItem{{ProductID: "a", Price: 10, Quantity: 2}}

	o := domain.NewOrder("order-1", items, domain.CustomerInfo{Name: "Ada"}, now)
	items[0].Quantity = 99

	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, 20.0, o.Total)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, "2026-03-01T12:30:00.000Z", o.CreatedAt)
	assert.Equal(t, o.CreatedAt, o.UpdatedAt)
}
