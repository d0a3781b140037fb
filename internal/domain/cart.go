package domain

import (
	"slices"
	"time"
)

// CartItemFrom snapshots a product into a cart line with the given quantity.
func CartItemFrom(p InventoryItem, quantity int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
		Location:  CartLocation{Zone: p.Location.Zone},
	}
}

// AddCartItem merges item into cart: an existing line with the same product
// id has its quantity increased by quantity, otherwise a new line is
// appended. item.Quantity is ignored.
func AddCartItem(cart []CartItem, item CartItem, quantity int) []CartItem {
	out := slices.Clone(cart)
	for i := range out {
		if out[i].ProductID == item.ProductID {
			out[i].Quantity += quantity
			return out
		}
	}
	item.Quantity = quantity
	return append(out, item)
}

func RemoveCartItem(cart []CartItem, productID string) []CartItem {
	out := make([]CartItem, 0, len(cart))
	for _, it := range cart {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// SetCartItemQuantity overwrites a line's quantity; a quantity of zero or
// less removes the line.
func SetCartItemQuantity(cart []CartItem, productID string, quantity int) []CartItem {
	if quantity <= 0 {
		return RemoveCartItem(cart, productID)
	}
	out := slices.Clone(cart)
	if out == nil {
		out = []CartItem{}
	}
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
		}
	}
	return out
}

// NewOrder builds a pending order from a snapshot of items. The items slice
// is copied so later cart changes do not leak into the order.
func NewOrder(id string, items []CartItem, info CustomerInfo, now time.Time) Order {
	snapshot := make([]CartItem, len(items))
	copy(snapshot, items)
	ts := now.UTC().Format(TimestampLayout)
	return Order{
		ID:           id,
		Items:        snapshot,
		Total:        CartTotal(snapshot),
		CustomerInfo: info,
		Status:       StatusPending,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

func FindOrder(orders []Order, id string) (Order, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
