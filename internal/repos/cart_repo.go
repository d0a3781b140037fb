package repos

import (
	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/storage"
)

type CartRepo struct{ store storage.Store }

func NewCartRepo(store storage.Store) *CartRepo { return &CartRepo{store: store} }

// Load returns the cart, or an empty cart when nothing usable is stored.
func (r *CartRepo) Load() []domain.CartItem {
	return storage.LoadSlice(r.store, CartKey, []domain.CartItem{})
}

func (r *CartRepo) Save(items []domain.CartItem) {
	storage.SaveSlice(r.store, CartKey, items)
}

// Clear drops the cart key entirely.
func (r *CartRepo) Clear() {
	storage.Remove(r.store, CartKey)
}
