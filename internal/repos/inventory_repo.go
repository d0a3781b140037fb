package repos

import (
	"slices"

	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/storage"
)

// Storage keys. A format change takes a new key name; there is no
// migration between keys.
const (
	InventoryKey = "bikeaccessories.inventory.v1"
	CartKey      = "bikeaccessories.cart"
	OrdersKey    = "bikeaccessories.orders"
	PlacesKey    = "bikeaccessories.places.v1"
)

type InventoryRepo struct {
	store    storage.Store
	defaults []domain.InventoryItem
}

// NewInventoryRepo binds the inventory key of store. defaults is what Load
// returns until something valid has been saved; nil means the built-in
// catalog.
func NewInventoryRepo(store storage.Store, defaults []domain.InventoryItem) *InventoryRepo {
	if defaults == nil {
		defaults = domain.DefaultInventory()
	}
	return &InventoryRepo{store: store, defaults: defaults}
}

// Load returns the persisted inventory. A persisted empty array is a valid
// (empty) inventory.
func (r *InventoryRepo) Load() []domain.InventoryItem {
	return storage.LoadSlice(r.store, InventoryKey, slices.Clone(r.defaults))
}

func (r *InventoryRepo) Save(items []domain.InventoryItem) {
	storage.SaveSlice(r.store, InventoryKey, items)
}
