package repos

import (
	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/storage"
)

type OrderRepo struct{ store storage.Store }

func NewOrderRepo(store storage.Store) *OrderRepo { return &OrderRepo{store: store} }

// Load returns all orders in creation order.
func (r *OrderRepo) Load() []domain.Order {
	return storage.LoadSlice(r.store, OrdersKey, []domain.Order{})
}

func (r *OrderRepo) Save(orders []domain.Order) {
	storage.SaveSlice(r.store, OrdersKey, orders)
}

// Get scans the persisted orders for id.
func (r *OrderRepo) Get(id string) (domain.Order, bool) {
	return domain.FindOrder(r.Load(), id)
}
