package services

import (
	"errors"
	"sync"
	"time"

	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/metrics"
	"bikeaccessories/internal/repos"
)

var ErrEmptyCart = errors.New("cart empty")

type OrderService struct {
	Orders *repos.OrderRepo
	Cart   *CartService
	Now    func() time.Time

	mu sync.Mutex
}

func NewOrderService(orders *repos.OrderRepo, cart *CartService) *OrderService {
	return &OrderService{Orders: orders, Cart: cart, Now: time.Now}
}

// CreateOrder snapshots items into a pending order, appends it to the
// order history and clears the cart. The two writes are independent: the
// cart is cleared even if saving the order history failed. Empty items are
// accepted.
func (s *OrderService) CreateOrder(items []domain.CartItem, info domain.CustomerInfo) domain.Order {
	order := s.record(items, info)
	s.Cart.ClearCart()
	return order
}

// Checkout places an order for the current cart. The cart is held from
// the read until it is cleared.
func (s *OrderService) Checkout(info domain.CustomerInfo) (domain.Order, error) {
	var order domain.Order
	err := s.Cart.checkout(func(items []domain.CartItem) error {
		if len(items) == 0 {
			return ErrEmptyCart
		}
		order = s.record(items, info)
		return nil
	})
	return order, err
}

func (s *OrderService) record(items []domain.CartItem, info domain.CustomerInfo) domain.Order {
	now := s.Now()
	order := domain.NewOrder(domain.NewOrderID(now), items, info, now)

	s.mu.Lock()
	orders := append(s.Orders.Load(), order)
	s.Orders.Save(orders)
	s.mu.Unlock()

	metrics.OrdersCreated.Inc()
	return order
}

func (s *OrderService) GetOrderByID(id string) (domain.Order, bool) {
	return s.Orders.Get(id)
}

func (s *OrderService) ListOrders() []domain.Order {
	return s.Orders.Load()
}
