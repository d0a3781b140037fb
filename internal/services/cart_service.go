package services

import (
	"sync"

	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/events"
	"bikeaccessories/internal/metrics"
	"bikeaccessories/internal/repos"
)

// CartService owns the persisted cart. Every mutation is followed by a
// events.CartUpdated publish carrying the new cart.
type CartService struct {
	Repo *repos.CartRepo
	Bus  *events.Bus

	mu sync.Mutex
}

func NewCartService(repo *repos.CartRepo, bus *events.Bus) *CartService {
	return &CartService{Repo: repo, Bus: bus}
}

func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Repo.Load()
}

func (s *CartService) mutate(action string, fn func([]domain.CartItem) []domain.CartItem) []domain.CartItem {
	s.mu.Lock()
	out := fn(s.Repo.Load())
	s.Repo.Save(out)
	s.mu.Unlock()

	metrics.CartEvents.WithLabelValues(action).Inc()
	s.Bus.Publish(events.CartUpdated, out)
	return out
}

// AddToCart merges item into the cart. Quantities below 1 count as 1, so
// adding a then b equals adding a+b only for a, b >= 1. Neither the
// quantity nor stock is bounded.
func (s *CartService) AddToCart(item domain.CartItem, qty int) []domain.CartItem {
	if qty < 1 {
		qty = 1
	}
	return s.mutate("add", func(cart []domain.CartItem) []domain.CartItem {
		return domain.AddCartItem(cart, item, qty)
	})
}

// AddProduct snapshots p into a cart line and adds it.
func (s *CartService) AddProduct(p domain.InventoryItem, qty int) []domain.CartItem {
	return s.AddToCart(domain.CartItemFrom(p, qty), qty)
}

func (s *CartService) RemoveFromCart(productID string) []domain.CartItem {
	return s.mutate("remove", func(cart []domain.CartItem) []domain.CartItem {
		return domain.RemoveCartItem(cart, productID)
	})
}

// UpdateCartItemQuantity overwrites a line; qty <= 0 removes it.
func (s *CartService) UpdateCartItemQuantity(productID string, qty int) []domain.CartItem {
	return s.mutate("update", func(cart []domain.CartItem) []domain.CartItem {
		return domain.SetCartItemQuantity(cart, productID, qty)
	})
}

// ClearCart deletes the cart key rather than writing an empty list.
func (s *CartService) ClearCart() {
	s.mu.Lock()
	s.Repo.Clear()
	s.mu.Unlock()

	metrics.CartEvents.WithLabelValues("clear").Inc()
	s.Bus.Publish(events.CartUpdated, []domain.CartItem{})
}

// checkout runs fn on the current cart and, when fn succeeds, removes the
// cart key. The cart stays locked throughout so no concurrent add can land
// between the read and the clear.
func (s *CartService) checkout(fn func([]domain.CartItem) error) error {
	s.mu.Lock()
	if err := fn(s.Repo.Load()); err != nil {
		s.mu.Unlock()
		return err
	}
	s.Repo.Clear()
	s.mu.Unlock()

	metrics.CartEvents.WithLabelValues("clear").Inc()
	s.Bus.Publish(events.CartUpdated, []domain.CartItem{})
	return nil
}

type CartView struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func (s *CartService) View() CartView {
	items := s.Items()
	return CartView{Items: items, Total: domain.CartTotal(items), Count: domain.CartItemCount(items)}
}
