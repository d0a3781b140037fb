package services

import (
	"sync"
	"time"

	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/metrics"
	"bikeaccessories/internal/repos"
)

// InventoryService runs the inventory operations against the persisted
// catalog. Each operation loads, applies one domain function and saves
// under a single lock.
type InventoryService struct {
	Repo *repos.InventoryRepo
	IDs  *domain.IDGen

	mu sync.Mutex
}

func NewInventoryService(repo *repos.InventoryRepo, ids *domain.IDGen) *InventoryService {
	if ids == nil {
		ids = domain.NewIDGen(time.Now)
	}
	return &InventoryService{Repo: repo, IDs: ids}
}

func (s *InventoryService) Items() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Repo.Load()
}

// Apply runs fn over the current inventory and persists the result.
func (s *InventoryService) Apply(fn func([]domain.InventoryItem) []domain.InventoryItem) []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := fn(s.Repo.Load())
	s.Repo.Save(out)
	return out
}

func (s *InventoryService) Get(id string) (domain.InventoryItem, bool) {
	return domain.FindProduct(s.Items(), id)
}

// SellOne persists even when the item is unknown or out of stock.
func (s *InventoryService) SellOne(id string) ([]domain.InventoryItem, bool) {
	var sold bool
	out := s.Apply(func(items []domain.InventoryItem) []domain.InventoryItem {
		var next []domain.InventoryItem
		next, sold = domain.SellOne(items, id)
		return next
	})
	if sold {
		metrics.UnitsSold.Inc()
	}
	return out, sold
}

// Restock adds floor(qty) units. A quantity that normalizes to zero
// changes nothing and writes nothing.
func (s *InventoryService) Restock(id string, qty float64) ([]domain.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, ok := domain.Restock(s.Repo.Load(), id, qty)
	if !ok {
		return out, false
	}
	s.Repo.Save(out)
	metrics.UnitsRestocked.Add(float64(domain.NormalizeQty(qty)))
	return out, true
}

// AddProduct returns the new inventory and the generated product id.
func (s *InventoryService) AddProduct(in domain.ProductInput) ([]domain.InventoryItem, string) {
	id := s.IDs.Next(in.Name)
	out := s.Apply(func(items []domain.InventoryItem) []domain.InventoryItem {
		return domain.AddProduct(items, id, in)
	})
	return out, id
}

func (s *InventoryService) UpdateProduct(id string, p domain.ProductPatch) []domain.InventoryItem {
	return s.Apply(func(items []domain.InventoryItem) []domain.InventoryItem {
		return domain.UpdateProduct(items, id, p)
	})
}

func (s *InventoryService) DeleteProduct(id string) []domain.InventoryItem {
	return s.Apply(func(items []domain.InventoryItem) []domain.InventoryItem {
		return domain.DeleteProduct(items, id)
	})
}

func (s *InventoryService) AssignToPlace(id string, place domain.Place) []domain.InventoryItem {
	return s.Apply(func(items []domain.InventoryItem) []domain.InventoryItem {
		return domain.AssignToPlace(items, id, place)
	})
}

func (s *InventoryService) RenameZone(from, to string) []domain.InventoryItem {
	return s.Apply(func(items []domain.InventoryItem) []domain.InventoryItem {
		return domain.RenameZone(items, from, to)
	})
}

func (s *InventoryService) Totals() domain.Totals {
	return domain.ComputeTotals(s.Items())
}
