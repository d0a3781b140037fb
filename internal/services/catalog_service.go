package services

import (
	"bikeaccessories/internal/domain"
)

// Page sizes of the storefront grid and the admin table.
const (
	CatalogPageSize = 12
	AdminPageSize   = 10
)

// CatalogService is the read side of the inventory: search, zone filter,
// sorting and paging.
type CatalogService struct {
	Inv *InventoryService
}

func NewCatalogService(inv *InventoryService) *CatalogService {
	return &CatalogService{Inv: inv}
}

func (s *CatalogService) ListProducts(q domain.CatalogQuery, page, pageSize int) domain.Page[domain.InventoryItem] {
	if pageSize <= 0 {
		pageSize = CatalogPageSize
	}
	return domain.Paginate(domain.Filter(s.Inv.Items(), q), page, pageSize)
}

func (s *CatalogService) GetProduct(id string) (domain.InventoryItem, bool) {
	return s.Inv.Get(id)
}

func (s *CatalogService) Zones() []string {
	return domain.Zones(s.Inv.Items())
}
