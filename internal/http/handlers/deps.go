package handlers

import (
	"bikeaccessories/internal/config"
	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/events"
	"bikeaccessories/internal/repos"
	"bikeaccessories/internal/services"
	"bikeaccessories/internal/storage"
)

type Deps struct {
	Inventory *services.InventoryService
	Catalog   *services.CatalogService
	Cart      *services.CartService
	Orders    *services.OrderService
	Places    *services.PlaceService

	ProductHandler   *ProductHandler
	SearchHandler    *SearchHandler
	ZoneHandler      *ZoneHandler
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
	PlaceHandler     *PlaceHandler
	InventoryHandler *InventoryHandler
	AdminHandler     *AdminHandler
}

// NewDeps wires every service onto one store. Product and place ids share
// a generator so they never collide within a process.
func NewDeps(store storage.Store, seed config.Seed, bus *events.Bus) *Deps {
	invRepo := repos.NewInventoryRepo(store, seed.Inventory)
	cartRepo := repos.NewCartRepo(store)
	orderRepo := repos.NewOrderRepo(store)
	placeRepo := repos.NewPlaceRepo(store, seed.Places)

	ids := domain.NewIDGen(nil)
	invSvc := services.NewInventoryService(invRepo, ids)
	catalogSvc := services.NewCatalogService(invSvc)
	cartSvc := services.NewCartService(cartRepo, bus)
	orderSvc := services.NewOrderService(orderRepo, cartSvc)
	placeSvc := services.NewPlaceService(placeRepo, ids)

	return &Deps{
		Inventory: invSvc,
		Catalog:   catalogSvc,
		Cart:      cartSvc,
		Orders:    orderSvc,
		Places:    placeSvc,

		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		SearchHandler:    &SearchHandler{Catalog: catalogSvc},
		ZoneHandler:      &ZoneHandler{Catalog: catalogSvc, Inv: invSvc, Places: placeSvc},
		CartHandler:      &CartHandler{Cart: cartSvc, Catalog: catalogSvc},
		OrderHandler:     &OrderHandler{Cart: cartSvc, Order: orderSvc},
		PlaceHandler:     &PlaceHandler{Places: placeSvc, Inv: invSvc},
		InventoryHandler: &InventoryHandler{Inv: invSvc, Places: placeSvc},
		AdminHandler:     &AdminHandler{Inv: invSvc, Catalog: catalogSvc, Orders: orderSvc, Store: store},
	}
}
