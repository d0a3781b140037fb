package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/services"
)

// ZoneHandler exposes the zones products are filed under.
type ZoneHandler struct {
	Catalog *services.CatalogService
	Inv     *services.InventoryService
	Places  *services.PlaceService
}

// GET /api/v1/zones
func (h *ZoneHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Zones())
}

// GET /admin/zones/dangling lists product zones that no place carries.
func (h *ZoneHandler) Dangling(c *fiber.Ctx) error {
	return c.JSON(domain.DanglingZones(h.Inv.Items(), h.Places.Places()))
}
