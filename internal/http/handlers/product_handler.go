package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bikeaccessories/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/products/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "product", "invalid product id")
	}
	p, ok := h.Catalog.GetProduct(id)
	if !ok {
		return notFound(c, "This item is no longer available")
	}
	return c.JSON(p)
}
