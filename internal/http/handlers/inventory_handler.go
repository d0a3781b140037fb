package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bikeaccessories/internal/domain"
	applog "bikeaccessories/internal/log"
	"bikeaccessories/internal/services"
	"bikeaccessories/internal/validate"
)

// InventoryHandler covers the stock and placement actions on one product.
type InventoryHandler struct {
	Inv    *services.InventoryService
	Places *services.PlaceService
}

type restockReq struct {
	Qty float64 `json:"qty"`
}

type assignReq struct {
	PlaceID string `json:"placeId"`
}

// POST /admin/products/:id/sell
func (h *InventoryHandler) Sell(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "product", "invalid product id")
	}
	items, sold := h.Inv.SellOne(id)
	p, found := domain.FindProduct(items, id)
	if !found {
		return notFound(c, "This item is no longer available")
	}
	applog.Audit(c, "admin.inventory.sell", map[string]any{"product": id, "sold": sold, "stock": p.Stock})
	return c.JSON(p)
}

// POST /admin/products/:id/restock
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "product", "invalid product id")
	}
	var req restockReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	if _, found := h.Inv.Get(id); !found {
		return notFound(c, "This item is no longer available")
	}
	items, ok := h.Inv.Restock(id, req.Qty)
	if !ok {
		return badRequest(c, "qty", "quantity must be at least 1")
	}
	p, _ := domain.FindProduct(items, id)
	applog.Audit(c, "admin.inventory.restock", map[string]any{
		"product": id, "qty": domain.NormalizeQty(req.Qty), "stock": p.Stock,
	})
	return c.JSON(p)
}

// POST /admin/products/:id/place moves a product to the centre of a place.
func (h *InventoryHandler) Place(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "product", "invalid product id")
	}
	var req assignReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	placeID, ok := validate.ID(req.PlaceID)
	if !ok {
		return badRequest(c, "placeId", "missing placeId")
	}
	place, ok := h.Places.Get(placeID)
	if !ok {
		return notFound(c, "Place not found")
	}
	if _, found := h.Inv.Get(id); !found {
		return notFound(c, "This item is no longer available")
	}
	items := h.Inv.AssignToPlace(id, place)
	p, _ := domain.FindProduct(items, id)
	applog.Audit(c, "admin.product.place", map[string]any{"product": id, "place_id": placeID, "zone": place.Label})
	return c.JSON(p)
}
