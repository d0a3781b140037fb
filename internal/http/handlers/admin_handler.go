package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bikeaccessories/internal/domain"
	applog "bikeaccessories/internal/log"
	"bikeaccessories/internal/services"
	"bikeaccessories/internal/storage"
	"bikeaccessories/internal/validate"
)

type AdminHandler struct {
	Inv     *services.InventoryService
	Catalog *services.CatalogService
	Orders  *services.OrderService
	Store   storage.Store
}

// GET /admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.Inv.Totals())
}

// GET /admin/products?q=&zone=&sort=&page=
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	q, ok := parseCatalogQuery(c)
	if !ok {
		return badRequest(c, "q", "Enter a valid keyword (letters/numbers only)")
	}
	return c.JSON(h.Catalog.ListProducts(q, c.QueryInt("page", 1), services.AdminPageSize))
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in domain.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	in, msg := validate.Product(in)
	if msg != "" {
		return badRequest(c, "product", msg)
	}
	items, id := h.Inv.AddProduct(in)
	p, _ := domain.FindProduct(items, id)
	applog.Audit(c, "admin.product.create", map[string]any{"product": id, "name": p.Name, "price": p.Price})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PATCH /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "product", "invalid product id")
	}
	cur, ok := h.Inv.Get(id)
	if !ok {
		return notFound(c, "This item is no longer available")
	}
	var patch domain.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "body", "invalid request body")
	}

	merged := domain.UpdateProduct([]domain.InventoryItem{cur}, id, patch)[0]
	in, msg := validate.Product(domain.ProductInput{
		Name: merged.Name, Price: merged.Price, Image: merged.Image, Location: merged.Location,
	})
	if msg != "" {
		return badRequest(c, "product", msg)
	}
	if merged.Stock < 0 || merged.Sold < 0 {
		return badRequest(c, "stock", "stock and sold cannot be negative")
	}
	if patch.Name != nil {
		patch.Name = &in.Name
	}
	if patch.Location != nil {
		patch.Location = &in.Location
	}

	items := h.Inv.UpdateProduct(id, patch)
	p, _ := domain.FindProduct(items, id)
	applog.Audit(c, "admin.product.update", map[string]any{"product": id})
	return c.JSON(p)
}

// DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "product", "invalid product id")
	}
	h.Inv.DeleteProduct(id)
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /admin/orders
func (h *AdminHandler) OrdersList(c *fiber.Ctx) error {
	return c.JSON(h.Orders.ListOrders())
}

// GET /admin/storage/keys lists what the backing store holds.
func (h *AdminHandler) StorageKeys(c *fiber.Ctx) error {
	keys, err := storage.Keys(h.Store)
	if errors.Is(err, storage.ErrUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "storage unavailable"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"keys": keys})
}
