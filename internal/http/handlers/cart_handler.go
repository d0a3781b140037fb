package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bikeaccessories/internal/services"
	"bikeaccessories/internal/validate"
)

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

type cartAddReq struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type cartQtyReq struct {
	Quantity int `json:"quantity"`
}

// GET /api/v1/cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.Cart.View())
}

// POST /api/v1/cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req cartAddReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return badRequest(c, "productId", "missing productId")
	}
	p, ok := h.Catalog.GetProduct(id)
	if !ok {
		return notFound(c, "This item is no longer available")
	}
	h.Cart.AddProduct(p, req.Quantity)
	return c.Status(fiber.StatusCreated).JSON(h.Cart.View())
}

// PATCH /api/v1/cart/:productId
func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c, "productId")
	if !ok {
		return badRequest(c, "productId", "invalid productId")
	}
	var req cartQtyReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	h.Cart.UpdateCartItemQuantity(id, req.Quantity)
	return c.JSON(h.Cart.View())
}

// DELETE /api/v1/cart/:productId
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := pathID(c, "productId")
	if !ok {
		return badRequest(c, "productId", "invalid productId")
	}
	h.Cart.RemoveFromCart(id)
	return c.JSON(h.Cart.View())
}

// DELETE /api/v1/cart
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.ClearCart()
	return c.JSON(h.Cart.View())
}
