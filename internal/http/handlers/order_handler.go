package handlers

import (
	"errors"
	"maps"
	"slices"

	"github.com/gofiber/fiber/v2"

	"bikeaccessories/internal/domain"
	applog "bikeaccessories/internal/log"
	"bikeaccessories/internal/services"
	"bikeaccessories/internal/validate"
)

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
}

type placeOrderReq struct {
	CustomerInfo domain.CustomerInfo `json:"customerInfo"`
}

// POST /api/v1/orders places an order for the current cart.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeOrderReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	info, errs := validate.Customer(req.CustomerInfo)
	if len(errs) > 0 {
		applog.Warn(c, "validation.fail", map[string]any{"fields": slices.Sorted(maps.Keys(errs))})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	order, err := h.Order.Checkout(info)
	if errors.Is(err, services.ErrEmptyCart) {
		return badRequest(c, "cart", "Your cart is empty")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": order.ID,
		"total":    order.Total,
		"items":    domain.CartItemCount(order.Items),
	})
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GET /api/v1/orders/:id
func (h *OrderHandler) View(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c, "Order not found")
	}
	o, ok := h.Order.GetOrderByID(id)
	if !ok {
		return notFound(c, "Order not found")
	}
	return c.JSON(o)
}
