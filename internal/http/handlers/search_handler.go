package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/services"
	"bikeaccessories/internal/validate"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

// parseCatalogQuery reads q, zone and sort. zone may repeat or be comma
// separated.
func parseCatalogQuery(c *fiber.Ctx) (domain.CatalogQuery, bool) {
	var q domain.CatalogQuery
	if raw := c.Query("q"); strings.TrimSpace(raw) != "" {
		s, ok := validate.Q(raw)
		if !ok {
			return q, false
		}
		q.Search = s
	}
	for _, v := range c.Context().QueryArgs().PeekMulti("zone") {
		for _, z := range strings.Split(string(v), ",") {
			if z = strings.TrimSpace(z); z != "" {
				q.Zones = append(q.Zones, z)
			}
		}
	}
	q.Sort = validate.Sort(c.Query("sort"))
	return q, true
}

// GET /api/v1/products?q=&zone=&sort=&page=
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	q, ok := parseCatalogQuery(c)
	if !ok {
		return badRequest(c, "q", "Enter a valid keyword (letters/numbers only)")
	}
	page := h.Catalog.ListProducts(q, c.QueryInt("page", 1), services.CatalogPageSize)
	return c.JSON(page)
}
