package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bikeaccessories/internal/domain"
	applog "bikeaccessories/internal/log"
	"bikeaccessories/internal/services"
	"bikeaccessories/internal/validate"
)

type PlaceHandler struct {
	Places *services.PlaceService
	Inv    *services.InventoryService
}

type placeReq struct {
	domain.PlaceInput
	AutoPlace bool `json:"autoPlace"`
}

// GET /api/v1/places
func (h *PlaceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Places.Places())
}

// GET /api/v1/places/next previews where an auto-placed zone would go.
func (h *PlaceHandler) Next(c *fiber.Ctx) error {
	return c.JSON(h.Places.NextAutoPlace())
}

// POST /api/v1/places
func (h *PlaceHandler) Create(c *fiber.Ctx) error {
	var req placeReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	in, msg := validate.Place(req.PlaceInput, req.AutoPlace)
	if msg != "" {
		return badRequest(c, "place", msg)
	}

	var (
		places []domain.Place
		id     string
	)
	if req.AutoPlace {
		places, id = h.Places.AddPlaceAuto(in.Label)
	} else {
		places, id = h.Places.AddPlace(in)
	}
	p, _ := domain.FindPlace(places, id)
	applog.Audit(c, "admin.place.create", map[string]any{"place_id": id, "label": p.Label, "auto": req.AutoPlace})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PATCH /api/v1/places/:id
//
// With ?cascade=true a label change is carried over to the zone of every
// product filed under the old label. Without it products keep the old zone.
func (h *PlaceHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "id", "invalid place id")
	}
	cur, ok := h.Places.Get(id)
	if !ok {
		return notFound(c, "Place not found")
	}
	var patch domain.PlacePatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "body", "invalid request body")
	}

	merged := domain.UpdatePlace([]domain.Place{cur}, id, patch)[0]
	in, msg := validate.Place(domain.PlaceInput{
		Label: merged.Label, X: merged.X, Y: merged.Y, Width: merged.Width, Height: merged.Height,
	}, false)
	if msg != "" {
		return badRequest(c, "place", msg)
	}
	if patch.Label != nil {
		patch.Label = &in.Label
	}

	places := h.Places.UpdatePlace(id, patch)
	updated, _ := domain.FindPlace(places, id)

	cascade := c.QueryBool("cascade", false)
	if cascade && updated.Label != cur.Label {
		h.Inv.RenameZone(cur.Label, updated.Label)
	}
	applog.Audit(c, "admin.place.update", map[string]any{
		"place_id": id, "from": cur.Label, "to": updated.Label, "cascade": cascade,
	})
	return c.JSON(updated)
}

// DELETE /api/v1/places/:id leaves products in the deleted zone untouched.
func (h *PlaceHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "id", "invalid place id")
	}
	h.Places.DeletePlace(id)
	applog.Audit(c, "admin.place.delete", map[string]any{"place_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
