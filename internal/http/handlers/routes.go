package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Register mounts the storefront API and the admin API on app.
func Register(app *fiber.App, d *Deps) {
	api := app.Group("/api/v1")
	api.Get("/products", d.SearchHandler.Search)
	api.Get("/products/:id", d.ProductHandler.Detail)
	api.Get("/zones", d.ZoneHandler.List)

	api.Get("/cart", d.CartHandler.View)
	api.Post("/cart", d.CartHandler.Add)
	api.Patch("/cart/:productId", d.CartHandler.Update)
	api.Delete("/cart/:productId", d.CartHandler.Remove)
	api.Delete("/cart", d.CartHandler.Clear)

	api.Post("/orders", d.OrderHandler.Place)
	api.Get("/orders/:id", d.OrderHandler.View)

	api.Get("/places", d.PlaceHandler.List)
	api.Get("/places/next", d.PlaceHandler.Next)
	api.Post("/places", d.PlaceHandler.Create)
	api.Patch("/places/:id", d.PlaceHandler.Update)
	api.Delete("/places/:id", d.PlaceHandler.Delete)

	admin := app.Group("/admin")
	admin.Get("/stats", d.AdminHandler.Stats)
	admin.Get("/products", d.AdminHandler.Products)
	admin.Post("/products", d.AdminHandler.CreateProduct)
	admin.Patch("/products/:id", d.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", d.AdminHandler.DeleteProduct)
	admin.Post("/products/:id/sell", d.InventoryHandler.Sell)
	admin.Post("/products/:id/restock", d.InventoryHandler.Restock)
	admin.Post("/products/:id/place", d.InventoryHandler.Place)
	admin.Get("/orders", d.AdminHandler.OrdersList)
	admin.Get("/zones/dangling", d.ZoneHandler.Dangling)
	admin.Get("/storage/keys", d.AdminHandler.StorageKeys)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
}
