package domain

// DefaultInventory returns the built-in catalog used when nothing has been
// persisted yet. Each call returns a fresh slice.
func DefaultInventory() []InventoryItem {
	return []InventoryItem{
		{
			ID: "helmet-pro", Name: "Helmet Pro", Price: 79.99, Stock: 24, Sold: 12,
			Image:    "/vercel.svg",
			Location: Location{X: 0.325, Y: 0.325, Zone: "Place A"},
		},
		{
			ID: "led-light", Name: "LED Bike Light", Price: 24.5, Stock: 40, Sold: 35,
			Image:    "/next.svg",
			Location: Location{X: 0.725, Y: 0.325, Zone: "Place B"},
		},
		{
			ID: "u-lock", Name: "U-Lock Security", Price: 39.0, Stock: 18, Sold: 5,
			Image:    "/globe.svg",
			Location: Location{X: 0.325, Y: 0.725, Zone: "Place C"},
		},
		{
			ID: "water-bottle", Name: "Insulated Bottle", Price: 14.99, Stock: 60, Sold: 47,
			Image:    "/window.svg",
			Location: Location{X: 0.85, Y: 0.85, Zone: "Checkout"},
		},
	}
}

// DefaultPlaces returns the built-in store layout: four grid zones plus the
// hand-placed Checkout and Display areas.
func DefaultPlaces() []Place {
	return []Place{
		{ID: "place-a", Label: "Place A", X: 0.15, Y: 0.15, Width: 0.35, Height: 0.35},
		{ID: "place-b", Label: "Place B", X: 0.55, Y: 0.15, Width: 0.35, Height: 0.35},
		{ID: "place-c", Label: "Place C", X: 0.15, Y: 0.55, Width: 0.35, Height: 0.35},
		{ID: "place-d", Label: "Place D", X: 0.55, Y: 0.55, Width: 0.35, Height: 0.35},
		{ID: "checkout", Label: "Checkout", X: 0.75, Y: 0.75, Width: 0.2, Height: 0.2},
		{ID: "display", Label: "Display", X: 0.05, Y: 0.75, Width: 0.2, Height: 0.2},
	}
}
