package domain

import (
	"math"
	"slices"
)

// ProductInput is what the admin supplies when adding a product. Stock and
// sold always start at zero.
type ProductInput struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Image    string   `json:"image,omitempty"`
	Location Location `json:"location"`
}

// ProductPatch holds the fields to overwrite; nil fields are left alone.
type ProductPatch struct {
	Name     *string   `json:"name,omitempty"`
	Price    *float64  `json:"price,omitempty"`
	Stock    *int      `json:"stock,omitempty"`
	Sold     *int      `json:"sold,omitempty"`
	Image    *string   `json:"image,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// SellOne moves one unit from stock to sold for the item with id. Items
// with no stock are left unchanged. The second result reports whether a
// unit was sold.
func SellOne(items []InventoryItem, id string) ([]InventoryItem, bool) {
	out := slices.Clone(items)
	if out == nil {
		out = []InventoryItem{}
	}
	sold := false
	for i := range out {
		if out[i].ID == id && out[i].Stock > 0 {
			out[i].Stock--
			out[i].Sold++
			sold = true
		}
	}
	return out, sold
}

// NormalizeQty floors qty. Non-positive and non-finite values yield 0.
func NormalizeQty(qty float64) int {
	if math.IsNaN(qty) || math.IsInf(qty, 0) || qty <= 0 {
		return 0
	}
	return int(math.Floor(qty))
}

// Restock adds floor(qty) units to the item with id. When qty normalizes to
// zero the input slice is returned as-is and ok is false; callers must not
// persist in that case.
func Restock(items []InventoryItem, id string, qty float64) (out []InventoryItem, ok bool) {
	n := NormalizeQty(qty)
	if n == 0 {
		return items, false
	}
	out = slices.Clone(items)
	if out == nil {
		out = []InventoryItem{}
	}
	for i := range out {
		if out[i].ID == id {
			out[i].Stock += n
		}
	}
	return out, true
}

// AddProduct appends a new product with the given id and zero stock/sold.
func AddProduct(items []InventoryItem, id string, in ProductInput) []InventoryItem {
	out := make([]InventoryItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, InventoryItem{
		ID:       id,
		Name:     in.Name,
		Price:    in.Price,
		Image:    in.Image,
		Location: in.Location,
	})
}

func UpdateProduct(items []InventoryItem, id string, p ProductPatch) []InventoryItem {
	out := slices.Clone(items)
	if out == nil {
		out = []InventoryItem{}
	}
	for i := range out {
		if out[i].ID != id {
			continue
		}
		it := &out[i]
		if p.Name != nil {
			it.Name = *p.Name
		}
		if p.Price != nil {
			it.Price = *p.Price
		}
		if p.Stock != nil {
			it.Stock = *p.Stock
		}
		if p.Sold != nil {
			it.Sold = *p.Sold
		}
		if p.Image != nil {
			it.Image = *p.Image
		}
		if p.Location != nil {
			it.Location = *p.Location
		}
	}
	return out
}

func DeleteProduct(items []InventoryItem, id string) []InventoryItem {
	out := make([]InventoryItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func FindProduct(items []InventoryItem, id string) (InventoryItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return InventoryItem{}, false
}

// ComputeTotals recomputes the dashboard aggregates from scratch.
func ComputeTotals(items []InventoryItem) Totals {
	t := Totals{TotalProducts: len(items), Revenue: Revenue(items)}
	for _, it := range items {
		t.TotalUnitsInStock += it.Stock
		t.TotalUnitsSold += it.Sold
	}
	return t
}

// AssignToPlace moves the item with id to the centre of place and sets its
// zone to the place label.
func AssignToPlace(items []InventoryItem, id string, place Place) []InventoryItem {
	x, y := Center(place)
	loc := Location{X: x, Y: y, Zone: place.Label}
	return UpdateProduct(items, id, ProductPatch{Location: &loc})
}

// RenameZone rewrites the zone of every item located in from. Positions are
// kept.
func RenameZone(items []InventoryItem, from, to string) []InventoryItem {
	out := slices.Clone(items)
	if out == nil {
		out = []InventoryItem{}
	}
	for i := range out {
		if out[i].Location.Zone == from {
			out[i].Location.Zone = to
		}
	}
	return out
}

// DanglingZones lists, in first-seen order, the item zones that match no
// place label.
func DanglingZones(items []InventoryItem, places []Place) []string {
	labels := make(map[string]struct{}, len(places))
	for _, p := range places {
		labels[p.Label] = struct{}{}
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, it := range items {
		z := it.Location.Zone
		if _, ok := labels[z]; ok {
			continue
		}
		if _, ok := seen[z]; ok {
			continue
		}
		seen[z] = struct{}{}
		out = append(out, z)
	}
	return out
}
