package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bikeaccessories/internal/domain"
)

func names(items []domain.InventoryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestFilterAndSort(t *testing.T) {
	items := domain.DefaultInventory()

	got := domain.Filter(items, domain.CatalogQuery{Search: "  LOCK "})
	assert.Equal(t, []string{"U-Lock Security"}, names(got))

	got = domain.Filter(items, domain.CatalogQuery{Zones: []string{"Place A", "Checkout"}})
	assert.Equal(t, []string{"Helmet Pro", "Insulated Bottle"}, names(got))

	got = domain.Filter(items, domain.CatalogQuery{Sort: domain.SortName})
	assert.Equal(t, []string{"Helmet Pro", "Insulated Bottle", "LED Bike Light", "U-Lock Security"}, names(got))

	got = domain.Filter(items, domain.CatalogQuery{Sort: domain.SortPriceLow})
	assert.Equal(t, "Insulated Bottle", got[0].Name)

	got = domain.Filter(items, domain.CatalogQuery{Sort: domain.SortPriceHigh})
	assert.Equal(t, "Helmet Pro", got[0].Name)

	got = domain.Filter(items, domain.CatalogQuery{Sort: domain.SortStock})
	assert.Equal(t, 60, got[0].Stock)
}

func TestZones(t *testing.T) {
	assert.Equal(t, []string{"Checkout", "Place A", "Place B", "Place C"}, domain.Zones(domain.DefaultInventory()))
	assert.Empty(t, domain.Zones(nil))
}

func TestPaginate(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5}

	p := domain.Paginate(xs, 2, 2)
	assert.Equal(t, []int{3, 4}, p.Items)
	assert.Equal(t, 3, p.TotalPages)

	p = domain.Paginate(xs, 3, 2)
	assert.Equal(t, []int{5}, p.Items)

	p = domain.Paginate(xs, 9, 2)
	assert.Equal(t, 1, p.Page, "out of range resets to first page")
	assert.Equal(t, []int{1, 2}, p.Items)

	p = domain.Paginate([]int{}, 1, 10)
	assert.Empty(t, p.Items)
	assert.Zero(t, p.TotalPages)
}

func TestSlugAndIDs(t *testing.T) {
	assert.Equal(t, "led-bike-light", domain.Slugify("LED  Bike\tLight"))

	fixed := time.UnixMilli(1700000000000)
	gen := domain.NewIDGen(func() time.Time { return fixed })
	a := gen.Next("Place E")
	b := gen.Next("Place E")
	assert.Equal(t, "place-e-1700000000000", a)
	assert.Equal(t, "place-e-1700000000001", b, "same millisecond is bumped")

	id := domain.NewOrderID(fixed)
	assert.True(t, strings.HasPrefix(id, "order-1700000000000-"), id)
	assert.Len(t, strings.TrimPrefix(id, "order-1700000000000-"), 9)
}
