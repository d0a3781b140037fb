package domain

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortStock     SortKey = "stock"
)

// CatalogQuery narrows the product list. An empty Search or Zones matches
// everything; an empty Sort keeps stored order.
type CatalogQuery struct {
	Search string
	Zones  []string
	Sort   SortKey
}

// Filter applies q to items and returns a new slice.
func Filter(items []InventoryItem, q CatalogQuery) []InventoryItem {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := []InventoryItem{}
	for _, it := range items {
		if needle != "" && !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}
		if len(q.Zones) > 0 && !containsString(q.Zones, it.Location.Zone) {
			continue
		}
		out = append(out, it)
	}

	switch q.Sort {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
			if a != b {
				return a < b
			}
			return out[i].Name < out[j].Name
		})
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortStock:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Stock > out[j].Stock })
	}
	return out
}

// Zones lists the distinct item zones in ascending order.
func Zones(items []InventoryItem) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, it := range items {
		if _, ok := seen[it.Location.Zone]; ok {
			continue
		}
		seen[it.Location.Zone] = struct{}{}
		out = append(out, it.Location.Zone)
	}
	sort.Strings(out)
	return out
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// Page is one page of a fully materialized list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items into pages of size. Pages past the end fall back to
// the first page, pages below 1 are treated as 1.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = 12
	}
	total := len(items)
	pages := (total + size - 1) / size
	if page < 1 || (page > pages && pages > 0) {
		page = 1
	}
	start := (page - 1) * size
	end := min(start+size, total)
	if start > total {
		start = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return Page[T]{Items: out, Page: page, PageSize: size, Total: total, TotalPages: pages}
}
