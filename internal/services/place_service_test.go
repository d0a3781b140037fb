package services_test

import (
	"math"
	"testing"
	"time"

	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/repos"
	"bikeaccessories/internal/services"
	"bikeaccessories/internal/storage"
)

func TestPlaceService_AutoLayout(t *testing.T) {
	svc := services.NewPlaceService(
		repos.NewPlaceRepo(storage.NewMemory(), []domain.Place{
			{ID: "checkout", Label: "Checkout", X: 0.7, Y: 0.7, Width: 0.25, Height: 0.25},
		}),
		domain.NewIDGen(fixedClock(time.UnixMilli(1000))),
	)

	want := [][2]float64{{0.15, 0.15}, {0.55, 0.15}, {0.15, 0.55}, {0.55, 0.55}, {0.15, 0.65}}
	for i, w := range want {
		g := svc.NextAutoPlace()
		places, id := svc.AddPlaceAuto("Zone")
		p, ok := domain.FindPlace(places, id)
		if !ok {
			t.Fatalf("step %d: place %q missing", i, id)
		}
		if math.Abs(p.X-w[0]) > 1e-9 || math.Abs(p.Y-w[1]) > 1e-9 || p.X != g.X || p.Y != g.Y {
			t.Fatalf("step %d: want %v, got (%v,%v)", i, w, p.X, p.Y)
		}
	}
	if n := len(svc.Places()); n != 6 {
		t.Fatalf("want 6 places, got %d", n)
	}
}

func TestPlaceService_CRUD(t *testing.T) {
	s := storage.NewMemory()
	svc := services.NewPlaceService(repos.NewPlaceRepo(s, nil), nil)

	_, id := svc.AddPlace(domain.PlaceInput{Label: "Repair Desk", X: 0.05, Y: 0.05, Width: 0.1, Height: 0.1})
	label := "Service"
	svc.UpdatePlace(id, domain.PlacePatch{Label: &label})
	p, ok := svc.Get(id)
	if !ok || p.Label != "Service" || p.Width != 0.1 {
		t.Fatalf("unexpected place %+v", p)
	}

	for _, p := range svc.Places() {
		svc.DeletePlace(p.ID)
	}
	// deleting everything falls back to the default layout on the next load
	if got := svc.Places(); len(got) != len(domain.DefaultPlaces()) {
		t.Fatalf("want defaults, got %+v", got)
	}
}
