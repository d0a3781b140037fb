package repos

import (
	"slices"

	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/storage"
)

type PlaceRepo struct {
	store    storage.Store
	defaults []domain.Place
}

// NewPlaceRepo binds the places key of store; nil defaults means the
// built-in layout.
func NewPlaceRepo(store storage.Store, defaults []domain.Place) *PlaceRepo {
	if defaults == nil {
		defaults = domain.DefaultPlaces()
	}
	return &PlaceRepo{store: store, defaults: defaults}
}

// Load returns the persisted layout. Unlike the inventory, an empty stored
// list also falls back to the defaults, so the map is never blank.
func (r *PlaceRepo) Load() []domain.Place {
	return storage.Load(r.store, PlacesKey, slices.Clone(r.defaults), func(v []domain.Place) bool {
		return len(v) > 0
	})
}

func (r *PlaceRepo) Save(places []domain.Place) {
	storage.SaveSlice(r.store, PlacesKey, places)
}
