package services

import (
	"sync"
	"time"

	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/repos"
)

type PlaceService struct {
	Repo *repos.PlaceRepo
	IDs  *domain.IDGen

	mu sync.Mutex
}

func NewPlaceService(repo *repos.PlaceRepo, ids *domain.IDGen) *PlaceService {
	if ids == nil {
		ids = domain.NewIDGen(time.Now)
	}
	return &PlaceService{Repo: repo, IDs: ids}
}

func (s *PlaceService) Places() []domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Repo.Load()
}

func (s *PlaceService) Apply(fn func([]domain.Place) []domain.Place) []domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := fn(s.Repo.Load())
	s.Repo.Save(out)
	return out
}

func (s *PlaceService) Get(id string) (domain.Place, bool) {
	return domain.FindPlace(s.Places(), id)
}

// AddPlace stores the geometry as given.
func (s *PlaceService) AddPlace(in domain.PlaceInput) ([]domain.Place, string) {
	id := s.IDs.Next(in.Label)
	out := s.Apply(func(places []domain.Place) []domain.Place {
		return domain.AddPlace(places, id, in)
	})
	return out, id
}

// AddPlaceAuto puts the new place in the next free grid cell.
func (s *PlaceService) AddPlaceAuto(label string) ([]domain.Place, string) {
	id := s.IDs.Next(label)
	out := s.Apply(func(places []domain.Place) []domain.Place {
		return domain.AddPlaceAuto(places, id, label)
	})
	return out, id
}

func (s *PlaceService) UpdatePlace(id string, p domain.PlacePatch) []domain.Place {
	return s.Apply(func(places []domain.Place) []domain.Place {
		return domain.UpdatePlace(places, id, p)
	})
}

// DeletePlace removes the place only. Products still naming its label
// keep that zone.
func (s *PlaceService) DeletePlace(id string) []domain.Place {
	return s.Apply(func(places []domain.Place) []domain.Place {
		return domain.DeletePlace(places, id)
	})
}

func (s *PlaceService) NextAutoPlace() domain.Geometry {
	return domain.NextAutoPlace(s.Places())
}
