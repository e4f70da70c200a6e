package store

import (
	"strings"

	"kerjabantu-service/src/internal/entity"
)

func (s *Store) KerjaMates() []entity.KerjaMate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectKerjaMates(nil)
}

// FilteredKerjaMates evaluates the active filter over the full collection.
func (s *Store) FilteredKerjaMates() []entity.KerjaMate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectKerjaMates(s.kerjaMateFilter)
}

// FilterKerjaMatesBySkill keeps KerjaMates with at least one skill containing
// skill, ignoring case. An empty skill is not special-cased; use
// ResetKerjaMatesFilter to clear the filter.
func (s *Store) FilterKerjaMatesBySkill(skill string) {
	needle := strings.ToLower(skill)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.kerjaMateFilter = func(k entity.KerjaMate) bool {
		for _, sk := range k.Skills {
			if strings.Contains(strings.ToLower(sk), needle) {
				return true
			}
		}
		return false
	}
}

func (s *Store) FilterKerjaMatesByAvailability(available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kerjaMateFilter = func(k entity.KerjaMate) bool {
		return k.Availability == available
	}
}

func (s *Store) ResetKerjaMatesFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kerjaMateFilter = nil
}

func (s *Store) GetKerjaMateByID(id string) (entity.KerjaMate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.kerjaMateIndex(id)
	if i < 0 {
		return entity.KerjaMate{}, false
	}
	return s.kerjaMates[i].Clone(), true
}

func (s *Store) kerjaMateIndex(id string) int {
	for i := range s.kerjaMates {
		if s.kerjaMates[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) selectKerjaMates(keep func(entity.KerjaMate) bool) []entity.KerjaMate {
	out := make([]entity.KerjaMate, 0, len(s.kerjaMates))
	for _, k := range s.kerjaMates {
		if keep == nil || keep(k) {
			out = append(out, k.Clone())
		}
	}
	return out
}
