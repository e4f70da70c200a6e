package store

import (
	"slices"

	"kerjabantu-service/src/internal/entity"
)

// CurrentUser returns a copy of the active user.
func (s *Store) CurrentUser() (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return entity.User{}, false
	}
	return s.currentUser.Clone(), true
}

// SetCurrentUser replaces the active user. A nil user signs the session out.
func (s *Store) SetCurrentUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setCurrentUserLocked(user)
}

func (s *Store) setCurrentUserLocked(user *entity.User) {
	if user == nil {
		s.currentUser = nil
		return
	}
	u := user.Clone()
	if owed := s.credits[u.ID]; owed > 0 {
		u.WalletBalance += owed
		delete(s.credits, u.ID)
	}
	s.currentUser = &u
}

func (s *Store) Persona() entity.UserPersona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persona
}

func (s *Store) SetUserPersona(persona entity.UserPersona) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persona = persona
}

// UpdateUserPersona flips a single persona flag.
func (s *Store) UpdateUserPersona(key entity.PersonaKey, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case entity.PersonaDailyWork:
		s.persona.DailyWork = value
	case entity.PersonaFormalJobs:
		s.persona.FormalJobs = value
	case entity.PersonaTraining:
		s.persona.Training = value
	case entity.PersonaNeedHelp:
		s.persona.NeedHelp = value
	default:
		return ErrUnknownPersonaKey
	}
	return nil
}

func (s *Store) HasCompletedOnboarding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasCompletedOnboarding
}

func (s *Store) SetHasCompletedOnboarding(completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasCompletedOnboarding = completed
}

// ToggleFavoriteKerjaMate adds or removes a KerjaMate from the current user's
// favorites and reports whether it is a favorite afterwards.
func (s *Store) ToggleFavoriteKerjaMate(kerjaMateID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return false, ErrNoCurrentUser
	}
	if s.kerjaMateIndex(kerjaMateID) < 0 {
		return false, ErrKerjaMateNotFound
	}

	favs := s.currentUser.FavoriteKerjaMates
	if i := slices.Index(favs, kerjaMateID); i >= 0 {
		s.currentUser.FavoriteKerjaMates = slices.Delete(favs, i, i+1)
		return false, nil
	}
	s.currentUser.FavoriteKerjaMates = append(favs, kerjaMateID)
	return true, nil
}
