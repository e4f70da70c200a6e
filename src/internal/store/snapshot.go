package store

import "kerjabantu-service/src/internal/entity"

// Snapshot returns the persisted subset of the session. Collections, filters
// and the draft are not part of it.
func (s *Store) Snapshot() entity.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := entity.SessionState{
		UserPersona:            s.persona,
		HasCompletedOnboarding: s.hasCompletedOnboarding,
	}
	if s.currentUser != nil {
		u := s.currentUser.Clone()
		state.CurrentUser = &u
	}
	return state
}

func (s *Store) Restore(state entity.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setCurrentUserLocked(state.CurrentUser)
	s.persona = state.UserPersona
	s.hasCompletedOnboarding = state.HasCompletedOnboarding
}
