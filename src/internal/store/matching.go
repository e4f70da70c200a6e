package store

import (
	"slices"

	"kerjabantu-service/src/internal/entity"
)

// FindMatchingKerjaMates returns every KerjaMate sharing at least one skill
// tag with the job. An unknown job matches nobody.
func (s *Store) FindMatchingKerjaMates(jobID string) []entity.KerjaMate {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.jobIndex(jobID)
	if i < 0 {
		return []entity.KerjaMate{}
	}
	wanted := s.jobs[i].Skills
	return s.selectKerjaMates(func(k entity.KerjaMate) bool {
		for _, sk := range k.Skills {
			if slices.Contains(wanted, sk) {
				return true
			}
		}
		return false
	})
}

// HireKerjaMate pays the job budget from the current user's wallet and assigns
// the KerjaMate to the job. It reports false, changing nothing, when the job,
// the KerjaMate or the user is missing, when the job is no longer open, or
// when the balance does not cover the budget.
func (s *Store) HireKerjaMate(jobID, kerjaMateID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.jobIndex(jobID)
	if i < 0 || s.kerjaMateIndex(kerjaMateID) < 0 || s.currentUser == nil {
		return false
	}
	job := &s.jobs[i]
	if !IsTransitionAllowed(job.Status, entity.JobStatusAssigned) {
		return false
	}
	if !s.deductLocked(job.Budget) {
		return false
	}

	job.Status = entity.JobStatusAssigned
	job.KerjaMateID = kerjaMateID
	s.payments[job.ID] = payment{payerID: s.currentUser.ID, amount: job.Budget}
	s.jobFilter = nil
	return true
}
