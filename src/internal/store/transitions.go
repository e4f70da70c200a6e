package store

// Job status graph:
//
//	open ──► assigned ──► completed
//	  │          │
//	  └──────────┴──► cancelled
//
// completed and cancelled are terminal. open → assigned only happens through
// HireKerjaMate.

import (
	"fmt"

	"kerjabantu-service/src/internal/entity"
)

var validTransitions = map[entity.JobStatus][]entity.JobStatus{
	entity.JobStatusOpen:     {entity.JobStatusAssigned, entity.JobStatusCancelled},
	entity.JobStatusAssigned: {entity.JobStatusCompleted, entity.JobStatusCancelled},
}

// ParseJobStatus converts a raw string to a JobStatus.
func ParseJobStatus(s string) (entity.JobStatus, error) {
	st := entity.JobStatus(s)
	switch st {
	case entity.JobStatusOpen, entity.JobStatusAssigned, entity.JobStatusCompleted, entity.JobStatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownJobStatus, s)
}

func IsTransitionAllowed(from, to entity.JobStatus) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CompleteJob marks an assigned job as completed.
func (s *Store) CompleteJob(jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.jobIndex(jobID)
	if i < 0 {
		return ErrJobNotFound
	}
	job := &s.jobs[i]
	if !IsTransitionAllowed(job.Status, entity.JobStatusCompleted) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, job.Status, entity.JobStatusCompleted)
	}
	job.Status = entity.JobStatusCompleted
	delete(s.payments, job.ID)
	return nil
}

// CancelJob cancels an open or assigned job and releases the KerjaMate. What
// HireKerjaMate charged for the job goes back to whoever paid it: straight to
// the wallet when the payer is signed in, otherwise on their next sign-in.
// Jobs assigned outside this session carry no payment and refund nothing.
// It returns the refunded amount.
func (s *Store) CancelJob(jobID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.jobIndex(jobID)
	if i < 0 {
		return 0, ErrJobNotFound
	}
	job := &s.jobs[i]
	if !IsTransitionAllowed(job.Status, entity.JobStatusCancelled) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, job.Status, entity.JobStatusCancelled)
	}

	var refund int64
	if paid, ok := s.payments[job.ID]; ok {
		refund = paid.amount
		if s.currentUser != nil && s.currentUser.ID == paid.payerID {
			s.currentUser.WalletBalance += refund
		} else {
			s.credits[paid.payerID] += refund
		}
		delete(s.payments, job.ID)
	}
	job.Status = entity.JobStatusCancelled
	job.KerjaMateID = ""
	return refund, nil
}
