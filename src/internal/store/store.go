// Package store holds the state of one KerjaBantu session: the current user,
// the marketplace collections and their filtered views, the job draft and the
// persona flags.
//
// Filtered views are never stored. The store keeps the active predicate and
// evaluates it over the full collection on every read, so a filtered view is
// always a subset of its collection.
//
// A Store is safe for concurrent use. Composite mutations such as
// HireKerjaMate run under a single lock.
package store

import (
	"sync"
	"time"

	"kerjabantu-service/src/internal/entity"
)

type Store struct {
	mu sync.Mutex
	// persistMu orders snapshot writes so a later write never carries an
	// older snapshot.
	persistMu sync.Mutex

	currentUser            *entity.User
	persona                entity.UserPersona
	hasCompletedOnboarding bool

	kerjaMates      []entity.KerjaMate
	kerjaMateFilter func(entity.KerjaMate) bool

	jobs       []entity.Job
	jobFilter  func(entity.Job) bool
	nextJobSeq int

	categories []entity.JobCategory
	draft      entity.JobDraft

	// payments holds what HireKerjaMate charged, by job id. credits holds
	// refunds owed to users who are not signed in, applied when they are.
	payments map[string]payment
	credits  map[string]int64

	now func() time.Time
}

type payment struct {
	payerID string
	amount  int64
}

type Option func(*Store)

// WithClock replaces time.Now, used for the date a job is posted.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New builds a store over a private copy of catalog. The store starts with no
// current user; callers pick one with SetCurrentUser or Restore.
func New(catalog *entity.Catalog, opts ...Option) *Store {
	s := &Store{
		draft:    entity.NewJobDraft(),
		payments: make(map[string]payment),
		credits:  make(map[string]int64),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if catalog != nil {
		s.kerjaMates = make([]entity.KerjaMate, 0, len(catalog.KerjaMates))
		for _, k := range catalog.KerjaMates {
			s.kerjaMates = append(s.kerjaMates, k.Clone())
		}
		s.jobs = make([]entity.Job, 0, len(catalog.Jobs))
		for _, j := range catalog.Jobs {
			s.jobs = append(s.jobs, j.Clone())
		}
		s.categories = make([]entity.JobCategory, 0, len(catalog.Categories))
		for _, c := range catalog.Categories {
			c.PopularTasks = append([]string(nil), c.PopularTasks...)
			s.categories = append(s.categories, c)
		}
	}
	s.nextJobSeq = firstJobSequence(s.jobs)

	return s
}

func (s *Store) Categories() []entity.JobCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.JobCategory, 0, len(s.categories))
	for _, c := range s.categories {
		c.PopularTasks = append([]string(nil), c.PopularTasks...)
		out = append(out, c)
	}
	return out
}

func (s *Store) GetJobCategoryByID(id string) (entity.JobCategory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.ID == id {
			c.PopularTasks = append([]string(nil), c.PopularTasks...)
			return c, true
		}
	}
	return entity.JobCategory{}, false
}
