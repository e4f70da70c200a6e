package store

import (
	"fmt"
	"strconv"
	"strings"

	"kerjabantu-service/src/internal/entity"
)

const (
	jobIDPrefix   = "job-"
	unknownUserID = "unknown"
	postedLayout  = "2006-01-02"
)

func (s *Store) Jobs() []entity.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectJobs(nil)
}

func (s *Store) FilteredJobs() []entity.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectJobs(s.jobFilter)
}

// FilterJobsByCategory keeps jobs whose category equals category, ignoring
// case. It replaces any previous job filter.
func (s *Store) FilterJobsByCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobFilter = func(j entity.Job) bool {
		return strings.EqualFold(j.Category, category)
	}
}

func (s *Store) FilterJobsByStatus(status entity.JobStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobFilter = func(j entity.Job) bool {
		return j.Status == status
	}
}

func (s *Store) ResetJobsFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobFilter = nil
}

func (s *Store) GetJobByID(id string) (entity.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.jobIndex(id)
	if i < 0 {
		return entity.Job{}, false
	}
	return s.jobs[i].Clone(), true
}

// SubmitJob turns the draft into an open job owned by the current user and
// returns its id. Validation belongs to the caller. The draft is left as is;
// callers reset it once the submission is acknowledged.
func (s *Store) SubmitJob() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocJobID()
	userID := unknownUserID
	if s.currentUser != nil {
		userID = s.currentUser.ID
	}

	d := s.draft
	job := entity.Job{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Location:    d.Location,
		DatePosted:  s.now().Format(postedLayout),
		DateNeeded:  d.DateNeeded,
		TimeNeeded:  d.TimeNeeded,
		Duration:    d.Duration,
		Budget:      d.Budget,
		Status:      entity.JobStatusOpen,
		UserID:      userID,
		Skills:      append([]string{}, d.Skills...),
	}
	s.jobs = append(s.jobs, job)
	// the filtered view shows the full list after a post
	s.jobFilter = nil

	if s.currentUser != nil {
		s.currentUser.JobsPosted = append(s.currentUser.JobsPosted, id)
	}
	return id
}

// allocJobID hands out job-NNN ids from a counter that only moves forward and
// never returns an id already present in the collection.
func (s *Store) allocJobID() string {
	for {
		id := fmt.Sprintf("%s%03d", jobIDPrefix, s.nextJobSeq)
		s.nextJobSeq++
		if s.jobIndex(id) < 0 {
			return id
		}
	}
}

func firstJobSequence(jobs []entity.Job) int {
	next := len(jobs) + 1
	for _, j := range jobs {
		n, err := strconv.Atoi(strings.TrimPrefix(j.ID, jobIDPrefix))
		if err != nil || !strings.HasPrefix(j.ID, jobIDPrefix) {
			continue
		}
		if n+1 > next {
			next = n + 1
		}
	}
	return next
}

func (s *Store) jobIndex(id string) int {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) selectJobs(keep func(entity.Job) bool) []entity.Job {
	out := make([]entity.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if keep == nil || keep(j) {
			out = append(out, j.Clone())
		}
	}
	return out
}
