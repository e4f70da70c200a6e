package store

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"kerjabantu-service/src/internal/entity"
)

func (s *Store) JobDraft() entity.JobDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft
	d.Skills = append([]string{}, d.Skills...)
	return d
}

// UpdateJobDraft merges the non-nil fields of patch into the draft. Location
// fields merge one by one instead of replacing the whole location.
func (s *Store) UpdateJobDraft(patch entity.JobDraftPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := &s.draft
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Category != nil {
		d.Category = *patch.Category
	}
	if loc := patch.Location; loc != nil {
		if loc.Address != nil {
			d.Location.Address = *loc.Address
		}
		if loc.Lat != nil {
			d.Location.Lat = *loc.Lat
		}
		if loc.Lng != nil {
			d.Location.Lng = *loc.Lng
		}
	}
	if patch.DateNeeded != nil {
		d.DateNeeded = *patch.DateNeeded
	}
	if patch.TimeNeeded != nil {
		d.TimeNeeded = *patch.TimeNeeded
	}
	if patch.Duration != nil {
		d.Duration = *patch.Duration
	}
	if patch.Budget != nil {
		d.Budget = *patch.Budget
	}
	if patch.Skills != nil {
		d.Skills = append([]string{}, patch.Skills...)
	}
}

// ApplyDraftField sets one draft field addressed by its form path. The only
// nested paths are location.address, location.lat and location.lng.
func (s *Store) ApplyDraftField(path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := &s.draft
	var err error
	switch path {
	case "title":
		err = setString(&d.Title, value)
	case "description":
		err = setString(&d.Description, value)
	case "category":
		err = setString(&d.Category, value)
	case "dateNeeded":
		err = setString(&d.DateNeeded, value)
	case "timeNeeded":
		err = setString(&d.TimeNeeded, value)
	case "duration":
		var v int
		if v, err = cast.ToIntE(value); err == nil {
			d.Duration = v
		}
	case "budget":
		var v int64
		if v, err = cast.ToInt64E(value); err == nil {
			d.Budget = v
		}
	case "skills":
		var v []string
		if v, err = toSkills(value); err == nil {
			d.Skills = v
		}
	case "location.address":
		err = setString(&d.Location.Address, value)
	case "location.lat":
		var v float64
		if v, err = cast.ToFloat64E(value); err == nil {
			d.Location.Lat = v
		}
	case "location.lng":
		var v float64
		if v, err = cast.ToFloat64E(value); err == nil {
			d.Location.Lng = v
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDraftField, path)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDraftValue, path, err)
	}
	return nil
}

func (s *Store) ResetJobDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = entity.NewJobDraft()
}

func setString(dst *string, value any) error {
	v, err := cast.ToStringE(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// toSkills keeps each tag whole. A bare string is a single tag, since tags
// such as "House Maintenance" contain spaces.
func toSkills(value interface{}) ([]string, error) {
	if tag, ok := value.(string); ok {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return nil, fmt.Errorf("empty skill tag")
		}
		return []string{tag}, nil
	}
	return cast.ToStringSliceE(value)
}
