package model

import "kerjabantu-service/src/internal/entity"

type ListJobsRequest struct {
	SessionID string `json:"-" validate:"required"`
	Category  string `query:"category" validate:"omitempty,max=64"`
	Status    string `query:"status" validate:"omitempty,oneof=open assigned completed cancelled"`
}

type JobListResponse struct {
	Jobs  []entity.Job `json:"jobs"`
	Total int          `json:"total"`
}

type GetJobRequest struct {
	SessionID string `json:"-" validate:"required"`
	ID        string `json:"-" validate:"required,max=32"`
}

type SessionRequest struct {
	SessionID string `json:"-" validate:"required"`
}

type LocationPatchRequest struct {
	Address *string  `json:"address" validate:"omitempty,max=255"`
	Lat     *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng     *float64 `json:"lng" validate:"omitempty,longitude"`
}

// UpdateDraftRequest is a partial draft. Fields left out of the body stay
// untouched.
type UpdateDraftRequest struct {
	SessionID   string                `json:"-" validate:"required"`
	Title       *string               `json:"title" validate:"omitempty,max=200"`
	Description *string               `json:"description" validate:"omitempty,max=2000"`
	Category    *string               `json:"category" validate:"omitempty,max=64"`
	Location    *LocationPatchRequest `json:"location"`
	DateNeeded  *string               `json:"dateNeeded" validate:"omitempty,datetime=2006-01-02"`
	TimeNeeded  *string               `json:"timeNeeded" validate:"omitempty,datetime=15:04"`
	Duration    *int                  `json:"duration" validate:"omitempty,gt=0"`
	Budget      *int64                `json:"budget" validate:"omitempty,gte=0"`
	Skills      []string              `json:"skills" validate:"omitempty,dive,required,max=64"`
}

type ApplyDraftFieldRequest struct {
	SessionID string      `json:"-" validate:"required"`
	Path      string      `json:"path" validate:"required,max=32"`
	Value     interface{} `json:"value"`
}

// PostJobRequest is a draft ready to be posted. It carries the checks of the
// post-job form.
type PostJobRequest struct {
	Title       string   `validate:"required,max=200"`
	Description string   `validate:"required,max=2000"`
	Category    string   `validate:"required"`
	Address     string   `validate:"required"`
	DateNeeded  string   `validate:"required"`
	TimeNeeded  string   `validate:"required"`
	Duration    int      `validate:"gt=0"`
	Budget      int64    `validate:"gt=0"`
	Skills      []string `validate:"min=1,dive,required"`
}

type SubmitJobResponse struct {
	JobID string     `json:"jobId"`
	Job   entity.Job `json:"job"`
}

type HireRequest struct {
	SessionID   string `json:"-" validate:"required"`
	JobID       string `json:"-" validate:"required,max=32"`
	KerjaMateID string `json:"kerjaMateId" validate:"required,max=32"`
}

type HireResponse struct {
	Job     entity.Job `json:"job"`
	Balance int64      `json:"balance"`
}

type CancelJobResponse struct {
	Job    entity.Job `json:"job"`
	Refund int64      `json:"refund"`
}

type MatchesResponse struct {
	JobID      string             `json:"jobId"`
	KerjaMates []entity.KerjaMate `json:"kerjaMates"`
}

type GetCategoryRequest struct {
	SessionID string `json:"-" validate:"required"`
	ID        string `json:"-" validate:"required,max=32"`
}

// FindMatchesPayload is the body of the job:find-matches task.
type FindMatchesPayload struct {
	SessionID string `json:"sessionId"`
	JobID     string `json:"jobId"`
}
