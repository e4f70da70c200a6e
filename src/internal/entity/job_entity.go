package entity

type JobStatus string

const (
	JobStatusOpen      JobStatus = "open"
	JobStatusAssigned  JobStatus = "assigned"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
)

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    Location  `json:"location"`
	DatePosted  string    `json:"datePosted"`
	DateNeeded  string    `json:"dateNeeded"`
	TimeNeeded  string    `json:"timeNeeded"`
	Duration    int       `json:"duration"`
	Budget      int64     `json:"budget"`
	Status      JobStatus `json:"status"`
	UserID      string    `json:"userId"`
	KerjaMateID string    `json:"kerjaMateId,omitempty"`
	Skills      []string  `json:"skills"`
}

func (j Job) Clone() Job {
	j.Skills = append([]string(nil), j.Skills...)
	return j
}

// JobDraft is the post-job form while a user is still composing it.
type JobDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Location    Location `json:"location"`
	DateNeeded  string   `json:"dateNeeded"`
	TimeNeeded  string   `json:"timeNeeded"`
	Duration    int      `json:"duration"`
	Budget      int64    `json:"budget"`
	Skills      []string `json:"skills"`
}

func NewJobDraft() JobDraft {
	return JobDraft{Duration: 1, Skills: []string{}}
}

type LocationPatch struct {
	Address *string  `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// JobDraftPatch carries the fields to merge into a draft. Nil fields are left
// untouched; Location merges field by field.
type JobDraftPatch struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Location    *LocationPatch `json:"location,omitempty"`
	DateNeeded  *string        `json:"dateNeeded,omitempty"`
	TimeNeeded  *string        `json:"timeNeeded,omitempty"`
	Duration    *int           `json:"duration,omitempty"`
	Budget      *int64         `json:"budget,omitempty"`
	Skills      []string       `json:"skills,omitempty"`
}
