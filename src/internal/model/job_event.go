package model

type JobPayload struct {
	SessionID   string `json:"session_id"`
	JobID       string `json:"job_id"`
	UserID      string `json:"user_id"`
	KerjaMateID string `json:"kerja_mate_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status"`
	Budget      int64  `json:"budget"`
	Refund      int64  `json:"refund,omitempty"`
}

type JobEvent struct {
	ID      string     `json:"id,omitempty"`
	Message JobPayload `json:"message,omitempty"`
}

func (e *JobEvent) GetId() string {
	return e.ID
}

type JobMatchesEvent struct {
	EventID      string   `json:"event_id"`
	SessionID    string   `json:"session_id"`
	JobID        string   `json:"job_id"`
	KerjaMateIDs []string `json:"kerja_mate_ids"`
}

func (e *JobMatchesEvent) GetId() string {
	return e.EventID
}
