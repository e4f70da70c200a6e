package entity

type JobCategory struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Icon              string   `json:"icon"`
	Description       string   `json:"description"`
	PopularTasks      []string `json:"popularTasks"`
	AverageHourlyRate int64    `json:"averageHourlyRate"`
}

// Catalog is the reference data every new session starts from.
type Catalog struct {
	Users      []User
	KerjaMates []KerjaMate
	Jobs       []Job
	Categories []JobCategory
}
