package entity

type TrainingCourse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Instructor  string  `json:"instructor"`
	Duration    string  `json:"duration"`
	Level       string  `json:"level"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type Mentor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Specialty    string  `json:"specialty"`
	Experience   string  `json:"experience"`
	Availability string  `json:"availability"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
	Avatar       string  `json:"avatar"`
	Bio          string  `json:"bio"`
}

// TrainingBadge is a certification and the learner's progress towards it,
// 0 to 100.
type TrainingBadge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	Progress    int    `json:"progress"`
}
