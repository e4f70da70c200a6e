package entity

// SessionState is the only part of a session that outlives the process.
type SessionState struct {
	CurrentUser            *User       `json:"currentUser"`
	UserPersona            UserPersona `json:"userPersona"`
	HasCompletedOnboarding bool        `json:"hasCompletedOnboarding"`
}
