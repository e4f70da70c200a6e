package model

import "kerjabantu-service/src/internal/entity"

type UserResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone,omitempty"`
	Avatar             string   `json:"avatar,omitempty"`
	Address            string   `json:"address,omitempty"`
	WalletBalance      int64    `json:"walletBalance"`
	Subscription       string   `json:"subscription"`
	JobsPosted         []string `json:"jobsPosted"`
	FavoriteKerjaMates []string `json:"favoriteKerjaMates"`
}

type ProfileResponse struct {
	User                   *UserResponse      `json:"user"`
	Persona                entity.UserPersona `json:"persona"`
	HasCompletedOnboarding bool               `json:"hasCompletedOnboarding"`
}

type LoginUserRequest struct {
	SessionID string `json:"-" validate:"required"`
	Email     string `json:"email" validate:"required,email,max=160"`
	Password  string `json:"password" validate:"required,max=100"`
}

type RegisterUserRequest struct {
	SessionID string `json:"-" validate:"required"`
	Name      string `json:"name" validate:"required,max=120"`
	Email     string `json:"email" validate:"required,email,max=160"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Address   string `json:"address" validate:"omitempty,max=255"`
	Password  string `json:"password" validate:"required,min=6,max=100"`
	Confirm   string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LogoutUserRequest struct {
	SessionID string `json:"-" validate:"required"`
}

type GetUserRequest struct {
	SessionID string `json:"-" validate:"required"`
}

type SetPersonaRequest struct {
	SessionID  string `json:"-" validate:"required"`
	DailyWork  bool   `json:"dailyWork"`
	FormalJobs bool   `json:"formalJobs"`
	Training   bool   `json:"training"`
	NeedHelp   bool   `json:"needHelp"`
}

type UpdatePersonaRequest struct {
	SessionID string `json:"-" validate:"required"`
	Key       string `json:"-" validate:"required,oneof=dailyWork formalJobs training needHelp"`
	Value     bool   `json:"value"`
}

type CompleteOnboardingRequest struct {
	SessionID string `json:"-" validate:"required"`
}

type ToggleFavoriteRequest struct {
	SessionID   string `json:"-" validate:"required"`
	KerjaMateID string `json:"-" validate:"required,max=32"`
}

type ToggleFavoriteResponse struct {
	KerjaMateID string `json:"kerjaMateId"`
	Favorite    bool   `json:"favorite"`
}
