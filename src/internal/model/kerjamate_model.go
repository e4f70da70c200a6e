package model

import "kerjabantu-service/src/internal/entity"

type ListKerjaMatesRequest struct {
	SessionID string `json:"-" validate:"required"`
	Skill     string `query:"skill" validate:"omitempty,max=64"`
	Available string `query:"available" validate:"omitempty,oneof=true false"`
}

type KerjaMateListResponse struct {
	KerjaMates []entity.KerjaMate `json:"kerjaMates"`
	Total      int                `json:"total"`
}

type GetKerjaMateRequest struct {
	SessionID string `json:"-" validate:"required"`
	ID        string `json:"-" validate:"required,max=32"`
}
