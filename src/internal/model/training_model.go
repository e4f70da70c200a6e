package model

import "kerjabantu-service/src/internal/entity"

type TrainingCatalogRequest struct {
	Category string `query:"category" validate:"omitempty,max=64"`
}

type TrainingCatalogResponse struct {
	Courses []entity.TrainingCourse `json:"courses"`
	Mentors []entity.Mentor         `json:"mentors"`
	Badges  []entity.TrainingBadge  `json:"badges"`
}
