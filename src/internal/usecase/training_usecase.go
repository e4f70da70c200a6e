package usecase

import (
	"context"
	"strings"

	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type TrainingUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Courses  []entity.TrainingCourse
	Mentors  []entity.Mentor
	Badges   []entity.TrainingBadge
}

func NewTrainingUseCase(
	logger log.Log,
	validate *validator.Validate,
	courses []entity.TrainingCourse,
	mentors []entity.Mentor,
	badges []entity.TrainingBadge,
) *TrainingUseCase {
	return &TrainingUseCase{
		Log:      logger,
		Validate: validate,
		Courses:  courses,
		Mentors:  mentors,
		Badges:   badges,
	}
}

// Catalog lists courses of one category, ignoring case, or all of them when
// the category is empty or "all". Mentors and badges are always listed.
func (c *TrainingUseCase) Catalog(_ context.Context, request *model.TrainingCatalogRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}

	courses := make([]entity.TrainingCourse, 0, len(c.Courses))
	for _, course := range c.Courses {
		if request.Category == "" || strings.EqualFold(request.Category, "all") || strings.EqualFold(course.Category, request.Category) {
			courses = append(courses, course)
		}
	}
	result.Data = model.TrainingCatalogResponse{
		Courses: courses,
		Mentors: append([]entity.Mentor{}, c.Mentors...),
		Badges:  append([]entity.TrainingBadge{}, c.Badges...),
	}
	return result
}
