package http

import (
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/usecase"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TrainingController struct {
	Log     log.Log
	UseCase *usecase.TrainingUseCase
}

func NewTrainingController(useCase *usecase.TrainingUseCase, logger log.Log) *TrainingController {
	return &TrainingController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TrainingController) Catalog(ctx *fiber.Ctx) error {
	request := new(model.TrainingCatalogRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("TrainingController.Catalog", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	result := c.UseCase.Catalog(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Training", fiber.StatusOK, ctx)
}
