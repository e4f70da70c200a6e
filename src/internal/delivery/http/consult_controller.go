package http

import (
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/usecase"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ConsultController struct {
	Log     log.Log
	UseCase *usecase.ConsultUseCase
}

func NewConsultController(useCase *usecase.ConsultUseCase, logger log.Log) *ConsultController {
	return &ConsultController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ConsultController) Topics(ctx *fiber.Ctx) error {
	result := c.UseCase.ListTopics(ctx.UserContext())
	return utils.Response(result.Data, "Topics", fiber.StatusOK, ctx)
}

func (c *ConsultController) Ask(ctx *fiber.Ctx) error {
	request := new(model.ConsultAskRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ConsultController.Ask", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	result := c.UseCase.Ask(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Answer", fiber.StatusOK, ctx)
}
