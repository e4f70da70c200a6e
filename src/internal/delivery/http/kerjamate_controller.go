package http

import (
	"kerjabantu-service/src/internal/delivery/http/middleware"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/usecase"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type KerjaMateController struct {
	Log     log.Log
	UseCase *usecase.KerjaMateUseCase
}

func NewKerjaMateController(useCase *usecase.KerjaMateUseCase, logger log.Log) *KerjaMateController {
	return &KerjaMateController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *KerjaMateController) List(ctx *fiber.Ctx) error {
	request := new(model.ListKerjaMatesRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("KerjaMateController.List", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)

	result := c.UseCase.List(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "KerjaMates", fiber.StatusOK, ctx)
}

func (c *KerjaMateController) ResetFilter(ctx *fiber.Ctx) error {
	request := &model.SessionRequest{SessionID: middleware.GetSessionID(ctx)}
	result := c.UseCase.ResetFilter(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "KerjaMates", fiber.StatusOK, ctx)
}

func (c *KerjaMateController) Get(ctx *fiber.Ctx) error {
	request := &model.GetKerjaMateRequest{
		SessionID: middleware.GetSessionID(ctx),
		ID:        ctx.Params("id"),
	}
	result := c.UseCase.Get(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "KerjaMate", fiber.StatusOK, ctx)
}
