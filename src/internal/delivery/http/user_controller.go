package http

import (
	"kerjabantu-service/src/internal/delivery/http/middleware"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/usecase"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Log     log.Log
	UseCase *usecase.UserUseCase
}

func NewUserController(useCase *usecase.UserUseCase, logger log.Log) *UserController {
	return &UserController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *UserController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)

	result := c.UseCase.Login(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Login", fiber.StatusOK, ctx)
}

func (c *UserController) Register(ctx *fiber.Ctx) error {
	request := new(model.RegisterUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Register", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)

	result := c.UseCase.Register(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Register", fiber.StatusCreated, ctx)
}

func (c *UserController) Logout(ctx *fiber.Ctx) error {
	request := &model.LogoutUserRequest{SessionID: middleware.GetSessionID(ctx)}
	result := c.UseCase.Logout(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Logout", fiber.StatusOK, ctx)
}

func (c *UserController) GetProfile(ctx *fiber.Ctx) error {
	request := &model.GetUserRequest{SessionID: middleware.GetSessionID(ctx)}
	result := c.UseCase.GetProfile(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GetProfile", fiber.StatusOK, ctx)
}

func (c *UserController) SetPersona(ctx *fiber.Ctx) error {
	request := new(model.SetPersonaRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.SetPersona", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)

	result := c.UseCase.SetPersona(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "SetPersona", fiber.StatusOK, ctx)
}

func (c *UserController) UpdatePersona(ctx *fiber.Ctx) error {
	request := new(model.UpdatePersonaRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.UpdatePersona", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)
	request.Key = ctx.Params("key")

	result := c.UseCase.UpdatePersona(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "UpdatePersona", fiber.StatusOK, ctx)
}

func (c *UserController) CompleteOnboarding(ctx *fiber.Ctx) error {
	request := &model.CompleteOnboardingRequest{SessionID: middleware.GetSessionID(ctx)}
	result := c.UseCase.CompleteOnboarding(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "CompleteOnboarding", fiber.StatusOK, ctx)
}

func (c *UserController) ToggleFavorite(ctx *fiber.Ctx) error {
	request := &model.ToggleFavoriteRequest{
		SessionID:   middleware.GetSessionID(ctx),
		KerjaMateID: ctx.Params("kerjaMateId"),
	}
	result := c.UseCase.ToggleFavorite(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "ToggleFavorite", fiber.StatusOK, ctx)
}

func (c *UserController) TopUp(ctx *fiber.Ctx) error {
	request := new(model.TopUpRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.TopUp", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)

	result := c.UseCase.TopUp(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "TopUp", fiber.StatusOK, ctx)
}

func (c *UserController) Withdraw(ctx *fiber.Ctx) error {
	request := new(model.WithdrawRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Withdraw", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)

	result := c.UseCase.Withdraw(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Withdraw", fiber.StatusOK, ctx)
}
