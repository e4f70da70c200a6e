package http

import (
	"kerjabantu-service/src/internal/delivery/http/middleware"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/usecase"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type JobController struct {
	Log     log.Log
	UseCase *usecase.JobUseCase
}

func NewJobController(useCase *usecase.JobUseCase, logger log.Log) *JobController {
	return &JobController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *JobController) sessionRequest(ctx *fiber.Ctx) *model.SessionRequest {
	return &model.SessionRequest{SessionID: middleware.GetSessionID(ctx)}
}

func (c *JobController) jobRequest(ctx *fiber.Ctx) *model.GetJobRequest {
	return &model.GetJobRequest{
		SessionID: middleware.GetSessionID(ctx),
		ID:        ctx.Params("id"),
	}
}

func (c *JobController) List(ctx *fiber.Ctx) error {
	request := new(model.ListJobsRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("JobController.List", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)

	result := c.UseCase.List(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Jobs", fiber.StatusOK, ctx)
}

func (c *JobController) ResetFilter(ctx *fiber.Ctx) error {
	result := c.UseCase.ResetFilter(ctx.UserContext(), c.sessionRequest(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Jobs", fiber.StatusOK, ctx)
}

func (c *JobController) Get(ctx *fiber.Ctx) error {
	result := c.UseCase.Get(ctx.UserContext(), c.jobRequest(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Job", fiber.StatusOK, ctx)
}

func (c *JobController) Matches(ctx *fiber.Ctx) error {
	result := c.UseCase.Matches(ctx.UserContext(), c.jobRequest(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Matches", fiber.StatusOK, ctx)
}

func (c *JobController) Hire(ctx *fiber.Ctx) error {
	request := new(model.HireRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("JobController.Hire", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)
	request.JobID = ctx.Params("id")

	result := c.UseCase.Hire(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Hire", fiber.StatusOK, ctx)
}

func (c *JobController) Complete(ctx *fiber.Ctx) error {
	result := c.UseCase.Complete(ctx.UserContext(), c.jobRequest(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Complete", fiber.StatusOK, ctx)
}

func (c *JobController) Cancel(ctx *fiber.Ctx) error {
	result := c.UseCase.Cancel(ctx.UserContext(), c.jobRequest(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Cancel", fiber.StatusOK, ctx)
}

func (c *JobController) GetDraft(ctx *fiber.Ctx) error {
	result := c.UseCase.GetDraft(ctx.UserContext(), c.sessionRequest(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Draft", fiber.StatusOK, ctx)
}

func (c *JobController) UpdateDraft(ctx *fiber.Ctx) error {
	request := new(model.UpdateDraftRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("JobController.UpdateDraft", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)

	result := c.UseCase.UpdateDraft(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Draft", fiber.StatusOK, ctx)
}

func (c *JobController) ApplyDraftField(ctx *fiber.Ctx) error {
	request := new(model.ApplyDraftFieldRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("JobController.ApplyDraftField", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.ErrBadRequest, ctx)
	}
	request.SessionID = middleware.GetSessionID(ctx)

	result := c.UseCase.ApplyDraftField(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Draft", fiber.StatusOK, ctx)
}

func (c *JobController) ResetDraft(ctx *fiber.Ctx) error {
	result := c.UseCase.ResetDraft(ctx.UserContext(), c.sessionRequest(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Draft", fiber.StatusOK, ctx)
}

func (c *JobController) Submit(ctx *fiber.Ctx) error {
	result := c.UseCase.Submit(ctx.UserContext(), c.sessionRequest(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Job posted", fiber.StatusCreated, ctx)
}

func (c *JobController) ListCategories(ctx *fiber.Ctx) error {
	result := c.UseCase.ListCategories(ctx.UserContext(), c.sessionRequest(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Categories", fiber.StatusOK, ctx)
}

func (c *JobController) GetCategory(ctx *fiber.Ctx) error {
	request := &model.GetCategoryRequest{
		SessionID: middleware.GetSessionID(ctx),
		ID:        ctx.Params("id"),
	}
	result := c.UseCase.GetCategory(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Category", fiber.StatusOK, ctx)
}
