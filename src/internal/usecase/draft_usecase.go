package usecase

import (
	"context"
	"errors"
	"fmt"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/model/converter"
	"kerjabantu-service/src/internal/store"
	httpError "kerjabantu-service/src/pkg/http-error"
	"kerjabantu-service/src/pkg/utils"

	"github.com/google/uuid"
)

func (c *JobUseCase) GetDraft(ctx context.Context, request *model.SessionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "draft-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	result.Data = st.JobDraft()
	return result
}

func (c *JobUseCase) UpdateDraft(ctx context.Context, request *model.UpdateDraftRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("UpdateDraft-validation", err.Error(), "request", request.SessionID)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "draft-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	st.UpdateJobDraft(converter.DraftRequestToPatch(request))
	result.Data = st.JobDraft()
	return result
}

func (c *JobUseCase) ApplyDraftField(ctx context.Context, request *model.ApplyDraftFieldRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "draft-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	if err := st.ApplyDraftField(request.Path, request.Value); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		if !errors.Is(err, store.ErrUnknownDraftField) {
			c.Log.Info("draft-usecase", errObj.Message, "ApplyDraftField", request.Path)
		}
		return result
	}
	result.Data = st.JobDraft()
	return result
}

func (c *JobUseCase) ResetDraft(ctx context.Context, request *model.SessionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "draft-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	st.ResetJobDraft()
	result.Data = st.JobDraft()
	return result
}

// Submit posts the session's draft as a new open job, then clears the draft.
func (c *JobUseCase) Submit(ctx context.Context, request *model.SessionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "draft-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	draft := st.JobDraft()
	if err := c.Validate.Struct(converter.DraftToPostJobRequest(&draft)); err != nil {
		result.Error = validationError(err)
		c.Log.Info("draft-usecase", err.Error(), "Submit", request.SessionID)
		return result
	}
	c.geocodeDraft(ctx, st, &draft)

	jobID := st.SubmitJob()
	st.ResetJobDraft()
	saveSession(ctx, c.Sessions, c.Log, "draft-usecase", request.SessionID, st)

	job, ok := st.GetJobByID(jobID)
	if !ok {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("submitted job %s is missing", jobID)
		result.Error = errObj
		c.Log.Error("draft-usecase", errObj.Message, "Submit", request.SessionID)
		return result
	}

	if err := c.JobProducer.SendJobPosted(converter.JobToEvent(uuid.NewString(), request.SessionID, &job)); err != nil {
		c.Log.Error("draft-usecase", fmt.Sprintf("Failed publish job posted event : %+v", err), "Submit", jobID)
	}
	c.enqueueFindMatches(ctx, request.SessionID, jobID)

	c.Log.Info("draft-usecase", "job posted", "Submit", jobID)
	result.Data = model.SubmitJobResponse{JobID: jobID, Job: job}
	return result
}
