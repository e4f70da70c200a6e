package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/gateway/geo"
	"kerjabantu-service/src/internal/gateway/messaging"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/model/converter"
	"kerjabantu-service/src/internal/store"
	httpError "kerjabantu-service/src/pkg/http-error"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeFindMatches = "job:find-matches"

// TaskEnqueuer is the part of *asynq.Client the job use case needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type JobUseCase struct {
	Log         log.Log
	Validate    *validator.Validate
	Sessions    *store.Manager
	JobProducer *messaging.JobProducer
	Geocoder    geo.Geocoder
	Tasks       TaskEnqueuer
}

func NewJobUseCase(
	logger log.Log,
	validate *validator.Validate,
	sessions *store.Manager,
	jobProducer *messaging.JobProducer,
	geocoder geo.Geocoder,
	tasks TaskEnqueuer,
) *JobUseCase {
	return &JobUseCase{
		Log:         logger,
		Validate:    validate,
		Sessions:    sessions,
		JobProducer: jobProducer,
		Geocoder:    geocoder,
		Tasks:       tasks,
	}
}

func jobNotFound(id string) *httpError.HttpError {
	errObj := httpError.NewNotFound()
	errObj.Message = fmt.Sprintf("job with id %s not found", id)
	return errObj
}

func (c *JobUseCase) List(ctx context.Context, request *model.ListJobsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	if request.Category != "" && request.Status != "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "filter by category or by status, not both"
		result.Error = errObj
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	switch {
	case request.Category != "":
		st.FilterJobsByCategory(request.Category)
	case request.Status != "":
		status, err := store.ParseJobStatus(request.Status)
		if err != nil {
			result.Error = validationError(err)
			return result
		}
		st.FilterJobsByStatus(status)
	}

	jobs := st.FilteredJobs()
	result.Data = model.JobListResponse{Jobs: jobs, Total: len(jobs)}
	return result
}

func (c *JobUseCase) ResetFilter(ctx context.Context, request *model.SessionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	st.ResetJobsFilter()

	jobs := st.FilteredJobs()
	result.Data = model.JobListResponse{Jobs: jobs, Total: len(jobs)}
	return result
}

func (c *JobUseCase) Get(ctx context.Context, request *model.GetJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	job, ok := st.GetJobByID(request.ID)
	if !ok {
		result.Error = jobNotFound(request.ID)
		return result
	}
	result.Data = job
	return result
}

func (c *JobUseCase) Matches(ctx context.Context, request *model.GetJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	if _, ok := st.GetJobByID(request.ID); !ok {
		result.Error = jobNotFound(request.ID)
		return result
	}
	result.Data = model.MatchesResponse{
		JobID:      request.ID,
		KerjaMates: st.FindMatchingKerjaMates(request.ID),
	}
	return result
}

func (c *JobUseCase) Hire(ctx context.Context, request *model.HireRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	if _, ok := st.GetJobByID(request.JobID); !ok {
		result.Error = jobNotFound(request.JobID)
		return result
	}
	if _, ok := st.GetKerjaMateByID(request.KerjaMateID); !ok {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("kerjamate with id %s not found", request.KerjaMateID)
		result.Error = errObj
		return result
	}
	if _, ok := st.CurrentUser(); !ok {
		result.Error = noCurrentUser()
		return result
	}

	if !st.HireKerjaMate(request.JobID, request.KerjaMateID) {
		errObj := httpError.NewConflict()
		errObj.Message = "insufficient balance or job unavailable"
		result.Error = errObj
		c.Log.Info("job-usecase", errObj.Message, "Hire", request.JobID)
		return result
	}
	saveSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID, st)

	job, _ := st.GetJobByID(request.JobID)
	user, _ := st.CurrentUser()
	if err := c.JobProducer.SendJobAssigned(converter.JobToEvent(uuid.NewString(), request.SessionID, &job)); err != nil {
		c.Log.Error("job-usecase", fmt.Sprintf("Failed publish job assigned event : %+v", err), "Hire", job.ID)
	}

	result.Data = model.HireResponse{Job: job, Balance: user.WalletBalance}
	return result
}

func (c *JobUseCase) transitionError(err error, jobID, scope string) *httpError.HttpError {
	switch {
	case errors.Is(err, store.ErrJobNotFound):
		return jobNotFound(jobID)
	case errors.Is(err, store.ErrInvalidTransition):
		errObj := httpError.NewConflict()
		errObj.Message = err.Error()
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = err.Error()
	c.Log.Error("job-usecase", errObj.Message, scope, jobID)
	return errObj
}

func (c *JobUseCase) Complete(ctx context.Context, request *model.GetJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	if err := st.CompleteJob(request.ID); err != nil {
		result.Error = c.transitionError(err, request.ID, "Complete")
		return result
	}

	job, _ := st.GetJobByID(request.ID)
	if err := c.JobProducer.SendJobStatusChanged(converter.JobToEvent(uuid.NewString(), request.SessionID, &job)); err != nil {
		c.Log.Error("job-usecase", fmt.Sprintf("Failed publish job status event : %+v", err), "Complete", job.ID)
	}
	result.Data = job
	return result
}

func (c *JobUseCase) Cancel(ctx context.Context, request *model.GetJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	refund, err := st.CancelJob(request.ID)
	if err != nil {
		result.Error = c.transitionError(err, request.ID, "Cancel")
		return result
	}
	if refund > 0 {
		saveSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID, st)
	}

	job, _ := st.GetJobByID(request.ID)
	event := converter.JobToEvent(uuid.NewString(), request.SessionID, &job)
	event.Message.Refund = refund
	if err := c.JobProducer.SendJobStatusChanged(event); err != nil {
		c.Log.Error("job-usecase", fmt.Sprintf("Failed publish job status event : %+v", err), "Cancel", job.ID)
	}
	result.Data = model.CancelJobResponse{Job: job, Refund: refund}
	return result
}

func (c *JobUseCase) ListCategories(ctx context.Context, request *model.SessionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	result.Data = st.Categories()
	return result
}

func (c *JobUseCase) GetCategory(ctx context.Context, request *model.GetCategoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	st, errObj := openSession(ctx, c.Sessions, c.Log, "job-usecase", request.SessionID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	category, ok := st.GetJobCategoryByID(request.ID)
	if !ok {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("category with id %s not found", request.ID)
		result.Error = errObj
		return result
	}
	result.Data = category
	return result
}

// FindMatchesTask is the asynq handler for TypeFindMatches. It publishes the
// KerjaMates whose skills overlap the posted job.
func (c *JobUseCase) FindMatchesTask(ctx context.Context, t *asynq.Task) error {
	var payload model.FindMatchesPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		c.Log.Error("job-usecase", err.Error(), "FindMatchesTask", string(t.Payload()))
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	st, err := c.Sessions.Get(ctx, payload.SessionID)
	if err != nil {
		return err
	}
	if _, ok := st.GetJobByID(payload.JobID); !ok {
		c.Log.Info("job-usecase", "job vanished before matching", "FindMatchesTask", payload.JobID)
		return nil
	}

	matches := st.FindMatchingKerjaMates(payload.JobID)
	ids := make([]string, 0, len(matches))
	for _, k := range matches {
		ids = append(ids, k.ID)
	}
	event := &model.JobMatchesEvent{
		EventID:      uuid.NewString(),
		SessionID:    payload.SessionID,
		JobID:        payload.JobID,
		KerjaMateIDs: ids,
	}
	c.Log.Info("job-usecase", fmt.Sprintf("%d kerjamates match", len(ids)), "FindMatchesTask", payload.JobID)
	return c.JobProducer.SendMatchesFound(event)
}

func (c *JobUseCase) enqueueFindMatches(ctx context.Context, sessionID, jobID string) {
	if c.Tasks == nil {
		return
	}
	payload, err := json.Marshal(model.FindMatchesPayload{SessionID: sessionID, JobID: jobID})
	if err != nil {
		c.Log.Error("job-usecase", err.Error(), "enqueueFindMatches", jobID)
		return
	}
	task := asynq.NewTask(TypeFindMatches, payload, asynq.MaxRetry(3), asynq.Timeout(30*time.Second))
	if _, err := c.Tasks.EnqueueContext(ctx, task); err != nil {
		c.Log.Error("job-usecase", fmt.Sprintf("Failed enqueue find matches : %+v", err), "enqueueFindMatches", jobID)
	}
}

// geocodeDraft fills in coordinates for a draft that only has an address.
func (c *JobUseCase) geocodeDraft(ctx context.Context, st *store.Store, draft *entity.JobDraft) {
	if c.Geocoder == nil || draft.Location.Lat != 0 || draft.Location.Lng != 0 {
		return
	}
	loc, err := c.Geocoder.Geocode(ctx, draft.Location.Address)
	if err != nil {
		c.Log.Error("job-usecase", err.Error(), "geocodeDraft", draft.Location.Address)
		return
	}
	st.UpdateJobDraft(entity.JobDraftPatch{
		Location: &entity.LocationPatch{Lat: &loc.Lat, Lng: &loc.Lng},
	})
}
