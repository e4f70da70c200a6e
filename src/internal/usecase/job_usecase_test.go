package usecase_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/gateway/messaging"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/internal/usecase"
)

func ptr[T any](v T) *T { return &v }

func completeDraft(budget int64) *model.UpdateDraftRequest {
	return &model.UpdateDraftRequest{
		SessionID:   sessionID,
		Title:       ptr("Family dinner"),
		Description: ptr("Cook dinner for eight people"),
		Category:    ptr("Cooking"),
		Location:    &model.LocationPatchRequest{Address: ptr("Menteng, Jakarta Pusat")},
		DateNeeded:  ptr("2024-03-10"),
		TimeNeeded:  ptr("17:00"),
		Duration:    ptr(4),
		Budget:      ptr(budget),
		Skills:      []string{"Cooking"},
	}
}

func submit(t *testing.T, h *harness, budget int64) model.SubmitJobResponse {
	t.Helper()
	requireOK(t, h.jobs.UpdateDraft(ctx, completeDraft(budget)))
	result := h.jobs.Submit(ctx, &model.SessionRequest{SessionID: sessionID})
	requireOK(t, result)
	return result.Data.(model.SubmitJobResponse)
}

func TestSubmit_RejectsIncompleteDraft(t *testing.T) {
	h := newHarness(t)
	requireCode(t, h.jobs.Submit(ctx, &model.SessionRequest{SessionID: sessionID}), 400)

	req := completeDraft(100000)
	req.Skills = nil
	requireOK(t, h.jobs.UpdateDraft(ctx, req))
	requireCode(t, h.jobs.Submit(ctx, &model.SessionRequest{SessionID: sessionID}), 400)
	assert.Empty(t, h.publisher.Messages())
}

func TestSubmit_PostsJobAndResetsDraft(t *testing.T) {
	h := newHarness(t)

	posted := submit(t, h, 350000)
	assert.Equal(t, "job-009", posted.JobID)
	assert.Equal(t, entity.JobStatusOpen, posted.Job.Status)
	assert.Equal(t, "user-001", posted.Job.UserID)
	assert.Equal(t, entity.Location{Lat: -6.2, Lng: 106.8, Address: "Menteng, Jakarta Pusat"}, posted.Job.Location)
	assert.Equal(t, []string{"Menteng, Jakarta Pusat"}, h.geocoder.calls)

	draft := h.jobs.GetDraft(ctx, &model.SessionRequest{SessionID: sessionID})
	assert.Equal(t, entity.NewJobDraft(), draft.Data)

	msgs := h.publisher.Topic(messaging.TopicJobPosted)
	require.Len(t, msgs, 1)
	var event model.JobEvent
	require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
	assert.Equal(t, "job-009", event.Message.JobID)

	require.Len(t, h.tasks.tasks, 1)
	assert.Equal(t, usecase.TypeFindMatches, h.tasks.tasks[0].Type())
	var payload model.FindMatchesPayload
	require.NoError(t, json.Unmarshal(h.tasks.tasks[0].Payload(), &payload))
	assert.Equal(t, model.FindMatchesPayload{SessionID: sessionID, JobID: "job-009"}, payload)

	state, err := h.repo.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.Contains(t, state.CurrentUser.JobsPosted, "job-009")
}

func TestSubmit_KeepsGivenCoordinatesAndSurvivesGeocodeFailure(t *testing.T) {
	h := newHarness(t)
	req := completeDraft(100000)
	req.Location.Lat = ptr(-6.3)
	req.Location.Lng = ptr(106.9)
	requireOK(t, h.jobs.UpdateDraft(ctx, req))
	requireOK(t, h.jobs.Submit(ctx, &model.SessionRequest{SessionID: sessionID}))
	assert.Empty(t, h.geocoder.calls)

	h.geocoder.err = errors.New("quota exceeded")
	posted := submit(t, h, 100000)
	assert.Zero(t, posted.Job.Location.Lat)
}

func TestApplyDraftField(t *testing.T) {
	h := newHarness(t)

	result := h.jobs.ApplyDraftField(ctx, &model.ApplyDraftFieldRequest{SessionID: sessionID, Path: "location.address", Value: "Depok"})
	requireOK(t, result)
	assert.Equal(t, "Depok", result.Data.(entity.JobDraft).Location.Address)

	requireCode(t, h.jobs.ApplyDraftField(ctx, &model.ApplyDraftFieldRequest{SessionID: sessionID, Path: "location.city", Value: "Depok"}), 400)
	requireCode(t, h.jobs.ApplyDraftField(ctx, &model.ApplyDraftFieldRequest{SessionID: sessionID, Path: "budget", Value: "lots"}), 400)

	requireOK(t, h.jobs.ResetDraft(ctx, &model.SessionRequest{SessionID: sessionID}))
	assert.Equal(t, entity.NewJobDraft(), h.store(t).JobDraft())
}

func TestHire_ChargesWalletOnce(t *testing.T) {
	h := newHarness(t)
	dinner := submit(t, h, 350000)
	clean := submit(t, h, 200000)

	result := h.jobs.Hire(ctx, &model.HireRequest{SessionID: sessionID, JobID: dinner.JobID, KerjaMateID: "km-002"})
	requireOK(t, result)
	hired := result.Data.(model.HireResponse)
	assert.EqualValues(t, 150000, hired.Balance)
	assert.Equal(t, entity.JobStatusAssigned, hired.Job.Status)
	assert.Len(t, h.publisher.Topic(messaging.TopicJobAssigned), 1)

	requireCode(t, h.jobs.Hire(ctx, &model.HireRequest{SessionID: sessionID, JobID: clean.JobID, KerjaMateID: "km-002"}), 409)
	requireCode(t, h.jobs.Hire(ctx, &model.HireRequest{SessionID: sessionID, JobID: dinner.JobID, KerjaMateID: "km-001"}), 409)

	user, _ := h.store(t).CurrentUser()
	assert.EqualValues(t, 150000, user.WalletBalance)
	state, err := h.repo.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.EqualValues(t, 150000, state.CurrentUser.WalletBalance)
}

func TestHire_NotFound(t *testing.T) {
	h := newHarness(t)
	requireCode(t, h.jobs.Hire(ctx, &model.HireRequest{SessionID: sessionID, JobID: "job-404", KerjaMateID: "km-001"}), 404)
	requireCode(t, h.jobs.Hire(ctx, &model.HireRequest{SessionID: sessionID, JobID: "job-001", KerjaMateID: "km-404"}), 404)
	requireCode(t, h.jobs.Hire(ctx, &model.HireRequest{SessionID: sessionID, JobID: "job-001"}), 400)
}

func TestCompleteAndCancel(t *testing.T) {
	h := newHarness(t)
	posted := submit(t, h, 300000)

	requireCode(t, h.jobs.Complete(ctx, &model.GetJobRequest{SessionID: sessionID, ID: posted.JobID}), 409)
	requireOK(t, h.jobs.Hire(ctx, &model.HireRequest{SessionID: sessionID, JobID: posted.JobID, KerjaMateID: "km-002"}))

	result := h.jobs.Cancel(ctx, &model.GetJobRequest{SessionID: sessionID, ID: posted.JobID})
	requireOK(t, result)
	cancelled := result.Data.(model.CancelJobResponse)
	assert.EqualValues(t, 300000, cancelled.Refund)
	assert.Equal(t, entity.JobStatusCancelled, cancelled.Job.Status)

	requireCode(t, h.jobs.Cancel(ctx, &model.GetJobRequest{SessionID: sessionID, ID: posted.JobID}), 409)
	requireCode(t, h.jobs.Cancel(ctx, &model.GetJobRequest{SessionID: sessionID, ID: "job-404"}), 404)

	result = h.jobs.Complete(ctx, &model.GetJobRequest{SessionID: sessionID, ID: "job-002"})
	requireOK(t, result)
	assert.Equal(t, entity.JobStatusCompleted, result.Data.(entity.Job).Status)
	assert.Len(t, h.publisher.Topic(messaging.TopicJobStatusChanged), 2)
}

func TestCancelPreassignedJobRefundsNothing(t *testing.T) {
	h := newHarness(t)

	result := h.jobs.Cancel(ctx, &model.GetJobRequest{SessionID: sessionID, ID: "job-004"})
	requireOK(t, result)
	assert.Zero(t, result.Data.(model.CancelJobResponse).Refund)

	st, err := h.sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	u, _ := st.CurrentUser()
	assert.EqualValues(t, 500000, u.WalletBalance)
}

func TestListJobs(t *testing.T) {
	h := newHarness(t)

	result := h.jobs.List(ctx, &model.ListJobsRequest{SessionID: sessionID, Status: "open"})
	requireOK(t, result)
	list := result.Data.(model.JobListResponse)
	assert.Equal(t, 4, list.Total)
	for _, j := range list.Jobs {
		assert.Equal(t, entity.JobStatusOpen, j.Status)
	}

	result = h.jobs.List(ctx, &model.ListJobsRequest{SessionID: sessionID})
	assert.Equal(t, 4, result.Data.(model.JobListResponse).Total)

	result = h.jobs.ResetFilter(ctx, &model.SessionRequest{SessionID: sessionID})
	assert.Equal(t, 8, result.Data.(model.JobListResponse).Total)

	requireCode(t, h.jobs.List(ctx, &model.ListJobsRequest{SessionID: sessionID, Status: "paused"}), 400)
	requireCode(t, h.jobs.List(ctx, &model.ListJobsRequest{SessionID: sessionID, Status: "open", Category: "Cleaning"}), 400)
}

func TestGetJobMatchesAndCategories(t *testing.T) {
	h := newHarness(t)

	requireCode(t, h.jobs.Get(ctx, &model.GetJobRequest{SessionID: sessionID, ID: "job-404"}), 404)
	requireCode(t, h.jobs.Matches(ctx, &model.GetJobRequest{SessionID: sessionID, ID: "job-404"}), 404)

	result := h.jobs.Matches(ctx, &model.GetJobRequest{SessionID: sessionID, ID: "job-001"})
	requireOK(t, result)
	matches := result.Data.(model.MatchesResponse)
	require.Len(t, matches.KerjaMates, 1)
	assert.Equal(t, "km-001", matches.KerjaMates[0].ID)

	result = h.jobs.ListCategories(ctx, &model.SessionRequest{SessionID: sessionID})
	requireOK(t, result)
	assert.Len(t, result.Data, 8)

	requireOK(t, h.jobs.GetCategory(ctx, &model.GetCategoryRequest{SessionID: sessionID, ID: "cat-002"}))
	requireCode(t, h.jobs.GetCategory(ctx, &model.GetCategoryRequest{SessionID: sessionID, ID: "cat-404"}), 404)
}

func TestFindMatchesTask(t *testing.T) {
	h := newHarness(t)
	posted := submit(t, h, 100000)

	require.NoError(t, h.jobs.FindMatchesTask(ctx, h.tasks.tasks[0]))

	msgs := h.publisher.Topic(messaging.TopicJobMatchesFound)
	require.Len(t, msgs, 1)
	var event model.JobMatchesEvent
	require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
	assert.Equal(t, posted.JobID, event.JobID)
	assert.Equal(t, []string{"km-002"}, event.KerjaMateIDs)
}

func TestFindMatchesTask_BadPayloadSkipsRetry(t *testing.T) {
	h := newHarness(t)
	err := h.jobs.FindMatchesTask(ctx, asynq.NewTask(usecase.TypeFindMatches, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestFindMatchesTask_UnknownJobIsDropped(t *testing.T) {
	h := newHarness(t)
	payload, _ := json.Marshal(model.FindMatchesPayload{SessionID: sessionID, JobID: "job-404"})

	require.NoError(t, h.jobs.FindMatchesTask(ctx, asynq.NewTask(usecase.TypeFindMatches, payload)))
	assert.Empty(t, h.publisher.Topic(messaging.TopicJobMatchesFound))
}
