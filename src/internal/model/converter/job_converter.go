package converter

import (
	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/model"
)

func JobToEvent(eventID, sessionID string, job *entity.Job) *model.JobEvent {
	return &model.JobEvent{
		ID: eventID,
		Message: model.JobPayload{
			SessionID:   sessionID,
			JobID:       job.ID,
			UserID:      job.UserID,
			KerjaMateID: job.KerjaMateID,
			Title:       job.Title,
			Category:    job.Category,
			Status:      string(job.Status),
			Budget:      job.Budget,
		},
	}
}

func DraftToPostJobRequest(draft *entity.JobDraft) *model.PostJobRequest {
	return &model.PostJobRequest{
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Address:     draft.Location.Address,
		DateNeeded:  draft.DateNeeded,
		TimeNeeded:  draft.TimeNeeded,
		Duration:    draft.Duration,
		Budget:      draft.Budget,
		Skills:      draft.Skills,
	}
}

func DraftRequestToPatch(request *model.UpdateDraftRequest) entity.JobDraftPatch {
	patch := entity.JobDraftPatch{
		Title:       request.Title,
		Description: request.Description,
		Category:    request.Category,
		DateNeeded:  request.DateNeeded,
		TimeNeeded:  request.TimeNeeded,
		Duration:    request.Duration,
		Budget:      request.Budget,
		Skills:      request.Skills,
	}
	if loc := request.Location; loc != nil {
		patch.Location = &entity.LocationPatch{
			Address: loc.Address,
			Lat:     loc.Lat,
			Lng:     loc.Lng,
		}
	}
	return patch
}
